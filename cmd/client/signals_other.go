//go:build !unix

package main

import (
	"context"

	"github.com/MKhiriev/go-budget-vault/internal/client"
)

// watchVisibility is a no-op where the host has no job control signals.
func watchVisibility(context.Context, *client.App) {}
