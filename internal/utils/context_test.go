// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "ownerID", OwnerIDCtxKey.String())
}

func TestGetOwnerIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{"set", WithOwnerID(context.Background(), "owner-1"), "owner-1", true},
		{"missing", context.Background(), "", false},
		{"empty", WithOwnerID(context.Background(), ""), "", false},
		{"wrong type", context.WithValue(context.Background(), OwnerIDCtxKey, 42), "", false},
		{"plain string key is not ours", context.WithValue(context.Background(), "ownerID", "x"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetOwnerIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
