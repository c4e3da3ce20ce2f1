//go:build unix

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-budget-vault/internal/client"
)

// watchVisibility maps job control to the vault visibility hooks: SIGTSTP
// hides the app before the process really stops, SIGCONT shows it again.
func watchVisibility(ctx context.Context, app *client.App) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTSTP, syscall.SIGCONT)

	go func() {
		defer signal.Stop(signals)
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-signals:
				if sig == syscall.SIGCONT {
					signal.Notify(signals, syscall.SIGTSTP)
					app.SetHidden(false)
					continue
				}
				app.SetHidden(true)
				signal.Reset(syscall.SIGTSTP)
				_ = syscall.Kill(os.Getpid(), syscall.SIGTSTP)
			}
		}
	}()
}
