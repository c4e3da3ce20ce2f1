package service

import (
	"errors"

	"github.com/MKhiriev/go-budget-vault/internal/adapter"
	"github.com/MKhiriev/go-budget-vault/internal/app"
	"github.com/MKhiriev/go-budget-vault/internal/crypto"
)

// UserMessage maps err to text that is safe to show. Unknown errors get a
// generic message; the raw error text is never returned.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, crypto.ErrVaultLocked), errors.Is(err, ErrVaultSealed):
		return app.MsgVaultLocked
	case errors.Is(err, crypto.ErrDecryptionFailed):
		return app.MsgWrongPassword
	case errors.Is(err, ErrVaultUpgradeRequired):
		return app.MsgVaultUpgradeRequired
	case errors.Is(err, ErrVaultCorrupted):
		return app.MsgVaultCorrupted
	case errors.Is(err, ErrVaultNotEnabled):
		return app.MsgVaultNotEnabled
	case errors.Is(err, ErrVaultAlreadyEnabled):
		return app.MsgVaultAlreadyEnabled
	case errors.Is(err, ErrPasswordRequired), errors.Is(err, ErrEmptyPassword):
		return app.MsgPasswordRequired
	case errors.Is(err, ErrRemoteNotConfigured):
		return app.MsgRemoteNotConfigured
	case errors.Is(err, ErrNoActiveScope):
		return app.MsgNoActivePlan
	case errors.Is(err, adapter.ErrUnreachable):
		return app.MsgOffline
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgSyncUnauthorized
	case errors.Is(err, adapter.ErrRejected):
		return app.MsgSyncRejected
	case errors.Is(err, adapter.ErrServerUnavailable):
		return app.MsgSyncUnavailable
	default:
		return app.MsgUnexpected
	}
}
