package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-vault/internal/mock"
	"github.com/MKhiriev/go-budget-vault/models"
)

func TestSettingsCapabilities_StorageMode(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		found   bool
		want    models.StorageMode
		wantErr error
	}{
		{"unset defaults to local only", "", false, models.StorageModeLocalOnly, nil},
		{"cloud", "cloud", true, models.StorageModeCloud, nil},
		{"cloud encrypted", "cloud-encrypted", true, models.StorageModeCloudEncrypted, nil},
		{"garbage", "sometimes", true, "", ErrInvalidStorageMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			settings := mock.NewMockSettingsStore(ctrl)
			settings.EXPECT().Get(gomock.Any(), SettingStorageMode).Return(tt.stored, tt.found, nil)

			got, err := NewSettingsCapabilities(settings).StorageMode(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsCapabilities_StoreErrorIsWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsStore(ctrl)
	boom := errors.New("disk")
	settings.EXPECT().Get(gomock.Any(), SettingActiveScopeID).Return("", false, boom)

	_, err := NewSettingsCapabilities(settings).ActiveScopeID(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSettingsCapabilities_ActiveScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsStore(ctrl)
	caps := NewSettingsCapabilities(settings)
	ctx := context.Background()

	gomock.InOrder(
		settings.EXPECT().Set(gomock.Any(), SettingActiveScopeID, "plan-9").Return(nil),
		settings.EXPECT().Get(gomock.Any(), SettingActiveScopeID).Return("plan-9", true, nil),
		settings.EXPECT().Delete(gomock.Any(), SettingActiveScopeID).Return(nil),
	)

	require.NoError(t, caps.SetActiveScopeID(ctx, "plan-9"))
	scope, err := caps.ActiveScopeID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "plan-9", scope)
	require.NoError(t, caps.SetActiveScopeID(ctx, ""))
}

func TestSettingsCapabilities_SetStorageModeValidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsStore(ctrl)
	caps := NewSettingsCapabilities(settings)

	assert.ErrorIs(t, caps.SetStorageMode(context.Background(), "ftp"), ErrInvalidStorageMode)

	settings.EXPECT().Set(gomock.Any(), SettingStorageMode, "cloud").Return(nil)
	require.NoError(t, caps.SetStorageMode(context.Background(), models.StorageModeCloud))
}

func TestSettingsCapabilities_PasswordStaysInMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	caps := NewSettingsCapabilities(mock.NewMockSettingsStore(ctrl))
	ctx := context.Background()

	pw, err := caps.EncryptionPassword(ctx)
	require.NoError(t, err)
	assert.Empty(t, pw)

	caps.SetPassword("hunter2")
	pw, _ = caps.EncryptionPassword(ctx)
	assert.Equal(t, "hunter2", pw)

	caps.ClearPassword()
	pw, _ = caps.EncryptionPassword(ctx)
	assert.Empty(t, pw)
}
