package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/handler"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/mock"
	"github.com/MKhiriev/go-budget-vault/internal/service"
)

func newTestHandlers(t *testing.T, cfg *config.ServerConfig) *handler.Handlers {
	t.Helper()
	changelog := mock.NewMockChangeLogService(gomock.NewController(t))
	changelog.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()

	handlers, err := handler.NewHandlers(&service.Services{ChangeLogService: changelog}, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NothingToServe(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_StopsWhenContextIsCancelled(t *testing.T) {
	cfg := &config.ServerConfig{
		Server: config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"},
	}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenFailureStopsEverything(t *testing.T) {
	cfg := &config.ServerConfig{
		Server: config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "256.0.0.1:1"},
	}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.RunServer(context.Background()) }()

	select {
	case err = <-done:
		assert.ErrorContains(t, err, "gRPC server Listen")
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after listen failure")
	}
}
