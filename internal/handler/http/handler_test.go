package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/mock"
	"github.com/MKhiriev/go-budget-vault/internal/service"
	"github.com/MKhiriev/go-budget-vault/internal/utils"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-budget-vault"
	testOwner   = "device-owner-1"
)

type handlerFixture struct {
	changelog *mock.MockChangeLogService
	appInfo   *mock.MockAppInfoService
	handler   *Handler
	router    http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		changelog: mock.NewMockChangeLogService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}
	cfg := &config.ServerConfig{
		App: config.ServerApp{TokenSignKey: testSignKey, TokenIssuer: testIssuer},
	}
	f.handler = NewHandler(&service.Services{ChangeLogService: f.changelog, AppInfoService: f.appInfo}, cfg, logger.Nop())
	f.router = f.handler.Init()
	return f
}

func bearer(t *testing.T, owner string, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, owner, ttl, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}

func (f *handlerFixture) do(method, target, body, authorization string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}
