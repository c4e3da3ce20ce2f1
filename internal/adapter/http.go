package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-budget-vault/internal/config"
	"github.com/MKhiriev/go-budget-vault/internal/logger"
	"github.com/MKhiriev/go-budget-vault/internal/utils"
	"github.com/MKhiriev/go-budget-vault/models"
)

const (
	changelogPath = "/api/changelog"
	healthPath    = "/api/health"
)

type httpRemoteChangeLog struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteChangeLog constructs the HTTP/REST [RemoteChangeLog]. The
// base URL comes from adapterCfg.HTTPAddress (a bare host:port gets an
// http:// scheme) and the initial token from appCfg.AccessToken.
//
// Returns an error if the address is empty or cannot be parsed.
func NewHTTPRemoteChangeLog(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (RemoteChangeLog, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("creating remote changelog adapter")
	r := &httpRemoteChangeLog{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	r.SetToken(appCfg.AccessToken)
	return r, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteChangeLog) SetToken(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()
}

func (h *httpRemoteChangeLog) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Upsert PUTs the batch to /api/changelog.
func (h *httpRemoteChangeLog) Upsert(ctx context.Context, entries []models.RemoteChangeLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ChangeLogUpsertRequest{Entries: entries, Length: len(entries)}).
		Put(changelogPath)
	if err != nil {
		return mapTransportError("upsert request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "httpRemoteChangeLog.Upsert").
			Int("status", resp.StatusCode()).
			Int("count", len(entries)).
			Msg("remote rejected changelog upsert")
		return err
	}
	return nil
}

// FetchSince GETs /api/changelog?scope_id=…&since=….
func (h *httpRemoteChangeLog) FetchSince(ctx context.Context, scopeID string, since time.Time) ([]models.RemoteChangeLogEntry, error) {
	req := h.authedRequest(ctx).SetQueryParam("scope_id", scopeID)
	if !since.IsZero() {
		req.SetQueryParam("since", models.FormatTimestamp(since))
	}

	resp, err := req.Get(changelogPath)
	if err != nil {
		return nil, mapTransportError("fetch request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "httpRemoteChangeLog.FetchSince").
			Int("status", resp.StatusCode()).
			Str("scope_id", scopeID).
			Msg("remote rejected changelog fetch")
		return nil, err
	}

	var pr models.ChangeLogPullResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return nil, fmt.Errorf("%w: decode pull response: %w", ErrInvalidResponse, err)
	}
	return pr.Entries, nil
}

func (h *httpRemoteChangeLog) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return mapTransportError("health request", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRemoteChangeLog) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
