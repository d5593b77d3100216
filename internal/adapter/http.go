// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Zolotarev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mzolotarev/keywarden/internal/logger"
	"github.com/mzolotarev/keywarden/models"
)

// HTTPClientConfig carries the settings for the REST record store client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpRecordStore struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPRecordStore constructs an HTTP/REST implementation of [RecordStore].
// It normalises and validates the base URL and configures the underlying
// client with the resolved base URL and request timeout.
func NewHTTPRecordStore(cfg HTTPClientConfig, log *logger.Logger) (RecordStore, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid record store address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpRecordStore{client: cli, logger: log}, nil
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

// SetToken implements [RecordStore].
func (h *httpRecordStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RecordStore].
func (h *httpRecordStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SessionOwner implements [RecordStore]. The token is issued and verified by
// the server; the client only reads the subject claim out of it, so the
// signature is not checked here.
func (h *httpRecordStore) SessionOwner() (string, error) {
	token := h.Token()
	if token == "" {
		return "", ErrNoToken
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("session token has no subject")
	}

	return claims.Subject, nil
}

// List implements [RecordStore].
func (h *httpRecordStore) List(ctx context.Context, ownerID string) ([]models.VaultRecord, error) {
	var records []models.VaultRecord

	resp, err := h.authedRequest(ctx).
		SetQueryParam("owner_id", ownerID).
		SetResult(&records).
		Get("/api/records")
	if err != nil {
		return nil, fmt.Errorf("list records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

// Insert implements [RecordStore].
func (h *httpRecordStore) Insert(ctx context.Context, rec models.VaultRecord) (models.VaultRecord, error) {
	var stored models.VaultRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rec).
		SetResult(&stored).
		Post("/api/records")
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("insert record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultRecord{}, err
	}

	return stored, nil
}

// Update implements [RecordStore].
func (h *httpRecordStore) Update(ctx context.Context, rec models.VaultRecord) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rec).
		Put("/api/records/" + url.PathEscape(rec.ID))
	if err != nil {
		return fmt.Errorf("update record request: %w", err)
	}

	return mapHTTPError(resp)
}

// Delete implements [RecordStore].
func (h *httpRecordStore) Delete(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/records/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapHTTPError(resp)
}

// SignOut implements [RecordStore]. The stored token is dropped even when
// the server call fails: the panic path must not be left holding a usable
// session because the network was down.
func (h *httpRecordStore) SignOut(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/signout")

	h.SetToken("")

	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRecordStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
