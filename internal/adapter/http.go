// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/mshv/go-note-keeper/internal/config"
	"github.com/mshv/go-note-keeper/internal/logger"
	"github.com/mshv/go-note-keeper/models"
)

type httpNotesAdapter struct {
	client  *resty.Client
	service config.ServiceAccount

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPNotesAdapter constructs an HTTP/REST implementation of [NotesAPI].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying resty client with the resolved base URL and
// request timeout.
//
// The adapter authenticates lazily: the first API call triggers a login with
// the configured service credential. If the account does not exist yet it is
// registered once and the login is repeated.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPNotesAdapter(adapterCfg config.Adapter, service config.ServiceAccount, logger *logger.Logger) (NotesAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpNotesAdapter{client: client, service: service, logger: logger}, nil
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

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests.
func (h *httpNotesAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the adapter, or an empty
// string if none has been set.
func (h *httpNotesAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ListNotes implements [NotesAPI]. It GETs /api/notes with the service
// bearer token and decodes the response into a slice of [models.Note].
func (h *httpNotesAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.withAuth(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/api/notes")
	})
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode list notes response: %w", err)
	}

	return notes, nil
}

// CreateNote implements [NotesAPI]. It POSTs the note payload to /api/notes
// with the service bearer token and returns the created note.
func (h *httpNotesAdapter) CreateNote(ctx context.Context, title, content string, tags []string) (models.Note, error) {
	body := models.NoteRequest{
		Title:   title,
		Content: content,
		Tags:    tags,
	}

	resp, err := h.withAuth(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post("/api/notes")
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var created models.NoteResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Note{}, fmt.Errorf("decode create note response: %w", err)
	}

	return created.Note, nil
}

// withAuth runs call with a bearer-authenticated request. A missing token
// triggers a login first; a 401 response triggers one re-login and one retry
// (the token has a short lifetime and expires between commands).
func (h *httpNotesAdapter) withAuth(ctx context.Context, call func(req *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	if h.Token() == "" {
		if err := h.login(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := call(h.authedRequest(ctx))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		if err = h.login(ctx); err != nil {
			return nil, err
		}
		resp, err = call(h.authedRequest(ctx))
		if err != nil {
			return nil, err
		}
	}

	return resp, nil
}

// login authenticates the service account and stores the received bearer
// token. On the first 401 it assumes the account was never provisioned,
// registers it, and retries the login once.
func (h *httpNotesAdapter) login(ctx context.Context) error {
	resp, err := h.postCredentials(ctx, "/api/auth/login", nil)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		h.logger.Info().Str("username", h.service.Username).Msg("service account login rejected, trying to register it")
		if err = h.register(ctx); err != nil {
			return err
		}

		resp, err = h.postCredentials(ctx, "/api/auth/login", nil)
		if err != nil {
			return fmt.Errorf("login retry request: %w", err)
		}
	}

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var loginResp models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &loginResp); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if loginResp.AccessToken == "" {
		return ErrUnauthorized
	}

	h.SetToken(loginResp.AccessToken)
	return nil
}

// register provisions the service account. An ErrDuplicateUser answer means
// the account exists and the earlier login 401 was a wrong password, which
// is surfaced as ErrUnauthorized.
func (h *httpNotesAdapter) register(ctx context.Context) error {
	resp, err := h.postCredentials(ctx, "/api/auth/register", nil)
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			return ErrUnauthorized
		}
		return err
	}

	return nil
}

func (h *httpNotesAdapter) postCredentials(ctx context.Context, path string, result any) (*resty.Response, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Username: h.service.Username, Password: h.service.Password})
	if result != nil {
		req.SetResult(result)
	}

	return req.Post(path)
}

func (h *httpNotesAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
