package dnac

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/airmetrics/rrmreport/internal/core/domain"
)

const (
	authPath         = "/api/system/v1/auth/token"
	requestTimeout   = 60 * time.Second
	maxErrorBodySize = 1 << 20 // 1 MiB
)

// Session manages the authentication lifecycle against the
// controller: token acquisition and header generation for
// authenticated requests. There is no background refresh; callers
// re-login on a 401.
type Session struct {
	BaseURL  string
	Username string
	Password string
	HTTP     *http.Client

	token string
}

// NewSession validates the connection parameters and builds the shared
// HTTP client. With verifyTLS false the client accepts self-signed
// certificates, which controllers commonly ship with.
func NewSession(baseURL, username, password string, verifyTLS bool) (*Session, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	username = strings.TrimSpace(username)

	if base == "" {
		return nil, errors.New("controller base URL is required")
	}
	if username == "" {
		return nil, errors.New("controller username is required")
	}
	if password == "" {
		return nil, errors.New("controller password is required")
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !verifyTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Session{
		BaseURL:  base,
		Username: username,
		Password: password,
		HTTP: &http.Client{
			Timeout:   requestTimeout,
			Transport: otelhttp.NewTransport(transport),
		},
	}, nil
}

// Login exchanges the credentials for a token. A non-2xx status or a
// response body without a token field is a domain.AuthError.
func (s *Session) Login(ctx context.Context) error {
	slog.Info("Authenticating with controller", "url", s.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+authPath, nil)
	if err != nil {
		return &domain.AuthError{Err: err}
	}
	req.SetBasicAuth(s.Username, s.Password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return &domain.AuthError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
		return &domain.AuthError{Err: fmt.Errorf("auth endpoint returned %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.AuthError{Err: err}
	}

	var payload struct {
		Token string `json:"Token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return &domain.AuthError{Err: fmt.Errorf("decoding auth response: %w", err)}
	}
	if payload.Token == "" {
		return &domain.AuthError{Err: errors.New("no token in auth response")}
	}

	s.token = payload.Token
	slog.Info("Authentication successful")
	return nil
}

// Headers returns the auth header set for API requests, logging in
// first if no token has been obtained yet.
func (s *Session) Headers(ctx context.Context) (http.Header, error) {
	if s.token == "" {
		if err := s.Login(ctx); err != nil {
			return nil, err
		}
	}
	h := http.Header{}
	h.Set("X-Auth-Token", s.token)
	h.Set("Content-Type", "application/json")
	return h, nil
}
