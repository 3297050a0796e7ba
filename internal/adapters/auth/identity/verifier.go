// Package identity verifica tokens contra el servicio de identidad de la
// práctica. Implementa auth.AuthVerifier; se instancia desde main cuando
// AUTH_VERIFY_URL está configurado, si no el gateway corre en modo dev.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vet-practice-manager/internal/platform/httpclient"
	"vet-practice-manager/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("identity verifier not configured")
	ErrUnauthorized  = errors.New("identity: unauthorized")
)

type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: header de la API key ("X-Api-Key" por defecto).
	APIKeyHeader string
	Timeout      time.Duration
}

// Verifier llama al endpoint de verificación y mapea la respuesta a Claims.
type Verifier struct {
	http *httpclient.Client
}

func NewVerifier(cfg Config) (*Verifier, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	h, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	h.APIKey = strings.TrimSpace(cfg.APIKey)
	h.APIKeyHeader = strings.TrimSpace(cfg.APIKeyHeader)
	return &Verifier{http: h}, nil
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.http == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out verifyResponse
	err := v.http.DoJSON(ctx, http.MethodPost, "/tokens/verify",
		map[string]string{"Authorization": "Bearer " + token},
		verifyRequest{Token: token}, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) &&
			(httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden) {
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("identity verify failed: %w", err)
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, errors.New("identity response missing user_id")
	}

	return auth.Claims{
		UserID: out.UserID,
		Email:  strings.TrimSpace(out.Email),
		Role:   strings.TrimSpace(out.Role),
	}, nil
}
