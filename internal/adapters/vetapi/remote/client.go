// Package remote implementa el API de la práctica veterinaria contra el
// backend HTTP real. Los payloads son entity-shaped: las mismas structs
// de dominio viajan como JSON.
package remote

import (
	"errors"
	"strings"
	"time"

	"vet-practice-manager/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("vet api client not configured")
)

type Config struct {
	BaseURL string
	APIKey  string

	APIKeyHeader string
	Timeout      time.Duration
}

// Client agrupa las vistas por colección sobre un solo httpclient.
type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	h, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	h.APIKey = strings.TrimSpace(cfg.APIKey)
	h.APIKeyHeader = strings.TrimSpace(cfg.APIKeyHeader)
	return &Client{http: h}, nil
}

// NewClientWithHTTP permite inyectar el httpclient (tests con Transport fake).
func NewClientWithHTTP(h *httpclient.Client) *Client {
	return &Client{http: h}
}
