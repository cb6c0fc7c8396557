package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-docform/pkg/contract"
	"github.com/goliatone/go-docform/pkg/model"
)

var (
	// ErrTransport marks failures to reach the backend at all.
	ErrTransport = errors.New("client: transport failure")
	// ErrDecode marks replies whose body is not a generation response.
	ErrDecode = errors.New("client: undecodable response")
)

// Generator issues one generation request.
type Generator interface {
	Generate(ctx context.Context, endpoint contract.Endpoint, req model.GenerationRequest) (model.GenerationResponse, error)
}

// HTTP posts generation requests as JSON to a base URL.
type HTTP struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ Generator = (*HTTP)(nil)

// Option configures the HTTP client.
type Option func(*HTTP)

// WithHTTPClient overrides the underlying client. The default client has no
// timeout; requests end only when the backend answers or ctx is done.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) {
		if c != nil {
			h.httpClient = c
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *HTTP) {
		h.logger = logger
	}
}

// New builds a client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*HTTP, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errors.New("client: base url is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("client: parse base url: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("client: base url %q must be absolute", trimmed)
	}

	h := &HTTP{
		baseURL:    parsed,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(h)
	}
	return h, nil
}

// Generate posts req to the endpoint and decodes the reply. The body is
// decoded whatever the status code, since the backend reports failures as
// {"success": false, "error": ...} alongside a 5xx.
func (h *HTTP) Generate(ctx context.Context, endpoint contract.Endpoint, req model.GenerationRequest) (model.GenerationResponse, error) {
	target := h.baseURL.JoinPath(endpoint.Path)

	body, err := json.Marshal(req)
	if err != nil {
		return model.GenerationResponse{}, fmt.Errorf("client: encode request: %w", err)
	}

	method := endpoint.Method
	if method == "" {
		method = contract.DefaultMethod
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), bytes.NewReader(body))
	if err != nil {
		return model.GenerationResponse{}, fmt.Errorf("client: request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	h.logger.Debug().
		Str("operation", endpoint.OperationID).
		Str("url", target.String()).
		Int("fields", len(req)).
		Msg("posting generation request")

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return model.GenerationResponse{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.GenerationResponse{}, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	var out model.GenerationResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return model.GenerationResponse{}, fmt.Errorf("%w: status %d: %v", ErrDecode, resp.StatusCode, err)
	}

	h.logger.Debug().
		Str("operation", endpoint.OperationID).
		Int("status", resp.StatusCode).
		Bool("success", out.Success).
		Msg("generation response decoded")
	return out, nil
}
