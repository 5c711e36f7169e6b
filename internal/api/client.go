package api

// Package api implements the HTTP client for the Espacio Evento backend.
// The client is stateless: every authenticated call takes the caller's
// bearer token explicitly, which keeps it trivially testable and free of
// global session state. Each call is a single round trip; no retries and
// no caching happen at this layer.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/espacio-evento/espacio-ui/internal/errors"
)

const defaultTimeout = 15 * time.Second

// Config captures the backend connection settings.
type Config struct {
	// BaseURL is the backend root, e.g. "http://localhost:3000/api".
	BaseURL string
	// Timeout bounds each round trip. Zero means the default.
	Timeout time.Duration
	// Client overrides the HTTP client (tests). Optional.
	Client *http.Client
}

// Client talks to the Espacio Evento backend API. Use the resource
// namespaces (Auth, Eventos, Salas, Inscripciones, Usuarios, Pagos) to
// issue calls.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient builds a backend client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		client:  hc,
	}, nil
}

// Auth returns the authentication namespace.
func (c *Client) Auth() *AuthClient { return &AuthClient{c: c} }

// Eventos returns the events namespace.
func (c *Client) Eventos() *EventosClient { return &EventosClient{c: c} }

// Salas returns the rooms namespace.
func (c *Client) Salas() *SalasClient { return &SalasClient{c: c} }

// Inscripciones returns the registrations namespace.
func (c *Client) Inscripciones() *InscripcionesClient { return &InscripcionesClient{c: c} }

// Usuarios returns the user directory namespace.
func (c *Client) Usuarios() *UsuariosClient { return &UsuariosClient{c: c} }

// Pagos returns the payments namespace.
func (c *Client) Pagos() *PagosClient { return &PagosClient{c: c} }

// callParams groups the inputs of a single backend round trip.
type callParams struct {
	method string
	path   string
	token  string // empty for unauthenticated endpoints
	body   any    // marshaled as JSON when non-nil
	out    any    // decoded from the response when non-nil
}

// do performs one backend round trip and normalizes the outcome:
//   - transport failure or unparseable body -> connectivity error
//   - non-2xx with a parseable error body   -> remote error carrying the
//     backend's message verbatim
//   - 204 No Content                        -> nil without touching out
func (c *Client) do(ctx context.Context, p callParams) error {
	var reqBody io.Reader
	if p.body != nil {
		data, err := json.Marshal(p.body)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, p.method, c.baseURL+p.path, reqBody)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Connectivity(err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	// 204 carries no body; do not attempt JSON parsing.
	if resp.StatusCode == http.StatusNoContent || p.out == nil {
		return nil
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(p.out); decodeErr != nil {
		return apperrors.Connectivity(fmt.Errorf("decode response: %w", decodeErr))
	}
	return nil
}

// errorBody is the backend's error envelope. Some endpoints use
// "message", others "error".
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Connectivity(fmt.Errorf("read error response: %w", err))
	}

	var eb errorBody
	if unmarshalErr := json.Unmarshal(data, &eb); unmarshalErr != nil {
		return apperrors.Connectivity(fmt.Errorf("parse error response %s: %w", resp.Status, unmarshalErr))
	}

	msg := eb.Message
	if msg == "" {
		msg = eb.Error
	}
	if msg == "" {
		msg = "error en la petición"
	}
	return apperrors.Remote(resp.StatusCode, msg)
}
