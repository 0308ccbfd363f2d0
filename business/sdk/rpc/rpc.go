// Package rpc provides the client for the remote procedure boundary. All
// persistence lives behind the backend; this client is the only way the
// service reads or writes financial records.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/granazap/painel/foundation/logger"
	"github.com/granazap/painel/foundation/otel"
)

// TokenFunc returns the bearer credentials to attach to a call. The session
// access token rotates, so the value is read per call.
type TokenFunc func() string

// Config represents information required to construct a client.
type Config struct {
	Log     *logger.Logger
	BaseURL string
	APIKey  string
	Token   TokenFunc
	Client  *http.Client
}

// Client manages calls against the remote procedure endpoint.
type Client struct {
	log     *logger.Logger
	baseURL string
	apiKey  string
	token   TokenFunc
	http    *http.Client
}

// New constructs a client for remote procedure access.
func New(cfg Config) *Client {
	httpClient := cfg.Client
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		log:     cfg.Log,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		token:   cfg.Token,
		http:    httpClient,
	}
}

// envelope is the wire shape of every procedure response.
type envelope struct {
	Data  []json.RawMessage `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Call executes the named procedure with the specified arguments and returns
// the raw rows. A structured backend error comes back as *ProcedureError.
func (c *Client) Call(ctx context.Context, procedure string, args any) ([]json.RawMessage, error) {
	ctx, span := otel.AddSpan(ctx, "business.rpc.call")
	defer span.End()

	body := []byte("{}")
	if args != nil {
		var err error
		body, err = json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("marshal args: %w", err)
		}
	}

	url := fmt.Sprintf("%s/rpc/%s", c.baseURL, procedure)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}
	if c.token != nil {
		if tkn := c.token(); tkn != "" {
			req.Header.Set("Authorization", "Bearer "+tkn)
		}
	}
	otel.AddTraceToRequest(ctx, req)

	c.log.Info(ctx, "rpc.call", "procedure", procedure)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", procedure, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("call %s: read body: %w", procedure, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("call %s: decode envelope: %w", procedure, err)
	}

	if env.Error != nil {
		return nil, &ProcedureError{Procedure: procedure, Message: env.Error.Message}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("call %s: status %d", procedure, resp.StatusCode)
	}

	return env.Data, nil
}

// DecodeRows decodes every raw row into the specified row type.
func DecodeRows[T any](rows []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(rows))

	for i, row := range rows {
		var v T
		if err := json.Unmarshal(row, &v); err != nil {
			return nil, fmt.Errorf("decode row[%d]: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}
