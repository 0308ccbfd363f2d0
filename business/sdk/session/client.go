package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/granazap/painel/foundation/logger"
)

// refreshSkew is how long before expiry the client refreshes the token.
const refreshSkew = 60 * time.Second

// Config represents information required to construct a client.
type Config struct {
	Log          *logger.Logger
	BaseURL      string
	APIKey       string
	RefreshToken string
	Client       *http.Client
}

// Client talks to a GoTrue style auth endpoint and turns its token lifecycle
// into a session notification stream.
type Client struct {
	log     *logger.Logger
	baseURL string
	apiKey  string
	http    *http.Client

	mu      sync.Mutex
	subs    map[int]func(Event, *Session)
	nextSub int
	current *Session
	refresh string
	stopCh  chan struct{}
}

// NewClient constructs a client for session access.
func NewClient(cfg Config) *Client {
	httpClient := cfg.Client
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{
		log:     cfg.Log,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    httpClient,
		subs:    make(map[int]func(Event, *Session)),
		refresh: cfg.RefreshToken,
		stopCh:  make(chan struct{}),
	}
}

// Subscribe registers a callback for session change notifications.
func (c *Client) Subscribe(fn func(Event, *Session)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	unsubscribe := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}

	return unsubscribe
}

// Start performs the initial token exchange and begins the refresh loop. The
// initial notification is emitted whether or not the exchange succeeds: a
// failed exchange is a signed-out initial state, not an error.
func (c *Client) Start(ctx context.Context) {
	s, err := c.exchange(ctx, c.refresh)
	if err != nil {
		c.log.Error(ctx, "session: initial token exchange", "err", err)
		c.emit(Initial, nil)
		return
	}

	c.mu.Lock()
	c.current = s
	c.refresh = s.RefreshToken
	c.mu.Unlock()

	c.emit(Initial, s)

	go c.refreshLoop(ctx)
}

// AccessToken returns the current access token, or the empty string when no
// session is active. RPC calls fall back to the anon key in that case.
func (c *Client) AccessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return ""
	}

	return c.current.AccessToken
}

// Stop halts the refresh loop.
func (c *Client) Stop() {
	close(c.stopCh)
}

// SignOut revokes the session with the provider.
func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	cur := c.current
	c.current = nil
	c.refresh = ""
	c.mu.Unlock()

	defer c.emit(SignedOut, nil)

	if cur == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/logout", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+cur.AccessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("logout: status %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) refreshLoop(ctx context.Context) {
	for {
		c.mu.Lock()
		cur := c.current
		c.mu.Unlock()

		if cur == nil {
			return
		}

		wait := time.Until(cur.ExpiresAt.Add(-refreshSkew))
		if wait < time.Second {
			wait = time.Second
		}

		select {
		case <-c.stopCh:
			return
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		c.mu.Lock()
		refresh := c.refresh
		c.mu.Unlock()

		s, err := c.exchange(ctx, refresh)
		if err != nil {
			c.log.Error(ctx, "session: token refresh", "err", err)

			c.mu.Lock()
			c.current = nil
			c.mu.Unlock()

			c.emit(SignedOut, nil)
			return
		}

		c.mu.Lock()
		c.current = s
		c.refresh = s.RefreshToken
		c.mu.Unlock()

		c.emit(TokenRefreshed, s)
	}
}

func (c *Client) emit(event Event, s *Session) {
	c.mu.Lock()
	fns := make([]func(Event, *Session), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(event, s)
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

func (c *Client) exchange(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("no refresh token")
	}

	body, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	url := c.baseURL + "/token?grant_type=refresh_token"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token exchange: status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.Unmarshal(raw, &tr); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}

	return ParseSession(tr.AccessToken, tr.RefreshToken)
}

// ParseSession builds a Session from a provider access token. The claims are
// read unverified: signature verification belongs to the backend that issued
// the token, this client only needs the subject identity and expiry.
func ParseSession(accessToken string, refreshToken string) (*Session, error) {
	var claims struct {
		jwt.RegisteredClaims
		Email string `json:"email"`
	}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("access token missing subject")
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User: User{
			ID:    claims.Subject,
			Email: claims.Email,
		},
	}, nil
}
