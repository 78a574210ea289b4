package tarkov

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client is an authenticated session with the game API. The session
// identifier and fingerprint never change after construction, so a Client
// is safe for concurrent use.
type Client struct {
	config    *ClientConfig
	transport Transport
	logger    *zap.Logger
	identity  Identity
}

// FromSession wraps an existing session identifier (the PHPSESSID cookie)
// without contacting the remote service. A nil config means DefaultConfig,
// as for every constructor.
func FromSession(cfg *ClientConfig, session, fingerprint string) (*Client, error) {
	if session == "" {
		return nil, errors.New("session is required")
	}
	if fingerprint == "" {
		return nil, errors.New("fingerprint is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return newClient(cfg.withDefaults(), Identity{Session: session, Fingerprint: fingerprint}), nil
}

// FromAccessToken exchanges a launcher access token for a session.
func FromAccessToken(ctx context.Context, cfg *ClientConfig, accessToken, fingerprint string) (*Client, error) {
	return NewLauncher(cfg).Exchange(ctx, accessToken, fingerprint)
}

// FromEmailAndPassword logs in with credentials and exchanges the resulting
// access token for a session.
func FromEmailAndPassword(ctx context.Context, cfg *ClientConfig, email, password, fingerprint string) (*Client, error) {
	l := NewLauncher(cfg)
	login, err := l.Login(ctx, Credentials{Email: email, Password: password, Fingerprint: fingerprint})
	if err != nil {
		return nil, err
	}
	return l.Exchange(ctx, login.AccessToken, fingerprint)
}

// cfg must already carry defaults.
func newClient(cfg *ClientConfig, id Identity) *Client {
	return &Client{
		config:    cfg,
		transport: cfg.Transport,
		logger:    cfg.Logger,
		identity:  id,
	}
}

// Session returns the session identifier.
func (c *Client) Session() string { return c.identity.Session }

// Fingerprint returns the device fingerprint the session was issued for.
func (c *Client) Fingerprint() string { return c.identity.Fingerprint }

// Request describes one authenticated call.
type Request struct {
	URL  string
	Body interface{}
	// PayloadKey names the envelope field holding the payload. Empty means
	// DefaultPayloadKey.
	PayloadKey string
	// Extra lists the protocol codes beyond 0 and 201 that carry meaning
	// for this call.
	Extra []Code
	// AllowEmpty accepts a success envelope without a payload. Do then
	// returns a nil result and no error.
	AllowEmpty bool
}

// Do sends an authenticated JSON request and resolves the response into T.
// Every endpoint call goes through here.
func Do[T any](ctx context.Context, c *Client, req Request) (*T, error) {
	env, err := send[T](ctx, c.transport, c.logger, req.URL, c.identity.Headers(c.config.Versions), req.Body, req.PayloadKey)
	if err != nil {
		return nil, err
	}
	if req.AllowEmpty && env.Code == CodeSuccess {
		return env.Data, nil
	}
	return Resolve(env, req.Extra...)
}

// send performs one round trip and decodes the envelope. It is shared by
// the handshake and the authenticated client.
func send[T any](ctx context.Context, transport Transport, logger *zap.Logger, url string, header http.Header, body interface{}, payloadKey string) (*Envelope[T], error) {
	if body == nil {
		body = struct{}{}
	}
	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	log := logger.With(zap.String("request_id", uuid.NewString()), zap.String("url", url))
	start := time.Now()

	status, respBody, err := transport.Post(ctx, url, header, reqBody)
	if err != nil {
		log.Debug("request failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, &TransportError{URL: url, Err: err}
	}

	env, err := Decode[T](status, respBody, payloadKey)
	if err != nil {
		log.Warn("bad response", zap.Int("status", status), zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	fields := []zap.Field{
		zap.Int("status", status),
		zap.Uint16("code", uint16(env.Code)),
		zap.Duration("duration", time.Since(start)),
	}
	if env.Code != CodeSuccess {
		log.Warn("api error", append(fields, zap.String("errmsg", env.Message))...)
	} else {
		log.Debug("request completed", fields...)
	}

	return env, nil
}
