package tarkov

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

// Credentials are used once for a login and never stored.
type Credentials struct {
	Email       string
	Password    string
	Fingerprint string
}

// Validate rejects credentials that cannot possibly log in.
func (c Credentials) Validate() error {
	if c.Email == "" || c.Password == "" || c.Fingerprint == "" {
		return ErrInvalidCredentials
	}
	return nil
}

// LoginResult is the launcher's answer to a successful login.
type LoginResult struct {
	AccountID    uint64   `json:"aid"`
	Lang         string   `json:"lang"`
	Region       *string  `json:"region"`
	GameVersion  *string  `json:"gameVersion"`
	DataCenters  []string `json:"dataCenters"`
	IPRegion     string   `json:"ipRegion"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    uint64   `json:"expires_in"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}

// GameStart is the payload of the access token exchange.
type GameStart struct {
	Queued  bool   `json:"queued"`
	Session string `json:"session"`
}

type loginRequest struct {
	Email   string  `json:"email"`
	Pass    string  `json:"pass"`
	HWCode  string  `json:"hwCode"`
	Captcha *string `json:"captcha"`
}

type exchangeVersion struct {
	Major   string `json:"major"`
	Game    string `json:"game"`
	Backend string `json:"backend"`
}

type exchangeRequest struct {
	Version exchangeVersion `json:"version"`
	HWCode  string          `json:"hwCode"`
}

type activateRequest struct {
	Email        string `json:"email"`
	HWCode       string `json:"hwCode"`
	ActivateCode string `json:"activateCode"`
}

// Launcher drives the handshake: credentials to access token, access token
// to session. It keeps no state between calls.
type Launcher struct {
	config *ClientConfig
	logger *zap.Logger
}

// NewLauncher creates a launcher. A nil config means DefaultConfig.
func NewLauncher(cfg *ClientConfig) *Launcher {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg = cfg.withDefaults()
	return &Launcher{
		config: cfg,
		logger: cfg.Logger.Named("launcher"),
	}
}

func (l *Launcher) url(base, path string, withBranch bool) string {
	q := url.Values{}
	q.Set("launcherVersion", l.config.Versions.Launcher)
	if withBranch {
		q.Set("branch", l.config.Versions.Branch)
	}
	return base + path + "?" + q.Encode()
}

// Login exchanges credentials for an access token.
func (l *Launcher) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	req := &loginRequest{
		Email:  creds.Email,
		Pass:   hashPassword(creds.Password),
		HWCode: creds.Fingerprint,
	}

	endpoint := l.url(l.config.Endpoints.Launcher, "/launcher/login", true)
	env, err := send[LoginResult](ctx, l.config.Transport, l.logger, endpoint, launcherHeaders(l.config.Versions, ""), req, "")
	if err != nil {
		return nil, err
	}

	result, err := resolveLogin(env,
		CodeBadCredentials, CodeTwoFactorRequired, CodeBadTwoFactorCode, CodeCaptchaRequired, CodeRateLimited)
	if err != nil {
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("login: %w", ErrMissingPayload)
	}

	return result, nil
}

// Exchange trades an access token for a session and returns the
// authenticated client.
func (l *Launcher) Exchange(ctx context.Context, accessToken, fingerprint string) (*Client, error) {
	if accessToken == "" {
		return nil, errors.New("access token is required")
	}
	if fingerprint == "" {
		return nil, errors.New("fingerprint is required")
	}

	req := &exchangeRequest{
		Version: exchangeVersion{
			Major:   l.config.Versions.Game,
			Game:    l.config.Versions.Branch,
			Backend: l.config.Versions.Backend,
		},
		HWCode: fingerprint,
	}

	endpoint := l.url(l.config.Endpoints.Prod, "/launcher/game/start", true)
	env, err := send[GameStart](ctx, l.config.Transport, l.logger, endpoint, launcherHeaders(l.config.Versions, accessToken), req, "")
	if err != nil {
		return nil, err
	}

	start, err := Resolve(env)
	if err != nil {
		return nil, err
	}
	if start.Session == "" {
		return nil, fmt.Errorf("exchange access token: %w", ErrMissingPayload)
	}

	return newClient(l.config, Identity{Session: start.Session, Fingerprint: fingerprint}), nil
}

// ActivateHardware submits the activation code mailed to the account after
// a login failed with ErrTwoFactorRequired. Login must be retried afterwards.
func (l *Launcher) ActivateHardware(ctx context.Context, email, code, fingerprint string) error {
	if email == "" || code == "" || fingerprint == "" {
		return errors.New("email, activation code and fingerprint are required")
	}

	req := &activateRequest{
		Email:        email,
		HWCode:       fingerprint,
		ActivateCode: code,
	}

	endpoint := l.url(l.config.Endpoints.Launcher, "/launcher/hardwareCode/activate", false)
	env, err := send[struct{}](ctx, l.config.Transport, l.logger, endpoint, launcherHeaders(l.config.Versions, ""), req, "")
	if err != nil {
		return err
	}

	if env.Code == CodeSuccess {
		return nil
	}
	_, err = resolveLogin(env, CodeBadTwoFactorCode)
	return err
}

// hashPassword renders the password the way the launcher expects it.
func hashPassword(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}
