package tarkov

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/alexbotov/tarkov/internal/config"
	"github.com/alexbotov/tarkov/internal/logging"
)

// Versions are the pinned client versions sent with every request
type Versions struct {
	Game     string
	Launcher string
	Unity    string
	Backend  string
	Branch   string
}

// Endpoints are the base URLs of the remote service
type Endpoints struct {
	Launcher string
	Prod     string
	Trading  string
	Ragfair  string
}

// ClientConfig holds the configuration shared by Launcher and Client
type ClientConfig struct {
	Versions  Versions
	Endpoints Endpoints
	Timeout   time.Duration

	// Transport defaults to an HTTPTransport with Timeout.
	Transport Transport
	// Logger defaults to the logger described by the process configuration.
	Logger *zap.Logger
}

// DefaultConfig returns the configuration built from the process-wide
// settings (built-in defaults overridden by TARKOV_* environment variables).
func DefaultConfig() *ClientConfig {
	return fromConfig(config.Load())
}

// ConfigFromFile is like DefaultConfig but reads a YAML file first.
func ConfigFromFile(path string) (*ClientConfig, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return fromConfig(cfg), nil
}

func fromConfig(cfg *config.Config) *ClientConfig {
	return &ClientConfig{
		Versions:  versionsFrom(cfg),
		Endpoints: endpointsFrom(cfg),
		Timeout:   cfg.HTTP.Timeout,
		Logger:    logging.NewOrNop(cfg.Log),
	}
}

func versionsFrom(cfg *config.Config) Versions {
	return Versions{
		Game:     cfg.Versions.Game,
		Launcher: cfg.Versions.Launcher,
		Unity:    cfg.Versions.Unity,
		Backend:  cfg.Versions.Backend,
		Branch:   cfg.Versions.Branch,
	}
}

func endpointsFrom(cfg *config.Config) Endpoints {
	return Endpoints{
		Launcher: cfg.Endpoints.Launcher,
		Prod:     cfg.Endpoints.Prod,
		Trading:  cfg.Endpoints.Trading,
		Ragfair:  cfg.Endpoints.Ragfair,
	}
}

// withDefaults returns a copy of c with zero fields filled from the process
// configuration.
func (c *ClientConfig) withDefaults() *ClientConfig {
	var out ClientConfig
	if c != nil {
		out = *c
	}
	base := config.Load()
	v, e := versionsFrom(base), endpointsFrom(base)

	setDefault(&out.Versions.Game, v.Game)
	setDefault(&out.Versions.Launcher, v.Launcher)
	setDefault(&out.Versions.Unity, v.Unity)
	setDefault(&out.Versions.Backend, v.Backend)
	setDefault(&out.Versions.Branch, v.Branch)

	setDefault(&out.Endpoints.Launcher, e.Launcher)
	setDefault(&out.Endpoints.Prod, e.Prod)
	setDefault(&out.Endpoints.Trading, e.Trading)
	setDefault(&out.Endpoints.Ragfair, e.Ragfair)

	if out.Timeout == 0 {
		out.Timeout = base.HTTP.Timeout
	}
	if out.Transport == nil {
		out.Transport = NewHTTPTransport(&http.Client{Timeout: out.Timeout})
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return &out
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
