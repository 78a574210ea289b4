// Package emulator provides an in-process stand-in for the Escape from
// Tarkov backend (launcher, prod, trading, ragfair and notifier hosts) for
// tests. All hosts are served from a single httptest server.
package emulator

import (
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Options configures the emulator
type Options struct {
	// TokenSecret signs access tokens. Defaults to a fixed test secret.
	TokenSecret string
	TokenTTL    time.Duration
	Logger      *zap.Logger
}

// failure is a forced protocol code for a route
type failure struct {
	code    int
	message string
}

// Server is a running emulator.
type Server struct {
	*httptest.Server

	accounts *accounts
	logger   *zap.Logger
	notes    chan []byte

	mu       sync.Mutex
	calls    map[string]int
	failures map[string]failure
}

// New starts an emulator. Call Close when done.
func New(opts Options) *Server {
	if opts.TokenSecret == "" {
		opts.TokenSecret = "emulator-dev-secret"
	}
	if opts.TokenTTL == 0 {
		opts.TokenTTL = time.Hour
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Server{
		accounts: newAccounts([]byte(opts.TokenSecret), opts.TokenTTL),
		logger:   opts.Logger.Named("emulator"),
		notes:    make(chan []byte, 16),
		calls:    make(map[string]int),
		failures: make(map[string]failure),
	}
	s.Server = httptest.NewServer(s.router())
	return s
}

// AddAccount registers an account.
func (s *Server) AddAccount(acc Account) error {
	return s.accounts.add(acc)
}

// AddSession registers a session id for an account, as if it had been
// issued by an earlier login. selected may be empty.
func (s *Server) AddSession(id, email, fingerprint, selected string) {
	s.accounts.addSession(id, email, fingerprint, selected)
}

// Fail makes every call to path answer with the given protocol code until
// Reset is called.
func (s *Server) Fail(path string, code int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = failure{code: code, message: message}
}

// Reset clears forced failures and call counters.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]failure)
	s.calls = make(map[string]int)
}

// Calls returns how many requests reached path.
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// TotalCalls returns the number of requests served.
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

// Notify queues a message for the next notifier connection.
func (s *Server) Notify(msg []byte) {
	s.notes <- msg
}

// WebsocketURL is the ws:// form of the server URL.
func (s *Server) WebsocketURL() string {
	return "ws" + strings.TrimPrefix(s.URL, "http")
}

func (s *Server) record(path string) (failure, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[path]++
	f, ok := s.failures[path]
	return f, ok
}
