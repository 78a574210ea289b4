package emulator

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ctxKey int

const sessionKey ctxKey = iota

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()

	r.Use(s.RecoveryMiddleware)
	r.Use(s.CallMiddleware)

	// Launcher and handshake
	launcher := r.PathPrefix("/launcher").Subrouter()
	launcher.Use(LauncherMiddleware)
	launcher.HandleFunc("/login", s.Login).Methods("POST")
	launcher.HandleFunc("/hardwareCode/activate", s.ActivateHardware).Methods("POST")
	launcher.HandleFunc("/game/start", s.GameStart).Methods("POST")

	// Game client, session required
	client := r.PathPrefix("/client").Subrouter()
	client.Use(s.SessionMiddleware)
	client.HandleFunc("/game/profile/list", s.ProfileList).Methods("POST")
	client.HandleFunc("/game/profile/select", s.ProfileSelect).Methods("POST")

	// Game client, selected profile required
	selected := client.PathPrefix("").Subrouter()
	selected.Use(ProfileMiddleware)
	selected.HandleFunc("/friend/list", s.FriendList).Methods("POST")
	selected.HandleFunc("/trading/api/getTradersList", s.TradersList).Methods("POST")
	selected.HandleFunc("/trading/api/getTrader/{id}", s.Trader).Methods("POST")
	selected.HandleFunc("/trading/api/getTraderAssort/{id}", s.TraderAssort).Methods("POST")
	selected.HandleFunc("/ragfair/find", s.RagfairFind).Methods("POST")
	selected.HandleFunc("/ragfair/itemMarketPrice", s.ItemMarketPrice).Methods("POST")
	selected.HandleFunc("/notifier/channel/create", s.NotifierChannelCreate).Methods("POST")

	r.HandleFunc("/notifierServer/getwebsocket/{channel}", s.NotifierWebsocket).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(NotFoundHandler)

	return r
}

// NotFoundHandler answers unknown routes like the real servers: with a
// plain 404.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Not found", http.StatusNotFound)
}

// CallMiddleware counts calls per route and applies forced failures
func (s *Server) CallMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				path = tpl
			}
		}

		f, forced := s.record(path)
		s.logger.Debug("request", zap.String("method", r.Method), zap.String("path", path))
		if forced {
			respondCode(w, f.code, f.message)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// LauncherMiddleware rejects requests that do not come from the launcher
func LauncherMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("User-Agent"), "BSG Launcher ") {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionMiddleware checks the game client headers and resolves the
// PHPSESSID cookie to a session
func (s *Server) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasClientHeaders(r) {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		cookie, err := r.Cookie("PHPSESSID")
		if err != nil || cookie.Value == "" {
			respondCode(w, CodeNotAuthorized, "")
			return
		}

		sess, err := s.accounts.session(cookie.Value)
		if err != nil {
			respondCode(w, CodeNotAuthorized, "")
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ProfileMiddleware requires a selected profile
func ProfileMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := r.Context().Value(sessionKey).(session)
		if sess.selected == "" {
			respondCode(w, CodeNotAuthorized, "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RecoveryMiddleware recovers from panics
func (s *Server) RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error("handler panic", zap.Any("panic", err))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func hasClientHeaders(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("User-Agent"), "UnityPlayer/") &&
		strings.HasPrefix(r.Header.Get("App-Version"), "EFT Client ") &&
		r.Header.Get("X-Unity-Version") != ""
}
