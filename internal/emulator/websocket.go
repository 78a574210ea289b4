package emulator

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NotifierWebsocket serves a notifier channel. It writes a text "ping"
// keepalive first, then every message queued with Notify, until the client
// goes away.
func (s *Server) NotifierWebsocket(w http.ResponseWriter, r *http.Request) {
	if !hasClientHeaders(r) {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	cookie, err := r.Cookie("PHPSESSID")
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if _, err := s.accounts.session(cookie.Value); err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	channel := mux.Vars(r)["channel"]
	s.logger.Debug("notifier connected", zap.String("channel", channel))

	done := make(chan struct{})
	go s.readPump(conn, done)
	s.writePump(conn, done)
}

// writePump sends queued notifications until the reader stops.
func (s *Server) writePump(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := conn.WriteMessage(websocket.TextMessage, []byte("ping")); err != nil {
		return
	}

	for {
		select {
		case msg := <-s.notes:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, []byte("ping")); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}

// readPump drains client frames so control messages are processed, and
// closes done when the connection ends.
func (s *Server) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(4096)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("notifier read error", zap.Error(err))
			}
			return
		}
	}
}
