package tarkov

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// NotifierChannel describes the push channel created for a session.
type NotifierChannel struct {
	Server         string `json:"server"`
	ChannelID      string `json:"channel_id"`
	URL            string `json:"url"`
	NotifierServer string `json:"notifierServer"`
	WS             string `json:"ws"`
}

// Notification is one message pushed over the notifier channel. Raw holds
// the full message for types this package does not model.
type Notification struct {
	Type    string          `json:"type"`
	EventID string          `json:"eventId"`
	Raw     json.RawMessage `json:"-"`
}

// NotifierConn is an open notifier websocket. It is not safe for
// concurrent reads.
type NotifierConn struct {
	conn   *websocket.Conn
	logger *zap.Logger
	// failed is the read failure that broke the connection.
	failed error
}

// CreateNotifierChannel asks the server for a notifier channel.
func (c *Client) CreateNotifierChannel(ctx context.Context) (*NotifierChannel, error) {
	return Do[NotifierChannel](ctx, c, Request{
		URL: c.config.Endpoints.Prod + "/client/notifier/channel/create",
	})
}

// DialNotifier connects to the websocket of a notifier channel using the
// session identity.
func (c *Client) DialNotifier(ctx context.Context, ch *NotifierChannel) (*NotifierConn, error) {
	if ch == nil || ch.WS == "" {
		return nil, errors.New("notifier channel has no websocket url")
	}

	header := c.identity.Headers(c.config.Versions)
	header.Del("Content-Type")

	dialer := websocket.Dialer{HandshakeTimeout: c.config.Timeout}
	conn, resp, err := dialer.DialContext(ctx, ch.WS, header)
	if err != nil {
		if resp != nil && errors.Is(err, websocket.ErrBadHandshake) {
			return nil, &StatusError{StatusCode: resp.StatusCode}
		}
		return nil, &TransportError{URL: ch.WS, Err: err}
	}

	c.logger.Debug("notifier connected", zap.String("channel_id", ch.ChannelID))
	return &NotifierConn{conn: conn, logger: c.logger}, nil
}

// Next blocks until the next notification arrives or ctx is done. Keepalive
// "ping" frames sent as text are skipped.
//
// A cancelled ctx, an expired deadline or a read failure breaks the
// connection: every later call returns ErrNotifierBroken wrapping the
// first failure. Dial a new connection to keep listening. A message that
// fails to parse does not break it.
func (n *NotifierConn) Next(ctx context.Context) (*Notification, error) {
	if n.failed != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotifierBroken, n.failed)
	}

	deadline, hasDeadline := ctx.Deadline()
	n.conn.SetReadDeadline(deadline)
	// Unblock the read when ctx is cancelled.
	stop := context.AfterFunc(ctx, func() {
		n.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	for {
		_, msg, err := n.conn.ReadMessage()
		if err != nil {
			n.failed = n.readFailure(ctx, err, hasDeadline, deadline)
			n.logger.Debug("notifier read failed", zap.Error(n.failed))
			return nil, n.failed
		}

		if strings.TrimSpace(string(msg)) == "ping" {
			continue
		}

		var note Notification
		if err := json.Unmarshal(msg, &note); err != nil {
			return nil, &FormatError{Op: "parse", Err: err}
		}
		note.Raw = json.RawMessage(msg)
		return &note, nil
	}
}

func (n *NotifierConn) readFailure(ctx context.Context, err error, hasDeadline bool, deadline time.Time) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	// The read deadline can fire just before ctx notices.
	if hasDeadline && !time.Now().Before(deadline) {
		return context.DeadlineExceeded
	}
	return &TransportError{URL: n.conn.RemoteAddr().String(), Err: err}
}

// Close closes the channel.
func (n *NotifierConn) Close() error {
	n.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return n.conn.Close()
}
