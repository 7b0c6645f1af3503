package chat

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/httputil"
)

const (
	writeTimeout   = 10 * time.Second
	readTimeout    = 5 * time.Minute
	maxMessageSize = 4 << 10
)

// Message is the wire format in both directions, over WebSocket and over the
// POST fallback.
type Message struct {
	Text string `json:"text"`
}

// Handler serves the assistant widget. The WebSocket endpoint keeps one
// connection per visitor; the POST endpoint answers a single message for
// clients without WebSocket support.
type Handler struct {
	responder *Responder
	upgrader  websocket.Upgrader
	logger    *slog.Logger
}

// NewHandler creates a chat handler. checkOrigin decides which Origin headers
// may open a WebSocket; pass nil to accept any (development only).
func NewHandler(responder *Responder, checkOrigin func(r *http.Request) bool, logger *slog.Logger) *Handler {
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}
	return &Handler{
		responder: responder,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		logger: logger,
	}
}

// Respond handles POST /chat: one message in, one reply out.
func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	var msg Message
	if err := httputil.DecodeJSON(w, r, &msg); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: Message{Text: h.responder.Reply(msg.Text)}})
}

// ServeWS handles GET /chat/ws, upgrading to a WebSocket and echoing a reply
// for every text message until the client disconnects.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		h.logger.Debug("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMessageSize)

	for {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))

		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("websocket closed unexpectedly", slog.String("error", err.Error()))
			}
			return
		}

		reply := Message{Text: h.responder.Reply(msg.Text)}
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}
