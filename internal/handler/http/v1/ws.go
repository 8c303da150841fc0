package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/accident_responder_system/internal/broadcast"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// clientMessage is the only frame observers are expected to send.
type clientMessage struct {
	Type string `json:"type"`
}

// @Summary Observe incident events
// @Description Upgrades to a WebSocket pushing new_incident and status_update frames. Clients may send {"type":"ping"} and receive {"type":"pong"}. Slow consumers are disconnected.
// @Tags Observers
// @Success 101 {string} string "Switching Protocols"
// @Router /ws [get]
func (h *Handler) serveWS(c *gin.Context) {
	log := h.logger.WithField("method", "serveWS")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	sub := h.hub.Subscribe()
	log = log.WithField("subscription_id", sub.ID())

	// pongs requested by the client are routed through the write pump so the
	// connection only ever has one writer
	pongs := make(chan struct{}, 4)

	go h.writePump(conn, sub, pongs, log)
	h.readPump(conn, sub, pongs, log)
}

// readPump consumes client frames and enforces the heartbeat deadline.
// Returning tears the subscription down, which in turn stops the write pump.
func (h *Handler) readPump(conn *websocket.Conn, sub *broadcast.Subscription, pongs chan<- struct{}, log *logrus.Entry) {
	defer func() {
		sub.Close()
		conn.Close()
	}()

	conn.SetReadLimit(1024)
	_ = conn.SetReadDeadline(time.Now().Add(h.cfg.WSPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.cfg.WSPongWait))
	})

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("Observer connection closed unexpectedly")
			}
			return
		}
		// any well-formed frame proves liveness
		_ = conn.SetReadDeadline(time.Now().Add(h.cfg.WSPongWait))
		if msg.Type == "ping" {
			select {
			case pongs <- struct{}{}:
			default:
			}
		}
	}
}

// writePump pushes hub messages, application pongs and protocol pings to the
// observer. It exits when the subscription channel is closed or a write fails.
func (h *Handler) writePump(conn *websocket.Conn, sub *broadcast.Subscription, pongs <-chan struct{}, log *logrus.Entry) {
	ticker := time.NewTicker(h.cfg.WSPingInterval)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	writeWait := h.cfg.WSPingInterval / 2
	for {
		select {
		case msg, ok := <-sub.C():
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				log.WithError(err).Warn("Failed to write to observer, dropping connection")
				sub.Close()
				return
			}
		case <-pongs:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(broadcast.Message{Type: broadcast.TypePong}); err != nil {
				sub.Close()
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				sub.Close()
				return
			}
		}
	}
}
