package websocket

import (
	"context"
	"net/http"

	"chatboard/internal/events"
	"chatboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Handler struct {
	hub      *Hub
	log      *eventLogger
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, l *logger.Logger) *Handler {
	return &Handler{
		hub: hub,
		log: newEventLogger(l),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Stream upgrades the request and pushes every saved message to the peer until it disconnects.
func (h *Handler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("upgrade_failed", "", err, zap.String("remote_addr", c.ClientIP()))
		return
	}

	client := NewClient(conn, events.ChannelMessages)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.hub.Register(client)
	h.log.Info("connected", client.ID, zap.String("remote_addr", c.ClientIP()))

	go func() {
		if err := client.WriteLoop(ctx); err != nil {
			h.log.Warn("write_failed", client.ID, err)
		}
	}()

	if err := client.ReadLoop(); err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		h.log.Warn("read_failed", client.ID, err)
	}

	h.hub.Unregister(client)
	h.log.Info("disconnected", client.ID)
}
