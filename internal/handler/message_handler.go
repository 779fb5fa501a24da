package handler

import (
	"context"
	"net/http"

	"chatboard/internal/domain/message"
	"chatboard/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// MessageService is implemented by *services.MessageService.
type MessageService interface {
	SaveMessage(ctx context.Context, m message.Message) (message.Message, error)
	GetMessages(ctx context.Context) []message.Message
}

type MessageHandler struct {
	service MessageService
}

func NewMessageHandler(service MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

func (h *MessageHandler) AddMessage(c *gin.Context) {
	var req httpdto.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid message body")
		return
	}

	saved, err := h.service.SaveMessage(c.Request.Context(), req.ToMessage())
	if err != nil {
		serviceFailure(c, "adding message", err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *MessageHandler) GetMessages(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetMessages(c.Request.Context()))
}
