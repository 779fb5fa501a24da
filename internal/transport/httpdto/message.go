package httpdto

import (
	"time"

	"chatboard/internal/domain/message"
)

// AddMessageRequest is used for POST /messaging/addMessage
type AddMessageRequest struct {
	MessageToAdd *MessageDTO `json:"messageToAdd" binding:"required"`
}

// MessageDTO is a message as posted by a client
type MessageDTO struct {
	Msg         string     `json:"msg" binding:"required"`
	MsgFrom     string     `json:"msgFrom" binding:"required"`
	MsgDateTime *time.Time `json:"msgDateTime" binding:"required"`
}

func (r AddMessageRequest) ToMessage() message.Message {
	return message.Message{
		Msg:         r.MessageToAdd.Msg,
		MsgFrom:     r.MessageToAdd.MsgFrom,
		MsgDateTime: r.MessageToAdd.MsgDateTime.UTC(),
	}
}
