package services

import (
	"context"

	"chatboard/internal/domain/message"
	"chatboard/internal/domain/user"
	"chatboard/internal/repository"
	chatboard_errors "chatboard/pkg/errors"
	"chatboard/pkg/logger"
)

// MessageNotifier is told about every message after it is stored.
type MessageNotifier interface {
	MessageSaved(ctx context.Context, m message.Message) error
}

type MessageService struct {
	messages repository.MessageRepository
	users    repository.UserRepository
	notifier MessageNotifier
	log      *logger.Logger
}

// NewMessageService wires the service. notifier may be nil.
func NewMessageService(messages repository.MessageRepository, users repository.UserRepository, notifier MessageNotifier, log *logger.Logger) *MessageService {
	if log == nil {
		log = logger.NewNop()
	}
	return &MessageService{messages: messages, users: users, notifier: notifier, log: log}
}

func (s *MessageService) SaveMessage(ctx context.Context, m message.Message) (message.Message, error) {
	sender, err := s.users.FindOne(ctx, repository.Filter{user.FieldUsername: m.MsgFrom})
	if err != nil {
		s.log.WithContext(ctx).Errorf("find sender %s: %v", m.MsgFrom, err)
		return message.Message{}, chatboard_errors.Persistence("Error when saving message", err)
	}
	if sender == nil {
		return message.Message{}, chatboard_errors.InvalidSender("Username does not exist")
	}

	saved, err := s.messages.Create(ctx, m)
	if err != nil {
		s.log.WithContext(ctx).Errorf("create message from %s: %v", m.MsgFrom, err)
		return message.Message{}, chatboard_errors.Persistence("Error when saving message", err)
	}

	if s.notifier != nil {
		if err := s.notifier.MessageSaved(ctx, saved); err != nil {
			s.log.WithContext(ctx).Warnf("publish message %s: %v", saved.ID, err)
		}
	}
	return saved, nil
}

// GetMessages returns every message, oldest first. A failed read is logged
// and yields an empty slice, so callers cannot tell it apart from no messages.
func (s *MessageService) GetMessages(ctx context.Context) []message.Message {
	msgs, err := s.messages.Find(ctx, nil, message.FieldMsgDateTime)
	if err != nil {
		s.log.WithContext(ctx).Errorf("find messages: %v", err)
		return []message.Message{}
	}
	if msgs == nil {
		return []message.Message{}
	}
	return msgs
}
