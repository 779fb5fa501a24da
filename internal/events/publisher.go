package events

import (
	"context"
	"encoding/json"
	"fmt"

	"chatboard/internal/domain/message"
)

// Publisher delivers a raw payload to every subscriber of channel.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// MessagePublisher turns stored messages into envelopes and publishes them.
type MessagePublisher struct {
	pub      Publisher
	resolver ChannelResolver
}

func NewMessagePublisher(pub Publisher, resolver ChannelResolver) *MessagePublisher {
	if resolver == nil {
		resolver = NewAggregateChannelResolver()
	}
	return &MessagePublisher{pub: pub, resolver: resolver}
}

func (p *MessagePublisher) MessageSaved(ctx context.Context, m message.Message) error {
	env, err := NewEnvelope(EventTypeMessageSaved, AggregateMessage, m.ID, m)
	if err != nil {
		return err
	}
	return p.publish(ctx, env)
}

func (p *MessagePublisher) publish(ctx context.Context, env Envelope) error {
	channels := p.resolver.ResolveChannels(env)
	if len(channels) == 0 {
		return nil
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	var firstErr error
	for _, channel := range channels {
		if err := p.pub.Publish(ctx, channel, data); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("publish to %s: %w", channel, err)
		}
	}
	return firstErr
}
