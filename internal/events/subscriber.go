package events

import "context"

// Subscriber blocks delivering payloads from channels to handler until ctx is done.
type Subscriber interface {
	Subscribe(ctx context.Context, channels []string, handler func(channel string, payload []byte)) error
}
