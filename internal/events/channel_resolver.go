package events

// ChannelResolver determines which channels an envelope is published to
type ChannelResolver interface {
	ResolveChannels(env Envelope) []string
}

// AggregateChannelResolver routes envelopes by aggregate type
type AggregateChannelResolver struct{}

func NewAggregateChannelResolver() *AggregateChannelResolver {
	return &AggregateChannelResolver{}
}

func (r *AggregateChannelResolver) ResolveChannels(env Envelope) []string {
	switch env.AggregateType {
	case AggregateMessage:
		return []string{ChannelMessages}
	}
	return nil
}
