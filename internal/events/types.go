package events

// Event types follow the format domain.action
const (
	EventTypeMessageSaved = "message.saved"
)

const (
	AggregateMessage = "message"
)

// ChannelMessages carries every saved message.
const ChannelMessages = "channel:messages"
