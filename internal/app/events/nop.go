package events

import "context"

// NopPublisher discards all events. Used when no Redis address is configured.
type NopPublisher struct{}

func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (*NopPublisher) Publish(context.Context, Event) error {
	return nil
}

func (*NopPublisher) Close() error {
	return nil
}
