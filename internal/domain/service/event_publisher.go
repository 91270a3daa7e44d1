package service

import (
	"context"
)

// MailEvent is a queued email handed to the mail worker.
type MailEvent struct {
	ID        string `json:"id"`
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	To        string `json:"to"`
	Subject   string `json:"subject"`
	HTML      string `json:"html"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMailEvent enqueues a message for asynchronous delivery.
	PublishMailEvent(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
