package service

import (
	"context"
	"time"
)

// Notifier delivers transactional email.
type Notifier interface {
	// Send delivers an HTML message to a single address.
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// MessageKind selects the template used to render a message.
type MessageKind string

const (
	MessageActivation MessageKind = "activation"
	MessageReset      MessageKind = "reset"
	MessageExamReady  MessageKind = "exam_ready"
)

// MessageData holds the values interpolated into a message template.
type MessageData struct {
	Name            string
	Link            string
	ExamDescription string
	ExamDate        *time.Time
}

// Message is a rendered email.
type Message struct {
	Subject string
	HTML    string
}

// MessageRenderer turns a message kind and its data into a ready-to-send email.
type MessageRenderer interface {
	Render(kind MessageKind, data MessageData) (*Message, error)
}
