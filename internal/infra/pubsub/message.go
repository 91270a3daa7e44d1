package pubsub

import (
	"encoding/json"

	"examhub/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attribute keys read back by the mail worker.
const (
	attrEventID   = "event_id"
	attrRequestID = "request_id"
)

// encodeMailEvent returns the message payload and attributes shared by every transport.
func encodeMailEvent(event *service.MailEvent) ([]byte, map[string]string, error) {
	if event == nil || event.ID == "" {
		return nil, nil, errors.New("mail event without id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "encode mail event %s", event.ID)
	}

	attrs := map[string]string{attrEventID: event.ID}
	if event.RequestID != "" {
		attrs[attrRequestID] = event.RequestID
	}

	return data, attrs, nil
}
