package messaging

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrClosed is returned when publishing through a closed publisher.
var ErrClosed = errors.New("pkgmessage: publisher is closed")

// Publisher publishes messages to a destination (topic/subject).
//
// Implementations wrap NATS, Kafka or an in-process recorder; use-case code
// depends only on this interface.
type Publisher interface {
	io.Closer

	// Publish sends a message to the destination.
	Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error)
}

// OutgoingMessage represents a broker-agnostic message to be published.
type OutgoingMessage struct {
	// Body is the message payload.
	Body []byte

	// Key is used by Kafka for partitioning and ignored by NATS.
	Key []byte

	// Headers support arbitrary binary values and duplicate keys.
	Headers []Header
}

// Header is a key/value pair used for message headers.
type Header struct {
	// Key is the header name.
	Key string
	// Value is the header value.
	Value []byte
}

// PublishResult carries optional broker-specific publish metadata.
type PublishResult struct {
	// Topic is the destination the message was written to.
	Topic string

	// Timestamp is when the message was handed to the broker.
	Timestamp time.Time
}
