package messaging

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DriverNone disables publishing; messages are dropped.
	DriverNone = "none"
	// DriverMemory keeps messages in process, useful for local runs.
	DriverMemory = "memory"
	// DriverNATS selects the NATS backend.
	DriverNATS = "nats"
	// DriverKafka selects the Kafka backend.
	DriverKafka = "kafka"
	// DriverNSQ selects the NSQ backend.
	DriverNSQ = "nsq"
)

// ErrUnknownDriver indicates an unsupported messaging driver.
var ErrUnknownDriver = errors.New("messaging: unknown driver")

// FactoryOptions groups config for supported messaging backends.
type FactoryOptions struct {
	// Kafka provides configuration for the Kafka driver.
	Kafka KafkaConfig
	// NATS provides configuration for the NATS driver.
	NATS NATSConfig
	// NSQ provides configuration for the NSQ driver.
	NSQ NSQConfig
}

// NewFromDriver constructs a Publisher implementation by driver name.
// An empty driver is treated as DriverNone.
func NewFromDriver(driver string, opts FactoryOptions) (Publisher, error) {
	switch strings.TrimSpace(driver) {
	case "", DriverNone:
		return Noop{}, nil
	case DriverMemory:
		return NewMemory(), nil
	case DriverKafka:
		return NewKafka(opts.Kafka)
	case DriverNATS:
		return NewNATS(opts.NATS)
	case DriverNSQ:
		return NewNSQ(opts.NSQ)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
}
