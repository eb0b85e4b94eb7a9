// Package messaging provides a broker-agnostic API for publishing messages.
//
// Business code depends on the Publisher interface so the underlying broker
// (NATS, Kafka, NSQ, or none at all) can be swapped through configuration.
package messaging
