package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDriver(t *testing.T) {
	p, err := NewFromDriver("", FactoryOptions{})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, p)

	p, err = NewFromDriver(DriverMemory, FactoryOptions{})
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, p)

	_, err = NewFromDriver("rabbit", FactoryOptions{})
	assert.ErrorIs(t, err, ErrUnknownDriver)

	_, err = NewFromDriver(DriverKafka, FactoryOptions{})
	assert.ErrorIs(t, err, ErrKafkaBrokersRequired)

	_, err = NewFromDriver(DriverNATS, FactoryOptions{})
	assert.ErrorIs(t, err, ErrNATSURLRequired)

	_, err = NewFromDriver(DriverNSQ, FactoryOptions{})
	assert.ErrorIs(t, err, ErrNSQProducerAddrRequired)
}

func TestNSQ_Validation(t *testing.T) {
	n, err := NewNSQ(NSQConfig{ProducerAddr: "127.0.0.1:4150"})
	require.NoError(t, err)

	_, err = n.Publish(context.Background(), "", OutgoingMessage{Body: []byte("x")})
	assert.ErrorIs(t, err, ErrNSQTopicRequired)

	require.NoError(t, n.Close())
	require.NoError(t, n.Close())

	_, err = n.Publish(context.Background(), "auth.identity.verified", OutgoingMessage{Body: []byte("x")})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestMemory_Publish(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	res, err := m.Publish(ctx, "auth.identity.verified", OutgoingMessage{
		Body:    []byte(`{"role":"admin"}`),
		Headers: []Header{{Key: "X-Correlation-ID", Value: []byte("c1")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "auth.identity.verified", res.Topic)

	msgs := m.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, `{"role":"admin"}`, string(msgs[0].Message.Body))

	errDown := errors.New("broker down")
	m.FailWith(errDown)
	_, err = m.Publish(ctx, "x", OutgoingMessage{})
	assert.ErrorIs(t, err, errDown)

	m.FailWith(nil)
	require.NoError(t, m.Close())
	_, err = m.Publish(ctx, "x", OutgoingMessage{})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestKafka_Validation(t *testing.T) {
	k, err := NewKafka(KafkaConfig{Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)

	_, err = k.Publish(context.Background(), "", OutgoingMessage{})
	assert.ErrorIs(t, err, ErrKafkaTopicRequired)

	require.NoError(t, k.Close())
	_, err = k.Publish(context.Background(), "topic", OutgoingMessage{})
	assert.ErrorIs(t, err, ErrClosed)
	assert.NoError(t, k.Close())
}

func TestKafka_CanceledContext(t *testing.T) {
	k, err := NewKafka(KafkaConfig{Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = k.Publish(ctx, "topic", OutgoingMessage{})
	assert.ErrorIs(t, err, context.Canceled)
}
