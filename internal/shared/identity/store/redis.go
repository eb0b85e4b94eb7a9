package store

import (
	"cmp"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"github.com/shandysiswandi/otpgate/internal/shared/identity"
)

const (
	saveRetries    = 2
	saveBackoff    = 50 * time.Millisecond
	saveBackoffCap = 500 * time.Millisecond
)

// Redis keeps the record in one Redis string. A zero ttl never expires it.
type Redis struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	ins    instrument.Instrumentation
}

// NewRedis returns a Redis store writing to key, or identity.StorageKey when
// key is empty.
func NewRedis(client *redis.Client, key string, ttl time.Duration, ins instrument.Instrumentation) *Redis {
	return &Redis{
		client: client,
		key:    cmp.Or(key, identity.StorageKey),
		ttl:    ttl,
		ins:    ins,
	}
}

// Save writes the record, retrying a failed write a bounded number of times.
func (r *Redis) Save(ctx context.Context, rec identity.Record) error {
	ctx, span := r.ins.Tracer("shared.identity.store").Start(ctx, "Save")
	defer span.End()

	b, err := encode(rec)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	backoff := retry.WithMaxRetries(saveRetries, retry.WithCappedDuration(saveBackoffCap, retry.NewFibonacci(saveBackoff)))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := r.client.Set(ctx, r.key, b, r.ttl).Err(); err != nil {
			if ctx.Err() != nil {
				return err
			}
			return retry.RetryableError(err)
		}
		return nil
	})
}

func (r *Redis) Load(ctx context.Context) ([]byte, error) {
	ctx, span := r.ins.Tracer("shared.identity.store").Start(ctx, "Load")
	defer span.End()

	b, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (r *Redis) Delete(ctx context.Context) error {
	ctx, span := r.ins.Tracer("shared.identity.store").Start(ctx, "Delete")
	defer span.End()

	return r.client.Del(ctx, r.key).Err()
}
