// Package store persists the resolved identity under a single well-known key,
// the way a browser keeps it in local storage.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shandysiswandi/otpgate/internal/shared/identity"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// ErrNotFound is returned by Load when nothing is stored.
var ErrNotFound = errors.New("identity store: record not found")

// Store saves, loads and removes the identity record. Load returns the raw
// stored bytes so readers decide how to treat undecodable content.
type Store interface {
	Save(ctx context.Context, rec identity.Record) error
	Load(ctx context.Context) ([]byte, error)
	Delete(ctx context.Context) error
}

func encode(rec identity.Record) ([]byte, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("identity store: encode record: %w", err)
	}
	return b, nil
}
