package entity

import "context"

// GateListener receives the outcome of the human-verification challenge.
type GateListener interface {
	OnPassed(ctx context.Context)
	OnExpired(ctx context.Context)
	OnFailed(ctx context.Context)
}
