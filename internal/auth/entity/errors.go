package entity

import "errors"

var (
	ErrGateNotPassed     = errors.New("auth: security verification not passed")
	ErrCodeIncomplete    = errors.New("auth: code is incomplete")
	ErrSessionExpired    = errors.New("auth: code has expired")
	ErrCooldownActive    = errors.New("auth: resend cooldown is running")
	ErrRequestInFlight   = errors.New("auth: a request is already in flight")
	ErrNoSession         = errors.New("auth: no verification session")
	ErrSessionVerified   = errors.New("auth: session is already verified")
	ErrEntryLocked       = errors.New("auth: code entry is locked")
	ErrSlotOutOfRange    = errors.New("auth: slot index out of range")
	ErrUnknownDirection  = errors.New("auth: unknown navigation direction")
	ErrBackendRejected   = errors.New("auth: backend rejected the request")
	ErrRunnerUnavailable = errors.New("auth: no capacity to run the request")
)
