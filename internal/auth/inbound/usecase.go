package inbound

import (
	"context"

	"github.com/shandysiswandi/otpgate/internal/auth/entity"
	"github.com/shandysiswandi/otpgate/internal/auth/outbound/event"
	"github.com/shandysiswandi/otpgate/internal/auth/outbound/gate"
	"github.com/shandysiswandi/otpgate/internal/auth/usecase"
)

type ucCodeEntry interface {
	SetDigit(ctx context.Context, in usecase.SetDigitInput) (entity.Session, error)
	Backspace(ctx context.Context, in usecase.BackspaceInput) (entity.Session, error)
	Navigate(ctx context.Context, in usecase.NavigateInput) (entity.Session, error)
	Paste(ctx context.Context, in usecase.PasteInput) (entity.Session, error)
}

type uc interface {
	ucCodeEntry

	StartSession(ctx context.Context, in usecase.StartSessionInput) (entity.Session, error)
	Snapshot(ctx context.Context) entity.Session
	Verify(ctx context.Context) (entity.Session, error)
	Resend(ctx context.Context) (entity.Session, error)
	Teardown(ctx context.Context)
}

type gateTrigger interface {
	Fire(ctx context.Context, evt gate.Event) error
}

type eventStream interface {
	Subscribe(ctx context.Context) <-chan event.StreamEvent
}
