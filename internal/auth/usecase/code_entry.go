package usecase

import (
	"context"
	"errors"

	"github.com/shandysiswandi/otpgate/internal/auth/codeentry"
	"github.com/shandysiswandi/otpgate/internal/auth/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
)

type SetDigitInput struct {
	Index int
	Value string
}

type BackspaceInput struct {
	Index int
}

type NavigateInput struct {
	Index     int
	Direction string
}

type PasteInput struct {
	Text string
}

func (s *Usecase) SetDigit(ctx context.Context, in SetDigitInput) (entity.Session, error) {
	return s.editCode(ctx, "SetDigit", func(w *codeentry.Widget) error {
		return w.SetDigit(in.Index, in.Value)
	})
}

func (s *Usecase) Backspace(ctx context.Context, in BackspaceInput) (entity.Session, error) {
	return s.editCode(ctx, "Backspace", func(w *codeentry.Widget) error {
		return w.Backspace(in.Index)
	})
}

func (s *Usecase) Navigate(ctx context.Context, in NavigateInput) (entity.Session, error) {
	dir, err := codeentry.ParseDirection(in.Direction)
	if err != nil {
		return s.Snapshot(ctx), goerror.NewBusinessCause(err, "Direction must be left or right", goerror.CodeInvalidInput)
	}

	return s.editCode(ctx, "Navigate", func(w *codeentry.Widget) error {
		return w.Navigate(dir, in.Index)
	})
}

// Paste spreads the digits of the pasted text over the slots. Text without
// digits leaves the widget unchanged.
func (s *Usecase) Paste(ctx context.Context, in PasteInput) (entity.Session, error) {
	return s.editCode(ctx, "Paste", func(w *codeentry.Widget) error {
		w.Paste(in.Text)
		return nil
	})
}

// editCode applies f to the widget of the current session. Input is accepted
// while waiting for a code and after expiry, so a user can still correct the
// slots before resending.
func (s *Usecase) editCode(ctx context.Context, name string, f func(w *codeentry.Widget) error) (entity.Session, error) {
	_, span := s.startSpan(ctx, name)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess == nil {
		return s.snapshotLocked(), errNoSession()
	}

	switch s.sess.state {
	case entity.SessionStateAwaitingInput, entity.SessionStateExpired:
	default:
		return s.snapshotLocked(), goerror.NewBusinessCause(entity.ErrEntryLocked, "Code entry is locked", goerror.CodeConflict)
	}

	if err := f(s.sess.widget); err != nil {
		if errors.Is(err, entity.ErrSlotOutOfRange) {
			return s.snapshotLocked(), goerror.NewBusinessCause(err, "Digit index is out of range", goerror.CodeInvalidInput)
		}
		return s.snapshotLocked(), goerror.NewServer(err)
	}

	return s.snapshotLocked(), nil
}

func errNoSession() error {
	return goerror.NewBusinessCause(entity.ErrNoSession, "No verification in progress", goerror.CodeNotFound)
}
