package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/otpgate/internal/auth/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
)

// Resend issues a new code for the same credentials once the cooldown has
// elapsed. It is the only way out of an expired session.
func (s *Usecase) Resend(ctx context.Context) (entity.Session, error) {
	ctx, span := s.startSpan(ctx, "Resend")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.sess
	if sess == nil {
		return s.snapshotLocked(), errNoSession()
	}

	if sess.state == entity.SessionStateVerified {
		return s.snapshotLocked(), goerror.NewBusinessCause(entity.ErrSessionVerified, "Code already verified", goerror.CodeConflict)
	}

	if sess.cooldown.Running() {
		return s.snapshotLocked(), goerror.NewBusinessCause(entity.ErrCooldownActive,
			"Please wait before requesting a new code", goerror.CodeTooManyRequest)
	}

	prev := sess.id
	next := s.openSessionLocked(ctx, sess.attempt)

	slog.InfoContext(ctx, "verification code resent", "previous_session_id", prev, "session_id", next.id)
	s.notify(ctx, entity.NotificationSuccess, entity.EventCodeResent, msgCodeResent)

	return s.snapshotLocked(), nil
}
