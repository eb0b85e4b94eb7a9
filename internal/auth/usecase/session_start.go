package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/otpgate/internal/auth/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
	"github.com/shandysiswandi/otpgate/internal/shared/identity"
)

type StartSessionInput struct {
	Email    string `validate:"required,notblank"`
	Password string `validate:"required"`
	Role     string `validate:"omitempty,oneof=admin faculty student"`
}

// StartSession submits the credentials to the backend and, once they are
// acknowledged, opens a fresh verification session. The acknowledgement
// arrives asynchronously, so the returned snapshot may still be Idle.
func (s *Usecase) StartSession(ctx context.Context, in StartSessionInput) (entity.Session, error) {
	ctx, span := s.startSpan(ctx, "StartSession")
	defer span.End()

	in.Email = strings.TrimSpace(in.Email)
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))

	if err := s.validator.Validate(in); err != nil {
		s.notify(ctx, entity.NotificationError, entity.EventValidationFailed, msgFillAllFields)
		return s.Snapshot(ctx), goerror.NewInvalidInput(err)
	}

	attempt := entity.CredentialAttempt{
		Email:         in.Email,
		Password:      in.Password,
		RoleSelection: identity.Role(in.Role),
	}

	s.mu.Lock()
	if !s.gatePassed {
		snap := s.snapshotLocked()
		s.mu.Unlock()

		slog.WarnContext(ctx, "session start blocked by security gate", "email", entity.MaskEmail(attempt.Email))
		s.notify(ctx, entity.NotificationError, entity.EventGateNotPassed, msgGateRequired)
		return snap, goerror.NewBusinessCause(entity.ErrGateNotPassed, msgGateRequired, goerror.CodeForbidden)
	}

	if s.sending {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, goerror.NewBusinessCause(entity.ErrRequestInFlight, "A code is already being sent", goerror.CodeConflict)
	}

	s.sending = true
	s.sendSeq++
	seq := s.sendSeq
	s.mu.Unlock()

	accepted := s.runner.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		err := s.backend.SubmitCredentials(ctx, attempt.Email, attempt.Password)
		s.onCredentialsAcked(ctx, seq, attempt, err)
		return nil
	})
	if !accepted {
		s.mu.Lock()
		if s.sendSeq == seq {
			s.sending = false
		}
		s.mu.Unlock()

		slog.ErrorContext(ctx, "failed to schedule credential submission")
		return s.Snapshot(ctx), goerror.NewBusinessCause(entity.ErrRunnerUnavailable, msgBusy, goerror.CodeUnavailable)
	}

	return s.Snapshot(ctx), nil
}

func (s *Usecase) onCredentialsAcked(ctx context.Context, seq uint64, attempt entity.CredentialAttempt, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sendSeq != seq {
		slog.InfoContext(ctx, "dropping credential acknowledgement for a discarded session")
		return
	}
	s.sending = false

	if err != nil {
		slog.ErrorContext(ctx, "failed to submit credentials", "email", entity.MaskEmail(attempt.Email), "error", err)
		s.notify(ctx, entity.NotificationError, entity.EventSendFailed, msgSendFailed)
		return
	}

	s.openSessionLocked(ctx, attempt)
	s.notify(ctx, entity.NotificationSuccess, entity.EventCodeSent, msgCodeSent)
}
