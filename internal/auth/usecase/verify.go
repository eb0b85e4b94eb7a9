package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shandysiswandi/otpgate/internal/auth/entity"
	"github.com/shandysiswandi/otpgate/internal/auth/role"
	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
	"github.com/shandysiswandi/otpgate/internal/shared/identity"
)

type verifyResult struct {
	matched bool
	err     error
	record  identity.Record
	saved   bool
	saveErr error
}

// Verify sends the complete code to the backend. Only one comparison runs per
// session at a time and an expired code is never sent.
func (s *Usecase) Verify(ctx context.Context) (entity.Session, error) {
	ctx, span := s.startSpan(ctx, "Verify")
	defer span.End()

	s.mu.Lock()
	sess := s.sess
	if sess == nil {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, errNoSession()
	}

	if sess.inFlight || sess.state == entity.SessionStateSubmitting {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, goerror.NewBusinessCause(entity.ErrRequestInFlight, "Verification already in progress", goerror.CodeConflict)
	}

	switch sess.state {
	case entity.SessionStateVerified:
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, goerror.NewBusinessCause(entity.ErrSessionVerified, "Code already verified", goerror.CodeConflict)
	case entity.SessionStateFailed:
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, goerror.NewBusinessCause(entity.ErrEntryLocked, "Code entry is locked", goerror.CodeConflict)
	case entity.SessionStateExpired:
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, goerror.NewBusinessCause(entity.ErrSessionExpired, msgCodeExpired, goerror.CodeTimeout)
	}

	code, ok := sess.widget.Value()
	if !ok {
		snap := s.snapshotLocked()
		s.mu.Unlock()

		msg := fmt.Sprintf(msgCodeIncomplete, sess.widget.Len())
		s.notify(ctx, entity.NotificationError, entity.EventValidationFailed, msg)
		s.presenter.Shake(ctx)
		return snap, goerror.NewBusinessCause(entity.ErrCodeIncomplete, msg, goerror.CodeInvalidInput)
	}

	sess.state = entity.SessionStateSubmitting
	sess.inFlight = true
	epoch := sess.epoch
	attempt := sess.attempt
	sessionID := sess.id
	s.mu.Unlock()

	accepted := s.runner.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if rec, ok := s.completeVerification(ctx, epoch, sessionID, code, attempt); ok {
			s.publishVerified(ctx, sessionID, rec)
		}
		return nil
	})
	if !accepted {
		s.mu.Lock()
		if cur := s.current(epoch); cur != nil && cur.inFlight {
			cur.inFlight = false
			if cur.state == entity.SessionStateSubmitting {
				cur.state = cur.settleState()
			}
		}
		snap := s.snapshotLocked()
		s.mu.Unlock()

		slog.ErrorContext(ctx, "failed to schedule code verification", "session_id", sessionID)
		return snap, goerror.NewBusinessCause(entity.ErrRunnerUnavailable, msgBusy, goerror.CodeUnavailable)
	}

	return s.Snapshot(ctx), nil
}

// completeVerification asks the backend and, on a match, stores the identity
// and applies the outcome while holding persistMu. A record written for a
// session that was replaced during the write is removed again before any
// later session can store its own.
func (s *Usecase) completeVerification(
	ctx context.Context,
	epoch uint64,
	sessionID, code string,
	attempt entity.CredentialAttempt,
) (identity.Record, bool) {
	matched, err := s.backend.SubmitCode(ctx, code)
	if err != nil || !matched {
		verified, _ := s.resolveVerification(ctx, epoch, verifyResult{matched: matched, err: err})
		return identity.Record{}, verified
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	res := verifyResult{matched: true}
	if s.live(epoch) {
		res.record = role.Resolve(attempt, s.clock.Now())
		res.saved = true
		res.saveErr = s.store.Save(ctx, res.record)
	}

	verified, stale := s.resolveVerification(ctx, epoch, res)
	if stale && res.saved && res.saveErr == nil {
		slog.WarnContext(ctx, "removing identity stored for a replaced session", "session_id", sessionID)
		if err := s.store.Delete(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to remove identity of a replaced session", "session_id", sessionID, "error", err)
		}
	}

	return res.record, verified
}

func (s *Usecase) live(epoch uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current(epoch) != nil
}

// resolveVerification applies a backend answer to the session it was asked
// for. It reports whether the session became verified and whether the session
// was already gone.
func (s *Usecase) resolveVerification(ctx context.Context, epoch uint64, res verifyResult) (verified, stale bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.current(epoch)
	if sess == nil {
		slog.InfoContext(ctx, "dropping verification result for a replaced session")
		return false, true
	}
	sess.inFlight = false

	switch {
	case res.err != nil:
		slog.ErrorContext(ctx, "failed to verify code", "session_id", sess.id, "error", res.err)
		s.countVerification(ctx, outcomeError)
		sess.state = sess.settleState()
		s.notify(ctx, entity.NotificationError, entity.EventVerifyFailed, msgVerifyFailed)
		return false, false

	case res.matched && res.saveErr != nil:
		slog.ErrorContext(ctx, "failed to persist verified identity", "session_id", sess.id, "error", res.saveErr)
		s.countVerification(ctx, outcomeError)
		sess.state = sess.settleState()
		s.notify(ctx, entity.NotificationError, entity.EventVerifyFailed, msgVerifyFailed)
		return false, false

	case res.matched:
		s.countVerification(ctx, outcomeMatched)
		sess.state = entity.SessionStateVerified
		sess.expiry.Cancel()
		sess.cooldown.Cancel()
		sess.redirect = sess.cfg.redirects.Lookup(res.record.Role)

		slog.InfoContext(ctx, "verification succeeded",
			"session_id", sess.id,
			"role", res.record.Role,
			"redirect", sess.redirect,
		)
		s.notify(ctx, entity.NotificationSuccess, entity.EventVerifySuccess, fmt.Sprintf(msgLoginSuccess, res.record.Role))

		path := sess.redirect
		s.scheduleLocked(sess.cfg.redirectDelay, func() { s.redirectVerified(epoch, path) })
		return true, false

	default:
		s.countVerification(ctx, outcomeMismatched)
		slog.WarnContext(ctx, "verification code mismatch", "session_id", sess.id)

		sess.state = entity.SessionStateFailed
		if sess.expired {
			sess.state = entity.SessionStateExpired
		}
		sess.clearPending = true
		s.notify(ctx, entity.NotificationError, entity.EventVerifyMismatch, msgCodeMismatch)
		s.presenter.Shake(ctx)
		s.scheduleLocked(sess.cfg.clearDelay, func() { s.clearAfterMismatch(epoch) })
		return false, false
	}
}

// clearAfterMismatch empties the widget once the failure feedback has been
// shown and reopens entry, unless the code expired meanwhile.
func (s *Usecase) clearAfterMismatch(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.current(epoch)
	if sess == nil || !sess.clearPending {
		return
	}
	sess.clearPending = false
	sess.widget.Reset()

	if sess.state == entity.SessionStateFailed {
		sess.state = sess.settleState()
	}
}

func (s *Usecase) redirectVerified(epoch uint64, path string) {
	s.mu.Lock()
	sess := s.current(epoch)
	ok := sess != nil && sess.state == entity.SessionStateVerified
	s.mu.Unlock()
	if !ok {
		return
	}

	slog.InfoContext(sess.ctx, "redirecting verified user", "session_id", sess.id, "path", path)
	s.navigator.Navigate(sess.ctx, path)
}

func (s *Usecase) publishVerified(ctx context.Context, sessionID string, rec identity.Record) {
	if s.repoMessaging == nil {
		return
	}

	if err := s.repoMessaging.PublishIdentityVerified(ctx, IdentityVerifiedEvent{
		SessionID:  sessionID,
		Role:       rec.Role,
		Name:       rec.Name,
		Email:      rec.Email,
		VerifiedAt: rec.LoginTime,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish identity verified", "session_id", sessionID, "error", err)
	}
}
