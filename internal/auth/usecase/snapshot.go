package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/otpgate/internal/auth/codeentry"
	"github.com/shandysiswandi/otpgate/internal/auth/countdown"
	"github.com/shandysiswandi/otpgate/internal/auth/entity"
)

// Snapshot returns the current view of the verification flow.
func (s *Usecase) Snapshot(ctx context.Context) entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Usecase) snapshotLocked() entity.Session {
	sess := s.sess
	if sess == nil {
		w := codeentry.New(s.loadSettings().codeLength)
		idle := countdownView(countdown.StateIdle, 0)
		return entity.Session{
			State:      entity.SessionStateIdle.String(),
			GatePassed: s.gatePassed,
			Slots:      w.Slots(),
			Expiry:     idle,
			Cooldown:   idle,
			Urgency:    countdown.UrgencyNormal.String(),
		}
	}

	return entity.Session{
		ID:                sess.id,
		State:             sess.state.String(),
		GatePassed:        s.gatePassed,
		MaskedEmail:       entity.MaskEmail(sess.attempt.Email),
		Slots:             sess.widget.Slots(),
		Focus:             sess.widget.Focus(),
		ExpiryDeadline:    sess.expiryDeadline,
		ResendAvailableAt: sess.resendAvailableAt,
		Expiry:            countdownView(sess.expiry.State(), sess.expiry.Remaining()),
		Cooldown:          countdownView(sess.cooldown.State(), sess.cooldown.Remaining()),
		Progress:          sess.expiry.Progress(),
		Urgency:           sess.expiry.Urgency().String(),
		CanVerify: sess.state == entity.SessionStateAwaitingInput &&
			!sess.inFlight && !sess.expired && sess.widget.IsComplete(),
		CanResend: sess.state != entity.SessionStateVerified && !sess.cooldown.Running(),
		Redirect:  sess.redirect,
	}
}

func countdownView(st countdown.State, remaining time.Duration) entity.Countdown {
	return entity.Countdown{
		State:     st.String(),
		Remaining: remaining,
		Seconds:   int(remaining / time.Second),
		Clock:     countdown.FormatClock(remaining),
		Text:      countdown.Describe(remaining),
	}
}
