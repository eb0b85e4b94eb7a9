package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/otpgate/internal/auth/codeentry"
	"github.com/shandysiswandi/otpgate/internal/auth/countdown"
	"github.com/shandysiswandi/otpgate/internal/auth/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/clock"
	"go.opentelemetry.io/otel/attribute"
)

const (
	outcomeMatched    = "matched"
	outcomeMismatched = "mismatched"
	outcomeError      = "error"
)

var attrOutcome = attribute.Key("outcome")

// session is one issued code and everything scoped to it. A resend replaces
// the session; epoch tells late callbacks apart from current ones.
type session struct {
	id      string
	epoch   uint64
	ctx     context.Context
	state   entity.SessionState
	attempt entity.CredentialAttempt
	cfg     settings

	widget   *codeentry.Widget
	expiry   *countdown.ExpiryTimer
	cooldown *countdown.CooldownTimer

	expiryDeadline    time.Time
	resendAvailableAt time.Time

	expired      bool
	inFlight     bool
	clearPending bool
	redirect     string

	tasks []clock.Timer
}

// openSessionLocked replaces any current session with a fresh one and starts
// both timers. Callers hold s.mu.
func (s *Usecase) openSessionLocked(ctx context.Context, attempt entity.CredentialAttempt) *session {
	s.closeSessionLocked()

	cfg := s.loadSettings()
	s.epoch++
	now := s.clock.Now()

	sess := &session{
		id:      s.uuid.Generate(),
		epoch:   s.epoch,
		ctx:     context.WithoutCancel(ctx),
		state:   entity.SessionStateAwaitingInput,
		attempt: attempt,
		cfg:     cfg,
		widget:  codeentry.New(cfg.codeLength),
		expiry: countdown.NewExpiryTimer(s.clock, cfg.expiry, countdown.Thresholds{
			Warning:  cfg.warning,
			Critical: cfg.critical,
		}),
		cooldown:          countdown.NewCooldownTimer(s.clock, cfg.cooldown),
		expiryDeadline:    now.Add(cfg.expiry),
		resendAvailableAt: now.Add(cfg.cooldown),
	}
	s.sess = sess

	epoch := sess.epoch
	sess.expiry.Start(countdown.Listener{
		OnUrgency: func(u countdown.Urgency) { s.onExpiryUrgency(epoch, u) },
		OnFinish:  func() { s.onExpired(epoch) },
	})
	sess.cooldown.Start(countdown.Listener{
		OnFinish: func() { s.onCooldownElapsed(epoch) },
	})

	slog.InfoContext(ctx, "verification session opened",
		"session_id", sess.id,
		"expires_at", sess.expiryDeadline,
		"resend_at", sess.resendAvailableAt,
	)

	return sess
}

// closeSessionLocked stops everything scheduled for the current session and
// invalidates its callbacks.
func (s *Usecase) closeSessionLocked() {
	if s.sess == nil {
		return
	}

	s.sess.expiry.Cancel()
	s.sess.cooldown.Cancel()
	s.sess.stopTasks()
	s.sess = nil
	s.epoch++
}

func (ss *session) stopTasks() {
	for _, t := range ss.tasks {
		t.Stop()
	}
	ss.tasks = nil
}

// scheduleLocked runs f after d unless the session is replaced first.
func (s *Usecase) scheduleLocked(d time.Duration, f func()) {
	s.sess.tasks = append(s.sess.tasks, s.clock.AfterFunc(d, f))
}

// current returns the session for epoch, or nil when it was replaced.
// Callers hold s.mu.
func (s *Usecase) current(epoch uint64) *session {
	if s.sess == nil || s.sess.epoch != epoch {
		return nil
	}
	return s.sess
}

// settleState is where a session goes once nothing is pending on it.
func (ss *session) settleState() entity.SessionState {
	if ss.expired {
		return entity.SessionStateExpired
	}
	return entity.SessionStateAwaitingInput
}

func (s *Usecase) onExpiryUrgency(epoch uint64, u countdown.Urgency) {
	s.mu.Lock()
	sess := s.current(epoch)
	s.mu.Unlock()
	if sess == nil {
		return
	}

	s.presenter.Urgency(sess.ctx, u)
}

func (s *Usecase) onExpired(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.current(epoch)
	if sess == nil {
		return
	}

	sess.expired = true
	if sess.state == entity.SessionStateVerified {
		return
	}

	sess.state = entity.SessionStateExpired
	slog.InfoContext(sess.ctx, "verification code expired", "session_id", sess.id, "in_flight", sess.inFlight)
	s.notify(sess.ctx, entity.NotificationError, entity.EventCodeExpired, msgCodeExpired)
}

func (s *Usecase) onCooldownElapsed(epoch uint64) {
	s.mu.Lock()
	sess := s.current(epoch)
	s.mu.Unlock()
	if sess == nil {
		return
	}

	s.presenter.ResendAvailable(sess.ctx)
}
