package usecase

import (
	"cmp"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shandysiswandi/otpgate/internal/auth/codeentry"
	"github.com/shandysiswandi/otpgate/internal/auth/countdown"
	"github.com/shandysiswandi/otpgate/internal/auth/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/clock"
	"github.com/shandysiswandi/otpgate/internal/pkg/config"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"github.com/shandysiswandi/otpgate/internal/pkg/uid"
	"github.com/shandysiswandi/otpgate/internal/pkg/validator"
	"github.com/shandysiswandi/otpgate/internal/shared/identity"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type IdentityVerifiedEvent struct {
	SessionID  string
	Role       identity.Role
	Name       string
	Email      string
	VerifiedAt time.Time
}

type repoMessaging interface {
	PublishIdentityVerified(ctx context.Context, msg IdentityVerifiedEvent) error
}

type backend interface {
	SubmitCredentials(ctx context.Context, email, password string) error
	SubmitCode(ctx context.Context, code string) (bool, error)
}

type identityStore interface {
	Save(ctx context.Context, rec identity.Record) error
	Delete(ctx context.Context) error
}

type notifier interface {
	Notify(ctx context.Context, n entity.Notification)
}

type presenter interface {
	Shake(ctx context.Context)
	Urgency(ctx context.Context, u countdown.Urgency)
	ResendAvailable(ctx context.Context)
}

type navigator interface {
	Navigate(ctx context.Context, path string)
}

type securityGate interface {
	Register(l entity.GateListener)
}

// runner is satisfied by *goroutine.Manager.
type runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error) bool
}

// Usecase is the verification controller. It owns the single OTP session and
// serializes every operation, timer tick and backend completion behind mu.
type Usecase struct {
	backend       backend
	store         identityStore
	repoMessaging repoMessaging
	notifier      notifier
	presenter     presenter
	navigator     navigator
	runner        runner
	validator     validator.Validator
	cfg           config.Config
	clock         clock.Clocker
	uuid          uid.StringID
	ins           instrument.Instrumentation

	verifications metric.Int64Counter

	// persistMu orders identity writes across sessions. It is never taken
	// while mu is held.
	persistMu sync.Mutex

	mu         sync.Mutex
	gatePassed bool
	sending    bool
	sendSeq    uint64
	epoch      uint64
	sess       *session
}

type Dependency struct {
	Backend       backend
	Store         identityStore
	RepoMessaging repoMessaging
	Notifier      notifier
	Presenter     presenter
	Navigator     navigator
	Gate          securityGate
	Runner        runner
	Validator     validator.Validator
	Config        config.Config
	Clock         clock.Clocker
	UUID          uid.StringID
	Instrument    instrument.Instrumentation
}

// New builds the controller and registers it with the security gate.
func New(dep Dependency) *Usecase {
	s := &Usecase{
		backend:       dep.Backend,
		store:         dep.Store,
		repoMessaging: dep.RepoMessaging,
		notifier:      dep.Notifier,
		presenter:     dep.Presenter,
		navigator:     dep.Navigator,
		runner:        dep.Runner,
		validator:     dep.Validator,
		cfg:           dep.Config,
		clock:         dep.Clock,
		uuid:          dep.UUID,
		ins:           dep.Instrument,
	}

	counter, err := dep.Instrument.Meter("auth.usecase").Int64Counter(
		"auth.otp.verifications",
		metric.WithDescription("Completed OTP verification attempts by outcome"),
	)
	if err != nil {
		slog.Warn("failed to create verification counter", "error", err)
	}
	s.verifications = counter

	if dep.Gate != nil {
		dep.Gate.Register(s)
	}

	return s
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}

type settings struct {
	codeLength    int
	expiry        time.Duration
	warning       time.Duration
	critical      time.Duration
	cooldown      time.Duration
	clearDelay    time.Duration
	redirectDelay time.Duration
	redirects     identity.RedirectTable
}

// loadSettings reads the config on every session so reloads apply to the
// next code issued.
func (s *Usecase) loadSettings() settings {
	def := identity.DefaultRedirectTable()

	return settings{
		codeLength:    cmp.Or(s.cfg.GetInt("auth.otp.length"), codeentry.DefaultLength),
		expiry:        cmp.Or(s.cfg.GetSecond("auth.otp.expiry_seconds"), countdown.DefaultExpiry),
		warning:       cmp.Or(s.cfg.GetSecond("auth.otp.warning_seconds"), countdown.DefaultExpiryWarning),
		critical:      cmp.Or(s.cfg.GetSecond("auth.otp.critical_seconds"), countdown.DefaultExpiryCritical),
		cooldown:      cmp.Or(s.cfg.GetSecond("auth.otp.resend_cooldown_seconds"), countdown.DefaultResendCooldown),
		clearDelay:    cmp.Or(s.cfg.GetMillisecond("auth.verify.failure_clear_delay_ms"), 600*time.Millisecond),
		redirectDelay: cmp.Or(s.cfg.GetMillisecond("auth.verify.redirect_delay_ms"), 1500*time.Millisecond),
		redirects: identity.RedirectTable{
			identity.RoleAdmin:   cmp.Or(s.cfg.GetString("auth.redirect.admin"), def[identity.RoleAdmin]),
			identity.RoleFaculty: cmp.Or(s.cfg.GetString("auth.redirect.faculty"), def[identity.RoleFaculty]),
			identity.RoleStudent: cmp.Or(s.cfg.GetString("auth.redirect.student"), def[identity.RoleStudent]),
		},
	}
}

func (s *Usecase) notify(ctx context.Context, kind entity.NotificationKind, evt entity.NotificationEvent, msg string) {
	s.notifier.Notify(ctx, entity.Notification{Kind: kind, Event: evt, Message: msg})
}

func (s *Usecase) countVerification(ctx context.Context, outcome string) {
	if s.verifications == nil {
		return
	}
	s.verifications.Add(ctx, 1, metric.WithAttributes(attrOutcome.String(outcome)))
}
