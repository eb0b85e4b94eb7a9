package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/otpgate/internal/auth/countdown"
	"github.com/shandysiswandi/otpgate/internal/auth/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/clock"
	"github.com/shandysiswandi/otpgate/internal/pkg/config"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"github.com/shandysiswandi/otpgate/internal/pkg/uid"
	"github.com/shandysiswandi/otpgate/internal/pkg/validator"
	"github.com/shandysiswandi/otpgate/internal/shared/identity"
	"github.com/stretchr/testify/require"
)

var epoch0 = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

const devCode = "123456"

// syncRunner runs work inline, or refuses it when full is set.
type syncRunner struct {
	full bool
}

func (r *syncRunner) Go(ctx context.Context, f func(ctx context.Context) error) bool {
	if r.full {
		return false
	}
	_ = f(ctx)
	return true
}

// queueRunner holds work until the test releases it.
type queueRunner struct {
	mu  sync.Mutex
	fns []func()
}

func (r *queueRunner) Go(ctx context.Context, f func(ctx context.Context) error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fns = append(r.fns, func() { _ = f(ctx) })
	return true
}

func (r *queueRunner) RunAll() {
	r.mu.Lock()
	fns := r.fns
	r.fns = nil
	r.mu.Unlock()

	for _, f := range fns {
		f()
	}
}

type fakeBackend struct {
	mu       sync.Mutex
	credErr  error
	codeErr  error
	expected string
	codes    []string
}

func (b *fakeBackend) SubmitCredentials(_ context.Context, _, _ string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.credErr
}

func (b *fakeBackend) SubmitCode(_ context.Context, code string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.codes = append(b.codes, code)
	if b.codeErr != nil {
		return false, b.codeErr
	}
	return code == b.expected, nil
}

// fakeStore keeps every saved record until Delete empties it. onSave runs
// before the write, outside the store lock.
type fakeStore struct {
	mu      sync.Mutex
	err     error
	saved   []identity.Record
	deletes int
	onSave  func()
}

func (s *fakeStore) Save(_ context.Context, rec identity.Record) error {
	if s.onSave != nil {
		s.onSave()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, rec)
	return nil
}

func (s *fakeStore) Delete(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	s.saved = nil
	return nil
}

func (s *fakeStore) Saved() []identity.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]identity.Record(nil), s.saved...)
}

type fakeMessaging struct {
	mu   sync.Mutex
	err  error
	msgs []IdentityVerifiedEvent
}

func (m *fakeMessaging) PublishIdentityVerified(_ context.Context, msg IdentityVerifiedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, msg)
	return m.err
}

// recorder captures everything the controller emits towards the user.
type recorder struct {
	mu              sync.Mutex
	notifications   []entity.Notification
	shakes          int
	urgencies       []countdown.Urgency
	navigations     []string
	resendAvailable int
}

func (r *recorder) Notify(_ context.Context, n entity.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recorder) Shake(context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shakes++
}

func (r *recorder) Urgency(_ context.Context, u countdown.Urgency) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urgencies = append(r.urgencies, u)
}

func (r *recorder) ResendAvailable(context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resendAvailable++
}

func (r *recorder) Navigate(_ context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navigations = append(r.navigations, path)
}

func (r *recorder) Last() entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return entity.Notification{}
	}
	return r.notifications[len(r.notifications)-1]
}

func (r *recorder) Events() []entity.NotificationEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.NotificationEvent, 0, len(r.notifications))
	for _, n := range r.notifications {
		out = append(out, n.Event)
	}
	return out
}

// manualGate keeps the listener so tests can fire gate outcomes.
type manualGate struct {
	listener entity.GateListener
}

func (g *manualGate) Register(l entity.GateListener) {
	g.listener = l
}

type harness struct {
	uc        *Usecase
	clock     *clock.Fake
	backend   *fakeBackend
	store     *fakeStore
	messaging *fakeMessaging
	rec       *recorder
	gate      *manualGate
}

type harnessOption func(*Dependency)

func withRunner(r runner) harnessOption {
	return func(d *Dependency) { d.Runner = r }
}

func newHarness(t *testing.T, yaml string, opts ...harnessOption) *harness {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cfg.Close() })

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	h := &harness{
		clock:     clock.NewFake(epoch0),
		backend:   &fakeBackend{expected: devCode},
		store:     &fakeStore{},
		messaging: &fakeMessaging{},
		rec:       &recorder{},
		gate:      &manualGate{},
	}

	dep := Dependency{
		Backend:       h.backend,
		Store:         h.store,
		RepoMessaging: h.messaging,
		Notifier:      h.rec,
		Presenter:     h.rec,
		Navigator:     h.rec,
		Gate:          h.gate,
		Runner:        &syncRunner{},
		Validator:     v,
		Config:        cfg,
		Clock:         h.clock,
		UUID:          uid.NewUUID(),
		Instrument:    instrument.NewNoop(),
	}
	for _, opt := range opts {
		opt(&dep)
	}

	h.uc = New(dep)
	return h
}

// open passes the gate and starts a session for email.
func (h *harness) open(t *testing.T, email string) entity.Session {
	t.Helper()

	h.gate.listener.OnPassed(context.Background())
	_, err := h.uc.StartSession(context.Background(), StartSessionInput{Email: email, Password: "secret"})
	require.NoError(t, err)

	snap := h.uc.Snapshot(context.Background())
	require.Equal(t, entity.SessionStateAwaitingInput.String(), snap.State)
	return snap
}

func (h *harness) paste(t *testing.T, code string) {
	t.Helper()

	_, err := h.uc.Paste(context.Background(), PasteInput{Text: code})
	require.NoError(t, err)
}
