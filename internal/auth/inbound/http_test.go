package inbound

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/otpgate/internal/auth/outbound/backend"
	"github.com/shandysiswandi/otpgate/internal/auth/outbound/event"
	"github.com/shandysiswandi/otpgate/internal/auth/outbound/gate"
	"github.com/shandysiswandi/otpgate/internal/auth/outbound/mq"
	"github.com/shandysiswandi/otpgate/internal/auth/usecase"
	"github.com/shandysiswandi/otpgate/internal/pkg/clock"
	"github.com/shandysiswandi/otpgate/internal/pkg/config"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"github.com/shandysiswandi/otpgate/internal/pkg/messaging"
	"github.com/shandysiswandi/otpgate/internal/pkg/router"
	"github.com/shandysiswandi/otpgate/internal/pkg/uid"
	"github.com/shandysiswandi/otpgate/internal/pkg/validator"
	"github.com/shandysiswandi/otpgate/internal/shared/identity/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncRunner struct{}

func (syncRunner) Go(ctx context.Context, f func(ctx context.Context) error) bool {
	_ = f(ctx)
	return true
}

type envelope struct {
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
}

type sessionData struct {
	ID       string `json:"id"`
	State    string `json:"state"`
	Focus    int    `json:"focus"`
	Redirect string `json:"redirect"`
	Slots    []struct {
		Value  string `json:"value"`
		Filled bool   `json:"filled"`
	} `json:"slots"`
	CanVerify bool `json:"can_verify"`
	CanResend bool `json:"can_resend"`
}

type fixture struct {
	router *router.Router
	clock  *clock.Fake
	store  *store.Memory
	hub    *event.Hub
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
auth:
  backend:
    latency_ms: 0
instrument:
  log_mask_fields: "password"
`))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	ins := instrument.NewNoop()
	clk := clock.NewFake(time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC))
	hub := event.NewHub(clk)
	g := gate.NewManual()
	st := store.NewMemory()

	uc := usecase.New(usecase.Dependency{
		Backend:       backend.NewSimulated(cfg, clk, ins),
		Store:         st,
		RepoMessaging: mq.NewMessaging(messaging.NewMemory(), ins),
		Notifier:      hub,
		Presenter:     hub,
		Navigator:     hub,
		Gate:          g,
		Runner:        syncRunner{},
		Validator:     v,
		Config:        cfg,
		Clock:         clk,
		UUID:          uid.NewUUID(),
		Instrument:    ins,
	})

	r := router.NewRouter(router.Config{Config: cfg, UUID: uid.NewUUID(), Instrument: ins})
	RegisterHTTPEndpoint(r, uc, g, hub)

	return &fixture{router: r, clock: clk, store: st, hub: hub}
}

func (f *fixture) do(t *testing.T, method, path, body string) (int, envelope) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec.Code, env
}

func session(t *testing.T, env envelope) sessionData {
	t.Helper()

	var s sessionData
	require.NoError(t, json.Unmarshal(env.Data, &s))
	return s
}

func TestHTTP_Credentials(t *testing.T) {
	t.Run("GateRequired", func(t *testing.T) {
		f := newFixture(t)

		code, env := f.do(t, http.MethodPost, "/api/v1/auth/credentials", `{"email":"a@b.c","password":"x"}`)

		assert.Equal(t, http.StatusForbidden, code)
		assert.Equal(t, "Please complete the security verification", env.Message)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		f := newFixture(t)

		code, _ := f.do(t, http.MethodPost, "/api/v1/auth/credentials", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("ValidationError", func(t *testing.T) {
		f := newFixture(t)
		code, _ := f.do(t, http.MethodPost, "/api/v1/auth/gate/passed", "")
		require.Equal(t, http.StatusOK, code)

		code, env := f.do(t, http.MethodPost, "/api/v1/auth/credentials", `{"email":"a@b.c","password":""}`)

		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Contains(t, env.Error, "password")
	})

	t.Run("UnknownGateEvent", func(t *testing.T) {
		f := newFixture(t)

		code, _ := f.do(t, http.MethodPost, "/api/v1/auth/gate/solved", "")

		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestHTTP_VerificationFlow(t *testing.T) {
	f := newFixture(t)

	code, _ := f.do(t, http.MethodPost, "/api/v1/auth/session/verify", "")
	require.Equal(t, http.StatusNotFound, code)

	code, _ = f.do(t, http.MethodPost, "/api/v1/auth/gate/passed", "")
	require.Equal(t, http.StatusOK, code)

	code, env := f.do(t, http.MethodPost, "/api/v1/auth/credentials", `{"email":"student@test.com","password":"secret"}`)
	require.Equal(t, http.StatusAccepted, code)
	assert.Equal(t, "AwaitingInput", session(t, env).State)

	code, env = f.do(t, http.MethodPut, "/api/v1/auth/session/digits/0", `{"value":"1"}`)
	require.Equal(t, http.StatusOK, code)
	s := session(t, env)
	assert.Equal(t, "1", s.Slots[0].Value)
	assert.Equal(t, 1, s.Focus)

	code, env = f.do(t, http.MethodPost, "/api/v1/auth/session/digits/1/navigate", `{"direction":"left"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, session(t, env).Focus)

	code, _ = f.do(t, http.MethodPut, "/api/v1/auth/session/digits/abc", `{"value":"1"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = f.do(t, http.MethodPost, "/api/v1/auth/session/verify", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "Please enter a valid 6-digit OTP", env.Message)

	code, _ = f.do(t, http.MethodPost, "/api/v1/auth/session/resend", "")
	assert.Equal(t, http.StatusTooManyRequests, code)

	code, env = f.do(t, http.MethodPost, "/api/v1/auth/session/paste", `{"text":"123 456"}`)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, session(t, env).CanVerify)

	code, env = f.do(t, http.MethodPost, "/api/v1/auth/session/verify", "")
	require.Equal(t, http.StatusAccepted, code)
	s = session(t, env)
	assert.Equal(t, "Verified", s.State)
	assert.Equal(t, "pages/student/dashboard.html", s.Redirect)

	raw, err := f.store.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"role":"student"`)

	code, _ = f.do(t, http.MethodDelete, "/api/v1/auth/session", "")
	assert.Equal(t, http.StatusNoContent, code)

	code, env = f.do(t, http.MethodGet, "/api/v1/auth/session", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Idle", session(t, env).State)
}

func TestHTTP_StreamEvents(t *testing.T) {
	f := newFixture(t)
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/auth/events", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "text/event-stream")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return f.hub.Subscribers() == 1 }, time.Second, 5*time.Millisecond)

	code, _ := f.do(t, http.MethodPost, "/api/v1/auth/gate/failed", "")
	require.Equal(t, http.StatusOK, code)

	lines := make(chan string, 16)
	go func() {
		sc := bufio.NewScanner(resp.Body)
		for sc.Scan() {
			lines <- sc.Text()
		}
		close(lines)
	}()

	var sawEvent, sawData bool
	deadline := time.After(2 * time.Second)
	for !(sawEvent && sawData) {
		select {
		case line, ok := <-lines:
			require.True(t, ok, "stream ended early")
			if line == "event: notification" {
				sawEvent = true
			}
			if strings.HasPrefix(line, "data: ") && strings.Contains(line, "Security verification failed") {
				sawData = true
			}
		case <-deadline:
			t.Fatal("notification not streamed")
		}
	}
}
