// Package backend stands in for the credential and code-checking service. It
// answers after a configurable latency and accepts a single configured code.
package backend

import (
	"cmp"
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/shandysiswandi/otpgate/internal/auth/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/clock"
	"github.com/shandysiswandi/otpgate/internal/pkg/config"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
)

// DefaultCode is accepted when auth.otp.expected_code is unset.
const DefaultCode = "123456"

type Simulated struct {
	cfg   config.Config
	clock clock.Clocker
	ins   instrument.Instrumentation
}

func NewSimulated(cfg config.Config, clk clock.Clocker, ins instrument.Instrumentation) *Simulated {
	return &Simulated{cfg: cfg, clock: clk, ins: ins}
}

// SubmitCredentials acknowledges any credentials and pretends to send a code.
func (s *Simulated) SubmitCredentials(ctx context.Context, email, _ string) error {
	ctx, span := s.ins.Tracer("auth.outbound.backend").Start(ctx, "SubmitCredentials")
	defer span.End()

	if err := s.wait(ctx); err != nil {
		return err
	}

	if s.cfg.GetBool("auth.otp.reveal_code") {
		slog.InfoContext(ctx, "verification code sent", "email", entity.MaskEmail(email), "code", s.expected())
	}

	return nil
}

// SubmitCode reports whether code equals the configured code.
func (s *Simulated) SubmitCode(ctx context.Context, code string) (bool, error) {
	ctx, span := s.ins.Tracer("auth.outbound.backend").Start(ctx, "SubmitCode")
	defer span.End()

	if err := s.wait(ctx); err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare([]byte(code), []byte(s.expected())) == 1, nil
}

func (s *Simulated) expected() string {
	return cmp.Or(s.cfg.GetString("auth.otp.expected_code"), DefaultCode)
}

// wait blocks for the configured latency or until ctx is done.
func (s *Simulated) wait(ctx context.Context) error {
	d := s.cfg.GetMillisecond("auth.backend.latency_ms")
	if d <= 0 {
		return ctx.Err()
	}

	done := make(chan struct{})
	t := s.clock.AfterFunc(d, func() { close(done) })

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		t.Stop()
		return ctx.Err()
	}
}
