package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/otpgate/internal/auth/entity"
)

// OnPassed marks the security gate as passed.
func (s *Usecase) OnPassed(ctx context.Context) {
	s.mu.Lock()
	s.gatePassed = true
	s.mu.Unlock()

	slog.InfoContext(ctx, "security verification passed")
}

// OnExpired revokes a previous pass; the challenge has to be solved again.
func (s *Usecase) OnExpired(ctx context.Context) {
	s.mu.Lock()
	s.gatePassed = false
	s.mu.Unlock()

	slog.WarnContext(ctx, "security verification expired")
}

func (s *Usecase) OnFailed(ctx context.Context) {
	s.mu.Lock()
	s.gatePassed = false
	s.mu.Unlock()

	slog.WarnContext(ctx, "security verification failed")
	s.notify(ctx, entity.NotificationError, entity.EventGateFailed, msgGateFailed)
}
