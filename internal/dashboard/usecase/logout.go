package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
)

// Logout forgets the stored identity and returns the login path.
func (s *Usecase) Logout(ctx context.Context) (string, error) {
	ctx, span := s.startSpan(ctx, "Logout")
	defer span.End()

	if err := s.store.Delete(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to delete identity record", "error", err)
		return "", goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "user logged out")
	return s.loginPath(), nil
}
