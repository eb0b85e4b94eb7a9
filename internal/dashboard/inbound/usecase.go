package inbound

import (
	"context"

	"github.com/shandysiswandi/otpgate/internal/dashboard/usecase"
)

type uc interface {
	Load(ctx context.Context) (usecase.LoadOutput, error)
	Logout(ctx context.Context) (string, error)
}
