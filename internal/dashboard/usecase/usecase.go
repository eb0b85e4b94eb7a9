package usecase

import (
	"cmp"
	"context"

	"github.com/shandysiswandi/otpgate/internal/pkg/config"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"github.com/shandysiswandi/otpgate/internal/shared/identity"
	"go.opentelemetry.io/otel/trace"
)

type identityStore interface {
	Load(ctx context.Context) ([]byte, error)
	Delete(ctx context.Context) error
}

type Usecase struct {
	store identityStore
	cfg   config.Config
	ins   instrument.Instrumentation
}

type Dependency struct {
	Store      identityStore
	Config     config.Config
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		store: dep.Store,
		cfg:   dep.Config,
		ins:   dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("dashboard.usecase").Start(ctx, name)
}

func (s *Usecase) loginPath() string {
	return cmp.Or(s.cfg.GetString("auth.redirect.login"), identity.LoginPath)
}

func (s *Usecase) redirects() identity.RedirectTable {
	def := identity.DefaultRedirectTable()

	return identity.RedirectTable{
		identity.RoleAdmin:   cmp.Or(s.cfg.GetString("auth.redirect.admin"), def[identity.RoleAdmin]),
		identity.RoleFaculty: cmp.Or(s.cfg.GetString("auth.redirect.faculty"), def[identity.RoleFaculty]),
		identity.RoleStudent: cmp.Or(s.cfg.GetString("auth.redirect.student"), def[identity.RoleStudent]),
	}
}
