package auth

import (
	"strings"

	"github.com/shandysiswandi/otpgate/internal/auth/inbound"
	"github.com/shandysiswandi/otpgate/internal/auth/outbound/backend"
	"github.com/shandysiswandi/otpgate/internal/auth/outbound/event"
	"github.com/shandysiswandi/otpgate/internal/auth/outbound/gate"
	"github.com/shandysiswandi/otpgate/internal/auth/outbound/mq"
	"github.com/shandysiswandi/otpgate/internal/auth/usecase"
	"github.com/shandysiswandi/otpgate/internal/pkg/clock"
	"github.com/shandysiswandi/otpgate/internal/pkg/config"
	"github.com/shandysiswandi/otpgate/internal/pkg/goroutine"
	"github.com/shandysiswandi/otpgate/internal/pkg/instrument"
	"github.com/shandysiswandi/otpgate/internal/pkg/messaging"
	"github.com/shandysiswandi/otpgate/internal/pkg/router"
	"github.com/shandysiswandi/otpgate/internal/pkg/uid"
	"github.com/shandysiswandi/otpgate/internal/pkg/validator"
	"github.com/shandysiswandi/otpgate/internal/shared/identity/store"
)

type Dependency struct {
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Store      store.Store                `validate:"required"`
	Messaging  messaging.Publisher        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

// New wires the verification controller to its adapters and registers the
// HTTP endpoints. The returned Usecase lets the caller tear the session down
// on shutdown.
func New(dep Dependency) (*usecase.Usecase, error) {
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, err
	}

	hub := event.NewHub(dep.Clock)
	securityGate := gate.NewBypass(
		strings.TrimSpace(dep.Config.GetString("auth.gate.host")),
		dep.Config.GetArray("auth.gate.bypass_hosts"),
	)

	uc := usecase.New(usecase.Dependency{
		Backend:       backend.NewSimulated(dep.Config, dep.Clock, dep.Instrument),
		Store:         dep.Store,
		RepoMessaging: mq.NewMessaging(dep.Messaging, dep.Instrument),
		Notifier:      hub,
		Presenter:     hub,
		Navigator:     hub,
		Gate:          securityGate,
		Runner:        dep.Goroutine,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Clock:         dep.Clock,
		UUID:          dep.UUID,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, securityGate, hub)

	return uc, nil
}
