package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/otpgate/internal/auth"
	"github.com/shandysiswandi/otpgate/internal/dashboard"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.auth.enabled") {
		uc, err := auth.New(auth.Dependency{
			Goroutine:  a.goroutine,
			Router:     a.router,
			Store:      a.identityStore,
			Messaging:  a.messaging,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Clock:      a.clock,
			Validator:  a.validator,
		})
		if err != nil {
			slog.Error("failed to init module auth", "error", err)
			os.Exit(1)
		}
		a.verification = uc
	}

	if a.config.GetBool("modules.dashboard.enabled") {
		if err := dashboard.New(dashboard.Dependency{
			Router:     a.router,
			Store:      a.identityStore,
			Config:     a.config,
			Instrument: a.ins,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module dashboard", "error", err)
			os.Exit(1)
		}
	}
}
