package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/otpgate/internal/dashboard/entity"
	"github.com/shandysiswandi/otpgate/internal/pkg/goerror"
	"github.com/shandysiswandi/otpgate/internal/shared/identity"
	"github.com/shandysiswandi/otpgate/internal/shared/identity/store"
)

// LoadOutput carries either the dashboard of the stored identity or, when
// there is none, the path the visitor must be sent to.
type LoadOutput struct {
	Dashboard *entity.Dashboard
	Redirect  string
}

// storedRecord mirrors identity.Record loosely so a malformed login time
// does not invalidate an otherwise usable record.
type storedRecord struct {
	Role      string `json:"role"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	LoginTime string `json:"loginTime"`
}

// Load reads the stored identity. A missing record sends the visitor to the
// login page; an undecodable or incomplete one is also deleted first.
func (s *Usecase) Load(ctx context.Context) (LoadOutput, error) {
	ctx, span := s.startSpan(ctx, "Load")
	defer span.End()

	raw, err := s.store.Load(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return LoadOutput{Redirect: s.loginPath()}, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to load identity record", "error", err)
		return LoadOutput{}, goerror.NewServer(err)
	}

	rec, err := decodeRecord(raw)
	if err != nil {
		slog.WarnContext(ctx, "discarding unusable identity record", "error", err)
		if err := s.store.Delete(ctx); err != nil {
			slog.ErrorContext(ctx, "failed to delete identity record", "error", err)
		}
		return LoadOutput{Redirect: s.loginPath()}, nil
	}

	return LoadOutput{Dashboard: s.build(rec)}, nil
}

func decodeRecord(raw []byte) (identity.Record, error) {
	var sr storedRecord
	if err := json.Unmarshal(raw, &sr); err != nil {
		return identity.Record{}, err
	}

	rec := identity.Record{
		Role:  identity.Role(strings.ToLower(strings.TrimSpace(sr.Role))),
		Name:  sr.Name,
		Email: sr.Email,
	}
	if t, err := time.Parse(time.RFC3339Nano, sr.LoginTime); err == nil {
		rec.LoginTime = t
	}

	return rec, rec.Validate()
}

func (s *Usecase) build(rec identity.Record) *entity.Dashboard {
	return &entity.Dashboard{
		Name:         rec.Name,
		Email:        rec.Email,
		Role:         rec.Role,
		RoleLabel:    entity.Capitalize(rec.Role.String()),
		Initials:     entity.Initials(rec.Name),
		LoginTime:    rec.LoginTime,
		Home:         s.redirects().Lookup(rec.Role),
		Menus:        entity.MenusFor(rec.Role),
		Stats:        entity.StatsFor(rec.Role),
		QuickActions: entity.QuickActionsFor(rec.Role),
	}
}
