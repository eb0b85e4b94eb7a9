package countdown

import (
	"time"

	"github.com/shandysiswandi/otpgate/internal/pkg/clock"
)

const (
	DefaultExpiry         = 300 * time.Second
	DefaultExpiryWarning  = 120 * time.Second
	DefaultExpiryCritical = 60 * time.Second
	DefaultResendCooldown = 30 * time.Second
)

// ExpiryTimer bounds how long an issued code stays valid.
type ExpiryTimer struct {
	*Timer
}

// NewExpiryTimer returns an ExpiryTimer with urgency breakpoints.
func NewExpiryTimer(clk clock.Clocker, d time.Duration, th Thresholds) *ExpiryTimer {
	return &ExpiryTimer{Timer: New(clk, d, WithThresholds(th))}
}

// Expired reports whether the last run counted down to zero.
func (t *ExpiryTimer) Expired() bool {
	return t.State() == StateFinished
}

// CooldownTimer rate-limits resend requests.
type CooldownTimer struct {
	*Timer
}

// NewCooldownTimer returns a CooldownTimer.
func NewCooldownTimer(clk clock.Clocker, d time.Duration) *CooldownTimer {
	return &CooldownTimer{Timer: New(clk, d)}
}

// Elapsed reports whether the last run counted down to zero.
func (t *CooldownTimer) Elapsed() bool {
	return t.State() == StateFinished
}
