package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
app:
  name: otpgate
auth:
  otp:
    length: 6
    expiry_seconds: 300
    expected_code: "123456"
  verify:
    redirect_delay_ms: 1500
  gate:
    bypass_hosts: "localhost, 127.0.0.1,,"
instrument:
  trace_sample_ratio: 0.5
  enabled: true
`

func TestNewViperFromBytes(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sample))
	require.NoError(t, err)
	defer cfg.Close()

	assert.Equal(t, "otpgate", cfg.GetString("app.name"))
	assert.Equal(t, 6, cfg.GetInt("auth.otp.length"))
	assert.Equal(t, 300*time.Second, cfg.GetSecond("auth.otp.expiry_seconds"))
	assert.Equal(t, 1500*time.Millisecond, cfg.GetMillisecond("auth.verify.redirect_delay_ms"))
	assert.Equal(t, "123456", cfg.GetString("auth.otp.expected_code"))
	assert.Equal(t, []string{"localhost", "127.0.0.1"}, cfg.GetArray("auth.gate.bypass_hosts"))
	assert.InDelta(t, 0.5, cfg.GetFloat64("instrument.trace_sample_ratio"), 0.0001)
	assert.True(t, cfg.GetBool("instrument.enabled"))
	assert.Empty(t, cfg.GetArray("missing.key"))
}

func TestNewViperFromBytes_RequiresType(t *testing.T) {
	_, err := NewViperFromBytes(" ", []byte(sample))
	assert.Error(t, err)
}

func TestNewViperFromBytes_Defaults(t *testing.T) {
	cfg, err := NewViperFromBytes("yaml", []byte(sample), WithDefaults(map[string]any{
		"auth.otp.resend_cooldown_seconds": 30,
		"auth.otp.length":                  8,
	}))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.GetSecond("auth.otp.resend_cooldown_seconds"))
	assert.Equal(t, 6, cfg.GetInt("auth.otp.length"))
}

func TestNewViperFromBytes_EnvOverride(t *testing.T) {
	t.Setenv("AUTH_OTP_EXPECTED_CODE", "654321")

	cfg, err := NewViperFromBytes("yaml", []byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "654321", cfg.GetString("auth.otp.expected_code"))
}

func TestNewViper(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sample), 0o600))

	cfg, err := NewViper(file)
	require.NoError(t, err)

	assert.Equal(t, "otpgate", cfg.GetString("app.name"))
}

func TestNewViper_MissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
