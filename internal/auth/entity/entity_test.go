package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@uni.edu", MaskEmail("john@uni.edu"))
	assert.Equal(t, "a***@b.c", MaskEmail("a@b.c"))
	assert.Equal(t, "é***@x.y", MaskEmail("élodie@x.y"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
	assert.Equal(t, "@x.y", MaskEmail("@x.y"))
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "Idle", SessionStateIdle.String())
	assert.Equal(t, "AwaitingInput", SessionStateAwaitingInput.String())
	assert.Equal(t, "Submitting", SessionStateSubmitting.String())
	assert.Equal(t, "Verified", SessionStateVerified.String())
	assert.Equal(t, "Failed", SessionStateFailed.String())
	assert.Equal(t, "Expired", SessionStateExpired.String())
	assert.Equal(t, "Idle", SessionState(42).String())
}
