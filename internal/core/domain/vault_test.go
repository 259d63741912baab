package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVaultSettings_RetryAt(t *testing.T) {
	var nilSettings *VaultSettings
	assert.True(t, nilSettings.RetryAt().IsZero())

	v := &VaultSettings{}
	for i := 1; i < FreeAttempts; i++ {
		v.RecordFailure(fixedNow)
		assert.True(t, v.RetryAt().IsZero(), "attempt %d is free", i)
	}

	v.RecordFailure(fixedNow)
	assert.Equal(t, FreeAttempts, v.FailedAttempts)
	assert.Equal(t, fixedNow.Add(AttemptCooldown), v.RetryAt())

	later := fixedNow.Add(AttemptCooldown)
	v.RecordFailure(later)
	assert.Equal(t, later.Add(AttemptCooldown), v.RetryAt())

	v.ClearFailures()
	assert.Zero(t, v.FailedAttempts)
	assert.True(t, v.RetryAt().IsZero())
}
