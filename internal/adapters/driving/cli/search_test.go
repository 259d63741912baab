package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

func TestSearchCmd_FieldAnswer(t *testing.T) {
	newTestEnv(t, true)

	out, err := execute(t, "", "search", "Sara's", "passport", "number")

	require.NoError(t, err)
	assert.Contains(t, out, "Results (field):")
	assert.Contains(t, out, "🛂 Passport · Sara")
	assert.Contains(t, out, "Number: P9876543")
	assert.Contains(t, out, "Expiry: 2029-06-20 (valid)")
}

func TestSearchCmd_UsesCurrentProfile(t *testing.T) {
	newTestEnv(t, true)

	out, err := execute(t, "", "search", "passport")

	require.NoError(t, err)
	assert.Contains(t, out, "Passport Number: N1234567")
	assert.Contains(t, out, "ID: doc-1")
}

func TestSearchCmd_ProfileFlag(t *testing.T) {
	newTestEnv(t, true)

	out, err := execute(t, "", "search", "--profile", "profile-kid1", "passport")

	require.NoError(t, err)
	assert.Contains(t, out, "C1112233")
}

func TestSearchCmd_JSON(t *testing.T) {
	newTestEnv(t, true)

	out, err := execute(t, "", "search", "--json", "Sara's passport number")

	require.NoError(t, err)
	assert.Contains(t, out, `"type": "field"`)
	assert.Contains(t, out, `"highlighted_field": "number"`)
}

func TestSearchCmd_NoMatch(t *testing.T) {
	newTestEnv(t, false)

	out, err := execute(t, "", "search", "passport")

	require.NoError(t, err)
	assert.Contains(t, out, "No documents found.")
}

func TestSearchCmd_LockedVault(t *testing.T) {
	t.Run("pin flag unlocks", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.lockedVault(t)

		out, err := execute(t, "", "--pin", testPIN, "search", "passport")

		require.NoError(t, err)
		assert.Contains(t, out, "N1234567")
		assert.Empty(t, env.prompts)
	})

	t.Run("prompts for the PIN", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.lockedVault(t)
		env.secrets = []string{testPIN}

		_, err := execute(t, "", "search", "passport")

		require.NoError(t, err)
		assert.Equal(t, []string{"PIN: "}, env.prompts)
	})

	t.Run("wrong PIN", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.lockedVault(t)

		_, err := execute(t, "", "--pin", "000000", "search", "passport")

		assert.ErrorIs(t, err, domain.ErrInvalidPIN)
	})
}

func TestSearchCmd_NotConfigured(t *testing.T) {
	newTestEnv(t, false)
	SetServices(&Services{})

	_, err := execute(t, "", "search", "passport")

	assert.ErrorContains(t, err, "search service not configured")
}
