package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCmd_ListsChips(t *testing.T) {
	newTestEnv(t, true)

	out, err := execute(t, "", "suggest")

	require.NoError(t, err)
	assert.Equal(t, "🛂 Passport\n🚗 License\n🛡️ Insurance\n💳 Card\n⏰ Expiring\n", out)
}

func TestSuggestCmd_ProfileJSON(t *testing.T) {
	newTestEnv(t, true)

	out, err := execute(t, "", "suggest", "--profile", "profile-wife", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"🏠 Permit"`)
	assert.NotContains(t, out, "License")
}

func TestSuggestCmd_RunsChipWithoutGlyph(t *testing.T) {
	newTestEnv(t, true)

	out, err := execute(t, "", "suggest", "Expiring")

	require.NoError(t, err)
	assert.Contains(t, out, "🛂 Passport · Alex")
	assert.Contains(t, out, "Expiry Date: 2027-01-05 (expires in 82 days)")
}

func TestSuggestCmd_RunsChip(t *testing.T) {
	newTestEnv(t, true)

	out, err := execute(t, "", "suggest", "🛡️ Insurance")

	require.NoError(t, err)
	assert.Contains(t, out, "Health Insurance")
	assert.Contains(t, out, "Auto Insurance")
}

func TestResolveChip(t *testing.T) {
	newTestEnv(t, true)
	ctx := t.Context()

	assert.Equal(t, "🚗 License", resolveChip(ctx, "profile-me", "license"))
	assert.Equal(t, "💳 Card", resolveChip(ctx, "profile-me", "💳 card"))
	assert.Equal(t, "my visa", resolveChip(ctx, "profile-me", " my visa "))
}
