package cli

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

var recoveryKeyPattern = regexp.MustCompile(`Recovery key: (\S+)`)

func TestVaultCmd_StatusUninitialized(t *testing.T) {
	newTestEnv(t, false)

	out, err := execute(t, "", "vault", "status")

	require.NoError(t, err)
	assert.Contains(t, out, "PIN: not set")
	assert.Contains(t, out, "Data: /tmp/filesafe-test")
}

func TestVaultCmd_Init(t *testing.T) {
	env := newTestEnv(t, false)
	env.secrets = []string{testPIN, testPIN}

	out, err := execute(t, "", "vault", "init")

	require.NoError(t, err)
	assert.Contains(t, out, "Vault initialized.")
	assert.Regexp(t, recoveryKeyPattern, out)
	assert.Equal(t, []string{"New PIN (6 digits): ", "Repeat PIN: "}, env.prompts)

	out, err = execute(t, "", "vault", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "PIN: set")
	assert.Contains(t, out, "Auto-lock: 5 min")
}

func TestVaultCmd_InitCopiesRecoveryKey(t *testing.T) {
	newTestEnv(t, false)
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	out, err := execute(t, "", "--pin", testPIN, "vault", "init", "--copy")

	require.NoError(t, err)
	assert.Contains(t, out, "Recovery key copied to the clipboard.")
	assert.True(t, domain.ValidRecoveryKeyFormat(copied))
	assert.Contains(t, out, "Recovery key: "+copied)
}

func TestVaultCmd_InitCopyFailureStillSucceeds(t *testing.T) {
	env := newTestEnv(t, false)
	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard utility") }
	t.Cleanup(func() { copyToClipboard = orig })

	out, err := execute(t, "", "--pin", testPIN, "vault", "init", "--copy")

	require.NoError(t, err)
	assert.Contains(t, out, "Could not copy the recovery key: no clipboard utility")
	ok, err := env.vault.IsInitialized(t.Context())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVaultCmd_InitErrors(t *testing.T) {
	t.Run("mismatched PINs", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.secrets = []string{testPIN, "135791"}

		_, err := execute(t, "", "vault", "init")

		assert.ErrorContains(t, err, "PINs do not match")
	})

	t.Run("short PIN", func(t *testing.T) {
		newTestEnv(t, false)

		_, err := execute(t, "", "--pin", "1234", "vault", "init")

		assert.ErrorIs(t, err, domain.ErrInvalidPIN)
	})

	t.Run("already initialized", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.lockedVault(t)

		_, err := execute(t, "", "--pin", testPIN, "vault", "init")

		assert.ErrorIs(t, err, domain.ErrVaultAlreadyInitialized)
	})
}

func TestVaultCmd_Unlock(t *testing.T) {
	t.Run("no PIN set", func(t *testing.T) {
		newTestEnv(t, false)

		out, err := execute(t, "", "vault", "unlock")

		require.NoError(t, err)
		assert.Contains(t, out, "Vault has no PIN.")
	})

	t.Run("correct PIN", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.lockedVault(t)

		out, err := execute(t, "", "--pin", testPIN, "vault", "unlock")

		require.NoError(t, err)
		assert.Contains(t, out, "PIN accepted.")
		assert.True(t, env.vault.Unlocked())
	})

	t.Run("wrong PIN", func(t *testing.T) {
		env := newTestEnv(t, false)
		env.lockedVault(t)

		_, err := execute(t, "", "--pin", "000000", "vault", "unlock")

		assert.ErrorIs(t, err, domain.ErrInvalidPIN)
	})
}

func TestVaultCmd_ChangePIN(t *testing.T) {
	env := newTestEnv(t, false)
	env.lockedVault(t)
	env.secrets = []string{"135791", "135791"}

	out, err := execute(t, "", "--pin", testPIN, "vault", "change-pin")

	require.NoError(t, err)
	assert.Contains(t, out, "PIN changed.")
	env.vault.Lock()
	assert.NoError(t, env.vault.Unlock(t.Context(), "135791"))
}

func TestVaultCmd_ResetPIN(t *testing.T) {
	env := newTestEnv(t, false)
	key, err := env.vault.Initialize(t.Context(), testPIN)
	require.NoError(t, err)
	env.vault.Lock()
	env.secrets = []string{key, "135791", "135791"}

	out, err := execute(t, "", "vault", "reset-pin")

	require.NoError(t, err)
	assert.Contains(t, out, "PIN reset.")
	env.vault.Lock()
	assert.NoError(t, env.vault.Unlock(t.Context(), "135791"))
}

func TestVaultCmd_ResetPINWrongKey(t *testing.T) {
	env := newTestEnv(t, false)
	env.lockedVault(t)
	env.secrets = []string{"WRONG-KEY", "135791", "135791"}

	_, err := execute(t, "", "vault", "reset-pin")

	assert.ErrorIs(t, err, domain.ErrInvalidRecoveryKey)
}

func TestVaultCmd_AutoLock(t *testing.T) {
	env := newTestEnv(t, false)
	env.lockedVault(t)

	out, err := execute(t, "", "vault", "auto-lock")
	require.NoError(t, err)
	assert.Contains(t, out, "Auto-lock: 5 min")

	out, err = execute(t, "", "--pin", testPIN, "vault", "auto-lock", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Auto-lock: never")

	_, err = execute(t, "", "vault", "auto-lock", "soon")
	assert.ErrorContains(t, err, "invalid seconds")
}

func TestVaultCmd_FactoryReset(t *testing.T) {
	t.Run("confirmed by flag", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.lockedVault(t)

		out, err := execute(t, "", "--pin", testPIN, "vault", "factory-reset", "--yes")

		require.NoError(t, err)
		assert.Contains(t, out, "Vault erased.")
		profiles, err := env.profiles.List(t.Context())
		require.NoError(t, err)
		assert.Empty(t, profiles)
		initialized, err := env.vault.IsInitialized(t.Context())
		require.NoError(t, err)
		assert.False(t, initialized)
	})

	t.Run("declined at the prompt", func(t *testing.T) {
		env := newTestEnv(t, true)

		out, err := execute(t, "n\n", "vault", "factory-reset")

		require.NoError(t, err)
		assert.Contains(t, out, "Cancelled.")
		profiles, err := env.profiles.List(t.Context())
		require.NoError(t, err)
		assert.Len(t, profiles, 3)
	})
}

func TestAutoLockLabel(t *testing.T) {
	assert.Equal(t, "never", autoLockLabel(0))
	assert.Equal(t, "5 min", autoLockLabel(300))
	assert.Equal(t, "45 s", autoLockLabel(45))
}
