package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/filesafe/internal/adapters/driven/crypto/argon2"
	"github.com/custodia-labs/filesafe/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/filesafe/internal/core/services"
)

const testPIN = "246810"

var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

type testEnv struct {
	search   *services.SearchService
	profiles *services.ProfileService
	docs     *services.DocumentService
	vault    *services.VaultService
	settings *services.SettingsService
	sample   *services.SampleDataService

	// secrets answers readSecret prompts in order.
	secrets []string
	prompts []string
}

// newTestEnv installs memory-backed services. The sample family is
// loaded when seed is set.
func newTestEnv(t *testing.T, seed bool) *testEnv {
	t.Helper()
	profileStore := memory.NewProfileStore()
	docStore := memory.NewDocumentStore()
	configStore := memory.NewConfigStore()

	env := &testEnv{
		search:   services.NewSearchService(profileStore, docStore),
		profiles: services.NewProfileService(profileStore, docStore, configStore),
		docs:     services.NewDocumentService(docStore, profileStore),
		settings: services.NewSettingsService(configStore),
		sample:   services.NewSampleDataService(profileStore, docStore),
	}
	env.search.SetClock(testClock)
	hasher := argon2.New(argon2.Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32, SaltLen: 16})
	env.vault = services.NewVaultService(memory.NewVaultStore(), hasher, profileStore, docStore, configStore)
	env.vault.SetClock(testClock)

	if seed {
		_, err := env.sample.Seed(context.Background())
		require.NoError(t, err)
	}

	SetServices(&Services{
		Search:   env.search,
		Profile:  env.profiles,
		Document: env.docs,
		Vault:    env.vault,
		Settings: env.settings,
		Sample:   env.sample,
		DataDir:  "/tmp/filesafe-test",
	})

	origReadSecret, origNow, origBootstrap := readSecret, now, bootstrap
	readSecret = func(_ *cobra.Command, prompt string) (string, error) {
		env.prompts = append(env.prompts, prompt)
		if len(env.secrets) == 0 {
			return "", errors.New("no input")
		}
		s := env.secrets[0]
		env.secrets = env.secrets[1:]
		return s, nil
	}
	now = testClock
	bootstrap = nil
	t.Cleanup(func() {
		readSecret, now, bootstrap = origReadSecret, origNow, origBootstrap
		SetServices(&Services{})
	})
	return env
}

// lockedVault sets the PIN and locks the vault.
func (e *testEnv) lockedVault(t *testing.T) {
	t.Helper()
	_, err := e.vault.Initialize(context.Background(), testPIN)
	require.NoError(t, err)
	e.vault.Lock()
}

func resetFlags() {
	verbose, homeDir, pinFlag = false, "", ""
	searchProfile, searchJSON = "", false
	suggestProfile, suggestJSON = "", false
	expiringDays, expiringJSON = 0, false
	profileRelationship, profileAvatar, profileJSON = "", "", false
	docProfile, docType, docTitle, docNotes, docJSON = "", "", "", "", false
	docRecent = 0
	docFields, docCustom = nil, nil
	factoryResetYes, initCopy = false, false
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}
