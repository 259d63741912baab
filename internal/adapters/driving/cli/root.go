// Package cli provides the cobra command tree for the filesafe binary.
//
// Commands reach the core through package-level service ports. The binary
// installs a Bootstrap that builds them once persistent flags are parsed;
// tests assign them directly.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
	"github.com/custodia-labs/filesafe/internal/core/ports/driving"
	"github.com/custodia-labs/filesafe/internal/logger"
)

// version is set at build time.
var version = "dev"

// Persistent flags.
var (
	verbose bool
	homeDir string
	pinFlag string
)

// Service ports used by the commands.
var (
	searchService   driving.SearchService
	profileService  driving.ProfileService
	documentService driving.DocumentService
	vaultService    driving.VaultService
	settingsService driving.SettingsService
	sampleService   driving.SampleDataService
	changeNotifier  driven.ChangeNotifier
)

// Services bundles the ports a command run needs.
type Services struct {
	Search   driving.SearchService
	Profile  driving.ProfileService
	Document driving.DocumentService
	Vault    driving.VaultService
	Settings driving.SettingsService
	Sample   driving.SampleDataService
	Notifier driven.ChangeNotifier

	// DataDir is the directory the notifier watches, shown by status output.
	DataDir string

	// Close releases storage. May be nil.
	Close func() error
}

// Bootstrap builds the services for a home directory ("" for the default).
type Bootstrap func(home string) (*Services, error)

var (
	bootstrap     Bootstrap
	closeServices func() error
	dataDir       string
)

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap installs the service factory run before every command.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs services directly.
func SetServices(s *Services) {
	searchService = s.Search
	profileService = s.Profile
	documentService = s.Document
	vaultService = s.Vault
	settingsService = s.Settings
	sampleService = s.Sample
	changeNotifier = s.Notifier
	dataDir = s.DataDir
	closeServices = s.Close
}

var rootCmd = &cobra.Command{
	Use:   "filesafe",
	Short: "A PIN-protected vault for family documents",
	Long: `FileSafe keeps passports, licences, ID cards, permits, insurance policies
and cards for every member of a family in one local vault.

Ask it questions in plain language:
  filesafe search "Sara's passport number"
  filesafe search "what expires next"
  filesafe expiring --days 30`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(*cobra.Command, []string) error {
		if closeServices == nil {
			return nil
		}
		err := closeServices()
		closeServices = nil
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic logs to stderr")
	rootCmd.PersistentFlags().StringVar(&homeDir, "data-dir", "", "FileSafe home directory (default ~/.filesafe)")
	rootCmd.PersistentFlags().StringVar(&pinFlag, "pin", "", "vault PIN (prompted when omitted)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with a context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil {
		return nil
	}
	// version and help need no storage.
	if cmd == versionCmd {
		return nil
	}
	s, err := bootstrap(homeDir)
	if err != nil {
		return fmt.Errorf("opening vault: %w", err)
	}
	SetServices(s)
	return nil
}

// commandContext returns the command's context, never nil.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// requireUnlocked unlocks an initialised vault, using --pin or a prompt.
// Uninitialised vaults are open.
func requireUnlocked(cmd *cobra.Command) error {
	if vaultService == nil || vaultService.Unlocked() {
		return nil
	}
	ctx := commandContext(cmd)
	initialized, err := vaultService.IsInitialized(ctx)
	if err != nil {
		return fmt.Errorf("checking vault: %w", err)
	}
	if !initialized {
		return nil
	}
	pin := pinFlag
	if pin == "" {
		if pin, err = readSecret(cmd, "PIN: "); err != nil {
			return err
		}
	}
	if err := vaultService.Unlock(ctx, pin); err != nil {
		return fmt.Errorf("unlock failed: %w", err)
	}
	return nil
}

// activeProfile resolves --profile or falls back to the current profile.
// An empty vault yields "".
func activeProfile(ctx context.Context, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if profileService == nil {
		return "", nil
	}
	p, err := profileService.Current(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("current profile: %w", err)
	}
	return p.ID, nil
}
