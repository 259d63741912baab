package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	expiringDays int
	expiringJSON bool
)

var expiringCmd = &cobra.Command{
	Use:   "expiring",
	Short: "List documents that expire soon",
	Long: `Lists documents whose expiry date falls between today and the end of
the window, earliest first. The window defaults to search.expiring_days.`,
	Args: cobra.NoArgs,
	RunE: runExpiring,
}

func init() {
	expiringCmd.Flags().IntVarP(&expiringDays, "days", "d", 0, "window in days (0 = configured default)")
	expiringCmd.Flags().BoolVar(&expiringJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(expiringCmd)
}

func runExpiring(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}
	if expiringDays < 0 {
		return errors.New("--days must not be negative")
	}
	if err := requireUnlocked(cmd); err != nil {
		return err
	}

	result := searchService.Expiring(commandContext(cmd), expiringDays)
	if expiringJSON {
		return writeJSON(cmd, result)
	}
	outputResult(cmd, result)
	return nil
}
