package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo family into an empty vault",
	Long: `Adds three demo profiles (Me, Sara, Alex) and eleven documents so the
search features can be tried out. Does nothing when profiles already exist.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if sampleService == nil {
		return errors.New("sample data service not configured")
	}
	if err := requireUnlocked(cmd); err != nil {
		return err
	}

	added, err := sampleService.Seed(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	if !added {
		cmd.Println("Vault already has profiles; nothing added.")
		return nil
	}
	cmd.Println("Demo family added. Try: filesafe search \"my passport number\"")
	return nil
}
