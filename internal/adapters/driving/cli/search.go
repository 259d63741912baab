package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchProfile string
	searchJSON    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Ask the vault a question",
	Long: `Answers a plain-language question about the vault.

The query is matched against family-member names and relationships
("my", "wife", "son"), document types ("passport", "insurance") and
fields ("number", "expiry"). Examples:
  filesafe search "my passport number"
  filesafe search "when does Sara's visa expire"
  filesafe search "next to expire"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchProfile, "profile", "p", "", "active profile ID (default: current profile)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}
	if err := requireUnlocked(cmd); err != nil {
		return err
	}

	ctx := commandContext(cmd)
	active, err := activeProfile(ctx, searchProfile)
	if err != nil {
		return err
	}

	result, err := searchService.Search(ctx, strings.Join(args, " "), active)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return writeJSON(cmd, result)
	}
	outputResult(cmd, result)
	return nil
}
