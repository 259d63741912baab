package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	suggestProfile string
	suggestJSON    bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [chip]",
	Short: "List or run quick-search suggestions",
	Long: `Without arguments, lists the suggestion chips for the active profile.
With a chip label, runs it:
  filesafe suggest "🛂 Passport"
  filesafe suggest Expiring`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestProfile, "profile", "p", "", "active profile ID (default: current profile)")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}
	if err := requireUnlocked(cmd); err != nil {
		return err
	}

	ctx := commandContext(cmd)
	active, err := activeProfile(ctx, suggestProfile)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		chips, err := searchService.Suggestions(ctx, active)
		if err != nil {
			return fmt.Errorf("suggestions failed: %w", err)
		}
		if suggestJSON {
			return writeJSON(cmd, chips)
		}
		for _, chip := range chips {
			cmd.Println(chip)
		}
		return nil
	}

	result, err := searchService.RunSuggestion(ctx, resolveChip(ctx, active, strings.Join(args, " ")), active)
	if err != nil {
		return fmt.Errorf("suggestion failed: %w", err)
	}
	if suggestJSON {
		return writeJSON(cmd, result)
	}
	outputResult(cmd, result)
	return nil
}

// resolveChip maps a label typed without its glyph ("Expiring") to the
// offered chip. Unknown input is returned unchanged and runs as a query.
func resolveChip(ctx context.Context, active, input string) string {
	input = strings.TrimSpace(input)
	chips, err := searchService.Suggestions(ctx, active)
	if err != nil {
		return input
	}
	for _, chip := range chips {
		if strings.EqualFold(chip, input) {
			return chip
		}
		if _, text, ok := strings.Cut(chip, " "); ok && strings.EqualFold(strings.TrimSpace(text), input) {
			return chip
		}
	}
	return input
}
