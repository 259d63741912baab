package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/filesafe/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal interface for FileSafe.

Type a question, or pick a suggestion chip, and browse the matching
documents. A vault with a PIN opens on the unlock screen.

Controls:
  Tab/Shift+Tab - Run the next/previous suggestion
  Enter         - Search / Open document
  p             - Pin or unpin the selected document
  / or n        - New search
  Ctrl+L        - Lock the vault
  Esc           - Back
  q             - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(&tui.Ports{
		Search:   searchService,
		Profile:  profileService,
		Document: documentService,
		Vault:    vaultService,
		Notifier: changeNotifier,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(commandContext(cmd)).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
