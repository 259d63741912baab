package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	factoryResetYes bool
	initCopy        bool
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage the vault PIN and lock",
	Long: `Set up the vault PIN, check its status, and recover access.

The first 'vault init' prints a recovery key. Write it down: it is the only
way to reset a forgotten PIN and it is never shown again.

After 5 wrong PINs or recovery keys in a row, each further try must wait 30
seconds from the last failure. The count is stored in the vault, so it holds
across separate runs.`,
}

var vaultInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Set the vault PIN",
	Args:  cobra.NoArgs,
	RunE:  runVaultInit,
}

var vaultUnlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Check the PIN",
	Args:  cobra.NoArgs,
	RunE:  runVaultUnlock,
}

var vaultStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show vault status",
	Args:  cobra.NoArgs,
	RunE:  runVaultStatus,
}

var vaultResetPINCmd = &cobra.Command{
	Use:   "reset-pin",
	Short: "Set a new PIN using the recovery key",
	Args:  cobra.NoArgs,
	RunE:  runVaultResetPIN,
}

var vaultChangePINCmd = &cobra.Command{
	Use:   "change-pin",
	Short: "Change the PIN",
	Args:  cobra.NoArgs,
	RunE:  runVaultChangePIN,
}

var vaultAutoLockCmd = &cobra.Command{
	Use:   "auto-lock [seconds]",
	Short: "Show or set the auto-lock delay (0 = never)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runVaultAutoLock,
}

var vaultFactoryResetCmd = &cobra.Command{
	Use:   "factory-reset",
	Short: "Delete every profile, document and setting",
	Args:  cobra.NoArgs,
	RunE:  runVaultFactoryReset,
}

func init() {
	vaultFactoryResetCmd.Flags().BoolVarP(&factoryResetYes, "yes", "y", false, "skip the confirmation prompt")
	vaultInitCmd.Flags().BoolVar(&initCopy, "copy", false, "also copy the recovery key to the clipboard")

	vaultCmd.AddCommand(vaultInitCmd)
	vaultCmd.AddCommand(vaultUnlockCmd)
	vaultCmd.AddCommand(vaultStatusCmd)
	vaultCmd.AddCommand(vaultResetPINCmd)
	vaultCmd.AddCommand(vaultChangePINCmd)
	vaultCmd.AddCommand(vaultAutoLockCmd)
	vaultCmd.AddCommand(vaultFactoryResetCmd)
	rootCmd.AddCommand(vaultCmd)
}

func checkVaultService() error {
	if vaultService == nil {
		return errors.New("vault service not configured")
	}
	return nil
}

func runVaultInit(cmd *cobra.Command, _ []string) error {
	if err := checkVaultService(); err != nil {
		return err
	}

	pin := pinFlag
	if pin == "" {
		var err error
		if pin, err = readNewPIN(cmd); err != nil {
			return err
		}
	}

	key, err := vaultService.Initialize(commandContext(cmd), pin)
	if err != nil {
		return fmt.Errorf("failed to initialize vault: %w", err)
	}
	cmd.Println("Vault initialized.")
	cmd.Println()
	cmd.Printf("Recovery key: %s\n", key)
	cmd.Println("Store it somewhere safe. It will not be shown again.")
	if initCopy {
		if err := copyToClipboard(key); err != nil {
			cmd.PrintErrf("Could not copy the recovery key: %v\n", err)
		} else {
			cmd.Println("Recovery key copied to the clipboard.")
		}
	}
	return nil
}

func runVaultUnlock(cmd *cobra.Command, _ []string) error {
	if err := checkVaultService(); err != nil {
		return err
	}
	initialized, err := vaultService.IsInitialized(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("checking vault: %w", err)
	}
	if !initialized {
		cmd.Println("Vault has no PIN. Run 'filesafe vault init' to set one.")
		return nil
	}
	if err := requireUnlocked(cmd); err != nil {
		return err
	}
	cmd.Println("PIN accepted.")
	return nil
}

func runVaultStatus(cmd *cobra.Command, _ []string) error {
	if err := checkVaultService(); err != nil {
		return err
	}
	ctx := commandContext(cmd)

	initialized, err := vaultService.IsInitialized(ctx)
	if err != nil {
		return fmt.Errorf("checking vault: %w", err)
	}
	cmd.Println("Vault Status")
	cmd.Println("============")
	if !initialized {
		cmd.Println("  PIN: not set")
	} else {
		cmd.Println("  PIN: set")
		seconds, err := vaultService.AutoLock(ctx)
		if err != nil {
			return fmt.Errorf("reading auto-lock: %w", err)
		}
		cmd.Printf("  Auto-lock: %s\n", autoLockLabel(seconds))
	}
	if dataDir != "" {
		cmd.Printf("  Data: %s\n", dataDir)
	}
	return nil
}

func runVaultResetPIN(cmd *cobra.Command, _ []string) error {
	if err := checkVaultService(); err != nil {
		return err
	}

	key, err := readSecret(cmd, "Recovery key: ")
	if err != nil {
		return err
	}
	pin, err := readNewPIN(cmd)
	if err != nil {
		return err
	}
	if err := vaultService.ResetPIN(commandContext(cmd), key, pin); err != nil {
		return fmt.Errorf("failed to reset PIN: %w", err)
	}
	cmd.Println("PIN reset.")
	return nil
}

func runVaultChangePIN(cmd *cobra.Command, _ []string) error {
	if err := checkVaultService(); err != nil {
		return err
	}

	old := pinFlag
	if old == "" {
		var err error
		if old, err = readSecret(cmd, "Current PIN: "); err != nil {
			return err
		}
	}
	pin, err := readNewPIN(cmd)
	if err != nil {
		return err
	}
	if err := vaultService.ChangePIN(commandContext(cmd), old, pin); err != nil {
		return fmt.Errorf("failed to change PIN: %w", err)
	}
	cmd.Println("PIN changed.")
	return nil
}

func runVaultAutoLock(cmd *cobra.Command, args []string) error {
	if err := checkVaultService(); err != nil {
		return err
	}
	ctx := commandContext(cmd)

	if len(args) == 0 {
		seconds, err := vaultService.AutoLock(ctx)
		if err != nil {
			return fmt.Errorf("reading auto-lock: %w", err)
		}
		cmd.Printf("Auto-lock: %s\n", autoLockLabel(seconds))
		return nil
	}

	seconds, err := strconv.Atoi(args[0])
	if err != nil || seconds < 0 {
		return fmt.Errorf("invalid seconds %q", args[0])
	}
	if err := requireUnlocked(cmd); err != nil {
		return err
	}
	if err := vaultService.SetAutoLock(ctx, seconds); err != nil {
		return fmt.Errorf("failed to set auto-lock: %w", err)
	}
	cmd.Printf("Auto-lock: %s\n", autoLockLabel(seconds))
	return nil
}

func runVaultFactoryReset(cmd *cobra.Command, _ []string) error {
	if err := checkVaultService(); err != nil {
		return err
	}
	if err := requireUnlocked(cmd); err != nil {
		return err
	}
	if !factoryResetYes {
		ok, err := confirm(cmd, "Delete every profile, document and setting?")
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Cancelled.")
			return nil
		}
	}
	if err := vaultService.FactoryReset(commandContext(cmd)); err != nil {
		return fmt.Errorf("factory reset failed: %w", err)
	}
	cmd.Println("Vault erased.")
	return nil
}

func autoLockLabel(seconds int) string {
	if seconds == 0 {
		return "never"
	}
	if seconds%60 == 0 {
		return fmt.Sprintf("%d min", seconds/60)
	}
	return fmt.Sprintf("%d s", seconds)
}
