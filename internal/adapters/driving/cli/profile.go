package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

var (
	profileRelationship string
	profileAvatar       string
	profileJSON         bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage family-member profiles",
	Long:  `List, add, remove, and switch between the profiles that own documents.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a profile",
	Long: `Adds a family member. Relationships: self, spouse, child, parent,
sibling, other.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileAdd,
}

var profileRemoveCmd = &cobra.Command{
	Use:   "rm [profile-id]",
	Short: "Remove a profile and its documents",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileRemove,
}

var profileUseCmd = &cobra.Command{
	Use:   "use [profile-id]",
	Short: "Make a profile the current one",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileUse,
}

var profileShowCmd = &cobra.Command{
	Use:   "show [profile-id]",
	Short: "Show a profile and its documents (default: current)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProfileShow,
}

func init() {
	profileAddCmd.Flags().StringVarP(&profileRelationship, "relationship", "r", "", "relationship to the vault owner")
	profileAddCmd.Flags().StringVar(&profileAvatar, "avatar", "", "glyph shown next to the name")
	profileListCmd.Flags().BoolVar(&profileJSON, "json", false, "output as JSON")

	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileRemoveCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

func checkProfileService(cmd *cobra.Command) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}
	return requireUnlocked(cmd)
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	if err := checkProfileService(cmd); err != nil {
		return err
	}
	ctx := commandContext(cmd)

	profiles, err := profileService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	if profileJSON {
		return writeJSON(cmd, profiles)
	}
	if len(profiles) == 0 {
		cmd.Println("No profiles. Add one with 'filesafe profile add' or run 'filesafe seed'.")
		return nil
	}

	current, _ := activeProfile(ctx, "")
	for _, p := range profiles {
		marker := " "
		if p.ID == current {
			marker = "*"
		}
		cmd.Printf("%s %s  %s", marker, p.ID, profileLabel(p))
		if p.Relationship != "" {
			cmd.Printf(" (%s)", p.Relationship)
		}
		cmd.Println()
	}
	return nil
}

func runProfileAdd(cmd *cobra.Command, args []string) error {
	if err := checkProfileService(cmd); err != nil {
		return err
	}

	p, err := profileService.Create(commandContext(cmd), args[0], domain.Relationship(profileRelationship), profileAvatar)
	if err != nil {
		return fmt.Errorf("failed to add profile: %w", err)
	}
	cmd.Printf("Added profile %s (%s)\n", p.Name, p.ID)
	return nil
}

func runProfileRemove(cmd *cobra.Command, args []string) error {
	if err := checkProfileService(cmd); err != nil {
		return err
	}
	if err := profileService.Delete(commandContext(cmd), args[0]); err != nil {
		return fmt.Errorf("failed to remove profile: %w", err)
	}
	cmd.Printf("Removed profile %s\n", args[0])
	return nil
}

func runProfileUse(cmd *cobra.Command, args []string) error {
	if err := checkProfileService(cmd); err != nil {
		return err
	}
	if err := profileService.SetCurrent(commandContext(cmd), args[0]); err != nil {
		return fmt.Errorf("failed to switch profile: %w", err)
	}
	cmd.Printf("Current profile: %s\n", args[0])
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	if err := checkProfileService(cmd); err != nil {
		return err
	}
	ctx := commandContext(cmd)

	var (
		p   *domain.Profile
		err error
	)
	if len(args) == 1 {
		p, err = profileService.Get(ctx, args[0])
	} else {
		p, err = profileService.Current(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	cmd.Printf("%s\n  ID: %s\n", profileLabel(*p), p.ID)
	if p.Relationship != "" {
		cmd.Printf("  Relationship: %s\n", p.Relationship)
	}
	if documentService == nil {
		return nil
	}
	docs, err := documentService.ListByProfile(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}
	cmd.Printf("  Documents: %d\n", len(docs))
	for i := range docs {
		cmd.Printf("    %s  %s\n", docs[i].ID, documentHeading(&docs[i], ""))
	}
	return nil
}

func profileLabel(p domain.Profile) string {
	if p.Avatar == "" {
		return p.Name
	}
	return p.Avatar + " " + p.Name
}
