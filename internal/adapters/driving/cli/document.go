package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

var (
	docProfile string
	docType    string
	docTitle   string
	docFields  []string
	docCustom  []string
	docNotes   string
	docJSON    bool
	docRecent  int
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage vault documents",
	Long:  `List, view, add, remove, and pin documents.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	Long: `Lists documents in creation order. With --recent N, lists the N
documents most recently shown by 'filesafe document get', newest first.`,
	Args: cobra.NoArgs,
	RunE: runDocumentList,
}

var documentGetCmd = &cobra.Command{
	Use:   "get [doc-id]",
	Short: "Show a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentGet,
}

var documentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a document",
	Long: `Adds a document to a profile. Fields are given as name=value pairs:

  filesafe document add --profile p1 --type passport \
    --field passport_number=N1234567 --field expiry_date=2030-05-01

Custom fields take a label: --custom "Locker=42".
Run 'filesafe document types' for the types and their required fields.`,
	Args: cobra.NoArgs,
	RunE: runDocumentAdd,
}

var documentRemoveCmd = &cobra.Command{
	Use:   "rm [doc-id]",
	Short: "Remove a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentRemove,
}

var documentPinCmd = &cobra.Command{
	Use:   "pin [doc-id]",
	Short: "Pin a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentPin,
}

var documentUnpinCmd = &cobra.Command{
	Use:   "unpin [doc-id]",
	Short: "Unpin a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentUnpin,
}

var documentTypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List document types",
	Args:  cobra.NoArgs,
	RunE:  runDocumentTypes,
}

func init() {
	documentListCmd.Flags().StringVarP(&docProfile, "profile", "p", "", "only this profile's documents")
	documentListCmd.Flags().BoolVar(&docJSON, "json", false, "output as JSON")
	documentListCmd.Flags().IntVar(&docRecent, "recent", 0, "only the N most recently opened documents")
	documentGetCmd.Flags().BoolVar(&docJSON, "json", false, "output as JSON")

	documentAddCmd.Flags().StringVarP(&docProfile, "profile", "p", "", "owner profile ID (default: current profile)")
	documentAddCmd.Flags().StringVarP(&docType, "type", "t", "", "document type")
	documentAddCmd.Flags().StringVar(&docTitle, "title", "", "title (default: the type's label)")
	documentAddCmd.Flags().StringArrayVarP(&docFields, "field", "f", nil, "field as name=value (repeatable)")
	documentAddCmd.Flags().StringArrayVar(&docCustom, "custom", nil, "custom field as label=value (repeatable)")
	documentAddCmd.Flags().StringVar(&docNotes, "notes", "", "free-form notes")
	_ = documentAddCmd.MarkFlagRequired("type")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentGetCmd)
	documentCmd.AddCommand(documentAddCmd)
	documentCmd.AddCommand(documentRemoveCmd)
	documentCmd.AddCommand(documentPinCmd)
	documentCmd.AddCommand(documentUnpinCmd)
	documentCmd.AddCommand(documentTypesCmd)
	rootCmd.AddCommand(documentCmd)
}

func checkDocumentService(cmd *cobra.Command) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}
	return requireUnlocked(cmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if err := checkDocumentService(cmd); err != nil {
		return err
	}
	ctx := commandContext(cmd)

	var (
		docs []domain.Document
		err  error
	)
	switch {
	case docRecent < 0:
		return fmt.Errorf("%w: --recent must not be negative", domain.ErrInvalidInput)
	case docRecent > 0:
		docs, err = documentService.ListRecent(ctx, docRecent)
		if docProfile != "" {
			docs = slices.DeleteFunc(docs, func(d domain.Document) bool { return d.ProfileID != docProfile })
		}
	case docProfile != "":
		docs, err = documentService.ListByProfile(ctx, docProfile)
	default:
		docs, err = documentService.List(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}
	if docJSON {
		return writeJSON(cmd, docs)
	}
	if len(docs) == 0 {
		cmd.Println("No documents found.")
		return nil
	}

	names := profileNames(ctx)
	for i := range docs {
		cmd.Printf("%s  %s\n", docs[i].ID, documentHeading(&docs[i], names[docs[i].ProfileID]))
	}
	return nil
}

func runDocumentGet(cmd *cobra.Command, args []string) error {
	if err := checkDocumentService(cmd); err != nil {
		return err
	}
	ctx := commandContext(cmd)

	doc, err := documentService.Open(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}
	if docJSON {
		return writeJSON(cmd, doc)
	}
	outputDocument(cmd, doc, profileNames(ctx)[doc.ProfileID])
	return nil
}

func runDocumentAdd(cmd *cobra.Command, _ []string) error {
	if err := checkDocumentService(cmd); err != nil {
		return err
	}
	ctx := commandContext(cmd)

	owner, err := activeProfile(ctx, docProfile)
	if err != nil {
		return err
	}
	if owner == "" {
		return errors.New("no profile: pass --profile or add a profile first")
	}

	doc := domain.Document{
		ProfileID: owner,
		Type:      domain.DocumentType(docType),
		Title:     docTitle,
		Notes:     docNotes,
	}
	for _, kv := range docFields {
		name, value, err := splitPair(kv)
		if err != nil {
			return err
		}
		if err := doc.SetField(name, value); err != nil {
			return err
		}
	}
	for _, kv := range docCustom {
		label, value, err := splitPair(kv)
		if err != nil {
			return err
		}
		doc.CustomFields = append(doc.CustomFields, domain.CustomField{Label: label, Value: value})
	}

	created, err := documentService.Create(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to add document: %w", err)
	}
	cmd.Printf("Added %s (%s)\n", created.Title, created.ID)
	return nil
}

func runDocumentRemove(cmd *cobra.Command, args []string) error {
	if err := checkDocumentService(cmd); err != nil {
		return err
	}
	if err := documentService.Delete(commandContext(cmd), args[0]); err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}
	cmd.Printf("Removed document %s\n", args[0])
	return nil
}

func runDocumentPin(cmd *cobra.Command, args []string) error {
	if err := checkDocumentService(cmd); err != nil {
		return err
	}
	if err := documentService.Pin(commandContext(cmd), args[0]); err != nil {
		return fmt.Errorf("failed to pin document: %w", err)
	}
	cmd.Printf("Pinned %s\n", args[0])
	return nil
}

func runDocumentUnpin(cmd *cobra.Command, args []string) error {
	if err := checkDocumentService(cmd); err != nil {
		return err
	}
	if err := documentService.Unpin(commandContext(cmd), args[0]); err != nil {
		return fmt.Errorf("failed to unpin document: %w", err)
	}
	cmd.Printf("Unpinned %s\n", args[0])
	return nil
}

func runDocumentTypes(cmd *cobra.Command, _ []string) error {
	for _, t := range domain.DocumentTypes() {
		cfg := t.Config()
		cmd.Printf("%-18s %s %s", t, cfg.Glyph, cfg.Label)
		if len(cfg.RequiredFields) > 0 {
			cmd.Printf("  (requires %s)", strings.Join(cfg.RequiredFields, ", "))
		}
		cmd.Println()
	}
	return nil
}

// splitPair splits "name=value".
func splitPair(kv string) (string, string, error) {
	name, value, ok := strings.Cut(kv, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("%w: expected name=value, got %q", domain.ErrInvalidInput, kv)
	}
	return name, strings.TrimSpace(value), nil
}
