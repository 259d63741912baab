package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// now is the clock used for expiry labels. Replaced in tests.
var now = time.Now

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// profileNames maps profile IDs to names. Lookup failures yield an empty map.
func profileNames(ctx context.Context) map[string]string {
	names := make(map[string]string)
	if profileService == nil {
		return names
	}
	profiles, err := profileService.List(ctx)
	if err != nil {
		return names
	}
	for _, p := range profiles {
		names[p.ID] = p.Name
	}
	return names
}

func outputResult(cmd *cobra.Command, res *domain.SearchResult) {
	if res.Empty() {
		cmd.Println("No documents found.")
		return
	}

	names := profileNames(commandContext(cmd))
	if res.Profile != nil {
		names[res.Profile.ID] = res.Profile.Name
	}

	cmd.Printf("Results (%s):\n\n", res.Kind)
	for i := range res.Documents {
		doc := &res.Documents[i]
		cmd.Printf("  [%d] %s\n", i+1, documentHeading(doc, names[doc.ProfileID]))

		field := res.HighlightedField
		if field == "" || field == domain.FieldTitle {
			field = doc.NumberFieldName()
		}
		if value, ok := doc.Field(field); ok {
			cmd.Printf("      %s: %s\n", domain.FieldLabel(field), value)
		}
		if field != domain.FieldExpiryDate && doc.ExpiryDate != "" {
			cmd.Printf("      Expiry: %s\n", expiryLabel(doc.ExpiryDate))
		}
		if res.Kind == domain.ResultKindDocument && len(res.Documents) == 1 {
			cmd.Printf("      ID: %s\n", doc.ID)
		}
		cmd.Println()
	}
}

func documentHeading(doc *domain.Document, owner string) string {
	heading := doc.Title
	if glyph := doc.Type.Config().Glyph; glyph != "" {
		heading = glyph + " " + heading
	}
	if doc.IsPinned {
		heading += " *"
	}
	if owner != "" {
		heading += " · " + owner
	}
	return heading
}

func outputDocument(cmd *cobra.Command, doc *domain.Document, owner string) {
	cmd.Println(documentHeading(doc, owner))
	cmd.Printf("  ID:   %s\n", doc.ID)
	cmd.Printf("  Type: %s\n", doc.Type.Config().Label)
	for _, f := range domain.DisplayFields() {
		value, ok := doc.Field(f)
		if !ok {
			continue
		}
		if f == domain.FieldExpiryDate {
			value = expiryLabel(value)
		}
		cmd.Printf("  %s: %s\n", domain.FieldLabel(f), value)
	}
	for _, cf := range doc.CustomFields {
		cmd.Printf("  %s: %s\n", cf.Label, cf.Value)
	}
	if doc.Notes != "" {
		cmd.Printf("  Notes: %s\n", doc.Notes)
	}
}

// expiryLabel renders a date with its expiry status.
func expiryLabel(date string) string {
	if status := domain.StatusOf(date, now()).Describe(); status != "" {
		return fmt.Sprintf("%s (%s)", date, status)
	}
	return date
}
