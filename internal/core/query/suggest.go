package query

import (
	"strings"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// ExpiringSuggestion is the chip that lists documents expiring soon.
// It is always offered and is handled without the parser.
const ExpiringSuggestion = "⏰ Expiring"

// legacyExpiringSuggestion is the long form still accepted from older clients.
const legacyExpiringSuggestion = "Next expiring document"

// suggestionChips is the fixed chip order. Each label contains a type
// keyword so that parsing the label finds the same type.
var suggestionChips = []struct {
	Type  domain.DocumentType
	Label string
}{
	{domain.DocumentTypePassport, "🛂 Passport"},
	{domain.DocumentTypeDrivingLicense, "🚗 License"},
	{domain.DocumentTypeInsurance, "🛡️ Insurance"},
	{domain.DocumentTypeResidencePermit, "🏠 Permit"},
	{domain.DocumentTypeBankCard, "💳 Card"},
}

// Suggest returns the quick-search chips for the active profile: one per
// chip type the profile owns a document of, then ExpiringSuggestion.
func Suggest(active domain.Profile, documents []domain.Document) []string {
	owned := make(map[domain.DocumentType]bool)
	for _, d := range documents {
		if d.ProfileID == active.ID {
			owned[d.Type] = true
		}
	}

	suggestions := make([]string, 0, len(suggestionChips)+1)
	for _, c := range suggestionChips {
		if owned[c.Type] {
			suggestions = append(suggestions, c.Label)
		}
	}
	return append(suggestions, ExpiringSuggestion)
}

// IsExpiringSuggestion reports whether a label selects the expiring shortcut.
func IsExpiringSuggestion(label string) bool {
	label = strings.TrimSpace(label)
	return label == ExpiringSuggestion || strings.EqualFold(label, legacyExpiringSuggestion)
}
