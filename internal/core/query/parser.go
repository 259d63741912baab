package query

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// Phrases that select an action. Expiry phrases are checked first.
var (
	expiryActionPhrases = []string{"next", "expiring soon", "upcoming"}
	listActionPhrases   = []string{"list", "all", "show"}
)

// Parser extracts a QueryIntent from free text using a Lexicon.
// It is safe for concurrent use.
type Parser struct {
	lexicon  Lexicon
	patterns map[string]*regexp.Regexp
}

// NewParser creates a parser over the given lexicon.
func NewParser(lexicon Lexicon) *Parser {
	p := &Parser{lexicon: lexicon, patterns: make(map[string]*regexp.Regexp)}
	for _, g := range lexicon.relationships {
		for _, kw := range g.Keywords {
			p.patterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
	return p
}

// Parse interprets a query. It never fails: unknown input yields an intent
// bound to the active profile with the find action.
func (p *Parser) Parse(query string, profiles []domain.Profile, activeProfileID string) domain.QueryIntent {
	q := strings.ToLower(query)
	intent := domain.QueryIntent{}

	p.resolveProfile(q, profiles, activeProfileID, &intent)
	if intent.ProfileID == "" {
		intent.ProfileID = activeProfileID
	}

	for _, tk := range p.lexicon.types {
		if strings.Contains(q, tk.Keyword) {
			intent.DocumentType = tk.Type
			break
		}
	}

	for _, fk := range p.lexicon.fields {
		if strings.Contains(q, fk.Keyword) {
			intent.FieldName = fk.Field
			break
		}
	}

	intent.Action = parseAction(q)
	return intent
}

func (p *Parser) resolveProfile(q string, profiles []domain.Profile, activeProfileID string, intent *domain.QueryIntent) {
	for _, prof := range profiles {
		name := strings.ToLower(prof.Name)
		if name != "" && strings.Contains(q, name) {
			intent.ProfileID = prof.ID
			intent.ProfileName = prof.Name
			return
		}
	}

	for _, g := range p.lexicon.relationships {
		for _, kw := range g.Keywords {
			if !p.patterns[kw].MatchString(q) {
				continue
			}
			if g.Relationship == domain.RelationshipSelf {
				intent.ProfileID = activeProfileID
			} else if prof := firstWithRelationship(profiles, g.Relationship); prof != nil {
				intent.ProfileID = prof.ID
				intent.ProfileName = prof.Name
			}
			// Remaining keywords of the group name the same relationship.
			break
		}
		if intent.ProfileID != "" {
			return
		}
	}
}

func firstWithRelationship(profiles []domain.Profile, rel domain.Relationship) *domain.Profile {
	for i := range profiles {
		if profiles[i].Relationship == rel {
			return &profiles[i]
		}
	}
	return nil
}

func parseAction(q string) domain.Action {
	if containsAny(q, expiryActionPhrases) {
		return domain.ActionExpiryCheck
	}
	if containsAny(q, listActionPhrases) {
		return domain.ActionList
	}
	return domain.ActionFind
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
