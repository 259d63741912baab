package query

import (
	"slices"
	"time"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// Resolve applies an intent to a snapshot of documents and profiles.
// The documents slice is never modified. Resolve never fails; no match
// yields an empty result of kind multiple.
func Resolve(intent domain.QueryIntent, documents []domain.Document, profiles []domain.Profile, query string) domain.SearchResult {
	docs := make([]domain.Document, 0, len(documents))
	for _, d := range documents {
		if intent.ProfileID != "" && d.ProfileID != intent.ProfileID {
			continue
		}
		if intent.DocumentType != "" && d.Type != intent.DocumentType {
			continue
		}
		docs = append(docs, d)
	}

	if intent.Action == domain.ActionExpiryCheck {
		return SortByExpiry(docs, query)
	}

	profile := domain.FindProfile(profiles, intent.ProfileID)

	if intent.FieldName != "" {
		return domain.SearchResult{
			Kind:             kindFor(docs, domain.ResultKindField),
			Documents:        docs,
			HighlightedField: intent.FieldName,
			Profile:          profile,
			Query:            query,
		}
	}

	return domain.SearchResult{
		Kind:      kindFor(docs, domain.ResultKindDocument),
		Documents: docs,
		Profile:   profile,
		Query:     query,
	}
}

// SortByExpiry keeps the documents with a parsable expiry date and orders
// them earliest first. Documents sharing a date keep their relative order.
func SortByExpiry(documents []domain.Document, query string) domain.SearchResult {
	type dated struct {
		doc    domain.Document
		expiry time.Time
	}
	withDate := make([]dated, 0, len(documents))
	for _, d := range documents {
		if t, ok := domain.ParseDate(d.ExpiryDate); ok {
			withDate = append(withDate, dated{d, t})
		}
	}
	slices.SortStableFunc(withDate, func(a, b dated) int {
		return a.expiry.Compare(b.expiry)
	})

	docs := make([]domain.Document, len(withDate))
	for i, d := range withDate {
		docs[i] = d.doc
	}
	return domain.SearchResult{
		Kind:             kindFor(docs, domain.ResultKindDocument),
		Documents:        docs,
		HighlightedField: domain.FieldExpiryDate,
		Query:            query,
	}
}

// kindFor returns single when exactly one document matched, multiple otherwise.
func kindFor(docs []domain.Document, single domain.ResultKind) domain.ResultKind {
	if len(docs) == 1 {
		return single
	}
	return domain.ResultKindMultiple
}

var defaultSearcher = NewSearcher(DefaultLexicon())

// Search parses a query with the default lexicon and resolves it in one step.
func Search(query string, documents []domain.Document, profiles []domain.Profile, activeProfileID string) domain.SearchResult {
	return defaultSearcher.Search(query, documents, profiles, activeProfileID)
}

// Searcher pairs a parser with the resolver.
type Searcher struct {
	parser *Parser
}

// NewSearcher creates a searcher over the given lexicon.
func NewSearcher(lexicon Lexicon) *Searcher {
	return &Searcher{parser: NewParser(lexicon)}
}

// Parse exposes the underlying parser.
func (s *Searcher) Parse(query string, profiles []domain.Profile, activeProfileID string) domain.QueryIntent {
	return s.parser.Parse(query, profiles, activeProfileID)
}

// Search parses a query and resolves it against the snapshot.
func (s *Searcher) Search(query string, documents []domain.Document, profiles []domain.Profile, activeProfileID string) domain.SearchResult {
	intent := s.parser.Parse(query, profiles, activeProfileID)
	return Resolve(intent, documents, profiles, query)
}
