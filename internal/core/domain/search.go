package domain

// Action controls how the resolver treats a parsed query.
type Action string

// Query actions.
const (
	// ActionFind looks up documents; the default.
	ActionFind Action = "find"

	// ActionList lists every matching document.
	ActionList Action = "list"

	// ActionExpiryCheck returns dated documents, earliest expiry first.
	ActionExpiryCheck Action = "expiry_check"
)

// String returns the string representation.
func (a Action) String() string {
	return string(a)
}

// QueryIntent is the structured meaning of a free-text query.
// It is produced by the parser and consumed immediately by the resolver.
type QueryIntent struct {
	// ProfileID is the profile whose documents are searched. Empty means all profiles.
	ProfileID string `json:"profile_id,omitempty"`

	// ProfileName is the name that matched, when a profile was named or
	// found through a relationship keyword.
	ProfileName string `json:"profile_name,omitempty"`

	// DocumentType restricts results to one type. Empty means any type.
	DocumentType DocumentType `json:"document_type,omitempty"`

	// FieldName is the field the user asked about. Empty means none.
	FieldName string `json:"field_name,omitempty"`

	// Action is always set by the parser.
	Action Action `json:"action"`
}

// ResultKind describes the shape of a search result.
type ResultKind string

// Result kinds.
const (
	// ResultKindDocument is exactly one matching document.
	ResultKindDocument ResultKind = "document"

	// ResultKindField is exactly one matching document with a requested field.
	ResultKindField ResultKind = "field"

	// ResultKindMultiple is zero or several matching documents.
	ResultKindMultiple ResultKind = "multiple"
)

// String returns the string representation.
func (k ResultKind) String() string {
	return string(k)
}

// SearchResult is the answer to one query.
type SearchResult struct {
	// Kind is document or field for a single match, multiple otherwise.
	Kind ResultKind `json:"type"`

	// Documents are the matches in result order.
	Documents []Document `json:"documents"`

	// HighlightedField is the field the presentation layer should emphasise.
	HighlightedField string `json:"highlighted_field,omitempty"`

	// Profile is the resolved profile, attached for context.
	Profile *Profile `json:"profile,omitempty"`

	// Query echoes the original query string.
	Query string `json:"query"`
}

// Empty reports whether nothing matched.
func (r *SearchResult) Empty() bool {
	return len(r.Documents) == 0
}
