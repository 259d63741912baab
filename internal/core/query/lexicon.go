package query

import (
	"slices"

	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// TypeKeyword maps a query keyword to a document type.
type TypeKeyword struct {
	Keyword string
	Type    domain.DocumentType
}

// FieldKeyword maps a query keyword to a logical field name.
type FieldKeyword struct {
	Keyword string
	Field   string
}

// RelationshipGroup lists the keywords that refer to one relationship.
type RelationshipGroup struct {
	Relationship domain.Relationship
	Keywords     []string
}

// Lexicon is the ordered vocabulary used by the parser.
// Table order is significant: the first matching keyword wins.
type Lexicon struct {
	types         []TypeKeyword
	fields        []FieldKeyword
	relationships []RelationshipGroup
}

// NewLexicon builds a lexicon from the given tables. The tables are copied.
func NewLexicon(types []TypeKeyword, fields []FieldKeyword, relationships []RelationshipGroup) Lexicon {
	return Lexicon{
		types:         slices.Clone(types),
		fields:        slices.Clone(fields),
		relationships: cloneGroups(relationships),
	}
}

// TypeKeywords returns a copy of the document-type table.
func (l Lexicon) TypeKeywords() []TypeKeyword {
	return slices.Clone(l.types)
}

// FieldKeywords returns a copy of the field table.
func (l Lexicon) FieldKeywords() []FieldKeyword {
	return slices.Clone(l.fields)
}

// RelationshipGroups returns a copy of the relationship table.
func (l Lexicon) RelationshipGroups() []RelationshipGroup {
	return cloneGroups(l.relationships)
}

func cloneGroups(groups []RelationshipGroup) []RelationshipGroup {
	out := make([]RelationshipGroup, len(groups))
	for i, g := range groups {
		out[i] = RelationshipGroup{Relationship: g.Relationship, Keywords: slices.Clone(g.Keywords)}
	}
	return out
}

// DefaultLexicon returns the built-in English vocabulary.
//
// "card" precedes "medical card", so a medical card query resolves to
// bank_card, and the bare "id" matches any query containing those two letters.
// Both are long-standing behaviour and are kept as is.
func DefaultLexicon() Lexicon {
	return NewLexicon(defaultTypeKeywords, defaultFieldKeywords, defaultRelationshipGroups)
}

var defaultTypeKeywords = []TypeKeyword{
	{"passport", domain.DocumentTypePassport},
	{"passports", domain.DocumentTypePassport},
	{"driving license", domain.DocumentTypeDrivingLicense},
	{"driver license", domain.DocumentTypeDrivingLicense},
	{"license", domain.DocumentTypeDrivingLicense},
	{"driver", domain.DocumentTypeDrivingLicense},
	{"national id", domain.DocumentTypeNationalID},
	{"resident id", domain.DocumentTypeNationalID},
	{"id card", domain.DocumentTypeNationalID},
	{"id", domain.DocumentTypeNationalID},
	{"identification", domain.DocumentTypeNationalID},
	{"visa", domain.DocumentTypeVisa},
	{"visas", domain.DocumentTypeVisa},
	{"residence permit", domain.DocumentTypeResidencePermit},
	{"resident permit", domain.DocumentTypeResidencePermit},
	{"work permit", domain.DocumentTypeResidencePermit},
	{"permit", domain.DocumentTypeResidencePermit},
	{"insurance", domain.DocumentTypeInsurance},
	{"policy", domain.DocumentTypeInsurance},
	{"health insurance", domain.DocumentTypeInsurance},
	{"auto insurance", domain.DocumentTypeInsurance},
	{"car insurance", domain.DocumentTypeInsurance},
	{"life insurance", domain.DocumentTypeInsurance},
	{"travel insurance", domain.DocumentTypeInsurance},
	{"bank card", domain.DocumentTypeBankCard},
	{"credit card", domain.DocumentTypeBankCard},
	{"debit card", domain.DocumentTypeBankCard},
	{"card", domain.DocumentTypeBankCard},
	{"medical card", domain.DocumentTypeMedicalCard},
	{"health card", domain.DocumentTypeMedicalCard},
}

var defaultFieldKeywords = []FieldKeyword{
	{"expire", domain.FieldExpiryDate},
	{"expires", domain.FieldExpiryDate},
	{"expiry", domain.FieldExpiryDate},
	{"expiration", domain.FieldExpiryDate},
	{"valid until", domain.FieldExpiryDate},
	{"number", domain.FieldNumber},
	{"numbers", domain.FieldNumber},
	{"policy number", domain.FieldNumber},
	{"card number", domain.FieldNumber},
	{"permit number", domain.FieldNumber},
	{"dob", domain.FieldDateOfBirth},
	{"birth", domain.FieldDateOfBirth},
	{"birthday", domain.FieldDateOfBirth},
	{"born", domain.FieldDateOfBirth},
	{"name", domain.FieldFullName},
	{"nationality", domain.FieldNationality},
	{"issue", domain.FieldIssueDate},
	{"issued", domain.FieldIssueDate},
	{"provider", domain.FieldProvider},
	{"insurance provider", domain.FieldProvider},
	{"coverage", domain.FieldCoverageAmount},
	{"premium", domain.FieldPremium},
	{"type", domain.FieldInsuranceType},
}

var defaultRelationshipGroups = []RelationshipGroup{
	{domain.RelationshipSelf, []string{"my", "me", "i", "mine"}},
	{domain.RelationshipSpouse, []string{"wife", "husband", "spouse", "partner"}},
	{domain.RelationshipChild, []string{"kid", "child", "son", "daughter"}},
}
