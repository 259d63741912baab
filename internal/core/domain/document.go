package domain

import (
	"fmt"
	"strings"
	"time"
)

// Logical and concrete field names understood by Document.Field.
// The search engine highlights results using these names.
const (
	FieldTitle            = "title"
	FieldNumber           = "number"
	FieldPassportNumber   = "passport_number"
	FieldLicenseNumber    = "license_number"
	FieldIDNumber         = "id_number"
	FieldPermitNumber     = "permit_number"
	FieldPolicyNumber     = "policy_number"
	FieldCardNumber       = "card_number"
	FieldFullName         = "full_name"
	FieldDateOfBirth      = "date_of_birth"
	FieldNationality      = "nationality"
	FieldIssueDate        = "issue_date"
	FieldExpiryDate       = "expiry_date"
	FieldIssuingAuthority = "issuing_authority"
	FieldPlaceOfIssue     = "place_of_issue"
	FieldInsuranceType    = "insurance_type"
	FieldProvider         = "provider"
	FieldCoverageAmount   = "coverage_amount"
	FieldPremium          = "premium"
	FieldCardType         = "card_type"
	FieldBankName         = "bank_name"
	FieldPermitType       = "permit_type"
	FieldSponsor          = "sponsor"
	FieldNotes            = "notes"
)

// DisplayFields returns the built-in fields in display order, title and notes excluded.
func DisplayFields() []string {
	return []string{
		FieldPassportNumber, FieldLicenseNumber, FieldIDNumber,
		FieldPermitNumber, FieldPolicyNumber, FieldCardNumber,
		FieldFullName, FieldDateOfBirth, FieldNationality,
		FieldIssueDate, FieldExpiryDate, FieldIssuingAuthority,
		FieldPlaceOfIssue, FieldInsuranceType, FieldProvider,
		FieldCoverageAmount, FieldPremium, FieldCardType,
		FieldBankName, FieldPermitType, FieldSponsor,
	}
}

// FieldType is the input type of a custom field.
type FieldType string

// Custom field types.
const (
	FieldTypeText   FieldType = "text"
	FieldTypeDate   FieldType = "date"
	FieldTypeNumber FieldType = "number"
	FieldTypeEmail  FieldType = "email"
	FieldTypePhone  FieldType = "phone"
)

// CustomField is a user-defined label/value pair attached to a document.
type CustomField struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Value string    `json:"value"`
	Type  FieldType `json:"type"`
}

// Document is a single stored record owned by exactly one profile.
// Type-dependent fields are optional; an empty string means "not set".
// Dates are ISO calendar dates (YYYY-MM-DD).
type Document struct {
	ID        string       `json:"id"`
	ProfileID string       `json:"profile_id"`
	Type      DocumentType `json:"type"`
	Title     string       `json:"title"`

	PassportNumber string `json:"passport_number,omitempty"`
	LicenseNumber  string `json:"license_number,omitempty"`
	IDNumber       string `json:"id_number,omitempty"`
	PermitNumber   string `json:"permit_number,omitempty"`
	PolicyNumber   string `json:"policy_number,omitempty"`
	CardNumber     string `json:"card_number,omitempty"`

	FullName         string `json:"full_name,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	Nationality      string `json:"nationality,omitempty"`
	IssueDate        string `json:"issue_date,omitempty"`
	ExpiryDate       string `json:"expiry_date,omitempty"`
	IssuingAuthority string `json:"issuing_authority,omitempty"`
	PlaceOfIssue     string `json:"place_of_issue,omitempty"`

	// Insurance.
	InsuranceType  string `json:"insurance_type,omitempty"`
	Provider       string `json:"provider,omitempty"`
	CoverageAmount string `json:"coverage_amount,omitempty"`
	Premium        string `json:"premium,omitempty"`

	// Bank and medical cards.
	CardType string `json:"card_type,omitempty"`
	BankName string `json:"bank_name,omitempty"`

	// Residence permits.
	PermitType string `json:"permit_type,omitempty"`
	Sponsor    string `json:"sponsor,omitempty"`

	CustomFields []CustomField `json:"custom_fields"`
	Notes        string        `json:"notes,omitempty"`

	IsPinned       bool       `json:"is_pinned,omitempty"`
	PinnedAt       *time.Time `json:"pinned_at,omitempty"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// fieldRef returns a pointer to the concrete string field with the given name.
func (d *Document) fieldRef(name string) *string {
	switch name {
	case FieldTitle:
		return &d.Title
	case FieldPassportNumber:
		return &d.PassportNumber
	case FieldLicenseNumber:
		return &d.LicenseNumber
	case FieldIDNumber:
		return &d.IDNumber
	case FieldPermitNumber:
		return &d.PermitNumber
	case FieldPolicyNumber:
		return &d.PolicyNumber
	case FieldCardNumber:
		return &d.CardNumber
	case FieldFullName:
		return &d.FullName
	case FieldDateOfBirth:
		return &d.DateOfBirth
	case FieldNationality:
		return &d.Nationality
	case FieldIssueDate:
		return &d.IssueDate
	case FieldExpiryDate:
		return &d.ExpiryDate
	case FieldIssuingAuthority:
		return &d.IssuingAuthority
	case FieldPlaceOfIssue:
		return &d.PlaceOfIssue
	case FieldInsuranceType:
		return &d.InsuranceType
	case FieldProvider:
		return &d.Provider
	case FieldCoverageAmount:
		return &d.CoverageAmount
	case FieldPremium:
		return &d.Premium
	case FieldCardType:
		return &d.CardType
	case FieldBankName:
		return &d.BankName
	case FieldPermitType:
		return &d.PermitType
	case FieldSponsor:
		return &d.Sponsor
	case FieldNotes:
		return &d.Notes
	}
	return nil
}

// NumberFieldName returns the concrete field holding the document number.
// Documents whose type has no dedicated number field report the first
// number field that is set, so custom documents still answer "number".
func (d *Document) NumberFieldName() string {
	if f := d.Type.Config().NumberField; f != "" {
		return f
	}
	for _, f := range []string{
		FieldPassportNumber, FieldLicenseNumber, FieldIDNumber,
		FieldPermitNumber, FieldPolicyNumber, FieldCardNumber,
	} {
		if *d.fieldRef(f) != "" {
			return f
		}
	}
	return ""
}

// Field returns the value of a logical or concrete field and whether it is set.
// The logical name "number" resolves to the type-specific number field.
// Unknown names are looked up among the custom field labels (case-insensitive).
func (d *Document) Field(name string) (string, bool) {
	if name == FieldNumber {
		name = d.NumberFieldName()
		if name == "" {
			return "", false
		}
	}
	if ref := d.fieldRef(name); ref != nil {
		return *ref, *ref != ""
	}
	for _, cf := range d.CustomFields {
		if strings.EqualFold(cf.Label, name) {
			return cf.Value, cf.Value != ""
		}
	}
	return "", false
}

// SetField assigns a concrete field by name. "number" writes the
// type-specific number field.
func (d *Document) SetField(name, value string) error {
	if name == FieldNumber {
		name = d.NumberFieldName()
		if name == "" {
			name = FieldCardNumber
		}
	}
	ref := d.fieldRef(name)
	if ref == nil {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, name)
	}
	*ref = value
	return nil
}

// MissingRequiredFields returns the required fields of the document's type that are empty.
func (d *Document) MissingRequiredFields() []string {
	var missing []string
	for _, f := range d.Type.Config().RequiredFields {
		if v, ok := d.Field(f); !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// TitleKey normalises a title for the per-profile uniqueness check.
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// FieldLabel returns a display label for a field name.
func FieldLabel(name string) string {
	switch name {
	case FieldNumber:
		return "Number"
	case FieldIDNumber:
		return "ID Number"
	case FieldDateOfBirth:
		return "Date of Birth"
	case FieldPlaceOfIssue:
		return "Place of Issue"
	}
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
