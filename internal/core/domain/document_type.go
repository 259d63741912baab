package domain

// DocumentType tags a document with one of a closed set of kinds.
type DocumentType string

// Document types.
const (
	DocumentTypePassport        DocumentType = "passport"
	DocumentTypeDrivingLicense  DocumentType = "driving_license"
	DocumentTypeNationalID      DocumentType = "national_id"
	DocumentTypeVisa            DocumentType = "visa"
	DocumentTypeResidencePermit DocumentType = "residence_permit"
	DocumentTypeInsurance       DocumentType = "insurance"
	DocumentTypeBankCard        DocumentType = "bank_card"
	DocumentTypeMedicalCard     DocumentType = "medical_card"
	DocumentTypeCustom          DocumentType = "custom"
)

// DocumentTypes lists every document type in display order.
func DocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentTypePassport,
		DocumentTypeDrivingLicense,
		DocumentTypeNationalID,
		DocumentTypeVisa,
		DocumentTypeResidencePermit,
		DocumentTypeInsurance,
		DocumentTypeBankCard,
		DocumentTypeMedicalCard,
		DocumentTypeCustom,
	}
}

// IsValid returns true if the document type is recognised.
func (t DocumentType) IsValid() bool {
	_, ok := documentTypeConfigs[t]
	return ok
}

// String returns the string representation.
func (t DocumentType) String() string {
	return string(t)
}

// Config returns the static configuration for the type.
// Unknown types fall back to the custom configuration.
func (t DocumentType) Config() DocumentTypeConfig {
	if cfg, ok := documentTypeConfigs[t]; ok {
		return cfg
	}
	return documentTypeConfigs[DocumentTypeCustom]
}

// DocumentCategory groups document types for display.
type DocumentCategory string

// Document categories.
const (
	CategoryIdentity       DocumentCategory = "identity"
	CategoryImmigration    DocumentCategory = "immigration"
	CategoryInsuranceCards DocumentCategory = "insurance_cards"
	CategoryOther          DocumentCategory = "other"
)

// DocumentTypeConfig is the static metadata attached to a document type.
type DocumentTypeConfig struct {
	// Type is the document type this configuration describes.
	Type DocumentType

	// Label is the human-readable name, also the default title.
	Label string

	// Glyph is a short pictogram shown next to the label.
	Glyph string

	// Category groups the type for display.
	Category DocumentCategory

	// RequiredFields must be non-empty when a document is added.
	RequiredFields []string

	// NumberField is the concrete field holding the document number.
	// Empty for types without a number.
	NumberField string

	// NumberFieldLabel is the label shown for the number field.
	NumberFieldLabel string
}

var documentTypeConfigs = map[DocumentType]DocumentTypeConfig{
	DocumentTypePassport: {
		Type:             DocumentTypePassport,
		Label:            "Passport",
		Glyph:            "🛂",
		Category:         CategoryIdentity,
		RequiredFields:   []string{FieldTitle, FieldPassportNumber, FieldExpiryDate},
		NumberField:      FieldPassportNumber,
		NumberFieldLabel: "Passport Number",
	},
	DocumentTypeDrivingLicense: {
		Type:             DocumentTypeDrivingLicense,
		Label:            "Driving License",
		Glyph:            "🚗",
		Category:         CategoryIdentity,
		RequiredFields:   []string{FieldTitle, FieldLicenseNumber, FieldExpiryDate},
		NumberField:      FieldLicenseNumber,
		NumberFieldLabel: "License Number",
	},
	DocumentTypeNationalID: {
		Type:             DocumentTypeNationalID,
		Label:            "National ID",
		Glyph:            "🪪",
		Category:         CategoryIdentity,
		RequiredFields:   []string{FieldTitle, FieldIDNumber, FieldExpiryDate},
		NumberField:      FieldIDNumber,
		NumberFieldLabel: "ID Number",
	},
	DocumentTypeVisa: {
		Type:             DocumentTypeVisa,
		Label:            "Visa",
		Glyph:            "✈️",
		Category:         CategoryImmigration,
		RequiredFields:   []string{FieldTitle, FieldExpiryDate},
		NumberField:      FieldPermitNumber,
		NumberFieldLabel: "Visa Number",
	},
	DocumentTypeResidencePermit: {
		Type:             DocumentTypeResidencePermit,
		Label:            "Residence Permit",
		Glyph:            "🏠",
		Category:         CategoryImmigration,
		RequiredFields:   []string{FieldTitle, FieldExpiryDate},
		NumberField:      FieldPermitNumber,
		NumberFieldLabel: "Permit Number",
	},
	DocumentTypeInsurance: {
		Type:             DocumentTypeInsurance,
		Label:            "Insurance Policy",
		Glyph:            "🛡️",
		Category:         CategoryInsuranceCards,
		RequiredFields:   []string{FieldTitle, FieldInsuranceType},
		NumberField:      FieldPolicyNumber,
		NumberFieldLabel: "Policy Number",
	},
	DocumentTypeBankCard: {
		Type:             DocumentTypeBankCard,
		Label:            "Bank Card",
		Glyph:            "💳",
		Category:         CategoryInsuranceCards,
		RequiredFields:   []string{FieldTitle},
		NumberField:      FieldCardNumber,
		NumberFieldLabel: "Card Number (last 4 digits recommended)",
	},
	DocumentTypeMedicalCard: {
		Type:             DocumentTypeMedicalCard,
		Label:            "Medical Card",
		Glyph:            "🏥",
		Category:         CategoryInsuranceCards,
		RequiredFields:   []string{FieldTitle},
		NumberField:      FieldCardNumber,
		NumberFieldLabel: "Card Number",
	},
	DocumentTypeCustom: {
		Type:           DocumentTypeCustom,
		Label:          "Custom Document",
		Glyph:          "📄",
		Category:       CategoryOther,
		RequiredFields: []string{FieldTitle},
	},
}

// DefaultTitle returns the title given to a new document of the type
// when the user leaves the title empty.
func DefaultTitle(t DocumentType) string {
	return t.Config().Label
}
