package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/filesafe/internal/core/domain"
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
	"github.com/custodia-labs/filesafe/internal/core/ports/driving"
	"github.com/custodia-labs/filesafe/internal/logger"
)

// Ensure SampleDataService implements the interface.
var _ driving.SampleDataService = (*SampleDataService)(nil)

// Sample profile IDs.
const (
	SampleProfileSelf   = "profile-me"
	SampleProfileSpouse = "profile-wife"
	SampleProfileChild  = "profile-kid1"
)

// SampleDataService seeds a demo family into an empty vault.
type SampleDataService struct {
	profileStore driven.ProfileStore
	docStore     driven.DocumentStore
	now          func() time.Time
}

// NewSampleDataService creates a new sample data service.
func NewSampleDataService(profileStore driven.ProfileStore, docStore driven.DocumentStore) *SampleDataService {
	return &SampleDataService{
		profileStore: profileStore,
		docStore:     docStore,
		now:          time.Now,
	}
}

// Seed adds the sample profiles and documents when there are no profiles.
func (s *SampleDataService) Seed(ctx context.Context) (bool, error) {
	existing, err := s.profileStore.List(ctx)
	if err != nil {
		return false, fmt.Errorf("list profiles: %w", err)
	}
	if len(existing) > 0 {
		logger.Debug("Vault has %d profiles, skipping sample data", len(existing))
		return false, nil
	}

	now := s.now().UTC()
	profiles := SampleProfiles()
	for i := range profiles {
		profiles[i].CreatedAt = now
		if err := s.profileStore.Save(ctx, &profiles[i]); err != nil {
			return false, fmt.Errorf("save sample profile %s: %w", profiles[i].ID, err)
		}
	}

	docs := SampleDocuments()
	for i := range docs {
		docs[i].CreatedAt = now
		docs[i].UpdatedAt = now
		if err := s.docStore.Save(ctx, &docs[i]); err != nil {
			return false, fmt.Errorf("save sample document %s: %w", docs[i].ID, err)
		}
	}

	logger.Info("Seeded %d profiles and %d documents", len(profiles), len(docs))
	return true, nil
}

// SampleProfiles returns the demo family.
func SampleProfiles() []domain.Profile {
	return []domain.Profile{
		{ID: SampleProfileSelf, Name: "Me", Relationship: domain.RelationshipSelf, Avatar: "👤"},
		{ID: SampleProfileSpouse, Name: "Sara", Relationship: domain.RelationshipSpouse, Avatar: "👩"},
		{ID: SampleProfileChild, Name: "Alex", Relationship: domain.RelationshipChild, Avatar: "👦"},
	}
}

// SampleDocuments returns the demo documents, one or more per sample profile.
func SampleDocuments() []domain.Document {
	return []domain.Document{
		{
			ID: "doc-1", ProfileID: SampleProfileSelf, Type: domain.DocumentTypePassport, Title: "Passport",
			PassportNumber: "N1234567", FullName: "John Doe", DateOfBirth: "1990-05-15", Nationality: "USA",
			IssueDate: "2020-01-10", ExpiryDate: "2030-01-10", IssuingAuthority: "US Department of State",
			CustomFields: []domain.CustomField{},
		},
		{
			ID: "doc-2", ProfileID: SampleProfileSelf, Type: domain.DocumentTypeDrivingLicense, Title: "Driving License",
			LicenseNumber: "DL123456789", FullName: "John Doe", DateOfBirth: "1990-05-15",
			IssueDate: "2021-03-15", ExpiryDate: "2026-03-15", IssuingAuthority: "DMV",
			CustomFields: []domain.CustomField{},
		},
		{
			ID: "doc-3", ProfileID: SampleProfileSelf, Type: domain.DocumentTypeNationalID, Title: "National ID",
			IDNumber: "ID987654321", FullName: "John Doe", DateOfBirth: "1990-05-15", Nationality: "USA",
			IssueDate: "2018-05-20", ExpiryDate: "2028-05-20", IssuingAuthority: "Department of Internal Affairs",
			CustomFields: []domain.CustomField{},
		},
		{
			ID: "doc-4", ProfileID: SampleProfileSpouse, Type: domain.DocumentTypePassport, Title: "Passport",
			PassportNumber: "P9876543", FullName: "Sara Doe", DateOfBirth: "1992-08-22", Nationality: "USA",
			IssueDate: "2019-06-20", ExpiryDate: "2029-06-20", IssuingAuthority: "US Department of State",
			CustomFields: []domain.CustomField{},
		},
		{
			ID: "doc-5", ProfileID: SampleProfileSpouse, Type: domain.DocumentTypeResidencePermit, Title: "Residence Permit",
			PermitNumber: "RP-2024-5566", PermitType: "Permanent Residence", FullName: "Sara Doe",
			DateOfBirth: "1992-08-22", IssueDate: "2023-01-15", ExpiryDate: "2028-01-15",
			IssuingAuthority: "Immigration Department",
			CustomFields:     []domain.CustomField{},
		},
		{
			ID: "doc-6", ProfileID: SampleProfileChild, Type: domain.DocumentTypePassport, Title: "Passport",
			PassportNumber: "C1112233", FullName: "Alex Doe", DateOfBirth: "2015-12-10", Nationality: "USA",
			IssueDate: "2022-01-05", ExpiryDate: "2027-01-05", IssuingAuthority: "US Department of State",
			CustomFields: []domain.CustomField{},
		},
		{
			ID: "doc-7", ProfileID: SampleProfileChild, Type: domain.DocumentTypeMedicalCard, Title: "Health Insurance Card",
			CardNumber: "MED-445566778", Provider: "Blue Cross Health", FullName: "Alex Doe",
			DateOfBirth: "2015-12-10", IssueDate: "2024-01-01", ExpiryDate: "2025-01-01",
			CustomFields: []domain.CustomField{},
		},
		{
			ID: "doc-8", ProfileID: SampleProfileSelf, Type: domain.DocumentTypeInsurance, Title: "Health Insurance",
			PolicyNumber: "HI-2024-123456", InsuranceType: "Health", Provider: "Blue Cross Blue Shield",
			CoverageAmount: "$500,000", Premium: "$450/month", IssueDate: "2024-01-01", ExpiryDate: "2025-01-01",
			CustomFields: []domain.CustomField{},
		},
		{
			ID: "doc-9", ProfileID: SampleProfileSelf, Type: domain.DocumentTypeInsurance, Title: "Auto Insurance",
			PolicyNumber: "AUTO-8877665", InsuranceType: "Auto", Provider: "State Farm",
			CoverageAmount: "$100,000", Premium: "$120/month", IssueDate: "2024-03-15", ExpiryDate: "2025-03-15",
			CustomFields: []domain.CustomField{
				{ID: "c1", Label: "Vehicle", Value: "2021 Honda Accord", Type: domain.FieldTypeText},
			},
		},
		{
			ID: "doc-10", ProfileID: SampleProfileSelf, Type: domain.DocumentTypeBankCard, Title: "Credit Card",
			CardNumber: "**** **** **** 1234", CardType: "Visa", BankName: "Chase Bank", FullName: "John Doe",
			ExpiryDate:   "2027-12-31",
			CustomFields: []domain.CustomField{},
		},
		{
			ID: "doc-11", ProfileID: SampleProfileSelf, Type: domain.DocumentTypeVisa, Title: "Tourist Visa",
			PermitNumber: "VISA-2024-9988", FullName: "John Doe", Nationality: "USA",
			IssueDate: "2024-06-01", ExpiryDate: "2025-06-01", IssuingAuthority: "Embassy of France",
			CustomFields: []domain.CustomField{
				{ID: "c2", Label: "Visa Type", Value: "Tourist (90 days)", Type: domain.FieldTypeText},
			},
		},
	}
}
