package domain

import "time"

// Relationship describes how a profile relates to the vault owner.
type Relationship string

// Known relationships.
const (
	RelationshipSelf    Relationship = "self"
	RelationshipSpouse  Relationship = "spouse"
	RelationshipChild   Relationship = "child"
	RelationshipParent  Relationship = "parent"
	RelationshipSibling Relationship = "sibling"
	RelationshipOther   Relationship = "other"
)

// IsValid returns true if the relationship is recognised.
// An empty relationship is valid; it means "not specified".
func (r Relationship) IsValid() bool {
	switch r {
	case "", RelationshipSelf, RelationshipSpouse, RelationshipChild,
		RelationshipParent, RelationshipSibling, RelationshipOther:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Relationship) String() string {
	return string(r)
}

// Profile is a family member whose documents are kept in the vault.
type Profile struct {
	// ID is the unique identifier. It never changes after creation.
	ID string `json:"id"`

	// Name is the display name, also matched by the query parser.
	Name string `json:"name"`

	// Relationship is the optional relationship to the vault owner.
	Relationship Relationship `json:"relationship,omitempty"`

	// Avatar is an optional glyph shown next to the name.
	Avatar string `json:"avatar,omitempty"`

	// CreatedAt is when the profile was created.
	CreatedAt time.Time `json:"created_at"`
}

// FindProfile returns the profile with the given ID, or nil.
func FindProfile(profiles []Profile, id string) *Profile {
	for i := range profiles {
		if profiles[i].ID == id {
			p := profiles[i]
			return &p
		}
	}
	return nil
}
