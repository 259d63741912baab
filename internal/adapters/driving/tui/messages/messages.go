// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/filesafe/internal/core/domain"
)

// SearchCompleted carries a search result back to the model.
type SearchCompleted struct {
	Result *domain.SearchResult
	// Chip is the suggestion label that produced the result, empty for typed queries.
	Chip string
	Err  error
}

// SuggestionsLoaded carries the chip labels for the active profile.
type SuggestionsLoaded struct {
	Chips []string
	Err   error
}

// ActiveProfileLoaded carries the profile queries are scoped to.
// Profile is nil when none is set.
type ActiveProfileLoaded struct {
	Profile *domain.Profile
	Err     error
}

// OwnersLoaded maps profile IDs to display names.
type OwnersLoaded struct {
	Owners map[string]string
}

// DocumentSelected asks the app to open a document. Field names the field
// to preselect, usually the result's highlighted field.
type DocumentSelected struct {
	ID    string
	Field string
}

// DocumentLoaded carries a document fetched for the details view.
type DocumentLoaded struct {
	Document *domain.Document
	Owner    string
	Field    string
	Err      error
}

// FieldCopied reports a clipboard copy from the details view.
type FieldCopied struct {
	Label string
	Err   error
}

// PinToggled reports the outcome of pinning or unpinning a document.
type PinToggled struct {
	ID     string
	Pinned bool
	Err    error
}

// UnlockRequested carries a PIN typed on the unlock screen.
type UnlockRequested struct {
	PIN string
}

// UnlockCompleted reports the outcome of an unlock attempt.
type UnlockCompleted struct {
	Err error
}

// StoreChanged is sent when the data directory changes outside the TUI.
type StoreChanged struct{}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ErrorOccurred carries an error to display.
type ErrorOccurred struct {
	Err error
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the query input, suggestion chips and results.
	ViewSearch ViewType = iota
	// ViewUnlock is the PIN prompt shown while the vault is locked.
	ViewUnlock
	// ViewDocDetails shows every field of one document.
	ViewDocDetails
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewUnlock:
		return "unlock"
	case ViewDocDetails:
		return "docdetails"
	default:
		return "unknown"
	}
}
