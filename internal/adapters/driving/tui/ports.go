// Package tui provides an interactive terminal user interface for FileSafe.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/filesafe/internal/core/ports/driven"
	"github.com/custodia-labs/filesafe/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search answers queries and suggestion chips.
	Search driving.SearchService

	// Profile resolves the active profile and owner names.
	Profile driving.ProfileService

	// Document loads details and toggles pins. Optional.
	Document driving.DocumentService

	// Vault gates the TUI behind the PIN. Optional; nil means no lock.
	Vault driving.VaultService

	// Notifier reports changes made by other processes. Optional.
	Notifier driven.ChangeNotifier
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Profile == nil {
		return ErrMissingProfileService
	}
	return nil
}
