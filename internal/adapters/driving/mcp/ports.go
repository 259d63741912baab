package mcp

import (
	"github.com/custodia-labs/filesafe/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server uses.
type Ports struct {
	// Search answers queries and suggestion chips.
	Search driving.SearchService

	// Profile lists family members and resolves the active profile.
	Profile driving.ProfileService

	// Document reads documents for the resources. Optional.
	Document driving.DocumentService

	// Vault gates every request when a PIN is set. Optional.
	Vault driving.VaultService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Profile == nil {
		return ErrMissingProfileService
	}
	return nil
}
