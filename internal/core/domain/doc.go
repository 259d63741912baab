// Package domain defines the core business entities for FileSafe.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Profile: A family member who owns documents
//   - Document: A stored record of a real-world credential, card or policy
//   - QueryIntent: The structured meaning of a free-text query
//   - SearchResult: The resolved, field-highlighted answer to a query
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
