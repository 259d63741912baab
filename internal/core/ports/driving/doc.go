// Package driving defines the operations the CLI, TUI and MCP server call:
// search and suggestions, profile and document management, vault locking
// and settings.
//
// Implementations live in internal/core/services.
package driving
