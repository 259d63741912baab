// Package mcp provides an MCP (Model Context Protocol) server adapter for FileSafe.
// It lets AI assistants query the vault through tools and read-only resources.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingProfileService is returned when the profile service is not provided.
var ErrMissingProfileService = errors.New("mcp: profile service is required")
