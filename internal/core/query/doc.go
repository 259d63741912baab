// Package query turns free-text vault queries into structured intents
// and resolves them against a snapshot of profiles and documents.
//
// The package is pure: it performs no I/O and never mutates its inputs.
// Services load the snapshot from the driven stores and call Search.
package query
