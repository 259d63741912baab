// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ProfileStore: Profile persistence
//   - DocumentStore: Document persistence, including the expiring query
//   - VaultStore: PIN verifier and lock settings persistence
//   - ConfigStore: Application configuration
//   - SecretHasher: One-way hashing of the PIN and recovery key
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ChangeNotifier: Signals external changes to the data directory. Without it
//     the TUI only refreshes after its own writes.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
