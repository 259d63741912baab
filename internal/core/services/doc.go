// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Query parsing and resolution live in the pure query package;
// services load the snapshot it works on.
package services
