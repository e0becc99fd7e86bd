// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Uploader: Sends a selection to the analysis service
//   - ConfigStore: Persisted client configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - EnvSource: Environment overrides. Without it only the config file and defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
