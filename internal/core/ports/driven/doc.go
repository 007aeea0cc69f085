// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Transport: Performs HTTP exchanges against the catalog host
//   - RecipeCatalog: Fetches and normalises catalog recipes
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - FavoriteStore: Pinned-recipe persistence. Without it, the
//     favorites commands report that favorites are disabled.
//
// # Import Rules
//
//   - Can Import: domain package and standard library only
//   - Cannot Import: Any adapter or connector package
package driven
