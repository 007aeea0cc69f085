// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services have no side effects beyond their injected ports, so every
// behaviour here is testable with in-memory fakes.
package services
