// Package services provides domain services that implement business logic
// spanning multiple domain entities of the shipping system: rules that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - SubmissionValidator: the six-check rule pipeline deciding whether a
//     shipping transaction may be submitted
//   - QuoteEngine: carrier pricing across ground, air, and freight tiers
//   - ConfirmationGenerator: confirmation and tracking number issuance
//
// All services are pure functions of their inputs plus injected clock and
// randomness sources, so callers can run them concurrently without locking
// and tests can pin their outputs.
package services
