// Package services provides the domain services of the ordering core. They are
// pure: they read aggregates, decide, and return results without touching storage.
//
// The package includes:
//   - NegotiationEngine: applies a delivery-date negotiation action to an order and
//     lists the notifications the transition must trigger
//   - LockingGuard: decides whether a locked order may still be mutated
//   - Authorize: ownership and role checks for an actor acting on an order
package services
