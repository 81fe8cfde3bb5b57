// Package order provides the Order aggregate and its delivery-date negotiation
// state machine.
//
// The package includes:
//   - Order: the aggregate root holding the desired, suggested and final delivery windows
//   - Status: the closed set of order states
//   - Action: the closed set of things an actor can do to an order
//   - Item: a line of the order, guarded by the lock
//
// State transitions (Status.Next is the single source of truth):
//
//	new ──> processing ──┐
//	 │                   ├──> pending_customer_review <──> pending_admin_review
//	 └───────────────────┘            │                          │
//	                                  └──> date_accepted <───────┘
//	any non-terminal ──> date_forced (operator)
//	date_accepted | date_forced ──> completed
//	any non-terminal ──> cancelled
//
// Key business rules:
//   - A suggestion exists if and only if the order is in a review status
//   - A final window is only set by acceptance or by an operator forcing it
//   - Reaching a final window locks the order; locked orders reject edits except
//     the operator overrides checked by services.LockingGuard
package order
