// Package order implements the Order aggregate: the purchase lifecycle state
// machine that couples a wizard to a single wand.
//
// The package includes:
//   - Order: the aggregate root with payment, shipping and review data
//   - Status: the lifecycle state machine (Pending through Refunded)
//   - Provider: the payment provider enum
//   - Review: the moderated post-completion review value object
//   - ChangedEvent: raised on creation and on every status change
//
// Wand side effects (claim, Sold, release) are not performed here; the
// application layer applies them in the same unit of work.
package order
