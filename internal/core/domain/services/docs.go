// Package services provides domain services that span the Order and Wand aggregates.
//
// The package includes:
//   - WandAllocator: deterministic score-driven wand selection
//   - OrderLifecycle: order transitions that change the wand in lockstep
package services
