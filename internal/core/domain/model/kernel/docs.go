// Package kernel provides the value objects shared by the storefront aggregates.
//
// The package includes:
//   - UUID: identifiers with validation and a stable byte-wise ordering
//   - Address: a normalized single-line shipping address
//   - TrackingNumber: the "TRK-XXXXXXXX" shipment token assigned at dispatch
//
// Every value object has an invalid zero value and must be built through its
// constructor, so a Validate call is enough to catch uninitialized fields.
package kernel
