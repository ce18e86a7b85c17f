// Package services provides domain services for the package-tracking system.
// It implements business logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - TrackingNumberGenerator: A domain service producing human-readable
//     tracking-number candidates for new packages
//
// Domain services stay free of infrastructure concerns; uniqueness of the
// generated tracking numbers is ultimately enforced by the store's unique
// constraint with a retry policy in the application layer.
package services
