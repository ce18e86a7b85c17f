// Package parcel contains the package aggregate and its supporting value objects.
// The Go keyword "package" is not available as an identifier, so the aggregate
// is named Parcel in code; on the wire and in storage it remains a "package".
//
// The aggregate enforces the lifecycle invariants of the tracking domain:
//   - A parcel is always created in Created status with exactly one history entry
//   - Status changes only happen through ChangeStatus, which validates the
//     transition against the state machine and appends a history entry
//   - The current status always equals the status of the latest history entry
//   - History entries are immutable and ordered by the time they were recorded
//
// Supporting types:
//   - Status: the five-state lifecycle enum with its transition rules
//   - Contact: sender/recipient name, address and phone value object
//   - HistoryEntry: a single immutable status-history record
package parcel
