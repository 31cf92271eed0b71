// Package capacity provides the per-day production limit configuration for
// the order-intake system.
//
// The package includes:
//   - DayCapacity: An operator-set limit for one production day
//   - DefaultMaxUnits: The fallback applied to days without a record
//
// Capacity limits are a soft guard for operator judgment, not a hard
// business rule: the admission workflow surfaces a warning when a day is
// full and persists over-capacity orders only on explicit override.
package capacity
