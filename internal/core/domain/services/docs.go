// Package services contains stateless domain services that implement
// business logic spanning aggregates.
//
// CapacityChecker decides whether a proposed order fits the remaining
// production capacity of a day. It operates on plain tallies so it can be
// exercised identically by the admission workflow (inside a transaction)
// and by the read-only capacity check query.
package services
