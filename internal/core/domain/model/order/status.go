package order

import (
	"errors"
	"fmt"

	"bakehouse/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for every rejected status change.
// Use errors.Is to classify; the concrete InvalidTransitionError names the
// current and requested statuses.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the fulfillment lifecycle state of an order.
// It implements a state machine with an explicit transition table so that
// orders follow the production workflow and illegal changes are rejected.
//
// State transitions:
//
//	Pending ──> InProduction ──> Ready ──> Delivered
//	   │              │            │
//	   └──────────────┴────────────┴─────> Cancelled
//
// Delivered and Cancelled are terminal: they have no outgoing transitions.
// A same-state request is not a no-op; it is rejected like any other
// illegal transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every accepted order.
	Pending

	// InProduction indicates the order is being produced.
	InProduction

	// Ready indicates production is finished and the order awaits pickup
	// or delivery.
	Ready

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was called off. Terminal; cancellation
	// releases the order's units from its day's occupancy.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		Pending:      "pending",
		InProduction: "in_production",
		Ready:        "ready",
		Delivered:    "delivered",
		Cancelled:    "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:      "pending",
		InProduction: "in_production",
		Ready:        "ready",
		Delivered:    "delivered",
		Cancelled:    "cancelled",
	}
}

// getTransitions returns the allowed-successor set for every status.
// The state machine lives in this single table; adding or auditing a
// transition is a one-place change.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:      {InProduction, Cancelled},
		InProduction: {Ready, Cancelled},
		Ready:        {Delivered, Cancelled},
		Delivered:    {},
		Cancelled:    {},
	}
}

// StatusFromString parses a status from its persisted/wire representation.
// Returns an error for anything outside the closed enumeration.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is part of the closed enumeration.
//
// Valid statuses are: Pending, InProduction, Ready, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status.
// Implements fmt.Stringer and is safe to call on any Status value;
// invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has an empty successor set.
// Terminal orders accept no further status changes.
func (s Status) IsTerminal() bool {
	return len(getTransitions()[s]) == 0 && s.Validate() == nil
}

// CanTransitionTo reports whether target is in the allowed-successor set
// of s, without performing the transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status to target.
//
// The transition is legal only if target is in the allowed-successor set of
// the current status. Any other request, including a same-state request, is
// rejected with an InvalidTransitionError naming both statuses.
//
// Example:
//
//	next, err := currentStatus.TransitionTo(order.InProduction)
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    // Handle illegal transition
//	}
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{From: s, To: target}
	}

	return target, nil
}

// InvalidTransitionError reports a rejected status change, carrying the
// current and requested statuses so callers can surface both.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move order from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
