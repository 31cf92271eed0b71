package kernel

import (
	"fmt"

	"bakehouse/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID
// that bypassed the constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object for aggregates. It wraps
// github.com/google/uuid behind an immutable type so the rest of the domain
// never handles raw identifier bytes or strings.
//
// The zero value is invalid; construct through NewUUID, UUIDFromString, or
// UUIDFromBytes.
//
// Example:
//
//	orderID := kernel.NewUUID()
//
//	// Rehydrating from a route parameter
//	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version-4 UUID. This is how every new
// aggregate gets its identity.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its text form. Accepts the standard
// formats ("xxxxxxxx-...", braced, urn:uuid:). Used at the boundaries:
// route parameters, query strings, persistence rehydration.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice, rejecting the nil
// UUID. Useful when identifiers arrive as binary data.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// A zero value renders as the nil UUID string.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID. The GORM DTO layer needs it for
// column values; domain code should not.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs carry the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks if the UUID is properly constructed.
// Returns ErrUUIDIsNotConstructed for the zero (nil) UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
