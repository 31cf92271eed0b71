// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"bakehouse/internal/core/ports"
)

// NowFunc supplies the current time to command handlers. Handlers never
// read the system clock directly; the composition root wires time.Now and
// tests wire a fixed instant.
type NowFunc func() time.Time

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CapacityRepoFactory provides access to the capacity repository within a transaction.
	CapacityRepoFactory interface {
		CapacityRepository() ports.CapacityRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CapacityUoW manages transactions for capacity administration.
	// Used when commands only touch capacity records.
	CapacityUoW interface {
		TxManager
		CapacityRepoFactory
	}

	// CapacityUoWFactory creates new capacity unit of work instances.
	CapacityUoWFactory interface {
		Create() CapacityUoW
	}

	// AdmissionUoW manages transactions spanning orders and capacity.
	// The admission workflow needs both: the capacity lock and limit on one
	// side, the order tally and insert on the other, all in one transaction
	// so the check-then-insert pattern cannot race.
	AdmissionUoW interface {
		TxManager
		OrderRepoFactory
		CapacityRepoFactory
	}

	// AdmissionUoWFactory creates new admission unit of work instances.
	AdmissionUoWFactory interface {
		Create() AdmissionUoW
	}
)
