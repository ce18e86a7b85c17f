// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"tracker/internal/core/ports"
)

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

	// ParcelRepoFactory provides access to the package repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// ParcelUoW manages transactions for package operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new package unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}
)

// TrackingNumberGenerator produces tracking-number candidates for new packages.
// Satisfied by services.TrackingNumberGenerator; abstracted here so handler
// tests can force deterministic numbers.
type TrackingNumberGenerator interface {
	Generate(at time.Time) string
}
