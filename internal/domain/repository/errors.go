// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "errors"

// Lookup sentinels returned when a record does not exist.
var (
	ErrIdentityNotFound    = errors.New("identity not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrVisitNotFound       = errors.New("visit report not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrTargetNotFound      = errors.New("target not found")
	ErrPerformanceNotFound = errors.New("performance log not found")
	ErrMRRequestNotFound   = errors.New("mr request not found")
)

// Compare-and-swap sentinels.
var (
	// ErrStaleState is returned when a guarded update finds the record no longer in the expected state.
	ErrStaleState = errors.New("record state changed concurrently")
	// ErrAlreadyProcessed is returned when an MR request is no longer pending.
	ErrAlreadyProcessed = errors.New("mr request already processed")
)
