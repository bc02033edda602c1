// Package registry owns the four in-memory entity collections and enforces
// referential integrity across them. This file defines the error taxonomy
// shared by all registry operations. These sentinel values allow the HTTP
// layer to distinguish failure classes without string matching: invalid
// input maps to 400, missing references to 404 and integrity violations
// to 409. Every failure is raised before any mutation happens, so a failed
// operation always leaves the collections untouched.
package registry

import "errors"

// ErrInvalidInput is returned when an operation receives an absent or
// malformed argument, such as a nil entity, a negative payment or a start
// date after the end date.
var ErrInvalidInput = errors.New("invalid input")

// ErrConflict is returned when a removal would violate a referential
// integrity rule, such as deleting a cinema that still has an active rental,
// or when closing an already-closed rental while re-closing is disallowed.
var ErrConflict = errors.New("conflict")

// Per-entity not-found sentinels. Operations that resolve a foreign key or
// look up a target by id return these when the identifier does not match any
// stored entity.
var (
	ErrCinemaNotFound   = errors.New("cinema not found")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrFilmNotFound     = errors.New("film not found")
	ErrRentalNotFound   = errors.New("rental not found")
)
