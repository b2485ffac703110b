package store

import "errors"

var (
	// ErrDuplicateKey is returned by create operations when a row with the
	// same primary key already exists. The existing row is left unmodified.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned by get, update and delete operations when no
	// row matches the given primary key.
	ErrNotFound = errors.New("record not found")

	// ErrReferenceNotFound is returned when a write names a foreign key whose
	// target row does not exist.
	ErrReferenceNotFound = errors.New("referenced record not found")

	// ErrInUse is returned by delete operations when dependent rows still
	// reference the target row. Deletes never cascade.
	ErrInUse = errors.New("record is referenced by dependent rows")
)
