package grove

import "github.com/pkg/errors"

var (
	// ErrKeyNotFound is returned by lookups and removals of an absent key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyExists is returned when inserting a key that is already present;
	// the original value is retained.
	ErrKeyExists = errors.New("key already exists")

	// ErrInvalidCapacity is returned when a table is sized from a
	// non-positive expected element count.
	ErrInvalidCapacity = errors.New("expected element count must be positive")
)
