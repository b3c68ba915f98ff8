package rbset

import "errors"

var (
	// ErrInvalidConfig signals an invalid set configuration.
	ErrInvalidConfig = errors.New("rbset: invalid configuration")
	// ErrInconsistent signals that a set's cached state or ordering does not
	// match its tree.
	ErrInconsistent = errors.New("rbset: inconsistent set")
)
