package rbset

import "fmt"

// Config configures a set.
type Config[T any] struct {
	// Compare orders the elements. Required.
	Compare Comparator[T]
	// Linkage locates the Node inside an element. Required.
	Linkage Linkage[T]
	// Checked makes the set run Check after every insertion and removal and
	// panic on the first inconsistency. This turns every operation into O(n)
	// and is meant for debugging clients.
	Checked bool
}

func (cfg Config[T]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.Linkage == nil {
		return fmt.Errorf("%w: linkage is required", ErrInvalidConfig)
	}
	return nil
}

// Create creates an empty set from a configuration. Other than New it reports
// an invalid configuration as an error.
func Create[T any](cfg Config[T]) (*Set[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := New(cfg.Compare, cfg.Linkage)
	s.checked = cfg.Checked
	return s, nil
}
