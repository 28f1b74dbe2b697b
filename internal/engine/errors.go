package engine

import "errors"

var (
	// ErrInvalidConfiguration marks a configuration that violates one of
	// the engine invariants (weight sum, threshold ordering, unknown role).
	// Callers must reject the configuration before persistence; the engine
	// never clamps or repairs it.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNoAvailableModel is returned when role resolution exhausts every
	// fallback, including the global cheapest-available model. This is the
	// one fatal condition in the engine.
	ErrNoAvailableModel = errors.New("no available model")
)
