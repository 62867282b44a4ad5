package arena

import "errors"

var (
	// ErrSpawnExhausted means a spawn region could not fit the requested population
	// within the attempt budget.
	ErrSpawnExhausted = errors.New("spawn attempts exhausted")
	// ErrInvalidRegion is returned for spawn regions without interior.
	ErrInvalidRegion = errors.New("invalid spawn region")
	// ErrInvariantViolated is returned by Step in strict mode when the population
	// or an agent's speed changed.
	ErrInvariantViolated = errors.New("world invariant violated")
)
