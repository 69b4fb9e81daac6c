package engine

import "errors"

var (
	// ErrNoGame is returned by New when given a nil Game.
	ErrNoGame = errors.New("engine: a Game is required")
)
