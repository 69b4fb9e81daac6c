package adapter

import "errors"

var (
	// ErrNoIoSystem is returned by New when given a nil backend.
	ErrNoIoSystem = errors.New("adapter: iosys.IoSystem is required")
)
