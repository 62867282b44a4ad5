package server

import "github.com/pkg/errors"

// Server-specific errors
var (
	ErrServerNotRunning     = errors.New("server is not running")
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrNoSnapshot           = errors.New("no snapshot rendered yet")
	ErrClientClosed         = errors.New("client is closed")
)
