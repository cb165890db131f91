package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Playback errors
	ErrNoCodec          = fmt.Errorf("no codec configured")
	ErrPlaybackStopped  = fmt.Errorf("playback stopped")
	ErrStoreUnavailable = fmt.Errorf("session store unavailable")
	ErrSessionNotFound  = fmt.Errorf("session not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
