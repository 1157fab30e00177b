package palette

import "errors"

var (
	// ErrNotConfigured is returned when the registry is mutated before Configure.
	ErrNotConfigured = errors.New("command registry is not configured")

	// ErrSetupMissing is returned when a session is opened before Configure.
	ErrSetupMissing = errors.New("palette setup has not been run")

	// ErrNoCommandsConfigured is returned when a session is opened over an empty registry.
	ErrNoCommandsConfigured = errors.New("no commands configured")

	// ErrInvalidCommand is returned by Configure and Add for malformed commands.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrAlreadyOpen is returned when a session is opened while another is active.
	ErrAlreadyOpen = errors.New("palette is already open")
)
