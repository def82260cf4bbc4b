package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTarget is returned when the game binary is missing or not executable.
	ErrInvalidTarget = zerr.New("invalid target binary")

	// ErrUnsupportedPlatform is returned when the binary signature is neither ELF nor PE.
	ErrUnsupportedPlatform = zerr.New("unsupported binary platform")

	// ErrCompatibilityInitFailed is returned when the compatibility prefix cannot be initialized.
	ErrCompatibilityInitFailed = zerr.New("compatibility environment initialization failed")

	// ErrNoPrimaryOutput is returned when no output is marked primary and no explicit resolution was requested.
	ErrNoPrimaryOutput = zerr.New("no primary output")

	// ErrDisplayToolingUnavailable is returned when output enumeration itself fails.
	ErrDisplayToolingUnavailable = zerr.New("display tooling unavailable")

	// ErrCommandFailed is returned when a system command exits non-zero.
	ErrCommandFailed = zerr.New("command failed")
)
