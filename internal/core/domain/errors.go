package domain

import "go.trai.ch/zerr"

var (
	// ErrChangesDetected is returned by the check command in exit-code mode
	// when the lock snapshot no longer matches the manifest.
	ErrChangesDetected = zerr.New("changes detected")

	// ErrMalformedManifest is returned when the manifest file cannot be
	// mapped into the domain model.
	ErrMalformedManifest = zerr.New("malformed manifest")

	// ErrMalformedLock is returned when the lock snapshot file cannot be
	// mapped into the domain model.
	ErrMalformedLock = zerr.New("malformed lock snapshot")

	// ErrUnknownOrigin is returned when a remote file reference declares an
	// origin kind the loader does not recognize.
	ErrUnknownOrigin = zerr.New("unknown remote origin")

	// ErrDuplicatePackage is returned when a group declares the same
	// package requirement twice.
	ErrDuplicatePackage = zerr.New("duplicate package requirement")

	// ErrInvalidConstraint is returned when a declared version requirement
	// cannot be parsed by the version predicate.
	ErrInvalidConstraint = zerr.New("invalid version constraint")

	// ErrInvalidVersion is returned when a lock-recorded version cannot be
	// parsed by the version predicate.
	ErrInvalidVersion = zerr.New("invalid version")
)
