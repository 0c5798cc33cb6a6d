// internal/core/domain/errors.go
package domain

import "errors"

// Domain errors.
var (
	// Pipeline fatal errors
	ErrElevatedPrivilege  = errors.New("refusing to run with elevated privileges")
	ErrRuntimeUnavailable = errors.New("runtime interpreter unavailable")
	ErrRuntimeTooOld      = errors.New("runtime version below required minimum")
	ErrManagerUnavailable = errors.New("package manager could not be bootstrapped")
	ErrDependenciesFailed = errors.New("one or more dependencies failed to install")
	ErrVerificationFailed = errors.New("one or more dependencies failed to import")
	ErrInterrupted        = errors.New("interrupted by user")

	// Command errors
	ErrCommandUnlaunchable = errors.New("command could not be launched")

	// Specification errors
	ErrInvalidSpec       = errors.New("invalid dependency specification")
	ErrDuplicateName     = errors.New("duplicate dependency name")
	ErrInvalidMinVersion = errors.New("minimum version must have three numeric components")

	// Report errors
	ErrReportWriteFailed = errors.New("failed to write report")
)

