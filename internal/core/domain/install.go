// internal/core/domain/install.go
package domain

import "fmt"

// InstallError reports that every install attempt for a package failed.
// It describes the last attempt made.
type InstallError struct {
	Package  string
	Attempts int
	Command  string
	Last     CommandResult
	// Cause is set when the last command could not be launched or the run
	// ended before the attempts were exhausted.
	Cause error
}

func (e *InstallError) Error() string {
	msg := fmt.Sprintf("install %s: %d attempts failed", e.Package, e.Attempts)
	switch {
	case e.Cause != nil:
		return msg + ": " + e.Cause.Error()
	case e.Last.Message() != "":
		return msg + ": " + e.Last.Message()
	default:
		return msg
	}
}

// Unwrap exposes the launch failure and the kill reason of the last attempt.
func (e *InstallError) Unwrap() []error {
	var errs []error
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	if e.Last.Killed != nil {
		errs = append(errs, e.Last.Killed)
	}
	return errs
}
