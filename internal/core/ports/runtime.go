// internal/core/ports/runtime.go
package ports

import (
	"context"

	"depboot/internal/core/domain"
)

// CommandRunner executes a structured argv as a child process.
// A non-zero exit or a missing executable is reported through
// CommandResult.Succeeded, not through the error.
type CommandRunner interface {
	Run(ctx context.Context, inv domain.Invocation) (domain.CommandResult, error)
}

// RuntimeInfo holds the facts reported by the interpreter about itself.
type RuntimeInfo struct {
	Version    string `json:"version"`
	Executable string `json:"executable"`
	Prefix     string `json:"prefix"`
	Machine    string `json:"machine"`
	Platform   string `json:"platform"`
}

// RuntimeInspector asks the managed interpreter about itself.
type RuntimeInspector interface {
	Inspect(ctx context.Context) (RuntimeInfo, error)
}

// EnvironmentDetector builds the host fingerprint. It never fails.
type EnvironmentDetector interface {
	Detect(ctx context.Context) domain.EnvironmentInfo
}

// VersionReader reads the version attribute of an importable module.
// An empty string with a nil error means the module exposes no version.
type VersionReader interface {
	ReadVersion(ctx context.Context, req domain.Requirement) (string, error)
}

// Importer imports a module in a fresh interpreter process.
type Importer interface {
	Import(ctx context.Context, req domain.Requirement) domain.VerificationResult
}

// Installer installs or upgrades one requirement. It returns nil when any
// attempt succeeded, otherwise a *domain.InstallError describing the last one.
type Installer interface {
	Install(ctx context.Context, req domain.Requirement, env domain.EnvironmentInfo) error
}

// PrivilegeContext reports whether the process runs elevated.
type PrivilegeContext interface {
	IsElevated() bool
}

// ReportWriter persists the end-of-run audit record.
type ReportWriter interface {
	Persist(report domain.RunReport) error
}
