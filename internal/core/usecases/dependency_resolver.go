// internal/core/usecases/dependency_resolver.go
package usecases

import (
	"context"
	"fmt"

	"depboot/internal/core/domain"
	"depboot/internal/core/ports"
	"depboot/internal/platform/logx"
	"depboot/internal/platform/ui"
	"depboot/internal/platform/version"
)

// DependencyResolver decides skip, upgrade or install for every requirement
// and records one outcome per entry.
type DependencyResolver struct {
	presence  ports.CapabilityCheck
	versions  ports.VersionReader
	installer ports.Installer
	reporter  ports.Reporter
	logger    logx.Logger
}

// DependencyResolverOptions configures a DependencyResolver.
type DependencyResolverOptions struct {
	// Presence is usually ports.AnyOf(ModuleLoadable, PackageIndexEntry).
	Presence  ports.CapabilityCheck
	Versions  ports.VersionReader
	Installer ports.Installer
	Reporter  ports.Reporter
	Logger    logx.Logger
}

// NewDependencyResolver creates a resolver.
func NewDependencyResolver(opts DependencyResolverOptions) *DependencyResolver {
	if opts.Reporter == nil {
		opts.Reporter = ui.NewNoopReporter()
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &DependencyResolver{
		presence:  opts.Presence,
		versions:  opts.Versions,
		installer: opts.Installer,
		reporter:  opts.Reporter,
		logger:    opts.Logger.With("component", "dependency_resolver"),
	}
}

// ResultHeaders are the columns of the resolution table.
var ResultHeaders = []string{"Library", "Version", "Minimum", "Status", "Detail"}

// Resolve processes spec in declaration order. The returned slice always has
// one outcome per entry. Cancellation is honoured between entries only; the
// remaining entries are then recorded as failed and ErrInterrupted is returned.
// ErrInterrupted is also returned when ctx ends while the last entry runs.
func (r *DependencyResolver) Resolve(ctx context.Context, spec domain.DependencySpec, env domain.EnvironmentInfo) ([]domain.DependencyOutcome, error) {
	entries := spec.Entries()
	outcomes := make([]domain.DependencyOutcome, 0, len(entries))
	rows := make([][]string, 0, len(entries))

	var runErr error
	for i, req := range entries {
		if ctx.Err() != nil {
			r.logger.Warn("resolution interrupted", "remaining", len(entries)-i)
			for _, rest := range entries[i:] {
				o := domain.DependencyOutcome{
					Name:             rest.Name,
					InstalledVersion: domain.Unknown,
					Status:           domain.StatusInstallFailed,
					Detail:           "interrupted",
				}
				outcomes = append(outcomes, o)
				rows = append(rows, o.Row(rest.MinVersion))
			}
			runErr = domain.ErrInterrupted
			break
		}

		r.reporter.Progress(i+1, len(entries), "Checking "+req.Name)
		o := r.resolveOne(ctx, req, env)
		r.logger.Debug("dependency resolved", "name", o.Name, "status", o.Status.String(), "version", o.InstalledVersion)

		outcomes = append(outcomes, o)
		rows = append(rows, o.Row(req.MinVersion))
	}

	// An interrupt during the last entry leaves nothing for the loop to skip.
	if runErr == nil && ctx.Err() != nil {
		r.logger.Warn("resolution interrupted", "remaining", 0)
		runErr = domain.ErrInterrupted
	}

	r.reporter.Table(ResultHeaders, rows, "Library check results")
	return outcomes, runErr
}

func (r *DependencyResolver) resolveOne(ctx context.Context, req domain.Requirement, env domain.EnvironmentInfo) domain.DependencyOutcome {
	out := domain.DependencyOutcome{Name: req.Name}

	if presence := r.presence.Check(ctx, req); presence != ports.PresenceLoaded {
		r.logger.Debug("dependency not present", "name", req.Name, "presence", presence.String())
		r.reporter.Status("❌", req.Name+" is not installed", ports.SeverityError, "")

		out.InstalledVersion = domain.NotInstalled
		if err := r.installer.Install(ctx, req, env); err != nil {
			out.Status = domain.StatusInstallFailed
			out.Detail = r.installFailed(req, err).Reason
		} else {
			out.Status = domain.StatusInstalled
			out.Detail = "installed >= " + req.MinVersion
		}
		return out
	}

	current, err := r.versions.ReadVersion(ctx, req)
	if err != nil {
		r.logger.Debug("version read failed", "name", req.Name, "error", err.Error())
		out.InstalledVersion = domain.Unknown
		out.Status = domain.StatusVersionUnknown
		out.Detail = "error: " + truncate(err.Error(), 50)
		return out
	}
	if current == "" {
		out.InstalledVersion = domain.Unknown
		out.Status = domain.StatusVersionUnknown
		out.Detail = "installed (version unknown)"
		return out
	}
	out.InstalledVersion = current

	satisfied, err := version.AtLeast(current, req.MinVersion)
	if err != nil {
		r.logger.Debug("version compare failed", "name", req.Name, "installed", current, "error", err.Error())
		out.Status = domain.StatusVersionUnknown
		out.Detail = "unrecognised version " + current
		return out
	}
	if satisfied {
		out.Status = domain.StatusSatisfied
		out.Detail = fmt.Sprintf("v%s (up to date)", current)
		return out
	}

	r.reporter.Status("🔄", req.Name+" needs an upgrade", ports.SeverityWarning, current+" -> "+req.MinVersion)
	if err := r.installer.Install(ctx, req, env); err != nil {
		diag := r.installFailed(req, err)
		out.Status = domain.StatusUpgradeFailed
		out.Detail = fmt.Sprintf("v%s -> v%s failed: %s", current, req.MinVersion, diag.Reason)
		return out
	}

	after, err := r.versions.ReadVersion(ctx, req)
	if err != nil || after == "" {
		after = domain.Unknown
	}
	out.InstalledVersion = after
	out.Status = domain.StatusUpgraded
	out.Detail = fmt.Sprintf("v%s -> v%s", current, after)
	return out
}

func (r *DependencyResolver) installFailed(req domain.Requirement, err error) InstallDiagnosis {
	diag := DiagnoseInstall(err)
	r.logger.Warn("install failed", "name", req.Name, "reason", diag.Reason, "error", err.Error())
	r.logger.Debug("install diagnosis", "name", req.Name, "diagnosis", diag.String())
	if len(diag.Solutions) > 0 {
		r.reporter.Status("💡", req.Name+": "+diag.Reason, ports.SeverityInfo, diag.Solutions[0])
	}
	return diag
}
