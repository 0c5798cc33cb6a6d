// internal/core/usecases/pipeline.go
package usecases

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"depboot/internal/core/domain"
	"depboot/internal/core/ports"
	"depboot/internal/platform/errors"
	"depboot/internal/platform/logx"
	"depboot/internal/platform/ui"
	"depboot/internal/platform/version"
)

// DefaultMinRuntime is the lowest interpreter version the pipeline accepts.
const DefaultMinRuntime = "3.7.0"

// Summary is what a pipeline run produced, whatever its outcome.
type Summary struct {
	Environment   domain.EnvironmentInfo
	Outcomes      []domain.DependencyOutcome
	Verification  []domain.VerificationResult
	ReportWritten bool
	Duration      time.Duration
}

// Pipeline runs privilege guard, detection, runtime gate, manager bootstrap,
// resolution, verification and report persistence in that order.
type Pipeline struct {
	detector     ports.EnvironmentDetector
	privilege    ports.PrivilegeContext
	bootstrapper *ManagerBootstrapper
	resolver     *DependencyResolver
	verifier     *VerificationStage
	persister    ports.ReportWriter

	spec       domain.DependencySpec
	minRuntime string
	osFamily   domain.OSFamily
	workingDir string
	nextSteps  []string
	now        func() time.Time

	reporter ports.Reporter
	logger   logx.Logger
}

// PipelineOptions configures a Pipeline.
type PipelineOptions struct {
	Detector     ports.EnvironmentDetector
	Privilege    ports.PrivilegeContext
	Bootstrapper *ManagerBootstrapper
	Resolver     *DependencyResolver
	Verifier     *VerificationStage
	Persister    ports.ReportWriter

	Spec       domain.DependencySpec
	MinRuntime string
	// OSFamily of the host; defaults to the one derived from GOOS.
	OSFamily   domain.OSFamily
	WorkingDir string
	// NextSteps are printed after a successful run.
	NextSteps []string
	Now       func() time.Time

	Reporter ports.Reporter
	Logger   logx.Logger
}

// NewPipeline creates a pipeline.
func NewPipeline(opts PipelineOptions) *Pipeline {
	if opts.MinRuntime == "" {
		opts.MinRuntime = DefaultMinRuntime
	}
	if opts.OSFamily == "" {
		opts.OSFamily = domain.OSFamilyFromGOOS(runtime.GOOS)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Reporter == nil {
		opts.Reporter = ui.NewNoopReporter()
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	return &Pipeline{
		detector:     opts.Detector,
		privilege:    opts.Privilege,
		bootstrapper: opts.Bootstrapper,
		resolver:     opts.Resolver,
		verifier:     opts.Verifier,
		persister:    opts.Persister,
		spec:         opts.Spec,
		minRuntime:   opts.MinRuntime,
		osFamily:     opts.OSFamily,
		workingDir:   opts.WorkingDir,
		nextSteps:    opts.NextSteps,
		now:          opts.Now,
		reporter:     opts.Reporter,
		logger:       opts.Logger.With("component", "pipeline"),
	}
}

// Run executes the pipeline once. Any fatal stage failure is returned as an
// error wrapping one of the domain sentinels; the Summary holds whatever was
// gathered until then. The report is persisted once for every run that got
// past the privilege guard.
func (p *Pipeline) Run(ctx context.Context) (summary Summary, err error) {
	start := p.now()
	defer func() {
		summary.Duration = p.now().Sub(start)
	}()

	if p.osFamily != domain.OSFamilyWindows && p.privilege != nil && p.privilege.IsElevated() {
		p.reporter.Status("⚠️", "Do not run this as root", ports.SeverityError, "Exit and run again as a regular user")
		return summary, domain.ErrElevatedPrivilege
	}

	p.reporter.Step(1, "System information", "Collecting environment facts")
	env := p.detector.Detect(ctx)
	summary.Environment = env
	p.reporter.Table([]string{"Property", "Value"}, env.Rows(), "System information")
	p.logger.Info("environment detected",
		"os", env.OSName,
		"arch", env.Architecture,
		"runtime", env.RuntimeVersion,
		"sandboxed", env.Sandboxed,
	)

	defer func() {
		summary.ReportWritten = p.persist(env)
		p.footer(err)
	}()

	if err := p.checkRuntime(env); err != nil {
		return summary, err
	}

	p.reporter.Step(2, "Package manager", "Checking pip")
	if !p.bootstrapper.Ensure(ctx, env) {
		if ctx.Err() != nil {
			return summary, domain.ErrInterrupted
		}
		return summary, domain.ErrManagerUnavailable
	}

	p.reporter.Step(3, "Libraries", "Checking and installing required libraries")
	outcomes, resolveErr := p.resolver.Resolve(ctx, p.spec, env)
	summary.Outcomes = outcomes
	if resolveErr != nil {
		return summary, resolveErr
	}
	if failed := domain.FailedNames(outcomes); len(failed) > 0 {
		return summary, fmt.Errorf("%w: %s", domain.ErrDependenciesFailed, strings.Join(failed, ", "))
	}

	if ctx.Err() != nil {
		return summary, domain.ErrInterrupted
	}

	p.reporter.Step(4, "Final check", "Importing every library in a fresh interpreter")
	ok, results := p.verifier.Verify(ctx, p.spec.Entries())
	summary.Verification = results
	if !ok {
		if ctx.Err() != nil {
			return summary, domain.ErrInterrupted
		}
		return summary, domain.ErrVerificationFailed
	}

	return summary, nil
}

func (p *Pipeline) checkRuntime(env domain.EnvironmentInfo) error {
	if !env.HasRuntime() {
		p.reporter.Status("❌", "Python interpreter not available", ports.SeverityError, env.RuntimeExecutable)
		return domain.ErrRuntimeUnavailable
	}

	ok, err := version.AtLeast(env.RuntimeVersion, p.minRuntime)
	if err != nil {
		p.reporter.Status("❌", "Python version could not be read", ports.SeverityError, env.RuntimeVersion)
		return fmt.Errorf("%w: %v", domain.ErrRuntimeUnavailable, err)
	}
	if !ok {
		p.reporter.Status("❌", "Python version too old", ports.SeverityError,
			fmt.Sprintf("Requires %s+, found %s", p.minRuntime, env.RuntimeVersion))
		return fmt.Errorf("%w: %s < %s", domain.ErrRuntimeTooOld, env.RuntimeVersion, p.minRuntime)
	}

	p.reporter.Status("✅", "Python version OK", ports.SeveritySuccess, env.RuntimeVersion)
	return nil
}

func (p *Pipeline) persist(env domain.EnvironmentInfo) bool {
	if p.persister == nil {
		return false
	}

	report := domain.NewRunReport(env, p.spec, p.now(), p.workingDir)
	if err := p.persister.Persist(report); err != nil {
		p.logger.Warn("report not written", "error", err.Error())
		p.reporter.Status("⚠️", "Could not save the report", ports.SeverityWarning, err.Error())
		return false
	}

	p.reporter.Status("💾", "Report saved", ports.SeveritySuccess, "")
	return true
}

func (p *Pipeline) footer(err error) {
	if err != nil {
		p.reporter.Status("❌", failureMessage(err), ports.SeverityError, err.Error())
		return
	}

	p.reporter.Status("🚀", "All libraries are ready", ports.SeveritySuccess, "")
	if len(p.nextSteps) > 0 {
		rows := make([][]string, len(p.nextSteps))
		for i, s := range p.nextSteps {
			rows[i] = []string{s}
		}
		p.reporter.Table([]string{"Next steps"}, rows, "")
	}
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrRuntimeUnavailable):
		return "Python interpreter is not usable"
	case errors.Is(err, domain.ErrRuntimeTooOld):
		return "Python version does not meet the requirement"
	case errors.Is(err, domain.ErrManagerUnavailable):
		return "Could not install pip"
	case errors.Is(err, domain.ErrInterrupted):
		return "Stopped by user"
	case errors.Is(err, domain.ErrDependenciesFailed):
		return "Some libraries failed to install"
	case errors.Is(err, domain.ErrVerificationFailed):
		return "Some libraries failed to import"
	default:
		return "Dependency check failed"
	}
}
