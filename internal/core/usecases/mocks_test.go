// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"depboot/internal/core/domain"
	"depboot/internal/core/ports"
	"depboot/internal/platform/logx"
	"depboot/internal/testutil"
)

func testLogger() logx.Logger {
	return logx.NewSilent()
}

// fakeRunner replays a testutil.Script. Commands listed in errs fail to launch.
type fakeRunner struct {
	script    *testutil.Script
	errs      map[string]error
	onSuccess func(inv domain.Invocation)
	onFail    func(inv domain.Invocation)
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{script: testutil.NewScript(), errs: map[string]error{}}
}

func (f *fakeRunner) Run(ctx context.Context, inv domain.Invocation) (domain.CommandResult, error) {
	key := strings.Join(inv.Argv(), " ")
	if err, ok := f.errs[key]; ok {
		f.script.Next(inv.Argv())
		return domain.CommandResult{ExitCode: -1}, err
	}
	r := f.script.Next(inv.Argv())
	res := domain.CommandResult{
		Succeeded: r.ExitCode == 0,
		ExitCode:  r.ExitCode,
		Stdout:    r.Stdout,
		Stderr:    r.Stderr,
		Duration:  time.Millisecond,
	}
	if res.Succeeded && f.onSuccess != nil {
		f.onSuccess(inv)
	}
	if !res.Succeeded && f.onFail != nil {
		f.onFail(inv)
	}
	return res, nil
}

// recordingReporter captures every Reporter call.
type recordingReporter struct {
	mu       sync.Mutex
	statuses []string
	steps    []int
	tables   []string
	progress [][2]int
}

func (r *recordingReporter) Status(icon, message string, severity ports.Severity, detail string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, string(severity)+":"+message)
}

func (r *recordingReporter) Step(n int, title, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, n)
}

func (r *recordingReporter) Table(headers []string, rows [][]string, title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables = append(r.tables, title)
}

func (r *recordingReporter) Progress(current, total int, label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = append(r.progress, [2]int{current, total})
}

func (r *recordingReporter) hasStatus(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.statuses {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

// fakeWorld is an in-memory interpreter: name -> installed version.
// An empty version means installed without version metadata.
type fakeWorld struct {
	mu          sync.Mutex
	installed   map[string]string
	broken      map[string]bool
	versionErrs map[string]error
	checkCalls  int
}

func newFakeWorld(installed map[string]string) *fakeWorld {
	if installed == nil {
		installed = map[string]string{}
	}
	return &fakeWorld{installed: installed, broken: map[string]bool{}, versionErrs: map[string]error{}}
}

func (w *fakeWorld) set(name, version string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.installed[name] = version
}

func (w *fakeWorld) Name() string { return "fake" }

func (w *fakeWorld) Check(ctx context.Context, req domain.Requirement) ports.Presence {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.checkCalls++
	if _, ok := w.installed[req.Name]; ok {
		return ports.PresenceLoaded
	}
	return ports.PresenceAbsent
}

func (w *fakeWorld) ReadVersion(ctx context.Context, req domain.Requirement) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.versionErrs[req.Name]; err != nil {
		return "", err
	}
	return w.installed[req.Name], nil
}

func (w *fakeWorld) Import(ctx context.Context, req domain.Requirement) domain.VerificationResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.installed[req.Name]; !ok {
		return domain.VerificationResult{Name: req.Name, Detail: "No module named '" + req.ImportPath() + "'"}
	}
	if w.broken[req.Name] {
		return domain.VerificationResult{Name: req.Name, Detail: "error: boom"}
	}
	return domain.VerificationResult{Name: req.Name, OK: true, Detail: "import OK"}
}

// fakeInstaller records calls; names listed in succeed are installed at their
// minimum version in world.
type fakeInstaller struct {
	world   *fakeWorld
	succeed map[string]bool
	calls   map[string]int
}

func newFakeInstaller(world *fakeWorld, succeed ...string) *fakeInstaller {
	ok := map[string]bool{}
	for _, n := range succeed {
		ok[n] = true
	}
	return &fakeInstaller{world: world, succeed: ok, calls: map[string]int{}}
}

func (f *fakeInstaller) Install(ctx context.Context, req domain.Requirement, env domain.EnvironmentInfo) error {
	f.calls[req.Name]++
	if !f.succeed[req.Name] {
		return &domain.InstallError{
			Package:  req.Name,
			Attempts: 1,
			Command:  "pip install " + req.Pin(),
			Last:     domain.CommandResult{ExitCode: 1, Stderr: "ERROR: boom"},
		}
	}
	if f.world != nil {
		f.world.set(req.Name, req.MinVersion)
	}
	return nil
}

func (f *fakeInstaller) total() int {
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

type fakeDetector struct {
	env   domain.EnvironmentInfo
	calls int
}

func (f *fakeDetector) Detect(ctx context.Context) domain.EnvironmentInfo {
	f.calls++
	return f.env
}

type fakePrivilege bool

func (f fakePrivilege) IsElevated() bool { return bool(f) }

type fakePersister struct {
	reports []domain.RunReport
	err     error
}

func (f *fakePersister) Persist(report domain.RunReport) error {
	f.reports = append(f.reports, report)
	return f.err
}

var errLaunch = errors.New("fork/exec: resource temporarily unavailable")

func linuxEnv() domain.EnvironmentInfo {
	return domain.EnvironmentInfo{
		OSFamily:          domain.OSFamilyLinux,
		OSName:            "Linux",
		Architecture:      "x86_64",
		RuntimeVersion:    "3.12.1",
		RuntimeExecutable: "/usr/bin/python3",
		RuntimePrefix:     "/usr",
	}
}

func mustSpec(reqs ...domain.Requirement) domain.DependencySpec {
	spec, err := domain.NewDependencySpec(reqs...)
	if err != nil {
		panic(err)
	}
	return spec
}
