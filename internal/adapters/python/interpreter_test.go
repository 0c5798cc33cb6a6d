// internal/adapters/python/interpreter_test.go
package python

import (
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depboot/internal/core/domain"
	"depboot/internal/core/ports"
	"depboot/internal/platform/execx"
	"depboot/internal/platform/logx"
	"depboot/internal/testutil"
)

type scriptRunner struct {
	script *testutil.Script
	err    error
}

func (s *scriptRunner) Run(ctx context.Context, inv domain.Invocation) (domain.CommandResult, error) {
	r := s.script.Next(inv.Argv())
	if s.err != nil {
		return domain.CommandResult{ExitCode: -1}, s.err
	}
	return domain.CommandResult{Succeeded: r.ExitCode == 0, ExitCode: r.ExitCode, Stdout: r.Stdout, Stderr: r.Stderr}, nil
}

func newInterp() (*Interpreter, *scriptRunner) {
	runner := &scriptRunner{script: testutil.NewScript()}
	return New(runner, "python3", logx.NewSilent()), runner
}

func key(i *Interpreter, script string, args ...string) string {
	return strings.Join(i.command(script, args...).Argv(), " ")
}

func TestInspect(t *testing.T) {
	i, runner := newInterp()
	runner.script.On(key(i, inspectScript), testutil.OK(testutil.FixtureRuntimeJSON))

	info, err := i.Inspect(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "3.12.1", info.Version)
	assert.Equal(t, "/usr/bin/python3", info.Executable)
	assert.Equal(t, "/usr", info.Prefix)
	assert.Equal(t, "x86_64", info.Machine)
}

func TestInspect_Failures(t *testing.T) {
	t.Run("interpreter missing", func(t *testing.T) {
		i, _ := newInterp()
		_, err := i.Inspect(context.Background())
		assert.ErrorIs(t, err, domain.ErrRuntimeUnavailable)
	})

	t.Run("garbage output", func(t *testing.T) {
		i, runner := newInterp()
		runner.script.On(key(i, inspectScript), testutil.OK("Python 2.7.18"))
		_, err := i.Inspect(context.Background())
		assert.Error(t, err)
	})

	t.Run("runner error", func(t *testing.T) {
		i, runner := newInterp()
		runner.err = domain.ErrCommandUnlaunchable
		_, err := i.Inspect(context.Background())
		assert.ErrorIs(t, err, domain.ErrCommandUnlaunchable)
	})
}

func TestCapabilityChecks(t *testing.T) {
	req := domain.Requirement{Name: "rich", MinVersion: "13.0.0", Module: "rich.console"}

	tests := []struct {
		name      string
		loadExit  int
		specExit  int
		wantLoad  ports.Presence
		wantSpec  ports.Presence
		wantCombo ports.Presence
	}{
		{"importable", 0, 0, ports.PresenceLoaded, ports.PresenceLoaded, ports.PresenceLoaded},
		{"import raises but finder sees it", 4, 0, ports.PresenceError, ports.PresenceLoaded, ports.PresenceLoaded},
		{"absent everywhere", 3, 3, ports.PresenceAbsent, ports.PresenceAbsent, ports.PresenceAbsent},
		{"broken interpreter", 1, 1, ports.PresenceError, ports.PresenceError, ports.PresenceError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, runner := newInterp()
			runner.script.On(key(i, loadScript, "rich.console"), testutil.Response{ExitCode: tt.loadExit})
			runner.script.On(key(i, findSpecScript, "rich.console"), testutil.Response{ExitCode: tt.specExit})

			ctx := context.Background()
			assert.Equal(t, tt.wantLoad, i.ModuleLoadable().Check(ctx, req), "module loadable")
			assert.Equal(t, tt.wantSpec, i.PackageIndexEntry().Check(ctx, req), "package index entry")
			assert.Equal(t, tt.wantCombo, i.Presence().Check(ctx, req), "combined")
		})
	}
}

func TestReadVersion(t *testing.T) {
	i, runner := newInterp()
	runner.script.On(key(i, versionScript, "requests"), testutil.OK("2.31.0\n"))
	runner.script.On(key(i, versionScript, "noattr"), testutil.OK(""))
	runner.script.On(key(i, versionScript, "raises"), testutil.Fail("Traceback\nRuntimeError: boom"))

	ctx := context.Background()

	v, err := i.ReadVersion(ctx, domain.Requirement{Name: "requests"})
	require.NoError(t, err)
	assert.Equal(t, "2.31.0", v)

	v, err = i.ReadVersion(ctx, domain.Requirement{Name: "noattr"})
	require.NoError(t, err)
	assert.Empty(t, v)

	_, err = i.ReadVersion(ctx, domain.Requirement{Name: "raises"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RuntimeError: boom")
}

func TestImport(t *testing.T) {
	i, runner := newInterp()
	runner.script.On(key(i, importScript, "alpha"), testutil.OK(""))
	runner.script.On(key(i, importScript, "beta"), testutil.Response{ExitCode: 3, Stdout: "No module named 'beta'"})
	runner.script.On(key(i, importScript, "gamma"), testutil.Response{ExitCode: 4, Stdout: "ValueError: bad config"})

	ctx := context.Background()

	res := i.Import(ctx, domain.Requirement{Name: "alpha"})
	assert.True(t, res.OK)

	res = i.Import(ctx, domain.Requirement{Name: "beta"})
	assert.False(t, res.OK)
	assert.Equal(t, "No module named 'beta'", res.Detail)

	res = i.Import(ctx, domain.Requirement{Name: "gamma"})
	assert.False(t, res.OK)
	assert.Equal(t, "error: ValueError: bad config", res.Detail)
}

func TestModuleNamePassedAsArgument(t *testing.T) {
	i, runner := newInterp()
	i.ModuleLoadable().Check(context.Background(), domain.Requirement{Name: "x; rm -rf /"})

	calls := runner.script.Calls()
	require.Len(t, calls, 1)
	assert.True(t, strings.HasSuffix(calls[0], " x; rm -rf /"), "module travels as its own argv entry")
}

// Runs the snippets against a real interpreter when one is installed.
func TestRealInterpreter(t *testing.T) {
	python, err := exec.LookPath("python3")
	if err != nil {
		t.Skip("python3 not installed")
	}

	i := New(execx.New(execx.Options{Logger: logx.NewSilent()}), python, logx.NewSilent())
	ctx := context.Background()

	info, err := i.Inspect(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, info.Version)

	assert.Equal(t, ports.PresenceLoaded, i.Presence().Check(ctx, domain.Requirement{Name: "json"}))
	assert.Equal(t, ports.PresenceAbsent, i.Presence().Check(ctx, domain.Requirement{Name: "depboot_missing_module"}))

	res := i.Import(ctx, domain.Requirement{Name: "depboot_missing_module"})
	assert.False(t, res.OK)
	assert.Contains(t, res.Detail, "depboot_missing_module")
}
