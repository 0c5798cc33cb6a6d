// Package execx runs child processes from structured argument vectors and
// captures their output.
package execx

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"depboot/internal/core/domain"
	"depboot/internal/platform/errors"
	"depboot/internal/platform/logx"
)

// ExitNotFound is the exit code reported when the executable does not exist.
const ExitNotFound = 127

// Runner implements ports.CommandRunner over os/exec. Commands never go
// through a shell.
type Runner struct {
	logger  logx.Logger
	timeout time.Duration
	env     []string
	dir     string
}

// Options configures a Runner.
type Options struct {
	// Timeout bounds every command; zero means no limit.
	Timeout time.Duration
	// Env is appended to the inherited environment.
	Env []string
	// Dir is the working directory; empty means the current one.
	Dir    string
	Logger logx.Logger
}

// New creates a Runner.
func New(opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &Runner{
		logger:  opts.Logger.With("component", "execx"),
		timeout: opts.Timeout,
		env:     opts.Env,
		dir:     opts.Dir,
	}
}

// Run executes inv and waits for it. A non-zero exit, a missing executable or
// a killed process yield Succeeded=false with a nil error. A kill is tagged in
// CommandResult.Killed with errors.ErrTimeout or errors.ErrCanceled. Only a
// process that cannot be started for another reason returns an error wrapping
// domain.ErrCommandUnlaunchable.
func (r *Runner) Run(ctx context.Context, inv domain.Invocation) (domain.CommandResult, error) {
	start := time.Now()
	line := inv.String()

	path, err := exec.LookPath(inv.Path)
	if err != nil {
		if isNotFound(err) {
			r.logger.Debug("executable not found", "command", line)
			return domain.CommandResult{ExitCode: ExitNotFound, Stderr: err.Error(), Duration: time.Since(start)}, nil
		}
		return domain.CommandResult{ExitCode: -1}, errors.Wrapf(joinUnlaunchable(err), "resolve %s", inv.Path)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, path, inv.Args...)
	cmd.WaitDelay = 2 * time.Second
	cmd.Dir = r.dir
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return domain.CommandResult{ExitCode: -1}, errors.Wrap(joinUnlaunchable(err), "stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return domain.CommandResult{ExitCode: -1}, errors.Wrap(joinUnlaunchable(err), "stderr pipe")
	}

	r.logger.Debug("executing command", "command", line, "timeout", r.timeout.String())

	if err := cmd.Start(); err != nil {
		if isNotFound(err) {
			return domain.CommandResult{ExitCode: ExitNotFound, Stderr: err.Error(), Duration: time.Since(start)}, nil
		}
		return domain.CommandResult{ExitCode: -1}, errors.Wrapf(joinUnlaunchable(err), "start %s", line)
	}

	// Read stderr in background to prevent blocking
	var stderrBytes []byte
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		data, readErr := io.ReadAll(stderr)
		if readErr != nil {
			r.logger.Debug("error reading stderr", "error", readErr.Error())
		}
		stderrBytes = data
	}()

	var out strings.Builder
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		out.Write(scanner.Bytes())
		out.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		r.logger.Debug("scanner error", "error", err.Error())
	}

	wg.Wait()
	waitErr := cmd.Wait()

	res := domain.CommandResult{
		Succeeded: waitErr == nil,
		Stdout:    strings.TrimSpace(out.String()),
		Stderr:    strings.TrimSpace(string(stderrBytes)),
		Duration:  time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
		res.ExitCode = 0
	case errors.As(waitErr, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		res.ExitCode = -1
	}
	if ctxErr := ctx.Err(); ctxErr != nil && !res.Succeeded {
		res.Killed = errors.Classify(ctxErr)
		res.Stderr = strings.TrimSpace(res.Stderr + "\n" + "killed: " + ctxErr.Error())
	}

	r.logger.Debug("command finished",
		"command", line,
		"exit_code", res.ExitCode,
		"duration", res.Duration.String(),
	)
	return res, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.IsNotFound(errors.Classify(err))
}

func joinUnlaunchable(err error) error {
	return errors.Join(domain.ErrCommandUnlaunchable, errors.Classify(err))
}
