// internal/core/domain/command.go
package domain

import (
	"strings"
	"time"

	"mvdan.cc/sh/v3/syntax"
)

// Invocation is a structured argument vector. It is never passed through a shell.
type Invocation struct {
	Path string
	Args []string
}

// Command builds an Invocation.
func Command(path string, args ...string) Invocation {
	return Invocation{Path: path, Args: args}
}

// Argv returns path followed by args.
func (i Invocation) Argv() []string {
	return append([]string{i.Path}, i.Args...)
}

// String renders a shell-quoted line for logs and messages.
func (i Invocation) String() string {
	argv := i.Argv()
	parts := make([]string, 0, len(argv))
	for _, a := range argv {
		q, err := syntax.Quote(a, syntax.LangBash)
		if err != nil {
			q = a
		}
		parts = append(parts, q)
	}
	return strings.Join(parts, " ")
}

// CommandResult is the captured outcome of one child process.
type CommandResult struct {
	Succeeded bool
	ExitCode  int
	Stdout    string
	Stderr    string
	Duration  time.Duration
	// Killed is set when the process was stopped because its context ended.
	Killed error
}

// FirstLine returns the first non-empty line of stdout.
func (r CommandResult) FirstLine() string {
	for _, line := range strings.Split(r.Stdout, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}

// Message returns the most useful diagnostic text: stderr, else stdout.
func (r CommandResult) Message() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return lastLine(s)
	}
	return lastLine(strings.TrimSpace(r.Stdout))
}

func lastLine(s string) string {
	if idx := strings.LastIndex(s, "\n"); idx >= 0 {
		return strings.TrimSpace(s[idx+1:])
	}
	return s
}
