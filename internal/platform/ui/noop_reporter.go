// internal/platform/ui/noop_reporter.go
package ui

import "depboot/internal/core/ports"

// NoopReporter discards every event. Used in quiet mode and by default in tests.
type NoopReporter struct{}

// NewNoopReporter creates a reporter without output.
func NewNoopReporter() *NoopReporter {
	return &NoopReporter{}
}

func (n *NoopReporter) Status(icon, message string, severity ports.Severity, detail string) {}

func (n *NoopReporter) Step(num int, title, description string) {}

func (n *NoopReporter) Table(headers []string, rows [][]string, title string) {}

func (n *NoopReporter) Progress(current, total int, label string) {}
