// internal/core/ports/reporter.go
package ports

// Severity classifies a status line.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Reporter is the only output surface of the core. Implementations hold any
// presentation state (colours, animation) privately; calls carry plain data.
type Reporter interface {
	// Status prints a single status line with an optional detail.
	Status(icon, message string, severity Severity, detail string)

	// Step announces pipeline step n.
	Step(n int, title, description string)

	// Table renders rows under headers with an optional title.
	Table(headers []string, rows [][]string, title string)

	// Progress reports item current of total (1-based).
	Progress(current, total int, label string)
}
