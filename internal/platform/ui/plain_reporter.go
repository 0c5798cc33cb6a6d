// internal/platform/ui/plain_reporter.go
package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"depboot/internal/core/ports"
)

// LogFormat is the output format of PlainReporter.
type LogFormat string

const (
	LogFormatText LogFormat = "text" // logfmt-like lines
	LogFormatJSON LogFormat = "json" // one JSON object per line
)

// PlainReporter writes one line per event without styling, for pipes and CI.
type PlainReporter struct {
	format LogFormat
	out    io.Writer
	now    func() time.Time
	mu     sync.Mutex
}

// NewPlainReporter creates a plain reporter writing to out.
func NewPlainReporter(format LogFormat, out io.Writer) *PlainReporter {
	return &PlainReporter{
		format: format,
		out:    out,
		now:    time.Now,
	}
}

type field struct {
	key   string
	value interface{}
}

// Status writes one status line; detail is added as a field when non-empty.
func (r *PlainReporter) Status(icon, message string, severity ports.Severity, detail string) {
	fields := []field{{"event", "status"}, {"severity", string(severity)}}
	if detail != "" {
		fields = append(fields, field{"detail", detail})
	}
	r.log(severityLevel(severity), message, fields)
}

// Step writes the start of pipeline step n.
func (r *PlainReporter) Step(n int, title, description string) {
	fields := []field{{"event", "step"}, {"step", n}}
	if description != "" {
		fields = append(fields, field{"description", description})
	}
	r.log("INFO", title, fields)
}

// Table writes the whole table as one event in JSON format. In text format
// it writes a title line and then one line per row keyed by header.
func (r *PlainReporter) Table(headers []string, rows [][]string, title string) {
	if r.format == LogFormatJSON {
		r.log("INFO", title, []field{{"event", "table"}, {"headers", headers}, {"rows", rows}})
		return
	}

	if title != "" {
		r.log("INFO", title, []field{{"event", "table"}, {"rows", len(rows)}})
	}
	for _, row := range rows {
		fields := make([]field, 0, len(headers))
		for i, h := range headers {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			fields = append(fields, field{headerKey(h), v})
		}
		r.log("INFO", "row", fields)
	}
}

// Progress writes a current/total line.
func (r *PlainReporter) Progress(current, total int, label string) {
	r.log("INFO", label, []field{{"event", "progress"}, {"current", current}, {"total", total}})
}

func (r *PlainReporter) log(level, message string, fields []field) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.now().UTC().Format(time.RFC3339)
	if r.format == LogFormatJSON {
		r.logJSON(timestamp, level, message, fields)
		return
	}
	r.logText(timestamp, level, message, fields)
}

// logText writes: timestamp LEVEL message key=value key2=value2
func (r *PlainReporter) logText(timestamp, level, message string, fields []field) {
	parts := make([]string, 0, len(fields)+3)
	parts = append(parts, timestamp, fmt.Sprintf("%-5s", level), message)
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%s", f.key, formatValue(f.value)))
	}
	fmt.Fprintln(r.out, strings.Join(parts, " "))
}

func (r *PlainReporter) logJSON(timestamp, level, message string, fields []field) {
	entry := map[string]interface{}{
		"timestamp": timestamp,
		"level":     level,
		"message":   message,
	}
	if len(fields) > 0 {
		data := make(map[string]interface{}, len(fields))
		for _, f := range fields {
			data[f.key] = f.value
		}
		entry["data"] = data
	}

	// Encode into a buffer so a value that cannot be encoded leaves no
	// partial line behind; the event is then written as text instead.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entry); err != nil {
		r.logText(timestamp, level, message, append(fields, field{"encode_error", err.Error()}))
		return
	}
	fmt.Fprint(r.out, buf.String())
}

// formatValue quotes strings containing spaces or quotes.
func formatValue(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	if s == "" || strings.ContainsAny(s, " \t\"=") {
		return strconv.Quote(s)
	}
	return s
}

func headerKey(h string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
}
