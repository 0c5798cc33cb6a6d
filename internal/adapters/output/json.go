// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"depboot/internal/core/domain"
	"depboot/internal/platform/errors"
)

// StdoutPath makes the persister write to standard output.
const StdoutPath = "-"

// ReportPersister writes the run report as indented UTF-8 JSON.
// Implements ports.ReportWriter.
type ReportPersister struct {
	path   string
	stdout io.Writer
}

// NewReportPersister creates a persister for path.
func NewReportPersister(path string) *ReportPersister {
	return &ReportPersister{path: path, stdout: os.Stdout}
}

// Path returns the destination.
func (p *ReportPersister) Path() string {
	return p.path
}

// Persist overwrites the destination. The file is written next to its final
// location and renamed into place, so readers never see a partial report.
func (p *ReportPersister) Persist(report domain.RunReport) error {
	if p.path == StdoutPath {
		return wrapWrite(WriteReport(p.stdout, report))
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return wrapWrite(fmt.Errorf("failed to create report directory: %w", err))
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(p.path)+".*.tmp")
	if err != nil {
		return wrapWrite(fmt.Errorf("failed to create report file: %w", err))
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := WriteReport(tmp, report); err != nil {
		tmp.Close()
		return wrapWrite(err)
	}
	if err := tmp.Close(); err != nil {
		return wrapWrite(fmt.Errorf("failed to flush report: %w", err))
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return wrapWrite(fmt.Errorf("failed to set report permissions: %w", err))
	}
	if err := os.Rename(tmpName, p.path); err != nil {
		return wrapWrite(fmt.Errorf("failed to move report into place: %w", err))
	}
	return nil
}

// WriteReport encodes report to w with two-space indentation and without
// HTML escaping.
func WriteReport(w io.Writer, report domain.RunReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func wrapWrite(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(domain.ErrReportWriteFailed, errors.Classify(err))
}
