// internal/core/domain/report.go
package domain

import "time"

// CheckedAtLayout is the timestamp layout of the persisted report.
const CheckedAtLayout = "2006-01-02 15:04:05"

// VerificationResult is the import check of one requirement.
type VerificationResult struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// RunReport is the audit record written at the end of a run.
type RunReport struct {
	Environment  EnvironmentInfo `json:"environment"`
	RequiredLibs DependencySpec  `json:"required_libs"`
	CheckedAt    string          `json:"checked_at"`
	WorkingDir   string          `json:"working_dir"`
}

// NewRunReport stamps a report with the local time t.
func NewRunReport(env EnvironmentInfo, spec DependencySpec, t time.Time, workingDir string) RunReport {
	return RunReport{
		Environment:  env,
		RequiredLibs: spec,
		CheckedAt:    t.Format(CheckedAtLayout),
		WorkingDir:   workingDir,
	}
}
