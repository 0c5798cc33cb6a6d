// internal/core/domain/outcome.go
package domain

// NotInstalled is the installed-version placeholder for absent libraries.
const NotInstalled = "not installed"

// OutcomeStatus is the final state of one requirement after resolution.
type OutcomeStatus string

const (
	StatusSatisfied      OutcomeStatus = "satisfied"
	StatusUpgraded       OutcomeStatus = "upgraded"
	StatusUpgradeFailed  OutcomeStatus = "upgrade_failed"
	StatusInstalled      OutcomeStatus = "installed"
	StatusInstallFailed  OutcomeStatus = "install_failed"
	StatusVersionUnknown OutcomeStatus = "version_unknown"
)

// OK reports whether the status counts as success.
// VersionUnknown is treated as satisfied.
func (s OutcomeStatus) OK() bool {
	return s != StatusUpgradeFailed && s != StatusInstallFailed
}

// IsValid verifies the status is known.
func (s OutcomeStatus) IsValid() bool {
	switch s {
	case StatusSatisfied, StatusUpgraded, StatusUpgradeFailed,
		StatusInstalled, StatusInstallFailed, StatusVersionUnknown:
		return true
	default:
		return false
	}
}

// Label is the human readable form used in result tables.
func (s OutcomeStatus) Label() string {
	switch s {
	case StatusSatisfied:
		return "OK"
	case StatusUpgraded:
		return "Upgraded"
	case StatusUpgradeFailed:
		return "Upgrade failed"
	case StatusInstalled:
		return "Installed"
	case StatusInstallFailed:
		return "Install failed"
	case StatusVersionUnknown:
		return "Version unknown"
	default:
		return string(s)
	}
}

func (s OutcomeStatus) String() string {
	return string(s)
}

// DependencyOutcome records what happened to one requirement.
type DependencyOutcome struct {
	Name             string        `json:"name"`
	InstalledVersion string        `json:"installed_version"`
	Status           OutcomeStatus `json:"status"`
	Detail           string        `json:"detail,omitempty"`
}

// Row renders the outcome for a results table.
func (o DependencyOutcome) Row(minVersion string) []string {
	return []string{o.Name, o.InstalledVersion, minVersion, o.Status.Label(), o.Detail}
}

// AllOK reports whether every outcome succeeded.
func AllOK(outcomes []DependencyOutcome) bool {
	for _, o := range outcomes {
		if !o.Status.OK() {
			return false
		}
	}
	return true
}

// FailedNames lists the names of unsuccessful outcomes.
func FailedNames(outcomes []DependencyOutcome) []string {
	var out []string
	for _, o := range outcomes {
		if !o.Status.OK() {
			out = append(out, o.Name)
		}
	}
	return out
}
