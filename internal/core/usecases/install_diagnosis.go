// internal/core/usecases/install_diagnosis.go
package usecases

import (
	"fmt"
	"strings"

	"depboot/internal/core/domain"
	"depboot/internal/platform/errors"
)

// InstallDiagnosis explains a failed install and suggests what to try next.
type InstallDiagnosis struct {
	Reason    string
	Solutions []string
}

// String formats the diagnosis for logs.
func (d InstallDiagnosis) String() string {
	var b strings.Builder
	b.WriteString(d.Reason)
	for i, s := range d.Solutions {
		fmt.Fprintf(&b, "; %d) %s", i+1, s)
	}
	return b.String()
}

var networkMarkers = []string{
	"temporary failure in name resolution",
	"name or service not known",
	"connection refused",
	"connection reset",
	"network is unreachable",
	"max retries exceeded",
	"read timed out",
}

// DiagnoseInstall classifies the error returned by an Installer from the
// output of its last attempt. A nil error yields the zero diagnosis.
func DiagnoseInstall(err error) InstallDiagnosis {
	if err == nil {
		return InstallDiagnosis{}
	}

	var last domain.CommandResult
	var ie *domain.InstallError
	if errors.As(err, &ie) {
		last = ie.Last
	}

	text := strings.ToLower(last.Stderr + "\n" + last.Stdout + "\n" + err.Error())

	switch {
	case errors.IsCanceled(err):
		return InstallDiagnosis{
			Reason:    "interrupted",
			Solutions: []string{"Run depboot again to finish the remaining dependencies"},
		}

	case errors.IsTimeout(err):
		return InstallDiagnosis{
			Reason: "timed out",
			Solutions: []string{
				"Raise the per-command limit with --timeout",
				"Check the connection to the package index and retry",
			},
		}

	case strings.Contains(text, "externally-managed-environment"):
		return InstallDiagnosis{
			Reason: "environment is externally managed",
			Solutions: []string{
				"Create a virtual environment: python3 -m venv .venv && . .venv/bin/activate",
				"Install the package with the system package manager",
				"Pass --break-system-packages to pip if you accept the risk",
			},
		}

	case strings.Contains(text, "no matching distribution") ||
		strings.Contains(text, "could not find a version that satisfies"):
		return InstallDiagnosis{
			Reason: "no matching version on the package index",
			Solutions: []string{
				"Check the package name and minimum version in the dependency file",
				"The package may not ship a build for this interpreter or platform",
			},
		}

	case containsAny(text, networkMarkers):
		return InstallDiagnosis{
			Reason: "package index unreachable",
			Solutions: []string{
				"Check your internet connection and retry",
				"Verify proxy settings (HTTPS_PROXY, PIP_INDEX_URL)",
			},
		}

	case errors.IsPermissionDenied(err) ||
		strings.Contains(text, "permission denied") ||
		strings.Contains(text, "errno 13"):
		return InstallDiagnosis{
			Reason: "permission denied",
			Solutions: []string{
				"Install into a virtual environment you own",
				"Check the permissions of the site-packages directory",
			},
		}

	case strings.Contains(text, "no space left"):
		return InstallDiagnosis{
			Reason:    "no space left on device",
			Solutions: []string{"Free up disk space and try again"},
		}

	case strings.Contains(text, "no module named pip"):
		return InstallDiagnosis{
			Reason:    "pip is not installed",
			Solutions: []string{"Install pip: python3 -m ensurepip --upgrade"},
		}

	case ie != nil && ie.Cause == nil && last.ExitCode == 127:
		return InstallDiagnosis{
			Reason:    "installer not found",
			Solutions: []string{"Make sure the interpreter and pip are on PATH"},
		}
	}

	reason := "installation failed"
	if msg := last.Message(); msg != "" {
		reason = truncate(msg, 60)
	}
	return InstallDiagnosis{
		Reason:    reason,
		Solutions: []string{"Run with --verbose to see every attempted command"},
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
