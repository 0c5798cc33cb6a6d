// internal/core/usecases/install_diagnosis_test.go
package usecases

import (
	"context"
	"testing"

	"depboot/internal/core/domain"
	"depboot/internal/platform/errors"
	"depboot/internal/testutil"
)

func failedWith(res domain.CommandResult, cause error) error {
	return &domain.InstallError{Package: "alpha", Attempts: 6, Command: "pip3 install alpha", Last: res, Cause: cause}
}

func TestDiagnoseInstall(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"canceled", failedWith(domain.CommandResult{}, errors.Classify(context.Canceled)), "interrupted"},
		{"killed by timeout", failedWith(domain.CommandResult{ExitCode: -1, Stderr: "killed: context deadline exceeded", Killed: errors.Classify(context.DeadlineExceeded)}, nil), "timed out"},
		{"pep 668", failedWith(testFail("error: externally-managed-environment"), nil), "environment is externally managed"},
		{"unknown package", failedWith(testFail("ERROR: Could not find a version that satisfies the requirement alpha>=9.0\nERROR: No matching distribution found for alpha>=9.0"), nil), "no matching version on the package index"},
		{"offline", failedWith(testFail("WARNING: Retrying ... Failed to establish a new connection: [Errno -3] Temporary failure in name resolution"), nil), "package index unreachable"},
		{"read only site-packages", failedWith(testFail("ERROR: Could not install packages due to an OSError: [Errno 13] Permission denied: '/usr/lib/python3'"), nil), "permission denied"},
		{"permission classified", failedWith(domain.CommandResult{}, errors.Wrap(errors.ErrPermissionDenied, "start pip3")), "permission denied"},
		{"disk full", failedWith(testFail("OSError: [Errno 28] No space left on device"), nil), "no space left on device"},
		{"no pip", failedWith(testFail("/usr/bin/python3: No module named pip"), nil), "pip is not installed"},
		{"missing executable", failedWith(domain.CommandResult{ExitCode: 127, Stderr: "executable file not found in $PATH"}, nil), "installer not found"},
		{"other output", failedWith(testFail("Collecting alpha\nERROR: wheel build failed"), nil), "ERROR: wheel build failed"},
		{"no output", failedWith(domain.CommandResult{ExitCode: 1}, nil), "installation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DiagnoseInstall(tt.err)
			testutil.AssertEqual(t, d.Reason, tt.want, "reason")
			testutil.AssertTrue(t, len(d.Solutions) > 0, "at least one suggestion")
		})
	}
}

func TestDiagnoseInstall_Nil(t *testing.T) {
	d := DiagnoseInstall(nil)
	testutil.AssertEqual(t, d.Reason, "", "no reason")
	testutil.AssertEqual(t, d.String(), "", "empty string")
}

func TestInstallDiagnosis_String(t *testing.T) {
	d := InstallDiagnosis{Reason: "timed out", Solutions: []string{"raise --timeout", "retry"}}
	testutil.AssertEqual(t, d.String(), "timed out; 1) raise --timeout; 2) retry", "formatted")
}

func testFail(stderr string) domain.CommandResult {
	return domain.CommandResult{ExitCode: 1, Stderr: stderr}
}
