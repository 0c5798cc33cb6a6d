// internal/core/domain/environment.go
package domain

// Unknown is the placeholder used for facts that could not be detected.
const Unknown = "unknown"

// OSFamily classifies the host operating system.
type OSFamily string

const (
	OSFamilyWindows OSFamily = "windows"
	OSFamilyLinux   OSFamily = "linux"
	OSFamilyMac     OSFamily = "mac"
	OSFamilyOther   OSFamily = "other"
)

// OSFamilyFromGOOS maps a GOOS value to its family.
func OSFamilyFromGOOS(goos string) OSFamily {
	switch goos {
	case "windows":
		return OSFamilyWindows
	case "linux", "android":
		return OSFamilyLinux
	case "darwin":
		return OSFamilyMac
	default:
		return OSFamilyOther
	}
}

// IsValid reports whether f is one of the known families.
func (f OSFamily) IsValid() bool {
	switch f {
	case OSFamilyWindows, OSFamilyLinux, OSFamilyMac, OSFamilyOther:
		return true
	default:
		return false
	}
}

// String returns the family name.
func (f OSFamily) String() string {
	return string(f)
}

// EnvironmentInfo is the host fingerprint taken once per run.
// It is treated as read-only after detection.
type EnvironmentInfo struct {
	OSFamily          OSFamily `json:"os_family"`
	OSName            string   `json:"os"`
	Sandboxed         bool     `json:"is_sandboxed"`
	Architecture      string   `json:"architecture"`
	RuntimeVersion    string   `json:"runtime_version"`
	RuntimeExecutable string   `json:"runtime_executable"`
	RuntimePrefix     string   `json:"runtime_prefix"`
}

// IsWindows reports whether the host is a Windows family system.
func (e EnvironmentInfo) IsWindows() bool {
	return e.OSFamily == OSFamilyWindows
}

// HasRuntime reports whether the interpreter could be inspected.
func (e EnvironmentInfo) HasRuntime() bool {
	return e.RuntimeVersion != "" && e.RuntimeVersion != Unknown
}

// Rows renders the fingerprint as label/value pairs for tabular display.
func (e EnvironmentInfo) Rows() [][]string {
	return [][]string{
		{"Operating system", e.OSName},
		{"OS family", e.OSFamily.String()},
		{"Architecture", e.Architecture},
		{"Runtime", e.RuntimeVersion},
		{"Runtime path", e.RuntimeExecutable},
		{"Sandboxed runtime", yesNo(e.Sandboxed)},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
