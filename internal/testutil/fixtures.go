// internal/testutil/fixtures.go
package testutil

// Fixture data for tests (primitive values only, no domain dependencies).

// SandboxRoot is the data directory of the Termux terminal app on Android.
const SandboxRoot = "/data/data/com.termux"

// FixtureVersionOrder lists version pairs where the first is strictly older.
var FixtureVersionOrder = [][2]string{
	{"1.2.71", "1.2.80"},
	{"2.9.0", "2.10.0"},
	{"0.4.5", "0.4.6"},
	{"1.26.0", "2.0.0"},
	{"3.6.15", "3.7.0"},
}

// FixtureTermuxExecutable is an interpreter path inside the Termux prefix.
var FixtureTermuxExecutable = SandboxRoot + "/files/usr/bin/python3"

// FixturePipBanner is what `python -m pip --version` prints.
var FixturePipBanner = "pip 24.0 from /usr/lib/python3/dist-packages/pip (python 3.12)"

// FixtureRuntimeJSON is a typical interpreter inspection payload.
var FixtureRuntimeJSON = `{"version": "3.12.1", "executable": "/usr/bin/python3", "prefix": "/usr", "machine": "x86_64", "platform": "Linux"}`
