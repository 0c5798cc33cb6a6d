// internal/platform/config/deps_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depboot/internal/core/domain"
)

func TestParseDependencySpec_PreservesOrder(t *testing.T) {
	data := []byte(`
zeta: "1.0.0"
rich:
  min_version: "13.0.0"
  module: rich.console
alpha: 2.0.0
`)

	spec, err := ParseDependencySpec(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "rich", "alpha"}, spec.Names())

	entries := spec.Entries()
	assert.Equal(t, "rich.console", entries[1].ImportPath())
	assert.Equal(t, "13.0.0", entries[1].MinVersion)
	assert.Equal(t, "alpha", entries[2].ImportPath())
	assert.Equal(t, "2.0.0", entries[2].MinVersion)
}

func TestParseDependencySpec_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		target error
	}{
		{"duplicate name", "requests: 2.28.0\nRequests: 2.30.0\n", domain.ErrDuplicateName},
		{"two component version", "requests: \"2.28\"\n", domain.ErrInvalidMinVersion},
		{"prerelease version", "requests: 2.28.0rc1\n", domain.ErrInvalidMinVersion},
		{"sequence at top level", "- requests\n- rich\n", domain.ErrInvalidSpec},
		{"list value", "requests: [2, 28]\n", domain.ErrInvalidSpec},
		{"unknown field", "rich:\n  min: 13.0.0\n", domain.ErrInvalidSpec},
		{"empty document", "", domain.ErrInvalidSpec},
		{"broken yaml", "requests: [\n", domain.ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDependencySpec([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}
}

func TestLoadDependencySpec_DefaultTable(t *testing.T) {
	spec, err := LoadDependencySpec("")
	require.NoError(t, err)
	assert.Equal(t, []string{"requests", "cloudscraper", "rich", "colorama", "urllib3"}, spec.Names())
}

func TestLoadDependencySpec_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deps.yaml")
	require.NoError(t, os.WriteFile(path, []byte("requests: \"2.31.0\"\n"), 0o644))

	spec, err := LoadDependencySpec(path)
	require.NoError(t, err)
	require.Equal(t, 1, spec.Len())
	assert.Equal(t, "requests>=2.31.0", spec.Entries()[0].Pin())
}

func TestLoadDependencySpec_MissingFile(t *testing.T) {
	_, err := LoadDependencySpec(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
