// internal/core/domain/spec.go
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"depboot/internal/platform/validator"
	"depboot/internal/platform/version"
)

// Requirement declares one library that must be importable at or above MinVersion.
type Requirement struct {
	// Name is the package name handed to the package manager.
	Name string `json:"name"`

	// MinVersion is a strict X.Y.Z numeric version.
	MinVersion string `json:"min_version"`

	// Module is the import path used for load, version and verification checks.
	// Empty means Name.
	Module string `json:"module,omitempty"`
}

// ImportPath returns the module used to check the requirement.
func (r Requirement) ImportPath() string {
	if r.Module != "" {
		return r.Module
	}
	return r.Name
}

// Pin renders the manager argument "name>=min".
func (r Requirement) Pin() string {
	return r.Name + ">=" + r.MinVersion
}

// Validate checks that the requirement is well formed.
func (r Requirement) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: empty dependency name", ErrInvalidSpec)
	}
	if !validator.IsPackageName(r.Name) {
		return fmt.Errorf("%w: invalid dependency name %q", ErrInvalidSpec, r.Name)
	}
	if r.Module != "" && !validator.IsModulePath(r.Module) {
		return fmt.Errorf("%w: invalid module path %q for %s", ErrInvalidSpec, r.Module, r.Name)
	}
	if !version.IsStrict(r.MinVersion) {
		return fmt.Errorf("%w: %w: %s=%q", ErrInvalidSpec, ErrInvalidMinVersion, r.Name, r.MinVersion)
	}
	return nil
}

// DependencySpec is the ordered, unique-name list of requirements for a run.
type DependencySpec struct {
	entries []Requirement
}

// NewDependencySpec validates reqs and keeps their declaration order.
func NewDependencySpec(reqs ...Requirement) (DependencySpec, error) {
	seen := make(map[string]struct{}, len(reqs))
	entries := make([]Requirement, 0, len(reqs))

	for _, r := range reqs {
		r.Name = strings.TrimSpace(r.Name)
		r.Module = strings.TrimSpace(r.Module)
		if err := r.Validate(); err != nil {
			return DependencySpec{}, err
		}
		key := validator.NormalizePackageName(r.Name)
		if _, dup := seen[key]; dup {
			return DependencySpec{}, fmt.Errorf("%w: %w: %s", ErrInvalidSpec, ErrDuplicateName, r.Name)
		}
		seen[key] = struct{}{}
		entries = append(entries, r)
	}

	return DependencySpec{entries: entries}, nil
}

// DefaultDependencySpec is the built-in library table.
func DefaultDependencySpec() DependencySpec {
	spec, err := NewDependencySpec(
		Requirement{Name: "requests", MinVersion: "2.28.0"},
		Requirement{Name: "cloudscraper", MinVersion: "1.2.71"},
		Requirement{Name: "rich", MinVersion: "13.0.0", Module: "rich.console"},
		Requirement{Name: "colorama", MinVersion: "0.4.6"},
		Requirement{Name: "urllib3", MinVersion: "1.26.0"},
	)
	if err != nil {
		panic(err)
	}
	return spec
}

// Entries returns a copy of the requirements in declaration order.
func (s DependencySpec) Entries() []Requirement {
	out := make([]Requirement, len(s.entries))
	copy(out, s.entries)
	return out
}

// Names returns the package names in declaration order.
func (s DependencySpec) Names() []string {
	out := make([]string, len(s.entries))
	for i, r := range s.entries {
		out[i] = r.Name
	}
	return out
}

// Len returns the number of requirements.
func (s DependencySpec) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether the spec declares nothing.
func (s DependencySpec) IsEmpty() bool {
	return len(s.entries) == 0
}

// MarshalJSON renders the spec as an object name -> min_version in declaration order.
func (s DependencySpec) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(r.Name)
		if err != nil {
			return nil, err
		}
		val, err := marshalNoEscape(r.MinVersion)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalNoEscape(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
