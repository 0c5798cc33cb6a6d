// internal/platform/config/deps.go
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"depboot/internal/core/domain"
)

// LoadDependencySpec returns the built-in table when path is empty,
// otherwise the requirements declared in the YAML file at path.
func LoadDependencySpec(path string) (domain.DependencySpec, error) {
	if path == "" {
		return domain.DefaultDependencySpec(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.DependencySpec{}, fmt.Errorf("read deps file: %w", err)
	}

	spec, err := ParseDependencySpec(data)
	if err != nil {
		return domain.DependencySpec{}, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// ParseDependencySpec decodes a YAML mapping of name -> version or
// name -> {min_version, module}. Mapping order is declaration order.
func ParseDependencySpec(data []byte) (domain.DependencySpec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.DependencySpec{}, fmt.Errorf("%w: %v", domain.ErrInvalidSpec, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return domain.DependencySpec{}, fmt.Errorf("%w: empty document", domain.ErrInvalidSpec)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return domain.DependencySpec{}, fmt.Errorf("%w: line %d: top level must be a mapping", domain.ErrInvalidSpec, root.Line)
	}

	reqs := make([]domain.Requirement, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		req, err := decodeRequirement(root.Content[i], root.Content[i+1])
		if err != nil {
			return domain.DependencySpec{}, err
		}
		reqs = append(reqs, req)
	}

	return domain.NewDependencySpec(reqs...)
}

func decodeRequirement(key, value *yaml.Node) (domain.Requirement, error) {
	if key.Kind != yaml.ScalarNode {
		return domain.Requirement{}, fmt.Errorf("%w: line %d: dependency name must be a string", domain.ErrInvalidSpec, key.Line)
	}
	req := domain.Requirement{Name: key.Value}

	switch value.Kind {
	case yaml.ScalarNode:
		req.MinVersion = value.Value
	case yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			field, v := value.Content[i], value.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return req, fmt.Errorf("%w: line %d: %s.%s must be a string", domain.ErrInvalidSpec, v.Line, req.Name, field.Value)
			}
			switch strings.TrimSpace(field.Value) {
			case "min_version":
				req.MinVersion = v.Value
			case "module":
				req.Module = v.Value
			default:
				return req, fmt.Errorf("%w: line %d: unknown field %q for %s", domain.ErrInvalidSpec, field.Line, field.Value, req.Name)
			}
		}
	default:
		return req, fmt.Errorf("%w: line %d: %s must be a version or a mapping", domain.ErrInvalidSpec, value.Line, req.Name)
	}

	return req, nil
}
