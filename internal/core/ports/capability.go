// internal/core/ports/capability.go
package ports

import (
	"context"
	"strings"

	"depboot/internal/core/domain"
)

// Presence is the tri-state result of a capability check.
type Presence int

const (
	// PresenceError means the check itself could not decide.
	PresenceError Presence = iota
	// PresenceAbsent means the check ran and the library is missing.
	PresenceAbsent
	// PresenceLoaded means the library is available.
	PresenceLoaded
)

func (p Presence) String() string {
	switch p {
	case PresenceLoaded:
		return "loaded"
	case PresenceAbsent:
		return "absent"
	default:
		return "error"
	}
}

// CapabilityCheck decides whether a requirement is present.
type CapabilityCheck interface {
	Name() string
	Check(ctx context.Context, req domain.Requirement) Presence
}

// AnyOf composes checks with OR semantics: Loaded if any check is Loaded,
// otherwise Absent if any is Absent, otherwise Error.
func AnyOf(checks ...CapabilityCheck) CapabilityCheck {
	return anyOf(checks)
}

type anyOf []CapabilityCheck

func (a anyOf) Name() string {
	names := make([]string, len(a))
	for i, c := range a {
		names[i] = c.Name()
	}
	return strings.Join(names, "|")
}

func (a anyOf) Check(ctx context.Context, req domain.Requirement) Presence {
	result := PresenceError
	for _, c := range a {
		switch c.Check(ctx, req) {
		case PresenceLoaded:
			return PresenceLoaded
		case PresenceAbsent:
			result = PresenceAbsent
		}
	}
	return result
}
