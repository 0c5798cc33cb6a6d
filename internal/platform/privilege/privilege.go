// Package privilege reports whether the current process runs with elevated
// rights. Backends are selected by build tags.
package privilege

// Context implements ports.PrivilegeContext for the running process.
type Context struct {
	elevated bool
}

// Current inspects the running process once.
func Current() Context {
	return Context{elevated: isElevated()}
}

// IsElevated reports whether the process is root (Unix) or holds an
// elevated token (Windows).
func (c Context) IsElevated() bool {
	return c.elevated
}

// Fixed returns a Context with a preset answer.
func Fixed(elevated bool) Context {
	return Context{elevated: elevated}
}
