package docmd

import "strings"

// CodeDestination is an opaque reference to a declaration, produced by the
// parser. Renderers never interpret it; a CodeResolver turns it into a link
// target.
type CodeDestination struct {
	// ImportPath identifies the package containing the declaration.
	ImportPath string
	// MemberPath walks from the package to the declaration, outermost first.
	MemberPath []string
}

// String returns a dotted form of the reference for error messages.
func (d *CodeDestination) String() string {
	parts := make([]string, 0, len(d.MemberPath)+1)
	if d.ImportPath != "" {
		parts = append(parts, d.ImportPath)
	}
	parts = append(parts, d.MemberPath...)
	return strings.Join(parts, ".")
}

// CodeLink is a resolved link target for a declaration reference.
type CodeLink struct {
	Text string
	URL  string
}

// CodeResolver resolves declaration references to link targets. Consumers
// that know the layout of their generated documentation supply one; the
// markdown emitter has no default and fails without one.
type CodeResolver interface {
	ResolveCodeDestination(dest *CodeDestination) (CodeLink, error)
}
