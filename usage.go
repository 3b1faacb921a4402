package cmdargs

import "strings"

func (a *ArgSpec) placeholder() string {
	if a.required {
		return "<" + a.argType.String() + ">"
	}
	return "[" + a.argType.String() + "]"
}

// Usage lists one argument per line, sorted by name.
func (p *Parser) Usage() string {
	var b strings.Builder
	p.index.Scan(func(name string, spec *ArgSpec) bool {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteByte(' ')
		b.WriteString(spec.placeholder())
		b.WriteByte('\n')
		return true
	})
	return b.String()
}

// Synopsis renders a one-line invocation template, e.g.
// "spawn -pos <vector> [-count <integer>]".
func (p *Parser) Synopsis(command string) string {
	parts := []string{command}
	for _, spec := range p.specs {
		part := spec.name + " <" + spec.argType.String() + ">"
		if !spec.required {
			part = "[" + part + "]"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}
