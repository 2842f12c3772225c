package format

import (
	"strings"

	"firrtl/ast"
)

// Module renders a module's header, port list, and body at the
// canonical two-space indent.
func Module(m *ast.Module) string {
	var b strings.Builder
	kw := "module"
	if m.Kind == ast.External {
		kw = "extmodule"
	}
	b.WriteString(indentUnit + kw + " " + m.Name() + ":\n")
	for _, p := range m.Ports() {
		b.WriteString(indentUnit + indentUnit + p.Direction.String() + " " + p.NameValue + ": " + Type(p.TypeValue) + "\n")
	}
	b.WriteString(Statements(m.Statements, 2))
	return b.String()
}
