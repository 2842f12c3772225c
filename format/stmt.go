package format

import (
	"fmt"
	"strings"

	"firrtl/ast"
)

const indentUnit = "  "

// Statement renders s at the given indent depth (counted in
// two-space units from column 0; Module renders a module's top-level
// body at depth 2), including a trailing newline and, for
// Conditional, its nested when/else bodies at depth+1.
func Statement(s ast.Statement, depth int) string {
	pad := strings.Repeat(indentUnit, depth)
	switch v := s.(type) {
	case ast.Connection:
		return pad + Expression[ast.Entity](v.To) + " <= " + Expression[ast.Entity](v.From) + "\n"
	case ast.PartialConnection:
		return pad + Expression[ast.Entity](v.To) + " <- " + Expression[ast.Entity](v.From) + "\n"
	case ast.EmptyStatement:
		return pad + "skip\n"
	case ast.Declaration:
		return pad + Declaration(v.Entity, depth) + "\n"
	case ast.Invalidate:
		return pad + Expression[ast.Entity](v.Target) + " is invalid\n"
	case ast.Attach:
		parts := make([]string, len(v.Exprs))
		for i, e := range v.Exprs {
			parts[i] = Expression[ast.Entity](e)
		}
		return pad + "attach(" + strings.Join(parts, ", ") + ")\n"
	case ast.Conditional:
		return conditional(v, depth)
	case ast.Stop:
		return pad + fmt.Sprintf("stop(%s, %s, %d)\n", Expression[ast.Entity](v.Clock), Expression[ast.Entity](v.Cond), v.Code)
	case ast.Print:
		return pad + fmt.Sprintf("printf(%s, %s, %s)\n", Expression[ast.Entity](v.Clock), Expression[ast.Entity](v.Cond), formatString(v.Message))
	default:
		return pad + fmt.Sprintf("<unrenderable statement %T>\n", s)
	}
}

// Statements renders a whole body at the given depth.
func Statements(stmts []ast.Statement, depth int) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(Statement(s, depth))
	}
	return b.String()
}

func conditional(c ast.Conditional, depth int) string {
	pad := strings.Repeat(indentUnit, depth)
	var b strings.Builder
	b.WriteString(pad + "when " + Expression[ast.Entity](c.Cond) + ":\n")
	b.WriteString(Statements(c.When, depth+1))
	if len(c.Else) == 1 {
		if nested, ok := c.Else[0].(ast.Conditional); ok {
			b.WriteString(pad + "else " + strings.TrimPrefix(conditional(nested, depth), pad))
			return b.String()
		}
	}
	if len(c.Else) > 0 {
		b.WriteString(pad + "else:\n")
		b.WriteString(Statements(c.Else, depth+1))
	}
	return b.String()
}

func formatString(els []ast.PrintElement) string {
	var raw strings.Builder
	var args []string
	raw.WriteByte('"')
	for _, el := range els {
		switch v := el.(type) {
		case ast.Literal:
			raw.WriteString(escapeLiteral(v.Text))
		case ast.Slot:
			raw.WriteString(slotVerb(v.Format))
			args = append(args, Expression[ast.Entity](v.Value))
		}
	}
	raw.WriteByte('"')
	parts := append([]string{raw.String()}, args...)
	return strings.Join(parts, ", ")
}

func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "%", "%%")
	return s
}

func slotVerb(f ast.Format) string {
	switch f {
	case ast.Binary:
		return "%b"
	case ast.Hexadecimal:
		return "%x"
	case ast.Character:
		return "%c"
	default:
		return "%d"
	}
}
