package format

import (
	"fmt"
	"strings"

	"firrtl/ast"
)

// Declaration renders the declaration form of e, starting with its
// leading keyword (wire/reg/node/inst/mem/cmem/smem), at the given
// statement depth; the indentation before the keyword is left to the
// caller. Port never appears here:
// it is only ever rendered as part of a module's port list.
func Declaration(e ast.Entity, depth int) string {
	switch v := e.(type) {
	case ast.Wire:
		return "wire " + v.NameValue + ": " + Type(v.TypeValue)
	case ast.Register:
		base := "reg " + v.NameValue + ": " + Type(v.TypeValue) + ", " + Expression[ast.Entity](v.Clock)
		if v.Reset != nil {
			base += fmt.Sprintf(" with: (reset => (%s, %s))", Expression[ast.Entity](v.Reset.Signal), Expression[ast.Entity](v.Reset.Value))
		}
		return base
	case ast.Node:
		return "node " + v.NameValue + " = " + Expression[ast.Entity](v.Value)
	case ast.Instance:
		return "inst " + v.NameValue + " of " + v.Target.Name()
	case ast.Memory:
		return memoryDecl(v, depth)
	case ast.SimpleMemory:
		return simpleMemoryDecl(v)
	default:
		return fmt.Sprintf("<unrenderable entity %T>", e)
	}
}

func memoryDecl(m ast.Memory, depth int) string {
	pad := strings.Repeat(indentUnit, depth+1)
	var b strings.Builder
	b.WriteString("mem " + m.NameValue + ":\n")
	b.WriteString(pad + "data-type => " + Type(m.DataType) + "\n")
	b.WriteString(pad + fmt.Sprintf("depth => %d\n", m.Depth))
	for _, p := range m.Ports {
		b.WriteString(pad + p.Direction.String() + " => " + p.Name + "\n")
	}
	b.WriteString(pad + fmt.Sprintf("read-latency => %d\n", m.ReadLatency))
	b.WriteString(pad + fmt.Sprintf("write-latency => %d\n", m.WriteLatency))
	b.WriteString(pad + "read-under-write => " + m.ReadUnderWrite.String())
	return b.String()
}

func simpleMemoryDecl(m ast.SimpleMemory) string {
	kw := "cmem"
	if m.Kind == ast.Sequential {
		kw = "smem"
	}
	out := fmt.Sprintf("%s %s: %s[%d]", kw, m.NameValue, Type(m.DataType), m.Depth)
	if m.ReadUnderWrite != nil {
		out += " (" + m.ReadUnderWrite.String() + ")"
	}
	return out
}
