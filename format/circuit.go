package format

import (
	"strings"

	"firrtl/ast"
)

// Circuit renders a whole circuit: its header followed by every
// module in declaration order.
func Circuit(c *ast.Circuit) string {
	var b strings.Builder
	b.WriteString("circuit " + c.Name() + ":\n")
	for _, m := range c.Modules() {
		b.WriteString(Module(m))
	}
	return b.String()
}
