package ast

import (
	"fmt"
	"sort"

	"firrtl/expr"
	"firrtl/types"
)

// ModuleKind distinguishes a fully-defined Regular module from an
// External module declared only by its port interface.
type ModuleKind int

const (
	Regular ModuleKind = iota
	External
)

// Module is a named collection of ports plus, for Regular modules, a
// body of statements. Ports are kept sorted by name so PortByName can
// binary search; this sort happens once at construction, so
// Display(Module)->Parse->Module is a fixed point (the parser already
// hands NewModule its ports in file order, and re-parsing the sorted
// canonical text yields the same sorted order back).
//
// A *Module is the unit of sharing: Instance holds a pointer to one,
// never a copy, so every instance of the same module observes the
// same port list.
type Module struct {
	NameValue  string
	Kind       ModuleKind
	ports      []Port
	Statements []Statement
	Info       *string
}

// NewModule constructs a Module, sorting a copy of ports by name and
// rejecting duplicate port names.
func NewModule(name string, kind ModuleKind, ports []Port, statements []Statement, info *string) (*Module, error) {
	sorted := make([]Port, len(ports))
	copy(sorted, ports)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].NameValue < sorted[j].NameValue })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].NameValue == sorted[i-1].NameValue {
			return nil, fmt.Errorf("ast: duplicate port name %q in module %q", sorted[i].NameValue, name)
		}
	}
	return &Module{NameValue: name, Kind: kind, ports: sorted, Statements: statements, Info: info}, nil
}

// Name returns the module's name.
func (m *Module) Name() string { return m.NameValue }

// Ports returns the module's ports in canonical (name-sorted) order.
// The returned slice is a copy; mutating it cannot corrupt m.
func (m *Module) Ports() []Port {
	out := make([]Port, len(m.ports))
	copy(out, m.ports)
	return out
}

// PortByName finds a port by name via binary search over the sorted
// port list.
func (m *Module) PortByName(name string) (Port, bool) {
	i := sort.Search(len(m.ports), func(i int) bool { return m.ports[i].NameValue >= name })
	if i < len(m.ports) && m.ports[i].NameValue == name {
		return m.ports[i], true
	}
	return Port{}, false
}

// ReferencedModules returns the distinct modules instantiated anywhere
// in m's body, in first-encountered order.
func (m *Module) ReferencedModules() []*Module {
	seen := map[*Module]bool{}
	var out []*Module
	var walk func(stmts []Statement)
	walk = func(stmts []Statement) {
		for _, s := range stmts {
			switch v := s.(type) {
			case Declaration:
				if inst, ok := v.Entity.(Instance); ok && !seen[inst.Target] {
					seen[inst.Target] = true
					out = append(out, inst.Target)
				}
			case Conditional:
				walk(v.When)
				walk(v.Else)
			}
		}
	}
	walk(m.Statements)
	return out
}

// Instance is a named handle to a shared Module: its type projects
// the module's ports into a bundle, mapping each port's direction to
// an orientation from the instantiating module's point of view.
type Instance struct {
	NameValue string
	Target    *Module
	Info      *string
}

func (Instance) isEntity() {}

func (i Instance) Name() string    { return i.NameValue }
func (i Instance) Flow() expr.Flow { return expr.Source }

// Type projects the target module's ports: an Input port becomes a
// Normal-oriented field (it receives the signal the instantiating
// module drives into it) and an Output port becomes Flipped (the
// instantiating module reads it back out) — the mirror image of the
// port's own direction as seen from inside the module body.
func (i Instance) Type() types.Type {
	ports := i.Target.Ports()
	fields := make([]types.BundleField, len(ports))
	for idx, p := range ports {
		o := types.Normal
		if p.Direction == Output {
			o = types.Flipped
		}
		fields[idx] = types.BundleField{Name: p.NameValue, Type: p.TypeValue, Orientation: o}
	}
	return types.Bundle{Fields: fields}
}

// Circuit is an ordered collection of modules with a designated top.
// Module names must be globally unique within a circuit.
type Circuit struct {
	NameValue string
	modules   []*Module
	Top       *Module
}

// NewCircuit resolves topName against modules and constructs a
// Circuit. It fails if topName does not name one of modules, or if
// any two modules share a name.
func NewCircuit(name string, modules []*Module, topName string) (*Circuit, error) {
	seen := make(map[string]*Module, len(modules))
	for _, m := range modules {
		if _, dup := seen[m.NameValue]; dup {
			return nil, fmt.Errorf("ast: duplicate module name %q in circuit %q", m.NameValue, name)
		}
		seen[m.NameValue] = m
	}
	top, ok := seen[topName]
	if !ok {
		return nil, fmt.Errorf("ast: top module %q not found in circuit %q", topName, name)
	}
	return &Circuit{NameValue: name, modules: modules, Top: top}, nil
}

// Name returns the circuit's name.
func (c *Circuit) Name() string { return c.NameValue }

// Modules returns the circuit's modules in declaration order.
func (c *Circuit) Modules() []*Module {
	out := make([]*Module, len(c.modules))
	copy(out, c.modules)
	return out
}

// ModuleByName finds a module by name.
func (c *Circuit) ModuleByName(name string) (*Module, bool) {
	for _, m := range c.modules {
		if m.NameValue == name {
			return m, true
		}
	}
	return nil, false
}
