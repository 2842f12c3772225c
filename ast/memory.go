package ast

import (
	"firrtl/expr"
	"firrtl/types"
)

// MemPortDirection is the access mode of one of a memory's ports.
type MemPortDirection int

const (
	Read MemPortDirection = iota
	Write
	ReadWrite
)

func (d MemPortDirection) String() string {
	switch d {
	case Write:
		return "writer"
	case ReadWrite:
		return "readwriter"
	default:
		return "reader"
	}
}

// MemoryPort names one of a Memory's access ports and its direction.
type MemoryPort struct {
	Name      string
	Direction MemPortDirection
}

// ReadUnderWrite is the policy applied when a memory's read and write
// ports target the same address in the same cycle.
type ReadUnderWrite int

const (
	Undefined ReadUnderWrite = iota
	Old
	New
)

func (r ReadUnderWrite) String() string {
	switch r {
	case Old:
		return "old"
	case New:
		return "new"
	default:
		return "undefined"
	}
}

// Memory is a `mem` block: an addressable array of DataType with one
// bundle-typed access port per declared MemoryPort.
type Memory struct {
	NameValue      string
	DataType       types.Type
	Depth          uint64
	Ports          []MemoryPort
	ReadLatency    uint16
	WriteLatency   uint16
	ReadUnderWrite ReadUnderWrite
	Info           *string
}

func (Memory) isEntity() {}

func (m Memory) Name() string    { return m.NameValue }
func (m Memory) Flow() expr.Flow { return expr.Source }

// Type computes the memory's bundle type: one flipped field per
// declared port, each itself a bundle whose shape depends on the
// port's direction (§3 of the memory component design).
func (m Memory) Type() types.Type {
	fields := make([]types.BundleField, len(m.Ports))
	for i, p := range m.Ports {
		fields[i] = types.BundleField{
			Name:        p.Name,
			Type:        memPortType(p.Direction, m.DataType, m.Depth),
			Orientation: types.Flipped,
		}
	}
	return types.Bundle{Fields: fields}
}

func addrField(depth uint64) types.BundleField {
	w := types.RequiredAddressWidth(depth)
	return types.BundleField{Name: "addr", Type: types.Ground{Type: types.UInt{Width: types.KnownWidth(w)}}, Orientation: types.Normal}
}

func enField() types.BundleField {
	return types.BundleField{Name: "en", Type: types.Ground{Type: types.UInt{Width: types.KnownWidth(1)}}, Orientation: types.Normal}
}

func clkField() types.BundleField {
	return types.BundleField{Name: "clk", Type: types.Ground{Type: types.ClockType{}}, Orientation: types.Normal}
}

func memPortType(dir MemPortDirection, dataType types.Type, depth uint64) types.Type {
	switch dir {
	case Write:
		return types.Bundle{Fields: []types.BundleField{
			{Name: "data", Type: dataType, Orientation: types.Normal},
			{Name: "mask", Type: maskType(dataType), Orientation: types.Normal},
			addrField(depth),
			enField(),
			clkField(),
		}}
	case ReadWrite:
		return types.Bundle{Fields: []types.BundleField{
			{Name: "wmode", Type: types.Ground{Type: types.UInt{Width: types.KnownWidth(1)}}, Orientation: types.Normal},
			{Name: "rdata", Type: dataType, Orientation: types.Flipped},
			{Name: "wdata", Type: dataType, Orientation: types.Normal},
			{Name: "wmask", Type: maskType(dataType), Orientation: types.Normal},
			addrField(depth),
			enField(),
			clkField(),
		}}
	default: // Read
		return types.Bundle{Fields: []types.BundleField{
			{Name: "data", Type: dataType, Orientation: types.Flipped},
			addrField(depth),
			enField(),
			clkField(),
		}}
	}
}

// maskType mirrors t with every ground leaf replaced by UInt<1>,
// preserving vector sizes and bundle field names/orientations.
func maskType(t types.Type) types.Type {
	switch v := t.(type) {
	case types.Ground:
		return types.Ground{Type: types.UInt{Width: types.KnownWidth(1)}}
	case types.Vector:
		return types.Vector{Base: maskType(v.Base), Size: v.Size}
	case types.Bundle:
		fields := make([]types.BundleField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = types.BundleField{Name: f.Name, Type: maskType(f.Type), Orientation: f.Orientation}
		}
		return types.Bundle{Fields: fields}
	default:
		return t
	}
}

// SimpleMemoryKind distinguishes combinatory cmem from sequential smem
// declarations.
type SimpleMemoryKind int

const (
	Combinatory SimpleMemoryKind = iota
	Sequential
)

// SimpleMemory is a `cmem`/`smem` declaration. Unlike Memory it has no
// declared ports at declaration time — ports are introduced later by
// `mport`-style accessor statements, whose surface grammar is
// deliberately not modelled here (see DESIGN.md).
type SimpleMemory struct {
	NameValue      string
	DataType       types.Type
	Depth          uint64
	Kind           SimpleMemoryKind
	ReadUnderWrite *ReadUnderWrite
	Info           *string
}

// WithReadUnderWrite attaches a read-under-write policy to a
// Sequential simple memory, mirroring the original's
// with_read_under_write constructor.
func (m SimpleMemory) WithReadUnderWrite(ruw ReadUnderWrite) SimpleMemory {
	m.ReadUnderWrite = &ruw
	return m
}

func (SimpleMemory) isEntity() {}

func (m SimpleMemory) Name() string     { return m.NameValue }
func (m SimpleMemory) Flow() expr.Flow  { return expr.Source }
func (m SimpleMemory) Type() types.Type { return m.DataType }
