package evm

import (
	"fmt"
	"sort"

	"github.com/EmekaIwuagwu/quorlin-lang/internal/ast"
)

// SlotInfo describes one state variable's storage assignment.
type SlotInfo struct {
	Slot int
	Type ast.Type
	Size int
}

// StorageLayout assigns dense, monotonically increasing storage slots to a
// contract's state variables, grounded on
// original_source/crates/quorlin-codegen-evm/src/storage_layout.rs's
// StorageLayout. Constants never reach this structure: the analyzer keeps
// them out of ContractInfo.StateVars, and codegen inlines their value at
// every use site instead of allocating storage.
type StorageLayout struct {
	slots    map[string]SlotInfo
	order    []string
	nextSlot int
	structs  map[string]*ast.StructDecl
}

// NewStorageLayout allocates storage for stateVars in declaration order.
// structs resolves Named field/variable types to struct layouts so a
// struct-typed state variable reserves one slot per field instead of the
// single slot a size-unaware layout would give it.
func NewStorageLayout(stateVars []*ast.StateVar, structs map[string]*ast.StructDecl) *StorageLayout {
	l := &StorageLayout{slots: make(map[string]SlotInfo), structs: structs}
	for _, v := range stateVars {
		size := l.calculateTypeSize(v.VarType)
		l.slots[v.Name] = SlotInfo{Slot: l.nextSlot, Type: v.VarType, Size: size}
		l.order = append(l.order, v.Name)
		l.nextSlot += size
	}
	return l
}

// calculateTypeSize returns how many 32-byte storage slots t occupies.
// Mappings and dynamic lists always take a single base slot (their
// elements live at content-addressed derived slots); fixed arrays and
// tuples take the sum of their element sizes; a Named struct type takes
// the sum of its fields' sizes, recursively.
func (l *StorageLayout) calculateTypeSize(t ast.Type) int {
	switch v := t.(type) {
	case ast.Mapping, ast.List:
		return 1
	case ast.FixedArray:
		return v.N * l.calculateTypeSize(v.Elem)
	case ast.Optional:
		return l.calculateTypeSize(v.Inner)
	case ast.Tuple:
		total := 0
		for _, elem := range v.Elems {
			total += l.calculateTypeSize(elem)
		}
		return total
	case ast.Named:
		decl, ok := l.structs[v.Name]
		if !ok {
			return 1
		}
		total := 0
		for _, f := range decl.Fields {
			total += l.calculateTypeSize(f.VarType)
		}
		return total
	default:
		return 1
	}
}

// FieldOffset returns the slot offset of field within structName, counting
// the 32-byte sizes of the fields declared before it.
func (l *StorageLayout) FieldOffset(structName, field string) (int, bool) {
	decl, ok := l.structs[structName]
	if !ok {
		return 0, false
	}
	offset := 0
	for _, f := range decl.Fields {
		if f.Name == field {
			return offset, true
		}
		offset += l.calculateTypeSize(f.VarType)
	}
	return 0, false
}

// Slot returns the base storage slot for name, if it is a known state
// variable.
func (l *StorageLayout) Slot(name string) (int, bool) {
	info, ok := l.slots[name]
	return info.Slot, ok
}

// Info returns the full SlotInfo for name.
func (l *StorageLayout) Info(name string) (SlotInfo, bool) {
	info, ok := l.slots[name]
	return info, ok
}

// Entries returns a copy of every state variable's slot assignment, keyed
// by name, for tooling (internal/astjson's --emit-ir layout annotation)
// that needs the whole table rather than one lookup at a time.
func (l *StorageLayout) Entries() map[string]SlotInfo {
	out := make(map[string]SlotInfo, len(l.slots))
	for k, v := range l.slots {
		out[k] = v
	}
	return out
}

// TotalSlots returns the number of storage slots allocated in total.
func (l *StorageLayout) TotalSlots() int {
	return l.nextSlot
}

// Report renders a human-readable storage layout summary, used by the
// `quorlinc compile --emit-layout` diagnostic flag.
func (l *StorageLayout) Report() string {
	names := append([]string(nil), l.order...)
	sort.Slice(names, func(i, j int) bool { return l.slots[names[i]].Slot < l.slots[names[j]].Slot })

	report := "Storage Layout:\n===============\n\n"
	for _, name := range names {
		info := l.slots[name]
		report += fmt.Sprintf("slot %d: %s (%s, %d slot(s))\n", info.Slot, name, info.Type, info.Size)
	}
	report += fmt.Sprintf("\ntotal slots used: %d\n", l.nextSlot)
	return report
}
