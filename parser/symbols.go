package parser

import (
	"fmt"
)

// Label records where a label was defined during pass 1.
type Label struct {
	// IndexPlusOne is the instruction index following the definition site,
	// biased by one. Branch displacement resolution subtracts against it.
	IndexPlusOne uint32
	// Address is the absolute PC of the labelled instruction:
	// code segment offset + instruction index * 4.
	Address uint32
	Pos     Position
}

// pendingLabel is a label seen since the last .end directive.
type pendingLabel struct {
	name  string
	index uint32
}

// SymbolTable holds the labels and function entry points collected in
// pass 1. It becomes read-only once pass 2 starts.
type SymbolTable struct {
	labels    map[string]Label
	functions map[string]uint32
	pending   []pendingLabel
	offset    uint32 // code segment base address
}

// NewSymbolTable creates a symbol table with the given code segment offset.
func NewSymbolTable(offset uint32) *SymbolTable {
	return &SymbolTable{
		labels:    make(map[string]Label),
		functions: make(map[string]uint32),
		offset:    offset,
	}
}

// DefineLabel records a label at the given instruction index. Redefining a
// label is rejected: the pending-window semantics of .end make a second
// definition unresolvable.
func (st *SymbolTable) DefineLabel(name string, index uint32, pos Position) *Error {
	if prev, exists := st.labels[name]; exists {
		return NewError(pos, ErrorUnexpectedSymbol, name,
			fmt.Sprintf("label already defined at %s", prev.Pos))
	}
	st.labels[name] = Label{
		IndexPlusOne: index + 1,
		Address:      st.offset + index*4,
		Pos:          pos,
	}
	st.pending = append(st.pending, pendingLabel{name: name, index: index})
	return nil
}

// EndFunction resolves a .end directive. The name must match a label seen
// since the previous .end; registering a function clears the pending window.
func (st *SymbolTable) EndFunction(name string, pos Position) *Error {
	for _, p := range st.pending {
		if p.name == name {
			st.functions[name] = st.offset + p.index*4
			st.pending = nil
			return nil
		}
	}
	return NewError(pos, ErrorUnexpectedSymbol, name,
		"expected previously defined label name")
}

// Label looks up a label by name.
func (st *SymbolTable) Label(name string) (Label, bool) {
	l, ok := st.labels[name]
	return l, ok
}

// Function looks up a function entry address by name.
func (st *SymbolTable) Function(name string) (uint32, bool) {
	addr, ok := st.functions[name]
	return addr, ok
}

// Labels returns the label map. Callers must not mutate it.
func (st *SymbolTable) Labels() map[string]Label {
	return st.labels
}

// Functions returns the function map. Callers must not mutate it.
func (st *SymbolTable) Functions() map[string]uint32 {
	return st.functions
}
