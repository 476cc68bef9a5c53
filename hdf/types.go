// Package hdf implements the HDF data-description language: parsing enum,
// struct, and command declarations into a flat type table, and emitting
// a host-language mirror of that table.
package hdf

// Kind classifies a type-table entry.
type Kind uint8

const (
	KindNone Kind = iota
	KindPrimitive
	KindEnum
	KindStruct
	KindCommand
)

// PrimitiveKind enumerates the eleven pre-registered primitive types.
type PrimitiveKind uint8

const (
	Int32 PrimitiveKind = iota
	Uint32
	Int16
	Uint16
	Int8
	Uint8
	Int64
	Uint64
	Float
	Double
	Bool
	numPrimitives
)

var primitiveNames = [numPrimitives]string{
	"int32", "uint32", "int16", "uint16", "int8", "uint8",
	"int64", "uint64", "float", "double", "bool",
}

// TypeID indexes into a Table. It is never resolved to a pointer until
// a code-gen read site projects it, per the arena-by-index strategy.
type TypeID int

// Entry is one row of the flat type table.
type Entry struct {
	Kind      Kind
	Primitive PrimitiveKind // valid when Kind == KindPrimitive
	Name      string

	// Struct: parallel member name/type sequences.
	MemberNames []string
	MemberTypes []TypeID

	// Command: names and type-table indices of the per-case sub-structs.
	// Each referenced entry has Kind == KindStruct, Exportable == false.
	CaseNames []string
	CaseTypes []TypeID

	Exportable bool
}

// Table is the flat, append-only vector of type-table entries.
type Table struct {
	Entries []Entry
}

// NewTable returns a Table with the eleven primitives pre-registered.
// maxTypes is a capacity hint only — the table grows past it if needed.
func NewTable(maxTypes int) *Table {
	if maxTypes < int(numPrimitives) {
		maxTypes = int(numPrimitives)
	}
	t := &Table{Entries: make([]Entry, 0, maxTypes)}
	for i := PrimitiveKind(0); i < numPrimitives; i++ {
		t.Entries = append(t.Entries, Entry{
			Kind:      KindPrimitive,
			Primitive: i,
			Name:      primitiveNames[i],
		})
	}
	return t
}

// FindType returns the index of the entry named name, searching in
// declaration order (primitives first), or false if not present.
func (t *Table) FindType(name string) (TypeID, bool) {
	for i, e := range t.Entries {
		if e.Name == name {
			return TypeID(i), true
		}
	}
	return 0, false
}

// Add appends a new entry and returns its index.
func (t *Table) Add(e Entry) TypeID {
	t.Entries = append(t.Entries, e)
	return TypeID(len(t.Entries) - 1)
}

// At returns the entry at id. Panics on an out-of-range id: the parser
// is the only caller and never fabricates an invalid TypeID.
func (t *Table) At(id TypeID) *Entry {
	return &t.Entries[id]
}
