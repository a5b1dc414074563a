// Package table holds Table B (element), Table C (operator), and Table D
// (sequence) definitions, and the lookup surface descriptor resolution and
// the decode engine run against. Acquiring real WMO table data (the BUFR
// master tables, local tables, their versioning) is explicitly out of scope;
// this package only defines the in-memory shape and a minimal loader for it.
package table

import "github.com/mewkiz/bufr/descriptor"

// TableBEntry is one Table B element definition: how to interpret the raw
// bits a Data descriptor occupies.
type TableBEntry struct {
	Key          descriptor.XY
	Desc         string
	UnitStr      string
	ScaleVal     int8
	ReferenceVal int32
	BitsVal      uint16
}

// XY implements descriptor.BEntry.
func (e *TableBEntry) XY() descriptor.XY { return e.Key }

// Description implements descriptor.BEntry.
func (e *TableBEntry) Description() string { return e.Desc }

// Unit implements descriptor.BEntry.
func (e *TableBEntry) Unit() string { return e.UnitStr }

// Scale implements descriptor.BEntry.
func (e *TableBEntry) Scale() int8 { return e.ScaleVal }

// Reference implements descriptor.BEntry.
func (e *TableBEntry) Reference() int32 { return e.ReferenceVal }

// Bits implements descriptor.BEntry.
func (e *TableBEntry) Bits() uint16 { return e.BitsVal }

// TableDEntry is one Table D sequence definition: the raw descriptors it
// expands to.
type TableDEntry struct {
	Key     descriptor.XY
	Members []descriptor.Descriptor
}

// XY implements descriptor.DEntry.
func (e *TableDEntry) XY() descriptor.XY { return e.Key }

// Elements implements descriptor.DEntry.
func (e *TableDEntry) Elements() []descriptor.Descriptor { return e.Members }

// Tables bundles Table B, Table C, and Table D for one decode session. A
// Tables value is read-only once built: resolution and the decode engine
// only ever look entries up, never add or remove them.
type Tables struct {
	B map[descriptor.XY]*TableBEntry
	D map[descriptor.XY]*TableDEntry
	C []TableCEntry
}

// NewTables returns an empty Tables bundle ready to be populated, e.g. by
// LoadTables or by a caller that builds entries directly.
func NewTables() *Tables {
	return &Tables{
		B: make(map[descriptor.XY]*TableBEntry),
		D: make(map[descriptor.XY]*TableDEntry),
		C: TableC,
	}
}

// TableB implements descriptor.Tables.
func (t *Tables) TableB(xy descriptor.XY) (descriptor.BEntry, bool) {
	e, ok := t.B[xy]
	if !ok {
		return nil, false
	}
	return e, true
}

// TableD implements descriptor.Tables.
func (t *Tables) TableD(xy descriptor.XY) (descriptor.DEntry, bool) {
	e, ok := t.D[xy]
	if !ok {
		return nil, false
	}
	return e, true
}

// LookupC returns the Table C entry for operator class x and, where the
// operator carries one, immediate value y. Most Table C entries apply for
// any y (the y bits are the operator's operand, not part of its identity);
// a handful reserve a specific y as a distinct marker operator, and those
// are matched first.
func (t *Tables) LookupC(x uint8, y uint8) (TableCEntry, bool) {
	var wildcard *TableCEntry
	for i := range t.C {
		e := &t.C[i]
		if e.X != x {
			continue
		}
		if e.Y == int16(y) {
			return *e, true
		}
		if e.Y == -1 && wildcard == nil {
			wildcard = e
		}
	}
	if wildcard != nil {
		return *wildcard, true
	}
	return TableCEntry{}, false
}
