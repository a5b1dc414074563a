package descriptor_test

import (
	"testing"

	"github.com/mewkiz/bufr/descriptor"
)

// fakeB is a minimal descriptor.BEntry for resolution tests.
type fakeB struct {
	key       descriptor.XY
	desc      string
	unit      string
	scale     int8
	reference int32
	bits      uint16
}

func (e fakeB) XY() descriptor.XY   { return e.key }
func (e fakeB) Description() string { return e.desc }
func (e fakeB) Unit() string        { return e.unit }
func (e fakeB) Scale() int8         { return e.scale }
func (e fakeB) Reference() int32    { return e.reference }
func (e fakeB) Bits() uint16        { return e.bits }

// fakeD is a minimal descriptor.DEntry for resolution tests.
type fakeD struct {
	key      descriptor.XY
	elements []descriptor.Descriptor
}

func (e fakeD) XY() descriptor.XY                  { return e.key }
func (e fakeD) Elements() []descriptor.Descriptor { return e.elements }

// fakeTables is a minimal descriptor.Tables for resolution tests.
type fakeTables struct {
	b map[descriptor.XY]fakeB
	d map[descriptor.XY]fakeD
}

func newFakeTables() *fakeTables {
	return &fakeTables{b: make(map[descriptor.XY]fakeB), d: make(map[descriptor.XY]fakeD)}
}

func (t *fakeTables) TableB(xy descriptor.XY) (descriptor.BEntry, bool) {
	e, ok := t.b[xy]
	if !ok {
		return nil, false
	}
	return e, true
}

func (t *fakeTables) TableD(xy descriptor.XY) (descriptor.DEntry, bool) {
	e, ok := t.d[xy]
	if !ok {
		return nil, false
	}
	return e, true
}

func TestResolveData(t *testing.T) {
	tables := newFakeTables()
	tables.b[descriptor.XY{X: 1, Y: 1}] = fakeB{key: descriptor.XY{X: 1, Y: 1}, desc: "WMO block number", bits: 7}

	raw := []descriptor.Descriptor{{F: 0, X: 1, Y: 1}}
	got, err := descriptor.Resolve(raw, tables)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 1 || got[0].Kind != descriptor.KindData {
		t.Fatalf("Resolve = %+v, want one KindData node", got)
	}
	if got[0].Data.Bits() != 7 {
		t.Errorf("Data.Bits() = %d, want 7", got[0].Data.Bits())
	}
}

func TestResolveMissingTableBEntry(t *testing.T) {
	tables := newFakeTables()
	raw := []descriptor.Descriptor{{F: 0, X: 99, Y: 99}}
	if _, err := descriptor.Resolve(raw, tables); err == nil {
		t.Fatal("Resolve: expected error for missing Table B entry, got nil")
	}
}

func TestResolveSequence(t *testing.T) {
	tables := newFakeTables()
	tables.b[descriptor.XY{X: 1, Y: 1}] = fakeB{key: descriptor.XY{X: 1, Y: 1}, bits: 7}
	tables.d[descriptor.XY{X: 1, Y: 1}] = fakeD{
		key:      descriptor.XY{X: 1, Y: 1},
		elements: []descriptor.Descriptor{{F: 0, X: 1, Y: 1}},
	}

	raw := []descriptor.Descriptor{{F: 3, X: 1, Y: 1}}
	got, err := descriptor.Resolve(raw, tables)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 1 || got[0].Kind != descriptor.KindSequence {
		t.Fatalf("Resolve = %+v, want one KindSequence node", got)
	}
	if len(got[0].SeqChildren) != 1 || got[0].SeqChildren[0].Kind != descriptor.KindData {
		t.Fatalf("SeqChildren = %+v, want one KindData child", got[0].SeqChildren)
	}
}

func TestResolveFixedReplication(t *testing.T) {
	tables := newFakeTables()
	tables.b[descriptor.XY{X: 1, Y: 1}] = fakeB{key: descriptor.XY{X: 1, Y: 1}, bits: 7}

	// 1 01 001: the replicated block is the next Y=1 descriptor (the repeat
	// count itself is handled by the decode engine, not resolution;
	// resolution only captures which descriptors form the replicated block).
	raw := []descriptor.Descriptor{
		{F: 1, X: 1, Y: 1},
		{F: 0, X: 1, Y: 1},
	}
	got, err := descriptor.Resolve(raw, tables)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 1 || got[0].Kind != descriptor.KindReplication {
		t.Fatalf("Resolve = %+v, want one KindReplication node", got)
	}
	if got[0].ReplY != 1 {
		t.Errorf("ReplY = %d, want 1", got[0].ReplY)
	}
	if len(got[0].ReplChildren) != 1 || got[0].ReplChildren[0].Kind != descriptor.KindData {
		t.Fatalf("ReplChildren = %+v, want one KindData child", got[0].ReplChildren)
	}
}

func TestResolveDelayedReplication(t *testing.T) {
	tables := newFakeTables()
	tables.b[descriptor.XY{X: 1, Y: 1}] = fakeB{key: descriptor.XY{X: 1, Y: 1}, bits: 7}
	tables.b[descriptor.XY{X: 31, Y: 1}] = fakeB{key: descriptor.XY{X: 31, Y: 1}, bits: 8}

	// 1 01 000 (delayed), 0 01 001 (the replicated element), 0 31 001 (the
	// 1-byte delayed count descriptor that follows the replicated block).
	raw := []descriptor.Descriptor{
		{F: 1, X: 1, Y: 0},
		{F: 0, X: 1, Y: 1},
		{F: 0, X: 31, Y: 1},
	}
	got, err := descriptor.Resolve(raw, tables)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Resolve returned %d nodes, want 2 (replication + delayed count sibling)", len(got))
	}
	repl := got[0]
	if repl.Kind != descriptor.KindReplication || repl.ReplY != 0 {
		t.Fatalf("first node = %+v, want delayed KindReplication", repl)
	}
	if repl.ReplDelayBits != 8 {
		t.Errorf("ReplDelayBits = %d, want 8", repl.ReplDelayBits)
	}
	if got[1].Kind != descriptor.KindData {
		t.Fatalf("second node = %+v, want the delayed-count descriptor resolved as KindData", got[1])
	}
}
