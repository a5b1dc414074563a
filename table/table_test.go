package table_test

import (
	"strings"
	"testing"

	"github.com/mewkiz/bufr/descriptor"
	"github.com/mewkiz/bufr/table"
)

func TestLookupC(t *testing.T) {
	tables := table.NewTables()

	// 2 02 YYY: change scale, a wildcard entry (applies for any YYY).
	e, ok := tables.LookupC(2, 5)
	if !ok {
		t.Fatal("LookupC(2, 5): not found")
	}
	if e.Name != "change scale" {
		t.Errorf("LookupC(2, 5).Name = %q, want %q", e.Name, "change scale")
	}

	// 2 23 000 vs 2 23 255: the marker form is distinct from the operator.
	op, ok := tables.LookupC(23, 0)
	if !ok || op.Name != "substituted value operator" {
		t.Fatalf("LookupC(23, 0) = %+v, ok=%v", op, ok)
	}
	marker, ok := tables.LookupC(23, 255)
	if !ok || marker.Name != "substituted value marker" {
		t.Fatalf("LookupC(23, 255) = %+v, ok=%v", marker, ok)
	}

	if _, ok := tables.LookupC(250, 0); ok {
		t.Fatal("LookupC(250, 0): expected not found")
	}
}

func TestDecodeTables(t *testing.T) {
	const doc = `{
		"tableB": [
			{"x": 1, "y": 1, "description": "WMO block number", "unit": "Numeric", "scale": 0, "reference": 0, "bits": 7}
		],
		"tableD": [
			{"x": 1, "y": 1, "elements": [257]}
		]
	}`
	tables, err := table.DecodeTables(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeTables: %v", err)
	}

	b, ok := tables.TableB(descriptor.XY{X: 1, Y: 1})
	if !ok {
		t.Fatal("TableB(1,1): not found")
	}
	if b.Bits() != 7 {
		t.Errorf("TableB(1,1).Bits() = %d, want 7", b.Bits())
	}
	if b.Description() != "WMO block number" {
		t.Errorf("TableB(1,1).Description() = %q", b.Description())
	}

	d, ok := tables.TableD(descriptor.XY{X: 1, Y: 1})
	if !ok {
		t.Fatal("TableD(1,1): not found")
	}
	elems := d.Elements()
	if len(elems) != 1 || elems[0] != (descriptor.Descriptor{F: 0, X: 1, Y: 1}) {
		t.Errorf("TableD(1,1).Elements() = %+v, want [{0 1 1}]", elems)
	}
}
