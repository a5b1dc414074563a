package table

import (
	"encoding/json"
	"io"
	"os"

	"github.com/mewkiz/bufr/descriptor"
)

// jsonTables is the on-disk shape LoadTables reads. Acquiring and
// versioning real WMO table data is out of scope (spec.md names it an
// external collaborator); this is deliberately the thinnest loader that
// can feed a Tables bundle, not a table management system.
type jsonTables struct {
	B []struct {
		X         uint8  `json:"x"`
		Y         uint8  `json:"y"`
		Desc      string `json:"description"`
		Unit      string `json:"unit"`
		Scale     int8   `json:"scale"`
		Reference int32  `json:"reference"`
		Bits      uint16 `json:"bits"`
	} `json:"tableB"`
	D []struct {
		X        uint8    `json:"x"`
		Y        uint8    `json:"y"`
		Elements []uint16 `json:"elements"`
	} `json:"tableD"`
}

// LoadTables reads Table B and Table D entries from a JSON file at path and
// returns a populated Tables bundle. Table C is always the built-in static
// catalogue; it is part of the standard, not a local table.
func LoadTables(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeTables(f)
}

// DecodeTables reads Table B/D entries in the LoadTables JSON shape from r.
func DecodeTables(r io.Reader) (*Tables, error) {
	var raw jsonTables
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	t := NewTables()
	for _, b := range raw.B {
		key := descriptor.XY{X: b.X, Y: b.Y}
		t.B[key] = &TableBEntry{
			Key:          key,
			Desc:         b.Desc,
			UnitStr:      b.Unit,
			ScaleVal:     b.Scale,
			ReferenceVal: b.Reference,
			BitsVal:      b.Bits,
		}
	}
	for _, d := range raw.D {
		key := descriptor.XY{X: d.X, Y: d.Y}
		members := make([]descriptor.Descriptor, len(d.Elements))
		for i, word := range d.Elements {
			members[i] = descriptor.Decode(word)
		}
		t.D[key] = &TableDEntry{Key: key, Members: members}
	}
	return t, nil
}
