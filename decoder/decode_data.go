package decoder

import (
	"strings"

	"github.com/mewkiz/bufr/descriptor"
	"github.com/mewkiz/pkg/dbg"
)

// decodeData reads one Data descriptor's value off the bitstream: a CCITT
// IA5 element reads whole octets and decodes as a string, anything else
// reads its declared (or temporarily overridden) bit width and decodes as
// either a missing sentinel, a plain integer, or a scaled decimal.
//
// In a compressed message every subset's value for this descriptor is
// packed together rather than one value per subset's own walk of the tree:
// a local reference value at the element's bit width, then a 6-bit
// increment width (nbinc). nbinc == 0 means every subset shares the local
// reference value unchanged; otherwise each of the number_of_subsets
// subsets contributes its own nbinc-bit increment, added to the local
// reference to recover that subset's raw value.
func (dr *DataReader) decodeData(entry descriptor.BEntry) (DataEvent, error) {
	width := entry.Bits()
	if dr.tempWidth != nil {
		width = *dr.tempWidth
		dr.tempWidth = nil
	}

	if isCharacterUnit(entry.Unit()) {
		if width%8 != 0 {
			return DataEvent{}, Fatalf("decoder.DataReader: character element %s width %d is not a multiple of 8", entry.XY(), width)
		}
		octets, err := dr.br.ReadOctets(int(width / 8))
		if err != nil {
			return DataEvent{}, WrapIO(err)
		}
		if dr.spec.Compressed {
			return DataEvent{}, NotSupportedf("decoder.DataReader: compressed character data not implemented for %s", entry.XY())
		}
		return DataEvent{Kind: EventData, Entry: entry, Value: Value{Kind: ValueString, Str: string(octets)}}, nil
	}

	if width == 0 || width > 32 {
		return DataEvent{}, Fatalf("decoder.DataReader: invalid element width %d for %s", width, entry.XY())
	}

	if dr.spec.Compressed {
		return dr.decodeCompressedData(entry, width)
	}

	raw, err := dr.br.Read(uint(width))
	if err != nil {
		return DataEvent{}, WrapIO(err)
	}

	missingMask := uint64(1)<<uint(width) - 1
	if uint64(raw) == missingMask {
		dbg.Println("missing value:", entry.XY())
		return DataEvent{Kind: EventData, Entry: entry, Value: Value{Kind: ValueMissing}}, nil
	}

	scale := int(entry.Scale()) + int(dr.scaleDelta)
	value := int64(entry.Reference()) + int64(raw)
	dbg.Println(entry.XY(), "raw:", raw, "scale:", scale, "value:", value)
	if scale == 0 {
		return DataEvent{Kind: EventData, Entry: entry, Value: Value{Kind: ValueInteger, Integer: value}}, nil
	}
	return DataEvent{Kind: EventData, Entry: entry, Value: Value{Kind: ValueDecimal, DecimalRaw: value, DecimalScale: int8(-scale)}}, nil
}

// decodeCompressedData reads one descriptor's packed values for every
// subset at once: a local reference value at width bits, a 6-bit increment
// width (nbinc), and then either nothing more (every subset shares the
// local reference) or one nbinc-bit increment per subset.
func (dr *DataReader) decodeCompressedData(entry descriptor.BEntry, width uint16) (DataEvent, error) {
	localRef, err := dr.br.Read(uint(width))
	if err != nil {
		return DataEvent{}, WrapIO(err)
	}
	nbinc, err := dr.br.Read(6)
	if err != nil {
		return DataEvent{}, WrapIO(err)
	}

	missingMask := uint64(1)<<uint(width) - 1
	scale := int(entry.Scale()) + int(dr.scaleDelta)
	decode := func(raw uint32) Value {
		if uint64(raw) == missingMask {
			return Value{Kind: ValueMissing}
		}
		value := int64(entry.Reference()) + int64(raw)
		if scale == 0 {
			return Value{Kind: ValueInteger, Integer: value}
		}
		return Value{Kind: ValueDecimal, DecimalRaw: value, DecimalScale: int8(-scale)}
	}

	values := make([]Value, dr.spec.SubsetCount)
	if nbinc == 0 {
		v := decode(localRef)
		for i := range values {
			values[i] = v
		}
	} else {
		for i := range values {
			inc, err := dr.br.Read(uint(nbinc))
			if err != nil {
				return DataEvent{}, WrapIO(err)
			}
			values[i] = decode(localRef + inc)
		}
	}

	dbg.Println(entry.XY(), "compressed local_ref:", localRef, "nbinc:", nbinc, "scale:", scale)
	return DataEvent{Kind: EventCompressedData, Entry: entry, Values: values}, nil
}

// isCharacterUnit reports whether a Table B unit names CCITT IA5 (plain
// character data), the one unit BUFR represents as octets rather than a
// scaled numeric field.
func isCharacterUnit(unit string) bool {
	return strings.Contains(strings.ToUpper(unit), "IA5")
}
