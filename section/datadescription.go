package section

import (
	"io"

	"github.com/mewkiz/bufr/decoder"
	"github.com/mewkiz/bufr/descriptor"
)

// DataDescriptionSectionFlags is the single flag octet of Section 3.
type DataDescriptionSectionFlags struct {
	IsObservedData bool
	IsCompressed   bool
}

func decodeDataDescriptionFlags(b byte) DataDescriptionSectionFlags {
	return DataDescriptionSectionFlags{
		IsObservedData: b&0x80 != 0,
		IsCompressed:   b&0x40 != 0,
	}
}

// DataDescriptionSection is BUFR Section 3: how many data subsets the
// message holds, whether they are compressed together, and the raw
// descriptor sequence that, once resolved against Table B/D, describes every
// value in the data section.
type DataDescriptionSection struct {
	NumberOfSubsets uint16
	Flags           DataDescriptionSectionFlags
	Descriptors     []descriptor.Descriptor
}

func readDataDescriptionSection(r io.Reader) (DataDescriptionSection, error) {
	length, err := readUint24(r)
	if err != nil {
		return DataDescriptionSection{}, decoder.WrapIO(err)
	}
	if length < 7 {
		return DataDescriptionSection{}, decoder.Fatalf("section.readDataDescriptionSection: section length too short; expected >= 7, got %d", length)
	}

	if _, err := readByte(r); err != nil { // Reserved octet.
		return DataDescriptionSection{}, decoder.WrapIO(err)
	}

	rest, err := readOctets(r, int(length)-4)
	if err != nil {
		return DataDescriptionSection{}, decoder.WrapIO(err)
	}
	if len(rest) < 3 {
		return DataDescriptionSection{}, decoder.Fatalf("section.readDataDescriptionSection: truncated section header")
	}

	numSubsets := be16(rest[0:2])
	flags := decodeDataDescriptionFlags(rest[2])

	descWords := rest[3:]
	count := len(descWords) / 2
	descriptors := make([]descriptor.Descriptor, count)
	for i := 0; i < count; i++ {
		word := be16(descWords[i*2 : i*2+2])
		descriptors[i] = descriptor.Decode(word)
	}

	return DataDescriptionSection{
		NumberOfSubsets: numSubsets,
		Flags:           flags,
		Descriptors:     descriptors,
	}, nil
}
