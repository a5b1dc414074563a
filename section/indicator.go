package section

import (
	"bytes"
	"io"

	"github.com/mewkiz/bufr/decoder"
)

var indicatorMagic = []byte("BUFR")

// IndicatorSection is BUFR Section 0: the four-byte magic, the total message
// length (header through End section, inclusive), and the edition number
// that determines how every following section is laid out.
type IndicatorSection struct {
	TotalLength   uint32 // 3 octets on the wire.
	EditionNumber uint8
}

func readIndicatorSection(r io.Reader) (IndicatorSection, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return IndicatorSection{}, decoder.WrapIO(err)
	}
	if !bytes.Equal(magic[:], indicatorMagic) {
		return IndicatorSection{}, decoder.Fatalf("section.readIndicatorSection: invalid magic; expected %q, got %q", indicatorMagic, magic)
	}

	length, err := readUint24(r)
	if err != nil {
		return IndicatorSection{}, decoder.WrapIO(err)
	}

	edition, err := readByte(r)
	if err != nil {
		return IndicatorSection{}, decoder.WrapIO(err)
	}

	return IndicatorSection{TotalLength: length, EditionNumber: edition}, nil
}
