// Package section decodes the fixed header sections that precede a BUFR
// message's data section: the Indicator, Identification, optional Local Use,
// and Data Description sections, plus the End section's closing magic.
package section

import (
	"bytes"
	"io"

	"github.com/mewkiz/bufr/decoder"
)

// readUint24 reads a 3-octet big-endian unsigned integer, the length
// encoding BUFR uses throughout its section headers.
func readUint24(r io.Reader) (uint32, error) {
	var buf [3]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2]), nil
}

// HeaderSections holds every section of a BUFR message that precedes the
// data section: everything the decode engine needs to know before it can
// start walking the bitstream.
type HeaderSections struct {
	Indicator      IndicatorSection
	Identification IdentificationSection
	Optional       *OptionalSection // nil when Identification.Flags.HasOptionalSection is false.
	DataDesc       DataDescriptionSection
}

// ReadHeaderSections reads and validates every section up to, but not
// including, the data section.
func ReadHeaderSections(r io.Reader) (*HeaderSections, error) {
	ind, err := readIndicatorSection(r)
	if err != nil {
		return nil, err
	}

	var hs HeaderSections
	hs.Indicator = ind

	switch ind.EditionNumber {
	case 3:
		idV3, err := readIdentificationSectionV3(r)
		if err != nil {
			return nil, err
		}
		hs.Identification = idV3.Upconvert()
	case 4:
		id, err := readIdentificationSection(r)
		if err != nil {
			return nil, err
		}
		hs.Identification = id
	default:
		return nil, decoder.Fatalf("section.ReadHeaderSections: unsupported BUFR edition %d", ind.EditionNumber)
	}

	if hs.Identification.Flags.HasOptionalSection {
		opt, err := readOptionalSection(r)
		if err != nil {
			return nil, err
		}
		hs.Optional = opt
	}

	dd, err := readDataDescriptionSection(r)
	if err != nil {
		return nil, err
	}
	hs.DataDesc = dd

	return &hs, nil
}

// ReadEndSection consumes the End section's "7777" magic following the data
// section. BUFR edition 3 messages are occasionally padded with a single
// zero byte before the magic; ReadEndSection tolerates exactly that one
// byte of slack and nothing more.
func ReadEndSection(r io.Reader) error {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return decoder.WrapIO(err)
	}
	if bytes.Equal(buf[:], endMagic) {
		return nil
	}
	// Edition 3 tolerance: a single leading pad byte before "7777".
	if buf[0] == 0 {
		var last3 [3]byte
		copy(last3[:], buf[1:])
		b4, err := readByte(r)
		if err != nil {
			return decoder.WrapIO(err)
		}
		if bytes.Equal(append(last3[:], b4), endMagic) {
			return nil
		}
	}
	return decoder.Fatalf("section.ReadEndSection: invalid end section magic; expected %q, got % X", endMagic, buf)
}

func readByte(r io.Reader) (byte, error) {
	var b [1]byte
	_, err := io.ReadFull(r, b[:])
	return b[0], err
}

var endMagic = []byte("7777")
