package section

import (
	"io"

	"github.com/mewkiz/bufr/decoder"
)

// IdentificationSectionFlags is the single flag octet of Section 1: only
// bit 1 (has_optional_section) is defined; the rest are reserved.
type IdentificationSectionFlags struct {
	HasOptionalSection bool
}

func decodeIdentificationFlags(b byte) IdentificationSectionFlags {
	return IdentificationSectionFlags{HasOptionalSection: b&0x80 != 0}
}

// IdentificationSection is BUFR Section 1 in its edition 4 form, the widest
// the format defines. An edition 3 message is read as
// IdentificationSectionV3 and upconverted into this shape so the rest of the
// decoder never has to branch on edition again.
type IdentificationSection struct {
	MasterTableNumber      uint8
	OriginatingSubcentre   uint16
	OriginatingCentre      uint16
	UpdateSequenceNumber   uint8
	Flags                  IdentificationSectionFlags
	DataCategory           uint8
	IntlDataSubcategory    uint8
	LocalDataSubcategory   uint8
	MasterTableVersion     uint8
	LocalTableVersion      uint8
	Year                   uint16
	Month, Day             uint8
	Hour, Minute, Second   uint8
}

func readIdentificationSection(r io.Reader) (IdentificationSection, error) {
	length, err := readUint24(r)
	if err != nil {
		return IdentificationSection{}, decoder.WrapIO(err)
	}
	if length < 22 {
		return IdentificationSection{}, decoder.Fatalf("section.readIdentificationSection: section length too short for edition 4; expected >= 22, got %d", length)
	}

	fields, err := readOctets(r, int(length)-3)
	if err != nil {
		return IdentificationSection{}, decoder.WrapIO(err)
	}

	id := IdentificationSection{
		MasterTableNumber:    fields[0],
		OriginatingSubcentre: be16(fields[1:3]),
		OriginatingCentre:    be16(fields[3:5]),
		UpdateSequenceNumber: fields[5],
		Flags:                decodeIdentificationFlags(fields[6]),
		DataCategory:         fields[7],
		IntlDataSubcategory:  fields[8],
		LocalDataSubcategory: fields[9],
		MasterTableVersion:   fields[10],
		LocalTableVersion:    fields[11],
		Year:                 be16(fields[12:14]),
		Month:                fields[14],
		Day:                  fields[15],
		Hour:                 fields[16],
		Minute:               fields[17],
		Second:               fields[18],
	}
	return id, nil
}

// IdentificationSectionV3 is BUFR Section 1 in its edition 3 form: no
// subcentre/international-subcategory split, a two-digit year, no seconds.
type IdentificationSectionV3 struct {
	MasterTableNumber    uint8
	OriginatingSubcentre uint8
	OriginatingCentre    uint8
	UpdateSequenceNumber uint8
	Flags                IdentificationSectionFlags
	DataCategory         uint8
	DataSubcategory      uint8
	MasterTableVersion   uint8
	LocalTableVersion    uint8
	Year                 uint8 // Two-digit year, WMO century convention.
	Month, Day           uint8
	Hour, Minute         uint8
}

// Upconvert widens an edition 3 identification section into the edition 4
// shape, so the rest of the decoder only ever deals with one layout.
func (v3 IdentificationSectionV3) Upconvert() IdentificationSection {
	year := uint16(v3.Year)
	if year < 100 {
		// WMO convention: two-digit years below 50 are 20xx, at or above
		// are 19xx.
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	return IdentificationSection{
		MasterTableNumber:    v3.MasterTableNumber,
		OriginatingSubcentre: uint16(v3.OriginatingSubcentre),
		OriginatingCentre:    uint16(v3.OriginatingCentre),
		UpdateSequenceNumber: v3.UpdateSequenceNumber,
		Flags:                v3.Flags,
		DataCategory:         v3.DataCategory,
		IntlDataSubcategory:  v3.DataSubcategory,
		LocalDataSubcategory: v3.DataSubcategory,
		MasterTableVersion:   v3.MasterTableVersion,
		LocalTableVersion:    v3.LocalTableVersion,
		Year:                 year,
		Month:                v3.Month,
		Day:                  v3.Day,
		Hour:                 v3.Hour,
		Minute:               v3.Minute,
	}
}

func readIdentificationSectionV3(r io.Reader) (IdentificationSectionV3, error) {
	length, err := readUint24(r)
	if err != nil {
		return IdentificationSectionV3{}, decoder.WrapIO(err)
	}
	if length < 17 {
		return IdentificationSectionV3{}, decoder.Fatalf("section.readIdentificationSectionV3: section length too short for edition 3; expected >= 17, got %d", length)
	}

	fields, err := readOctets(r, int(length)-3)
	if err != nil {
		return IdentificationSectionV3{}, decoder.WrapIO(err)
	}

	id := IdentificationSectionV3{
		MasterTableNumber:    fields[0],
		OriginatingSubcentre: fields[1],
		OriginatingCentre:    fields[2],
		UpdateSequenceNumber: fields[3],
		Flags:                decodeIdentificationFlags(fields[4]),
		DataCategory:         fields[5],
		DataSubcategory:      fields[6],
		MasterTableVersion:   fields[7],
		LocalTableVersion:    fields[8],
		Year:                 fields[9],
		Month:                fields[10],
		Day:                  fields[11],
		Hour:                 fields[12],
		Minute:               fields[13],
	}
	return id, nil
}

func be16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

func readOctets(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
