package section_test

import (
	"bytes"
	"testing"

	"github.com/mewkiz/bufr/section"
)

func TestReadHeaderSectionsEdition4(t *testing.T) {
	var buf bytes.Buffer

	// Section 0: "BUFR" + 3-byte total length + edition 4.
	buf.WriteString("BUFR")
	buf.Write([]byte{0x00, 0x00, 0x20})
	buf.WriteByte(4)

	// Section 1: length 22, no optional section, everything else zero.
	buf.Write([]byte{0x00, 0x00, 0x16})
	buf.Write(make([]byte, 19))

	// Section 3: length 9 (7-byte header + one 2-byte descriptor), reserved,
	// 1 subset, flags 0, one descriptor 0 01 001 (word 0x0101).
	buf.Write([]byte{0x00, 0x00, 0x09})
	buf.WriteByte(0) // reserved
	buf.Write([]byte{0x00, 0x01})
	buf.WriteByte(0x00)
	buf.Write([]byte{0x01, 0x01})

	hs, err := section.ReadHeaderSections(&buf)
	if err != nil {
		t.Fatalf("ReadHeaderSections: %v", err)
	}
	if hs.Indicator.EditionNumber != 4 {
		t.Errorf("EditionNumber = %d, want 4", hs.Indicator.EditionNumber)
	}
	if hs.Optional != nil {
		t.Error("Optional = non-nil, want nil (no optional section flagged)")
	}
	if hs.DataDesc.NumberOfSubsets != 1 {
		t.Errorf("NumberOfSubsets = %d, want 1", hs.DataDesc.NumberOfSubsets)
	}
	if len(hs.DataDesc.Descriptors) != 1 {
		t.Fatalf("Descriptors = %+v, want 1 entry", hs.DataDesc.Descriptors)
	}
	d := hs.DataDesc.Descriptors[0]
	if d.F != 0 || d.X != 1 || d.Y != 1 {
		t.Errorf("Descriptors[0] = %+v, want {F:0 X:1 Y:1}", d)
	}
}

func TestReadHeaderSectionsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("XXXX")
	if _, err := section.ReadHeaderSections(buf); err == nil {
		t.Fatal("ReadHeaderSections: expected error for bad magic, got nil")
	}
}

func TestReadEndSection(t *testing.T) {
	buf := bytes.NewBufferString("7777")
	if err := section.ReadEndSection(buf); err != nil {
		t.Fatalf("ReadEndSection: %v", err)
	}
}

func TestReadEndSectionEdition3Padding(t *testing.T) {
	buf := bytes.NewBuffer(append([]byte{0x00}, []byte("7777")...))
	if err := section.ReadEndSection(buf); err != nil {
		t.Fatalf("ReadEndSection: %v", err)
	}
}

func TestReadEndSectionInvalid(t *testing.T) {
	buf := bytes.NewBufferString("XXXX")
	if err := section.ReadEndSection(buf); err == nil {
		t.Fatal("ReadEndSection: expected error, got nil")
	}
}
