/*
Links:
	https://community.wmo.int/en/activity-areas/wmo-codes/manual-codes/latest-version
	https://www.wmo.int/pages/prog/www/WMOCodes/Guides/BUFR3/Layer3-English.pdf
*/

// Package bufr provides access to BUFR (Binary Universal Form for the
// Representation of meteorological data) messages.
package bufr

import (
	"bufio"
	"io"
	"os"

	"github.com/mewkiz/bufr/decoder"
	"github.com/mewkiz/bufr/section"
	"github.com/mewkiz/bufr/table"
)

// A Message is a decoded BUFR message: its header sections, the resolved
// data specification built from Section 3's descriptors, and the full
// DataEvent stream produced by walking the data section.
type Message struct {
	Header *section.HeaderSections
	Spec   *decoder.DataSpec
	Events []decoder.DataEvent
}

// Open opens the provided file and returns a parsed BUFR message, resolving
// its descriptors against tables.
func Open(filePath string, tables *table.Tables) (*Message, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewStream(f, tables)
}

// NewStream reads one BUFR message from r and returns it fully decoded.
//
// The basic structure of a BUFR message is:
//   - Section 0: the four byte string "BUFR", total length, edition number.
//   - Section 1: identification.
//   - Section 2: optional local use data.
//   - Section 3: data description, the descriptor sequence every subset follows.
//   - Section 4: the data section, a packed bitstream walked per Section 3.
//   - Section 5: the four byte string "7777".
func NewStream(r io.Reader, tables *table.Tables) (*Message, error) {
	// The data section's bit reader buffers any source that is not an
	// io.ByteReader, which would swallow the End section; give every section
	// reader the same buffered source instead.
	if _, ok := r.(io.ByteReader); !ok {
		r = bufio.NewReader(r)
	}

	hs, err := section.ReadHeaderSections(r)
	if err != nil {
		return nil, err
	}

	spec, err := decoder.NewDataSpec(hs.DataDesc.NumberOfSubsets, hs.DataDesc.Flags.IsCompressed, hs.DataDesc.Descriptors, tables)
	if err != nil {
		return nil, err
	}

	dr, err := decoder.NewDataReader(r, spec)
	if err != nil {
		return nil, err
	}

	m := &Message{Header: hs, Spec: spec}
	for {
		ev, err := dr.ReadEvent()
		if err != nil {
			return nil, err
		}
		m.Events = append(m.Events, ev)
		if ev.Kind == decoder.EventEOF {
			break
		}
	}

	if err := section.ReadEndSection(r); err != nil {
		return nil, err
	}

	return m, nil
}
