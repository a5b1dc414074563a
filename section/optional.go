package section

import (
	"io"

	"github.com/mewkiz/bufr/decoder"
)

// OptionalSection is BUFR Section 2: centre-defined local use data that the
// decode engine never interprets, only carries.
type OptionalSection struct {
	Data []byte
}

func readOptionalSection(r io.Reader) (*OptionalSection, error) {
	length, err := readUint24(r)
	if err != nil {
		return nil, decoder.WrapIO(err)
	}
	if length < 4 {
		return nil, decoder.Fatalf("section.readOptionalSection: section length too short; expected >= 4, got %d", length)
	}
	data, err := readOctets(r, int(length)-3)
	if err != nil {
		return nil, decoder.WrapIO(err)
	}
	return &OptionalSection{Data: data}, nil
}
