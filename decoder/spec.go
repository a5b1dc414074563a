package decoder

import (
	"github.com/mewkiz/bufr/descriptor"
	"github.com/pkg/errors"
)

// DataSpec is the resolved, ready-to-walk description of a data section:
// how many subsets it holds, whether they are encoded compressed, and the
// resolved descriptor tree every subset follows. Building a DataSpec is the
// only place table resolution happens; DataReader only ever walks it.
type DataSpec struct {
	SubsetCount uint16
	Compressed  bool
	Root        []descriptor.ResolvedDescriptor
}

// NewDataSpec resolves rootRaw against tables and bundles the result with
// the subset count and compression flag Section 3 carries. A resolution
// failure is returned as a KindFatal *Error wrapping the resolver's error.
func NewDataSpec(subsetCount uint16, compressed bool, rootRaw []descriptor.Descriptor, tables descriptor.Tables) (*DataSpec, error) {
	root, err := descriptor.Resolve(rootRaw, tables)
	if err != nil {
		return nil, &Error{Kind: KindFatal, err: errors.WithStack(err)}
	}
	return &DataSpec{
		SubsetCount: subsetCount,
		Compressed:  compressed,
		Root:        root,
	}, nil
}
