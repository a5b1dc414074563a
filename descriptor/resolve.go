package descriptor

import "fmt"

// BEntry is the subset of a Table B element definition that resolution and
// the decode engine need. table.TableBEntry implements this.
type BEntry interface {
	XY() XY
	Description() string
	Unit() string
	Scale() int8
	Reference() int32
	Bits() uint16
}

// DEntry is the subset of a Table D sequence definition that resolution
// needs. table.TableDEntry implements this.
type DEntry interface {
	XY() XY
	Elements() []Descriptor
}

// Tables is the lookup surface descriptor resolution requires. table.Tables
// implements this; resolution never sees anything else about the tables
// bundle, and never mutates it.
type Tables interface {
	TableB(xy XY) (BEntry, bool)
	TableD(xy XY) (DEntry, bool)
}

// Kind discriminates the variant of a ResolvedDescriptor, standing in for
// the tagged union spec.md describes (Go has no sum types).
type Kind uint8

const (
	KindData Kind = iota
	KindReplication
	KindOperator
	KindSequence
)

// A ResolvedDescriptor is one node of the tree produced by resolving a raw
// descriptor sequence against Table B/D. Exactly one of the Kind-specific
// fields below is meaningful for a given Kind; Go has no tagged unions, so
// this follows the same "struct with an exported discriminant" shape
// meta.Block uses for FLAC's metadata block body.
type ResolvedDescriptor struct {
	Kind Kind

	// KindData: the borrowed Table B entry.
	Data BEntry

	// KindReplication.
	ReplY         uint8 // 0 means delayed.
	ReplChildren  []ResolvedDescriptor
	ReplDelayBits uint8 // bit width of the delayed count; 0 if Y != 0.

	// KindOperator.
	OperatorXY XY

	// KindSequence.
	SequenceEntry DEntry
	SeqChildren   []ResolvedDescriptor
}

// delayedCountBits maps the descriptor following a delayed (Y=0) replication
// to the bit width of its encoded count, per the WMO convention spec.md §4.1
// documents.
func delayedCountBits(next Descriptor) (uint8, error) {
	if next.F != 0 {
		return 0, fmt.Errorf("descriptor.Resolve: delayed replication must be followed by a data descriptor, got %s", next)
	}
	switch next.XY() {
	case (XY{X: 31, Y: 0}):
		return 1, nil
	case (XY{X: 31, Y: 1}):
		return 8, nil
	case (XY{X: 31, Y: 2}):
		return 16, nil
	case (XY{X: 31, Y: 11}):
		return 8, nil
	case (XY{X: 31, Y: 12}):
		return 16, nil
	default:
		return 0, fmt.Errorf("descriptor.Resolve: delayed replication followed by unrecognized count descriptor %s", next)
	}
}

// Resolve walks raw left-to-right, expanding every F=3 Sequence and F=1
// Replication against tables, and returns the resolved tree. A missing
// Table B/D entry, or a malformed replication, is a fatal error: resolution
// never partially succeeds.
func Resolve(raw []Descriptor, tables Tables) ([]ResolvedDescriptor, error) {
	out, _, err := resolveRun(raw, tables)
	return out, err
}

// resolveRun resolves as many descriptors from raw as it can consume,
// returning the resolved nodes and the number of raw descriptors consumed.
// Used both for a full sequence and for a replication's child block, which
// consumes only the next Y raw descriptors out of its parent's list.
func resolveRun(raw []Descriptor, tables Tables) ([]ResolvedDescriptor, int, error) {
	var out []ResolvedDescriptor
	i := 0
	for i < len(raw) {
		node, consumed, err := resolveOne(raw[i:], tables)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, node)
		i += consumed
	}
	return out, i, nil
}

// resolveOne resolves the descriptor at the front of raw, returning how many
// raw entries it consumed (more than one for replication, which swallows its
// replicated block).
func resolveOne(raw []Descriptor, tables Tables) (ResolvedDescriptor, int, error) {
	d := raw[0]
	switch d.F {
	case 0:
		b, ok := tables.TableB(d.XY())
		if !ok {
			return ResolvedDescriptor{}, 0, fmt.Errorf("descriptor.Resolve: Table B entry not found for %s", d)
		}
		return ResolvedDescriptor{Kind: KindData, Data: b}, 1, nil

	case 2:
		return ResolvedDescriptor{Kind: KindOperator, OperatorXY: d.XY()}, 1, nil

	case 3:
		entry, ok := tables.TableD(d.XY())
		if !ok {
			return ResolvedDescriptor{}, 0, fmt.Errorf("descriptor.Resolve: Table D entry not found for %s", d)
		}
		children, err := Resolve(entry.Elements(), tables)
		if err != nil {
			return ResolvedDescriptor{}, 0, err
		}
		return ResolvedDescriptor{Kind: KindSequence, SequenceEntry: entry, SeqChildren: children}, 1, nil

	case 1:
		y := d.Y
		count := int(y)
		consumed := 1
		var delayBits uint8
		if y == 0 {
			// Delayed: Y gives no block length, so the replicated block is
			// taken to be exactly the one raw descriptor that follows. The
			// descriptor after that block is the count descriptor, peeked
			// below for the count's bit width.
			count = 1
		}
		// A fixed replication only needs its own block of count descriptors
		// to exist; a delayed one additionally needs the count descriptor
		// that follows the block.
		need := 1 + count
		if y == 0 {
			need++
		}
		if need > len(raw) {
			return ResolvedDescriptor{}, 0, fmt.Errorf("descriptor.Resolve: replication %s expects %d following descriptors, only %d remain", d, need-1, len(raw)-1)
		}
		childRaw := raw[1 : 1+count]
		children, err := Resolve(childRaw, tables)
		if err != nil {
			return ResolvedDescriptor{}, 0, err
		}
		consumed += count
		if y == 0 {
			delayBits, err = delayedCountBits(raw[consumed])
			if err != nil {
				return ResolvedDescriptor{}, 0, err
			}
			// The delayed-count descriptor itself is left in the stream: it
			// is not consumed here, and will resolve normally as the next
			// sibling of this replication node.
		}
		return ResolvedDescriptor{
			Kind:          KindReplication,
			ReplY:         y,
			ReplChildren:  children,
			ReplDelayBits: delayBits,
		}, consumed, nil

	default:
		return ResolvedDescriptor{}, 0, fmt.Errorf("descriptor.Resolve: unsupported descriptor class F=%d in %s", d.F, d)
	}
}
