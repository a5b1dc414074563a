package decoder

import "github.com/mewkiz/bufr/descriptor"

// frameKind discriminates the two shapes a traversal frame takes. Go has no
// tagged unions, so frame follows the same discriminant-plus-fields shape
// as descriptor.ResolvedDescriptor and meta.Block.
type frameKind uint8

const (
	frameSequence frameKind = iota
	frameReplication
)

// frame is one entry of the engine's traversal stack.
//
// A Sequence frame (also used for the root of a subset) walks its children
// once, left to right.
//
// A Replication frame walks its children once per repetition, emitting an
// ItemStart/ItemEnd pair around every repetition so a caller can tell where
// one replicated item ends and the next begins.
type frame struct {
	kind     frameKind
	children []descriptor.ResolvedDescriptor
	idx      int // index of the next child to process within the current (or only) pass.

	// frameReplication only.
	totalCount uint32
	doneCount  uint32
	inItem     bool
}

func newSequenceFrame(children []descriptor.ResolvedDescriptor) *frame {
	return &frame{kind: frameSequence, children: children}
}

func newReplicationFrame(children []descriptor.ResolvedDescriptor, count uint32) *frame {
	return &frame{kind: frameReplication, children: children, totalCount: count}
}

// done reports whether this frame has nothing left to contribute: every
// child has been walked (Sequence), or every repetition has completed and
// none is in progress (Replication).
func (fr *frame) done() bool {
	if fr.kind == frameSequence {
		return fr.idx >= len(fr.children)
	}
	return !fr.inItem && fr.doneCount >= fr.totalCount
}

// nextChild returns the next child to process, advancing idx. For a
// Replication frame this must only be called while inItem is true.
func (fr *frame) nextChild() (descriptor.ResolvedDescriptor, bool) {
	if fr.idx >= len(fr.children) {
		return descriptor.ResolvedDescriptor{}, false
	}
	c := fr.children[fr.idx]
	fr.idx++
	return c, true
}

// beginItem starts the next repetition of a Replication frame.
func (fr *frame) beginItem() {
	fr.idx = 0
	fr.inItem = true
}

// endItem closes the repetition in progress.
func (fr *frame) endItem() {
	fr.inItem = false
	fr.doneCount++
}
