package decoder

import "github.com/mewkiz/bufr/descriptor"

// ReadEvent returns the next DataEvent in the data section's flat event
// stream. Once every subset has been walked, ReadEvent returns EventEOF on
// every subsequent call; it never returns an error once EOF is reached.
func (dr *DataReader) ReadEvent() (DataEvent, error) {
	if dr.eof {
		return DataEvent{Kind: EventEOF}, nil
	}
	if len(dr.stack) == 0 {
		return dr.startNextSubset()
	}
	return dr.stepSubset()
}

// startNextSubset advances past subset boundaries. An uncompressed message
// pushes a fresh root frame and emits SubsetStart once per subset. A
// compressed message's descriptor tree encodes every subset's values
// together, so it is walked exactly once: the root frame is pushed only for
// subsetIndex 0, announced with CompressedStart, and any later call with an
// empty stack goes straight to EOF.
func (dr *DataReader) startNextSubset() (DataEvent, error) {
	if dr.spec.Compressed {
		if dr.subsetIndex > 0 {
			dr.eof = true
			return DataEvent{Kind: EventEOF}, nil
		}
	} else if dr.subsetIndex >= dr.spec.SubsetCount {
		dr.eof = true
		return DataEvent{Kind: EventEOF}, nil
	}

	dr.stack = []*frame{newSequenceFrame(dr.spec.Root)}
	dr.tempWidth = nil
	idx := dr.subsetIndex
	dr.subsetIndex++

	if dr.spec.Compressed {
		return DataEvent{Kind: EventCompressedStart}, nil
	}
	return DataEvent{Kind: EventSubsetStart, SubsetIndex: idx}, nil
}

// stepSubset advances the traversal stack by exactly one event: popping a
// finished frame, opening or closing a replication item, or dispatching the
// next child descriptor.
func (dr *DataReader) stepSubset() (DataEvent, error) {
	for {
		top := dr.stack[len(dr.stack)-1]

		if top.done() {
			dr.stack = dr.stack[:len(dr.stack)-1]
			if len(dr.stack) == 0 {
				return dr.endRoot(), nil
			}
			switch top.kind {
			case frameSequence:
				return DataEvent{Kind: EventSequenceEnd}, nil
			case frameReplication:
				return DataEvent{Kind: EventReplicationEnd}, nil
			}
		}

		if top.kind == frameReplication && !top.inItem {
			top.beginItem()
			return DataEvent{Kind: EventItemStart, ItemIndex: top.doneCount}, nil
		}

		child, ok := top.nextChild()
		if !ok {
			// Replication frame finished walking this repetition's children.
			idx := top.doneCount
			top.endItem()
			return DataEvent{Kind: EventItemEnd, ItemIndex: idx}, nil
		}

		return dr.processChild(child)
	}
}

// endRoot closes out the root frame, which is the only frame whose
// completion ends a full walk of the descriptor tree: SubsetEnd for an
// uncompressed message's subset, or EOF for a compressed message's single
// walk over every subset's shared tree.
func (dr *DataReader) endRoot() DataEvent {
	if dr.spec.Compressed {
		dr.eof = true
		return DataEvent{Kind: EventEOF}
	}
	return DataEvent{Kind: EventSubsetEnd, SubsetIndex: dr.subsetIndex - 1}
}

// processChild dispatches one resolved descriptor to the handler for its
// kind.
func (dr *DataReader) processChild(c descriptor.ResolvedDescriptor) (DataEvent, error) {
	switch c.Kind {
	case descriptor.KindData:
		return dr.decodeData(c.Data)
	case descriptor.KindOperator:
		return dr.applyOperator(c.OperatorXY)
	case descriptor.KindSequence:
		dr.stack = append(dr.stack, newSequenceFrame(c.SeqChildren))
		return DataEvent{Kind: EventSequenceStart, Sequence: c.SequenceEntry}, nil
	case descriptor.KindReplication:
		return dr.startReplication(c)
	default:
		return DataEvent{}, Fatalf("decoder.DataReader.ReadEvent: unresolved descriptor kind %d", c.Kind)
	}
}
