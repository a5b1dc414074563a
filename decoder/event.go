package decoder

import (
	"math/big"
	"strconv"

	"github.com/mewkiz/bufr/descriptor"
)

// ValueKind discriminates the variant of a Value.
type ValueKind uint8

const (
	ValueMissing ValueKind = iota
	ValueInteger
	ValueDecimal
	ValueString
)

// Value is one decoded element value. Table B elements with scale 0 decode
// as ValueInteger; scaled numeric elements decode as ValueDecimal, which
// keeps the raw integer and the power-of-ten scale separate so formatting
// never loses precision to floating point; CCITT IA5 elements decode as
// ValueString; an all-ones raw numeric field decodes as ValueMissing
// whatever the element's scale. Character elements are never decoded as
// ValueMissing.
type Value struct {
	Kind ValueKind

	Integer int64

	// DecimalValue = DecimalRaw * 10^DecimalScale. Table B's "scale" field is
	// the number of decimal places the raw integer must be divided by, so
	// DecimalScale is the negation of the resolved scale (plus any operator
	// scale change) by the time it reaches here.
	DecimalRaw   int64
	DecimalScale int8

	Str string
}

// String renders a Value the way it appears in trace output and test
// fixtures: "Missing", a bare integer, a decimal with its digits shifted
// into place, or a quoted string.
func (v Value) String() string {
	switch v.Kind {
	case ValueMissing:
		return "Missing"
	case ValueInteger:
		return strconv.FormatInt(v.Integer, 10)
	case ValueDecimal:
		return formatDecimal(v.DecimalRaw, v.DecimalScale)
	case ValueString:
		return strconv.Quote(v.Str)
	default:
		return "?"
	}
}

// formatDecimal renders raw*10^scale as a decimal string without ever
// converting through a float, so a scale large enough to overflow int64
// still prints correctly.
func formatDecimal(raw int64, scale int8) string {
	if scale == 0 {
		return strconv.FormatInt(raw, 10)
	}

	neg := raw < 0
	abs := new(big.Int).Abs(big.NewInt(raw))

	if scale > 0 {
		mult := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
		abs.Mul(abs, mult)
		s := abs.String()
		if neg {
			s = "-" + s
		}
		return s
	}

	places := int(-scale)
	s := abs.String()
	for len(s) <= places {
		s = "0" + s
	}
	intPart, fracPart := s[:len(s)-places], s[len(s)-places:]
	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// EventKind discriminates the variant of a DataEvent.
type EventKind uint8

const (
	EventSubsetStart EventKind = iota
	EventSubsetEnd
	EventCompressedStart
	EventReplicationStart
	EventItemStart
	EventItemEnd
	EventReplicationEnd
	EventSequenceStart
	EventSequenceEnd
	EventOperatorHandled
	EventData
	EventCompressedData
	EventEOF
)

// A DataEvent is one step of the flat event stream ReadEvent produces while
// walking a data section. Exactly the fields relevant to Kind are
// meaningful; see ResolvedDescriptor for why this is a struct-plus-tag
// rather than separate types.
type DataEvent struct {
	Kind EventKind

	SubsetIndex uint16 // EventSubsetStart

	Entry descriptor.BEntry // EventData, EventCompressedData
	Value Value             // EventData
	Values []Value          // EventCompressedData: one value per subset, local-reference-plus-increment decoded.

	ReplicationCount uint32 // EventReplicationStart
	ItemIndex        uint32 // EventItemStart, EventItemEnd

	Operator descriptor.XY // EventOperatorHandled

	Sequence descriptor.DEntry // EventSequenceStart
}
