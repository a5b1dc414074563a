package decoder

import "github.com/mewkiz/bufr/descriptor"

// applyOperator handles a resolved Operator descriptor. Only two operator
// classes are implemented:
//
//   - 2 02 YYY (change scale): every following Data descriptor's scale
//     shifts by YYY-128 until a following 2 02 000 cancels it.
//   - 2 06 YYY (temporary_operator / signify data width for local
//     descriptor): the very next Data descriptor reads YYY bits instead of
//     its Table B width, then the override is dropped. spec.md's reference
//     implementation leaves this inert; here it is actually applied (see
//     SPEC_FULL.md's REDESIGN note).
//
// Any other operator class resolves fine as a tree node but is Not-supported
// once the engine reaches it, per spec.md §7.
func (dr *DataReader) applyOperator(xy descriptor.XY) (DataEvent, error) {
	switch xy.X {
	case 2:
		if xy.Y == 0 {
			dr.scaleDelta = 0
		} else {
			dr.scaleDelta = int8(int(xy.Y) - 128)
		}
		return DataEvent{Kind: EventOperatorHandled, Operator: xy}, nil

	case 6:
		w := uint16(xy.Y)
		dr.tempWidth = &w
		return DataEvent{Kind: EventOperatorHandled, Operator: xy}, nil

	default:
		return DataEvent{}, NotSupportedf("decoder.DataReader: unsupported Table C operator 2 %02d %03d", xy.X, xy.Y)
	}
}
