package table

// TableCEntry is one WMO Table C operator definition. Y of -1 means the
// entry applies for any immediate value (the value is the operator's
// operand, e.g. the new scale in 202YYY); a concrete Y marks one of the
// handful of operators that reserve a specific value as a distinct marker,
// such as the 255 "cancel" forms.
type TableCEntry struct {
	X          uint8
	Y          int16
	Name       string
	Definition string
}

// TableC is the static catalogue of operator descriptors, for descriptive
// lookups via Tables.LookupC. Neither descriptor resolution nor the decode
// engine consults it: every operator resolves as a ResolvedDescriptor node,
// and the engine implements only 2 02 YYY and 2 06 YYY, returning
// Not-supported for any other operator it reaches.
var TableC = []TableCEntry{
	{1, -1, "change data width", "Width of following Table B elements (except CCITT IA5) changes by (YYY-128) bits."},
	{2, -1, "change scale", "Scale of following Table B elements changes by (YYY-128)."},
	{3, -1, "change reference value", "New reference value follows as a signed value, most significant bit is sign."},
	{4, -1, "add associated field", "Associated field of YYY bits inserted before each following element's value."},
	{5, -1, "signify character", "YYY characters of CCITT IA5 follow as plain data, not governed by Table B."},
	{6, -1, "signify data width for local descriptor", "Following local Table B descriptor occupies YYY bits."},
	{7, -1, "increase scale, reference and width", "Scale changes by YYY, reference value by 10^YYY, width by ceil(10*YYY/3)."},
	{8, -1, "change width of CCITT IA5 field", "Width of following CCITT IA5 elements changes to YYY characters."},
	{21, -1, "data not present", "Suppresses data present for the following 0 21 YYY elements; cancelled by YYY=0."},
	{22, 0, "quality information follows", "Following element is a quality indicator for the preceding element."},
	{23, 0, "substituted value operator", "Following element replaces the value of the most recently encoded element."},
	{23, 255, "substituted value marker", "Marks the substituted value itself in the data stream."},
	{24, 0, "first order statistical values follow", "Following element is a first-order statistic."},
	{24, 255, "first order statistical values marker", "Marks the first-order statistic value itself."},
	{25, 0, "difference statistical values follow", "Following element is a difference statistic."},
	{25, 255, "difference statistical values marker", "Marks the difference statistic value itself."},
	{32, 0, "replaced/retained values follow", "Following element replaces or retains a previously defined value."},
	{32, 255, "replaced/retained value marker", "Marks the replaced/retained value itself."},
	{35, 0, "cancel backward data reference", "Cancels the effect of operator 3 23 255 / 3 24 255 / 3 25 255 chaining."},
	{36, 0, "define data present bit-map", "Following descriptors define a data present bit-map."},
	{37, 0, "use defined data present bit-map", "Applies the most recently defined data present bit-map."},
	{37, 255, "cancel use defined data present bit-map", "Cancels use of the data present bit-map."},
	{41, 0, "define event", "Begins a define-event sequence for following Table B elements."},
	{41, 255, "cancel define event", "Ends a define-event sequence."},
	{42, 0, "define conditioning event", "Begins a define-conditioning-event sequence."},
	{42, 255, "cancel define conditioning event", "Ends a define-conditioning-event sequence."},
	{43, 0, "categorical forecast values follow", "Following element is a categorical forecast value."},
	{43, 255, "categorical forecast values marker", "Marks the categorical forecast value itself."},
}
