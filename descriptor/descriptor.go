// Package descriptor provides the BUFR FXY descriptor value type and the
// resolution of raw descriptor sequences against Table B/D into a tree the
// decoder can walk.
package descriptor

import "fmt"

// A Descriptor is a raw FXY triplet as it appears in the Data Description
// Section: F identifies the descriptor class, X the class-local group, and Y
// the element within that group.
//
// Wire encoding (one 16-bit big-endian word):
//
//	type DESCRIPTOR struct {
//	   f uint2
//	   x uint6
//	   y uint8
//	}
type Descriptor struct {
	F uint8 // 0: element, 1: replication, 2: operator, 3: sequence.
	X uint8 // 6 bits.
	Y uint8
}

// Decode parses a 16-bit big-endian descriptor word.
func Decode(word uint16) Descriptor {
	return Descriptor{
		F: uint8(word >> 14),
		X: uint8(word>>8) & 0x3F,
		Y: uint8(word),
	}
}

// Encode packs the descriptor back into its 16-bit big-endian word form.
func (d Descriptor) Encode() uint16 {
	return uint16(d.F)<<14 | uint16(d.X)<<8 | uint16(d.Y)
}

// XY returns the (X, Y) pair used as the table lookup key; F is not part of
// the key since Table B/C/D are each scoped to a single F value.
func (d Descriptor) XY() XY {
	return XY{X: d.X, Y: d.Y}
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%01d%02d%03d", d.F, d.X, d.Y)
}

// XY is the (X, Y) lookup key shared by Table B and Table D entries.
type XY struct {
	X uint8
	Y uint8
}

func (xy XY) String() string {
	return fmt.Sprintf("%02d%03d", xy.X, xy.Y)
}
