// Package bits provides the MSB-first bit reader the decoder uses to walk a
// BUFR data section's packed bitstream.
package bits

import (
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// A Reader reads big-endian, most-significant-bit-first fields from an
// underlying byte stream. Reads need not be byte aligned; the reader carries
// leftover bits from one call to the next the way bitio.Reader does
// internally, but also counts whole bytes consumed so callers can compare
// against a section length (see decoder.DataReader.BytesRead).
type Reader struct {
	br        *bitio.Reader
	bitsTaken int64
}

// NewReader returns a new Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(r)}
}

// Read reads and returns the next n bits (1 <= n <= 32) as an unsigned
// integer, most significant bit first.
func (br *Reader) Read(n uint) (uint32, error) {
	if n < 1 || n > 32 {
		return 0, fmt.Errorf("bits.Reader.Read: invalid width; want 1 <= n <= 32, got %d", n)
	}
	x, err := br.br.ReadBits(uint8(n))
	if err != nil {
		return 0, err
	}
	br.bitsTaken += int64(n)
	return uint32(x), nil
}

// ReadOctets reads k whole bytes and returns them. The reader need not be
// byte aligned beforehand; bitio.Reader assembles each byte from whatever
// bits remain buffered plus fresh bits from the stream.
func (br *Reader) ReadOctets(k int) ([]byte, error) {
	buf := make([]byte, k)
	for i := range buf {
		b, err := br.br.ReadByte()
		if err != nil {
			return nil, err
		}
		buf[i] = b
	}
	br.bitsTaken += int64(k) * 8
	return buf, nil
}

// BytesRead returns the number of whole bytes worth of bits consumed so far,
// rounded up. It exists so a caller can compare consumption against a
// section length per spec.md's open question on enforcing the data-section
// byte budget; the engine itself never consults it.
func (br *Reader) BytesRead() int64 {
	return (br.bitsTaken + 7) / 8
}
