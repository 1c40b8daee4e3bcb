// Package bitutil provides bit stream utilities for barcode encoding.
package bitutil

import "strings"

// BitBuffer is an append-only bit stream, packed MSB-first within bytes in
// big-endian stream order.
type BitBuffer struct {
	data []byte
	size int
}

// NewBitBuffer creates an empty BitBuffer.
func NewBitBuffer() *BitBuffer {
	return &BitBuffer{}
}

// Len returns the number of bits in the stream.
func (b *BitBuffer) Len() int {
	return b.size
}

// SizeInBytes returns the number of bytes needed to hold the bits.
func (b *BitBuffer) SizeInBytes() int {
	return (b.size + 7) / 8
}

// AppendBit appends a single bit.
func (b *BitBuffer) AppendBit(bit bool) {
	if b.size == len(b.data)*8 {
		b.data = append(b.data, 0)
	}
	if bit {
		b.data[b.size/8] |= 0x80 >> uint(b.size&7)
	}
	b.size++
}

// AppendBits appends the least-significant numBits bits of value, from most
// significant to least significant.
func (b *BitBuffer) AppendBits(value uint32, numBits int) {
	if numBits < 0 || numBits > 32 {
		panic("bitutil: numBits must be between 0 and 32")
	}
	for i := numBits - 1; i >= 0; i-- {
		b.AppendBit(value&(1<<uint(i)) != 0)
	}
}

// ByteAt returns the eight bits starting at bit position i*8. Bits past the
// end of the stream read as zero.
func (b *BitBuffer) ByteAt(i int) byte {
	if i < 0 {
		panic("bitutil: negative byte index")
	}
	if i >= len(b.data) {
		return 0
	}
	return b.data[i]
}

// Bytes returns a copy of the stream padded with zero bits to a whole number
// of bytes.
func (b *BitBuffer) Bytes() []byte {
	out := make([]byte, b.SizeInBytes())
	copy(out, b.data)
	return out
}

// String returns a string representation using 'X' for set and '.' for unset.
func (b *BitBuffer) String() string {
	var sb strings.Builder
	sb.Grow(b.size + b.size/8 + 1)
	for i := 0; i < b.size; i++ {
		if i&0x07 == 0 && i > 0 {
			sb.WriteByte(' ')
		}
		if b.data[i/8]&(0x80>>uint(i&7)) != 0 {
			sb.WriteByte('X')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
