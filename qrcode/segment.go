package qrcode

import (
	"fmt"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	qrbarcode "github.com/zenalex/qr-bar-code"
	"github.com/zenalex/qr-bar-code/bitutil"
)

// alphanumericTable maps ASCII values to alphanumeric mode codes 0-44.
var alphanumericTable = [128]int{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	36, -1, -1, -1, 37, 38, -1, -1, -1, -1, 39, 40, -1, 41, 42, 43,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, -1, -1, -1, -1, -1,
	-1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// alphanumericCode returns the alphanumeric mode code for a character, or -1.
func alphanumericCode(c byte) int {
	if c < 128 {
		return alphanumericTable[c]
	}
	return -1
}

// Segment is one tagged chunk of input data: a mode plus the source
// characters to pack under that mode. Segments are created by the factory
// functions and consumed once by the encoder.
type Segment struct {
	mode Mode
	data []byte // kanji segments hold Shift JIS bytes
}

// NewNumericSegment creates a numeric mode segment from a digit string.
func NewNumericSegment(digits string) (Segment, error) {
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Segment{}, fmt.Errorf("%w: %q at position %d",
				qrbarcode.ErrInvalidDigits, digits[i], i)
		}
	}
	return Segment{mode: ModeNumeric, data: []byte(digits)}, nil
}

// NewAlphanumericSegment creates an alphanumeric mode segment. Accepted
// characters are 0-9, A-Z, space, and $%*+-./:.
func NewAlphanumericSegment(text string) (Segment, error) {
	for i := 0; i < len(text); i++ {
		if alphanumericCode(text[i]) < 0 {
			return Segment{}, fmt.Errorf("%w: %q is not alphanumeric",
				qrbarcode.ErrInvalidCharacter, text[i])
		}
	}
	return Segment{mode: ModeAlphanumeric, data: []byte(text)}, nil
}

// NewByteSegment creates an 8-bit byte mode segment.
func NewByteSegment(data []byte) Segment {
	d := make([]byte, len(data))
	copy(d, data)
	return Segment{mode: ModeByte, data: d}
}

// NewKanjiSegment creates a kanji mode segment from UTF-8 text. The text is
// converted to Shift JIS; every converted character must fall in the
// double-byte ranges 0x8140-0x9FFC or 0xE040-0xEBBF.
func NewKanjiSegment(text string) (Segment, error) {
	sjis, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(text))
	if err != nil {
		return Segment{}, fmt.Errorf("%w: not representable in Shift JIS: %v",
			qrbarcode.ErrInvalidCharacter, err)
	}
	if len(sjis)%2 != 0 {
		return Segment{}, fmt.Errorf("%w: not a double-byte kanji sequence",
			qrbarcode.ErrInvalidCharacter)
	}
	for i := 0; i < len(sjis); i += 2 {
		c := uint16(sjis[i])<<8 | uint16(sjis[i+1])
		if !(c >= 0x8140 && c <= 0x9FFC || c >= 0xE040 && c <= 0xEBBF) {
			return Segment{}, fmt.Errorf("%w: %#04x is not a kanji double-byte",
				qrbarcode.ErrInvalidCharacter, c)
		}
	}
	return Segment{mode: ModeKanji, data: sjis}, nil
}

// Mode returns the segment's encoding mode.
func (s Segment) Mode() Mode {
	return s.mode
}

// Length returns the segment's logical length: digits for numeric,
// characters for alphanumeric, bytes for 8-bit, double-byte units for kanji.
func (s Segment) Length() int {
	if s.mode == ModeKanji {
		return len(s.data) / 2
	}
	return len(s.data)
}

// bitLength returns the payload bit cost of the segment, excluding the mode
// and count indicators.
func (s Segment) bitLength() int {
	n := s.Length()
	switch s.mode {
	case ModeNumeric:
		return 10*(n/3) + [3]int{0, 4, 7}[n%3]
	case ModeAlphanumeric:
		return 11*(n/2) + 6*(n%2)
	case ModeByte:
		return 8 * n
	case ModeKanji:
		return 13 * n
	}
	panic("qrcode: unknown mode")
}

// Write appends the segment's bit-encoded payload to the buffer.
func (s Segment) Write(buf *bitutil.BitBuffer) {
	switch s.mode {
	case ModeNumeric:
		s.writeNumeric(buf)
	case ModeAlphanumeric:
		s.writeAlphanumeric(buf)
	case ModeByte:
		for _, b := range s.data {
			buf.AppendBits(uint32(b), 8)
		}
	case ModeKanji:
		s.writeKanji(buf)
	default:
		panic("qrcode: unknown mode")
	}
}

// writeNumeric packs groups of three digits into 10 bits; a final pair takes
// 7 bits and a final lone digit 4 bits.
func (s Segment) writeNumeric(buf *bitutil.BitBuffer) {
	d := s.data
	i := 0
	for ; i+3 <= len(d); i += 3 {
		n := int(d[i]-'0')*100 + int(d[i+1]-'0')*10 + int(d[i+2]-'0')
		buf.AppendBits(uint32(n), 10)
	}
	switch len(d) - i {
	case 2:
		buf.AppendBits(uint32(int(d[i]-'0')*10+int(d[i+1]-'0')), 7)
	case 1:
		buf.AppendBits(uint32(d[i]-'0'), 4)
	}
}

// writeAlphanumeric packs pairs as 45*a+b in 11 bits; a final lone character
// takes 6 bits.
func (s Segment) writeAlphanumeric(buf *bitutil.BitBuffer) {
	d := s.data
	i := 0
	for ; i+2 <= len(d); i += 2 {
		buf.AppendBits(uint32(alphanumericCode(d[i])*45+alphanumericCode(d[i+1])), 11)
	}
	if i < len(d) {
		buf.AppendBits(uint32(alphanumericCode(d[i])), 6)
	}
}

// writeKanji packs each Shift JIS double-byte into 13 bits.
func (s Segment) writeKanji(buf *bitutil.BitBuffer) {
	for i := 0; i < len(s.data); i += 2 {
		c := uint16(s.data[i])<<8 | uint16(s.data[i+1])
		if c >= 0x8140 && c <= 0x9FFC {
			c -= 0x8140
		} else {
			c -= 0xC140
		}
		buf.AppendBits(uint32(c>>8)*0xC0+uint32(c&0xFF), 13)
	}
}

// ChooseMode determines the tightest single encoding mode for the content.
func ChooseMode(content string) Mode {
	hasNumeric := false
	hasAlphanumeric := false
	for i := 0; i < len(content); i++ {
		c := content[i]
		if c >= '0' && c <= '9' {
			hasNumeric = true
		} else if alphanumericCode(c) >= 0 {
			hasAlphanumeric = true
		} else {
			return ModeByte
		}
	}
	if hasAlphanumeric {
		return ModeAlphanumeric
	}
	if hasNumeric {
		return ModeNumeric
	}
	return ModeByte
}
