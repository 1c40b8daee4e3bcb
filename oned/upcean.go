package oned

import (
	"fmt"

	qrbarcode "github.com/zenalex/qr-bar-code"
)

// UPC/EAN guard patterns.
var (
	upceanStartEndPattern = []int{1, 1, 1}
	upceanMiddlePattern   = []int{1, 1, 1, 1, 1}
)

// lPatterns contains the "odd" or "L" patterns for encoding UPC/EAN digits.
var lPatterns = [10][]int{
	{3, 2, 1, 1}, // 0
	{2, 2, 2, 1}, // 1
	{2, 1, 2, 2}, // 2
	{1, 4, 1, 1}, // 3
	{1, 1, 3, 2}, // 4
	{1, 2, 3, 1}, // 5
	{1, 1, 1, 4}, // 6
	{1, 3, 1, 2}, // 7
	{1, 2, 1, 3}, // 8
	{3, 1, 1, 2}, // 9
}

// lAndGPatterns includes both the L and the G patterns; indices 10-19 are
// the reversed L patterns.
var lAndGPatterns [20][]int

func init() {
	for i := 0; i < 10; i++ {
		lAndGPatterns[i] = lPatterns[i]
	}
	for i := 10; i < 20; i++ {
		widths := lPatterns[i-10]
		reversed := make([]int, len(widths))
		for j := 0; j < len(widths); j++ {
			reversed[j] = widths[len(widths)-j-1]
		}
		lAndGPatterns[i] = reversed
	}
}

// ean13FirstDigitEncodings maps the implicit first digit to the L/G parity
// of the six left-half digits.
var ean13FirstDigitEncodings = [10]int{
	0x00, 0x0B, 0x0D, 0x0E, 0x13, 0x19, 0x1C, 0x15, 0x16, 0x1A,
}

// standardChecksum computes the UPC/EAN check digit for a digit string
// without its check digit.
func standardChecksum(s []byte) int {
	sum := 0
	for i := len(s) - 1; i >= 0; i -= 2 {
		sum += int(s[i] - '0')
	}
	sum *= 3
	for i := len(s) - 2; i >= 0; i -= 2 {
		sum += int(s[i] - '0')
	}
	return (1000 - sum) % 10
}

// normalizeChecksum appends the check digit when contents has bare length,
// verifies it when present.
func normalizeChecksum(name string, contents []byte, bare, full int) ([]byte, error) {
	if err := checkDigits(name, contents); err != nil {
		return nil, err
	}
	switch len(contents) {
	case bare:
		out := make([]byte, bare+1)
		copy(out, contents)
		out[bare] = byte('0' + standardChecksum(contents))
		return out, nil
	case full:
		if standardChecksum(contents[:full-1]) != int(contents[full-1]-'0') {
			return nil, fmt.Errorf("%w: %s: bad check digit %q",
				qrbarcode.ErrInvalidCharacter, name, contents[full-1])
		}
		return contents, nil
	}
	return nil, fmt.Errorf("%w: %s: %d digits, want %d or %d",
		qrbarcode.ErrInvalidLength, name, len(contents), bare, full)
}

const ean13CodeWidth = 3 + (7 * 6) + 5 + (7 * 6) + 3 // = 95

// EAN13Encoder encodes EAN-13 module patterns.
type EAN13Encoder struct{}

// EncodeContents encodes 12 or 13 digits into an EAN-13 pattern, computing
// or verifying the check digit.
func (EAN13Encoder) EncodeContents(contents []byte) ([]bool, error) {
	contents, err := normalizeChecksum("EAN 13", contents, 12, 13)
	if err != nil {
		return nil, err
	}

	firstDigit := int(contents[0] - '0')
	parities := ean13FirstDigitEncodings[firstDigit]
	result := make([]bool, ean13CodeWidth)
	pos := 0

	pos += AppendPattern(result, pos, upceanStartEndPattern, true)

	for i := 1; i <= 6; i++ {
		digit := int(contents[i] - '0')
		if (parities>>(6-i))&1 == 1 {
			digit += 10
		}
		pos += AppendPattern(result, pos, lAndGPatterns[digit], false)
	}

	pos += AppendPattern(result, pos, upceanMiddlePattern, false)

	for i := 7; i <= 12; i++ {
		digit := int(contents[i] - '0')
		pos += AppendPattern(result, pos, lPatterns[digit], true)
	}

	AppendPattern(result, pos, upceanStartEndPattern, true)
	return result, nil
}

const ean8CodeWidth = 3 + (7 * 4) + 5 + (7 * 4) + 3 // = 67

// EAN8Encoder encodes EAN-8 module patterns.
type EAN8Encoder struct{}

// EncodeContents encodes 7 or 8 digits into an EAN-8 pattern.
func (EAN8Encoder) EncodeContents(contents []byte) ([]bool, error) {
	contents, err := normalizeChecksum("EAN 8", contents, 7, 8)
	if err != nil {
		return nil, err
	}

	result := make([]bool, ean8CodeWidth)
	pos := 0

	pos += AppendPattern(result, pos, upceanStartEndPattern, true)

	for i := 0; i <= 3; i++ {
		digit := int(contents[i] - '0')
		pos += AppendPattern(result, pos, lPatterns[digit], false)
	}

	pos += AppendPattern(result, pos, upceanMiddlePattern, false)

	for i := 4; i <= 7; i++ {
		digit := int(contents[i] - '0')
		pos += AppendPattern(result, pos, lPatterns[digit], true)
	}

	AppendPattern(result, pos, upceanStartEndPattern, true)
	return result, nil
}

// UPCAEncoder encodes UPC-A module patterns by delegating to EAN-13 with a
// leading zero.
type UPCAEncoder struct {
	ean13 EAN13Encoder
}

// EncodeContents encodes 11 or 12 digits into a UPC-A pattern.
func (e UPCAEncoder) EncodeContents(contents []byte) ([]bool, error) {
	if len(contents) != 11 && len(contents) != 12 {
		return nil, fmt.Errorf("%w: UPC A: %d digits, want 11 or 12",
			qrbarcode.ErrInvalidLength, len(contents))
	}
	return e.ean13.EncodeContents(append([]byte{'0'}, contents...))
}
