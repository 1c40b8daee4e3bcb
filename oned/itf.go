package oned

import (
	"fmt"

	qrbarcode "github.com/zenalex/qr-bar-code"
)

// itfPatterns holds each digit's five element widths, narrow (1) or wide (2).
var itfPatterns = [10][5]int{
	{1, 1, 2, 2, 1}, // 0
	{2, 1, 1, 1, 2}, // 1
	{1, 2, 1, 1, 2}, // 2
	{2, 2, 1, 1, 1}, // 3
	{1, 1, 2, 1, 2}, // 4
	{2, 1, 2, 1, 1}, // 5
	{1, 2, 2, 1, 1}, // 6
	{1, 1, 1, 2, 2}, // 7
	{2, 1, 1, 2, 1}, // 8
	{1, 2, 1, 2, 1}, // 9
}

var (
	itfStartPattern = []int{1, 1, 1, 1}
	itfEndPattern   = []int{3, 1, 1}
)

// ITFEncoder encodes interleaved 2 of 5 module patterns.
type ITFEncoder struct{}

// EncodeContents encodes an even number of digits: each pair interleaves the
// first digit's bar widths with the second digit's space widths.
func (ITFEncoder) EncodeContents(contents []byte) ([]bool, error) {
	if err := checkDigits("ITF", contents); err != nil {
		return nil, err
	}
	if len(contents)%2 != 0 {
		return nil, fmt.Errorf("%w: ITF: %d digits, want an even count",
			qrbarcode.ErrInvalidLength, len(contents))
	}

	totalWidth := 4 + 5 // start + end guards
	for i := 0; i < len(contents); i += 2 {
		d1 := contents[i] - '0'
		d2 := contents[i+1] - '0'
		for j := 0; j < 5; j++ {
			totalWidth += itfPatterns[d1][j] + itfPatterns[d2][j]
		}
	}

	result := make([]bool, totalWidth)
	pos := AppendPattern(result, 0, itfStartPattern, true)

	for i := 0; i < len(contents); i += 2 {
		d1 := contents[i] - '0'
		d2 := contents[i+1] - '0'
		encoding := make([]int, 10)
		for j := 0; j < 5; j++ {
			encoding[2*j] = itfPatterns[d1][j]
			encoding[2*j+1] = itfPatterns[d2][j]
		}
		pos += AppendPattern(result, pos, encoding, true)
	}

	AppendPattern(result, pos, itfEndPattern, true)
	return result, nil
}

// ITF14Encoder encodes ITF-14: 13 digits gain a check digit, 14 digits have
// theirs verified, then the digits encode as plain ITF.
type ITF14Encoder struct {
	itf ITFEncoder
}

// EncodeContents encodes 13 or 14 digits into an ITF-14 pattern.
func (e ITF14Encoder) EncodeContents(contents []byte) ([]bool, error) {
	contents, err := normalizeChecksum("ITF 14", contents, 13, 14)
	if err != nil {
		return nil, err
	}
	return e.itf.EncodeContents(contents)
}
