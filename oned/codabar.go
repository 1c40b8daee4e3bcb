package oned

import (
	"fmt"

	qrbarcode "github.com/zenalex/qr-bar-code"
)

const codabarAlphabet = "0123456789-$:/.+ABCD"

// codabarCharacterEncodings holds each character's seven element widths
// (four bars and three spaces).
var codabarCharacterEncodings = [20][7]int{
	{1, 1, 1, 1, 1, 2, 2}, // 0
	{1, 1, 1, 1, 2, 2, 1}, // 1
	{1, 1, 1, 2, 1, 1, 2}, // 2
	{2, 2, 1, 1, 1, 1, 1}, // 3
	{1, 1, 2, 1, 1, 2, 1}, // 4
	{2, 1, 1, 1, 1, 2, 1}, // 5
	{1, 2, 1, 1, 1, 1, 2}, // 6
	{1, 2, 1, 1, 2, 1, 1}, // 7
	{1, 2, 2, 1, 1, 1, 1}, // 8
	{2, 1, 1, 2, 1, 1, 1}, // 9
	{1, 1, 1, 2, 2, 1, 1}, // -
	{1, 1, 2, 2, 1, 1, 1}, // $
	{2, 1, 1, 1, 2, 1, 2}, // :
	{2, 1, 2, 1, 1, 1, 2}, // /
	{2, 1, 2, 1, 2, 1, 1}, // .
	{1, 1, 2, 1, 2, 1, 2}, // +
	{1, 1, 2, 2, 1, 2, 1}, // A
	{1, 2, 1, 2, 1, 1, 2}, // B
	{1, 1, 1, 2, 1, 2, 2}, // C
	{1, 1, 1, 2, 2, 2, 1}, // D
}

func codabarIndex(c byte) int {
	for i := 0; i < len(codabarAlphabet); i++ {
		if codabarAlphabet[i] == c {
			return i
		}
	}
	return -1
}

func isCodabarGuard(c byte) bool {
	return c >= 'A' && c <= 'D'
}

// CodabarEncoder encodes Codabar module patterns.
type CodabarEncoder struct{}

// EncodeContents encodes contents into a Codabar pattern. Payloads without
// A-D start/stop guards get A guards added; a payload with a guard at one
// end only is rejected.
func (CodabarEncoder) EncodeContents(contents []byte) ([]bool, error) {
	startsGuarded := len(contents) > 0 && isCodabarGuard(contents[0])
	endsGuarded := len(contents) > 1 && isCodabarGuard(contents[len(contents)-1])
	if startsGuarded != endsGuarded {
		return nil, fmt.Errorf("%w: Codabar: unbalanced start/stop guards",
			qrbarcode.ErrInvalidCharacter)
	}
	if !startsGuarded {
		wrapped := make([]byte, 0, len(contents)+2)
		wrapped = append(wrapped, 'A')
		wrapped = append(wrapped, contents...)
		wrapped = append(wrapped, 'A')
		contents = wrapped
	}
	for i, c := range contents {
		idx := codabarIndex(c)
		if idx < 0 {
			return nil, fmt.Errorf("%w: Codabar: byte %q", qrbarcode.ErrInvalidCharacter, c)
		}
		if isCodabarGuard(c) && i != 0 && i != len(contents)-1 {
			return nil, fmt.Errorf("%w: Codabar: guard %q inside payload",
				qrbarcode.ErrInvalidCharacter, c)
		}
	}

	totalWidth := len(contents) - 1 // one narrow space between characters
	for _, c := range contents {
		for _, w := range codabarCharacterEncodings[codabarIndex(c)] {
			totalWidth += w
		}
	}

	result := make([]bool, totalWidth)
	pos := 0
	narrowWhite := []int{1}
	for i, c := range contents {
		widths := codabarCharacterEncodings[codabarIndex(c)]
		pos += AppendPattern(result, pos, widths[:], true)
		if i < len(contents)-1 {
			pos += AppendPattern(result, pos, narrowWhite, false)
		}
	}
	return result, nil
}
