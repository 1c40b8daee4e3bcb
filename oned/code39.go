package oned

import (
	"bytes"
	"fmt"

	qrbarcode "github.com/zenalex/qr-bar-code"
)

const code39Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"

// code39CharacterEncodings holds each character's nine elements as a bit
// field; a set bit is a wide element.
var code39CharacterEncodings = [43]int{
	0x034, 0x121, 0x061, 0x160, 0x031, 0x130, 0x070, 0x025, 0x124, 0x064, // 0-9
	0x109, 0x049, 0x148, 0x019, 0x118, 0x058, 0x00D, 0x10C, 0x04C, 0x01C, // A-J
	0x103, 0x043, 0x142, 0x013, 0x112, 0x052, 0x007, 0x106, 0x046, 0x016, // K-T
	0x181, 0x0C1, 0x1C0, 0x091, 0x190, 0x0D0, 0x085, 0x184, 0x0C4, 0x0A8, // U-$
	0x0A2, 0x08A, 0x02A, // /-%
}

const code39AsteriskEncoding = 0x094

// Code39Encoder encodes Code 39 module patterns.
type Code39Encoder struct{}

// EncodeContents encodes contents into a Code 39 pattern with asterisk
// guards and one narrow space between characters.
func (Code39Encoder) EncodeContents(contents []byte) ([]bool, error) {
	for _, c := range contents {
		if bytes.IndexByte([]byte(code39Alphabet), c) < 0 {
			return nil, fmt.Errorf("%w: Code 39: byte %q", qrbarcode.ErrInvalidCharacter, c)
		}
	}

	widths := make([]int, 9)
	narrowWhite := []int{1}
	codeWidth := 24 + 1 + (13 * len(contents))
	result := make([]bool, codeWidth)

	code39ToIntArray(code39AsteriskEncoding, widths)
	pos := AppendPattern(result, 0, widths, true)
	pos += AppendPattern(result, pos, narrowWhite, false)

	for _, c := range contents {
		idx := bytes.IndexByte([]byte(code39Alphabet), c)
		code39ToIntArray(code39CharacterEncodings[idx], widths)
		pos += AppendPattern(result, pos, widths, true)
		pos += AppendPattern(result, pos, narrowWhite, false)
	}
	code39ToIntArray(code39AsteriskEncoding, widths)
	AppendPattern(result, pos, widths, true)
	return result, nil
}

func code39ToIntArray(a int, widths []int) {
	for i := 0; i < 9; i++ {
		if a&(1<<uint(8-i)) != 0 {
			widths[i] = 2
		} else {
			widths[i] = 1
		}
	}
}
