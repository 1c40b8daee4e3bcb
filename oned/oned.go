// Package oned implements the shared layout for one-dimensional barcodes
// and the line encoders for the symbologies whose tables this module ships.
package oned

import (
	"fmt"

	qrbarcode "github.com/zenalex/qr-bar-code"
)

const defaultFontHeight = 10.0

// LineEncoder produces the module pattern for a 1D symbology: one boolean
// per module, true for bar, false for space.
type LineEncoder interface {
	EncodeContents(contents []byte) ([]bool, error)
}

// AppendPattern appends a run-length pattern of bars/spaces to a boolean
// array. If startColor is true, the first run is a bar. Returns the total
// width appended.
func AppendPattern(target []bool, pos int, pattern []int, startColor bool) int {
	color := startColor
	numAdded := 0
	for _, p := range pattern {
		for j := 0; j < p; j++ {
			target[pos] = color
			pos++
			numAdded++
		}
		color = !color
	}
	return numAdded
}

// RenderLine converts a module pattern into the element stream: one Bar per
// run of same-colored modules at width/len(pattern) module width, plus a
// centered Text band below the bars when requested.
func RenderLine(pattern []bool, contents string, width, height float64, opts *qrbarcode.RenderOptions) []qrbarcode.Element {
	barHeight := height
	fontHeight := 0.0
	textPadding := 0.0
	drawText := false
	if opts != nil && opts.DrawText {
		drawText = true
		fontHeight = opts.FontHeight
		if fontHeight <= 0 {
			fontHeight = defaultFontHeight
		}
		textPadding = opts.TextPadding
		barHeight -= fontHeight + textPadding
		if barHeight < 0 {
			barHeight = 0
		}
	}

	module := width / float64(len(pattern))
	var elements []qrbarcode.Element
	for start := 0; start < len(pattern); {
		end := start
		for end < len(pattern) && pattern[end] == pattern[start] {
			end++
		}
		elements = append(elements, qrbarcode.Bar{
			Left:   float64(start) * module,
			Width:  float64(end-start) * module,
			Height: barHeight,
			Filled: pattern[start],
		})
		start = end
	}

	if drawText {
		elements = append(elements, qrbarcode.Text{
			Top:     barHeight + textPadding,
			Width:   width,
			Height:  fontHeight,
			Content: contents,
			Align:   qrbarcode.AlignCenter,
		})
	}
	return elements
}

// renderFunc adapts a LineEncoder into the registry's render contract.
func renderFunc(enc LineEncoder) qrbarcode.RenderFunc {
	return func(data []byte, width, height float64, opts *qrbarcode.RenderOptions) ([]qrbarcode.Element, error) {
		pattern, err := enc.EncodeContents(data)
		if err != nil {
			return nil, err
		}
		return RenderLine(pattern, string(data), width, height, opts), nil
	}
}

// checkDigits validates that contents contains only digits.
func checkDigits(name string, contents []byte) error {
	for _, c := range contents {
		if c < '0' || c > '9' {
			return fmt.Errorf("%w: %s: byte %q", qrbarcode.ErrInvalidCharacter, name, c)
		}
	}
	return nil
}
