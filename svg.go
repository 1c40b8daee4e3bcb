package qrbarcode

import (
	"fmt"
	"strconv"
	"strings"
)

const defaultBaseline = 0.75

// SVGOptions configures vector graphics serialization.
type SVGOptions struct {
	// FontFamily names the font for text spans. Empty means "monospace".
	FontFamily string

	// Color is the fill color; the low 24 bits are emitted as #RRGGBB.
	Color uint32

	// FullSVG wraps the output in a root svg element with a viewBox.
	FullSVG bool

	// Baseline positions text at top + Baseline*height within the text
	// band. Zero means 0.75.
	Baseline float64
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// fnum serializes a coordinate with five fractional digits.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', 5, 64)
}

// SVG serializes an element stream as a vector graphics document. All filled
// bars are concatenated into a single path; text elements become anchored
// spans. The stream's coordinates are translated by (x, y).
func SVG(elements []Element, x, y, width, height float64, opts *SVGOptions) string {
	fontFamily := "monospace"
	baseline := defaultBaseline
	var color uint32
	fullSVG := false
	if opts != nil {
		if opts.FontFamily != "" {
			fontFamily = opts.FontFamily
		}
		if opts.Baseline != 0 {
			baseline = opts.Baseline
		}
		color = opts.Color & 0xFFFFFF
		fullSVG = opts.FullSVG
	}

	var sb strings.Builder
	if fullSVG {
		fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 %s %s">`,
			fnum(x+width), fnum(y+height))
	}

	var path strings.Builder
	for _, e := range elements {
		bar, ok := e.(Bar)
		if !ok || !bar.Filled {
			continue
		}
		path.WriteByte('M')
		path.WriteString(fnum(x + bar.Left))
		path.WriteByte(' ')
		path.WriteString(fnum(y + bar.Top))
		path.WriteByte('h')
		path.WriteString(fnum(bar.Width))
		path.WriteByte('v')
		path.WriteString(fnum(bar.Height))
		path.WriteByte('h')
		path.WriteString(fnum(-bar.Width))
		path.WriteByte('z')
	}
	if path.Len() > 0 {
		fmt.Fprintf(&sb, `<path d="%s" fill="#%06X"/>`, path.String(), color)
	}

	for _, e := range elements {
		text, ok := e.(Text)
		if !ok {
			continue
		}
		var anchor string
		anchorX := x + text.Left
		switch text.Align {
		case AlignCenter:
			anchor = "middle"
			anchorX += text.Width / 2
		case AlignRight:
			anchor = "end"
			anchorX += text.Width
		default:
			anchor = "start"
		}
		fmt.Fprintf(&sb, `<text x="%s" y="%s" text-anchor="%s" font-family="%s" font-size="%s" fill="#%06X">%s</text>`,
			fnum(anchorX), fnum(y+text.Top+baseline*text.Height), anchor,
			xmlEscaper.Replace(fontFamily), fnum(text.Height), color,
			xmlEscaper.Replace(text.Content))
	}

	if fullSVG {
		sb.WriteString("</svg>")
	}
	return sb.String()
}
