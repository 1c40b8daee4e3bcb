// Package qrbarcode converts text or byte payloads into a device-independent
// stream of drawing primitives representing a finished barcode.
package qrbarcode

import (
	"fmt"
	"strings"
)

// Symbology identifies a barcode family. The set is closed; renderers for
// individual families register themselves from their package init functions.
type Symbology int

const (
	QR Symbology = iota
	Code128
	Code39
	Code93
	EAN13
	EAN8
	EAN5
	EAN2
	ISBN
	UPCA
	UPCE
	ITF
	ITF14
	ITF16
	Codabar
	Telepen
	PDF417
	DataMatrix
	Aztec
	RM4SCC
)

const digits = "0123456789"

// properties describes the validation contract of one symbology: its display
// name, the byte-count bounds on raw input, and the accepted code points.
// An empty charset accepts every byte value.
type properties struct {
	name    string
	minLen  int
	maxLen  int
	charset string
}

var symbologyProperties = [...]properties{
	QR:         {"QR Code", 1, 2953, ""},
	Code128:    {"Code 128", 1, 80, ""},
	Code39:     {"Code 39", 1, 80, digits + "ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"},
	Code93:     {"Code 93", 1, 80, digits + "ABCDEFGHIJKLMNOPQRSTUVWXYZ-. $/+%"},
	EAN13:      {"EAN 13", 12, 13, digits},
	EAN8:       {"EAN 8", 7, 8, digits},
	EAN5:       {"EAN 5", 5, 5, digits},
	EAN2:       {"EAN 2", 2, 2, digits},
	ISBN:       {"ISBN", 9, 13, digits + "X"},
	UPCA:       {"UPC A", 11, 12, digits},
	UPCE:       {"UPC E", 6, 8, digits},
	ITF:        {"ITF", 2, 80, digits},
	ITF14:      {"ITF 14", 13, 14, digits},
	ITF16:      {"ITF 16", 15, 16, digits},
	Codabar:    {"Codabar", 1, 60, digits + "-$:/.+ABCD"},
	Telepen:    {"Telepen", 1, 60, ""},
	PDF417:     {"PDF417", 1, 1850, ""},
	DataMatrix: {"DataMatrix", 1, 1555, ""},
	Aztec:      {"Aztec", 1, 1914, ""},
	RM4SCC:     {"RM4SCC", 1, 50, digits + "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
}

func (s Symbology) properties() properties {
	if s < 0 || int(s) >= len(symbologyProperties) {
		panic("qrbarcode: unknown symbology")
	}
	return symbologyProperties[s]
}

// Name returns the display name of the symbology.
func (s Symbology) Name() string {
	return s.properties().name
}

// String returns the display name of the symbology.
func (s Symbology) String() string {
	return s.Name()
}

// MinLength returns the minimum accepted payload length in bytes.
func (s Symbology) MinLength() int { return s.properties().minLen }

// MaxLength returns the maximum accepted payload length in bytes.
func (s Symbology) MaxLength() int { return s.properties().maxLen }

// Accepts reports whether b is a valid input byte for the symbology.
func (s Symbology) Accepts(b byte) bool {
	cs := s.properties().charset
	if cs == "" {
		return true
	}
	return strings.IndexByte(cs, b) >= 0
}

// Validate checks data against the symbology's length bounds and accepted
// code points. Failures wrap ErrInvalidLength or ErrInvalidCharacter.
func (s Symbology) Validate(data []byte) error {
	p := s.properties()
	if len(data) < p.minLen || len(data) > p.maxLen {
		return fmt.Errorf("%w: %s: %d bytes, want %d to %d",
			ErrInvalidLength, p.name, len(data), p.minLen, p.maxLen)
	}
	for _, b := range data {
		if !s.Accepts(b) {
			return fmt.Errorf("%w: %s: byte %q", ErrInvalidCharacter, p.name, b)
		}
	}
	return nil
}

// IsValid is the non-throwing variant of Validate.
func (s Symbology) IsValid(data []byte) bool {
	return s.Validate(data) == nil
}

// RenderOptions configures symbology rendering behavior.
type RenderOptions struct {
	// DrawText requests a human-readable text band for 1D symbologies.
	DrawText bool

	// FontHeight is the height of the text band in the caller's units.
	FontHeight float64

	// TextPadding is the gap between the bar region and the text band.
	TextPadding float64

	// ErrorCorrection selects the QR error correction level ("L", "M", "Q",
	// "H"). Empty means "M".
	ErrorCorrection string

	// QRVersion forces a specific QR version (1-40). Zero selects the
	// smallest sufficient version.
	QRVersion int

	// QRMask forces a specific QR mask pattern (0-7). Nil selects the
	// minimum-penalty mask.
	QRMask *int

	// QuietZone overrides the quiet zone width in modules.
	QuietZone *int
}

// RenderFunc produces the element stream for one symbology. The payload has
// already passed Validate.
type RenderFunc func(data []byte, width, height float64, opts *RenderOptions) ([]Element, error)

var renderers = map[Symbology]RenderFunc{}

// RegisterRenderer registers the renderer for a symbology. Called from
// per-symbology package init functions.
func RegisterRenderer(s Symbology, fn RenderFunc) {
	renderers[s] = fn
}

// Render validates the payload and produces the symbology's element stream
// within a width x height box anchored at the origin.
func (s Symbology) Render(data []byte, width, height float64, opts *RenderOptions) ([]Element, error) {
	if err := s.Validate(data); err != nil {
		return nil, err
	}
	fn, ok := renderers[s]
	if !ok {
		return nil, fmt.Errorf("%w: no renderer registered for %s", ErrUnsupported, s.Name())
	}
	return fn(data, width, height, opts)
}

// ToSVG renders the payload and serializes the element stream as a vector
// graphics document anchored at (x, y).
func (s Symbology) ToSVG(data []byte, x, y, width, height float64, ropts *RenderOptions, sopts *SVGOptions) (string, error) {
	elements, err := s.Render(data, width, height, ropts)
	if err != nil {
		return "", err
	}
	return SVG(elements, x, y, width, height, sopts), nil
}
