// Package qrcode implements the QR code encoding pipeline: data segments,
// version selection, Reed-Solomon block computation, interleaving, and
// module grid construction.
package qrcode

import (
	"fmt"

	qrbarcode "github.com/zenalex/qr-bar-code"
)

// ErrorCorrectionLevel represents the four QR code error correction levels.
type ErrorCorrectionLevel int

const (
	LevelL ErrorCorrectionLevel = iota // ~7% correction
	LevelM                             // ~15% correction
	LevelQ                             // ~25% correction
	LevelH                             // ~30% correction
)

// Bits returns the 2-bit format information encoding of this level.
func (l ErrorCorrectionLevel) Bits() int {
	switch l {
	case LevelL:
		return 0x01
	case LevelM:
		return 0x00
	case LevelQ:
		return 0x03
	case LevelH:
		return 0x02
	}
	return 0
}

// Ordinal returns the ordinal position (L=0, M=1, Q=2, H=3).
func (l ErrorCorrectionLevel) Ordinal() int {
	return int(l)
}

// String returns the level name.
func (l ErrorCorrectionLevel) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return "?"
}

// ParseLevel returns the level named by s ("L", "M", "Q", "H").
func ParseLevel(s string) (ErrorCorrectionLevel, error) {
	switch s {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return 0, fmt.Errorf("%w: unknown error correction level %q", qrbarcode.ErrInvalidArgument, s)
}
