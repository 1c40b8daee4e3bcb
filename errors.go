package qrbarcode

import "errors"

var (
	// ErrInputTooLong is returned when a payload exceeds the capacity of the
	// chosen or maximum symbol size.
	ErrInputTooLong = errors.New("input too long")

	// ErrInvalidCharacter is returned when a payload byte is outside the
	// symbology's accepted code points.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidLength is returned when a payload length is outside the
	// symbology's length bounds.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidArgument is returned for out-of-range versions,
	// error-correction levels, and mask patterns. Unknown modes are
	// programmer errors and panic instead.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidDigits is returned when numeric-mode input contains a
	// non-digit.
	ErrInvalidDigits = errors.New("invalid digits")

	// ErrUnsupported is returned when no renderer is registered for a
	// symbology tag.
	ErrUnsupported = errors.New("symbology not supported")
)
