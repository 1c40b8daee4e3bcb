package qrcode

import (
	qrbarcode "github.com/zenalex/qr-bar-code"
)

const defaultQuietZone = 4 // modules

// Render produces the geometry stream for a QR symbol: one filled Bar per
// dark module, scaled and centered within a width x height box with a quiet
// zone around the symbol.
func Render(data []byte, width, height float64, opts *qrbarcode.RenderOptions) ([]qrbarcode.Element, error) {
	level := LevelM
	quietZone := defaultQuietZone
	qrVersion := 0
	mask := -1

	if opts != nil {
		if opts.ErrorCorrection != "" {
			var err error
			if level, err = ParseLevel(opts.ErrorCorrection); err != nil {
				return nil, err
			}
		}
		if opts.QuietZone != nil {
			quietZone = *opts.QuietZone
		}
		if opts.QRVersion > 0 {
			qrVersion = opts.QRVersion
		}
		if opts.QRMask != nil {
			mask = *opts.QRMask
		}
	}

	var code *QRCode
	var err error
	if qrVersion > 0 {
		if code, err = New(qrVersion, level); err != nil {
			return nil, err
		}
		code.AddBytes(data)
	} else if code, err = FromBytes(data, level); err != nil {
		return nil, err
	}

	matrix, err := code.Matrix(mask)
	if err != nil {
		return nil, err
	}

	n := matrix.Size()
	total := float64(n + 2*quietZone)
	moduleSize := width / total
	if h := height / total; h < moduleSize {
		moduleSize = h
	}
	left := (width - float64(n)*moduleSize) / 2
	top := (height - float64(n)*moduleSize) / 2

	var elements []qrbarcode.Element
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if matrix.Dark(x, y) {
				elements = append(elements, qrbarcode.Bar{
					Left:   left + float64(x)*moduleSize,
					Top:    top + float64(y)*moduleSize,
					Width:  moduleSize,
					Height: moduleSize,
					Filled: true,
				})
			}
		}
	}
	return elements, nil
}
