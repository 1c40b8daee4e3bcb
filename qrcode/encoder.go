package qrcode

import (
	"fmt"

	qrbarcode "github.com/zenalex/qr-bar-code"
	"github.com/zenalex/qr-bar-code/bitutil"
	"github.com/zenalex/qr-bar-code/reedsolomon"
)

// QRCode accumulates data segments for one (version, level) pair and
// produces the interleaved data+ECC codeword stream. The stream is cached on
// first read; appending another segment invalidates the cache.
type QRCode struct {
	version  *Version
	level    ErrorCorrectionLevel
	segments []Segment
	cache    []byte
}

// New creates an encoder for a fixed version (1-40) and level.
func New(version int, level ErrorCorrectionLevel) (*QRCode, error) {
	if level < LevelL || level > LevelH {
		return nil, fmt.Errorf("%w: error correction ordinal %d", qrbarcode.ErrInvalidArgument, level)
	}
	v, err := VersionForNumber(version)
	if err != nil {
		return nil, err
	}
	return &QRCode{version: v, level: level}, nil
}

// FromText creates an encoder holding text in its tightest single mode, at
// the smallest version that fits.
func FromText(text string, level ErrorCorrectionLevel) (*QRCode, error) {
	seg, err := segmentForText(text)
	if err != nil {
		return nil, err
	}
	return fromSegments([]Segment{seg}, level)
}

// FromBytes creates an encoder holding data in 8-bit byte mode, at the
// smallest version that fits.
func FromBytes(data []byte, level ErrorCorrectionLevel) (*QRCode, error) {
	return fromSegments([]Segment{NewByteSegment(data)}, level)
}

func fromSegments(segments []Segment, level ErrorCorrectionLevel) (*QRCode, error) {
	if level < LevelL || level > LevelH {
		return nil, fmt.Errorf("%w: error correction ordinal %d", qrbarcode.ErrInvalidArgument, level)
	}
	v, err := chooseVersion(segments, level)
	if err != nil {
		return nil, err
	}
	return &QRCode{version: v, level: level, segments: segments}, nil
}

// chooseVersion returns the smallest version whose data capacity covers the
// theoretical bit cost of the segment list.
func chooseVersion(segments []Segment, level ErrorCorrectionLevel) (*Version, error) {
	totalBits := 0
	for number := 1; number <= 40; number++ {
		v := &versions[number-1]
		totalBits = 0
		for _, s := range segments {
			totalBits += 4 + s.mode.CharacterCountBits(number) + s.bitLength()
		}
		if totalBits <= v.DataCodewords(level)*8 {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %d bits exceed version 40 capacity",
		qrbarcode.ErrInputTooLong, totalBits)
}

func segmentForText(text string) (Segment, error) {
	switch ChooseMode(text) {
	case ModeNumeric:
		return NewNumericSegment(text)
	case ModeAlphanumeric:
		return NewAlphanumericSegment(text)
	default:
		return NewByteSegment([]byte(text)), nil
	}
}

// Version returns the symbol version (1-40).
func (q *QRCode) Version() int {
	return q.version.Number
}

// Level returns the error correction level.
func (q *QRCode) Level() ErrorCorrectionLevel {
	return q.level
}

// ModuleCount returns the module count per side: version*4 + 17.
func (q *QRCode) ModuleCount() int {
	return q.version.Dimension()
}

func (q *QRCode) add(s Segment) {
	q.segments = append(q.segments, s)
	q.cache = nil
}

// AddText appends text in its tightest single mode.
func (q *QRCode) AddText(text string) error {
	seg, err := segmentForText(text)
	if err != nil {
		return err
	}
	q.add(seg)
	return nil
}

// AddBytes appends data in 8-bit byte mode.
func (q *QRCode) AddBytes(data []byte) {
	q.add(NewByteSegment(data))
}

// AddNumeric appends a digit string in numeric mode.
func (q *QRCode) AddNumeric(digits string) error {
	seg, err := NewNumericSegment(digits)
	if err != nil {
		return err
	}
	q.add(seg)
	return nil
}

// AddAlphanumeric appends text in alphanumeric mode.
func (q *QRCode) AddAlphanumeric(text string) error {
	seg, err := NewAlphanumericSegment(text)
	if err != nil {
		return err
	}
	q.add(seg)
	return nil
}

// AddKanji appends UTF-8 text in kanji mode.
func (q *QRCode) AddKanji(text string) error {
	seg, err := NewKanjiSegment(text)
	if err != nil {
		return err
	}
	q.add(seg)
	return nil
}

// DataCodewords returns the complete interleaved codeword stream: the data
// codewords of every Reed-Solomon block in column-major order followed by
// the ECC codewords in column-major order.
func (q *QRCode) DataCodewords() ([]byte, error) {
	if q.cache != nil {
		return q.cache, nil
	}

	buf := bitutil.NewBitBuffer()
	for _, s := range q.segments {
		buf.AppendBits(uint32(s.mode.Bits()), 4)
		buf.AppendBits(uint32(s.Length()), s.mode.CharacterCountBits(q.version.Number))
		s.Write(buf)
	}

	blocks := q.version.RSBlocks(q.level)
	totalDataBits := q.version.DataCodewords(q.level) * 8
	if buf.Len() > totalDataBits {
		return nil, fmt.Errorf("%w: have %d bits, capacity %d bits",
			qrbarcode.ErrInputTooLong, buf.Len(), totalDataBits)
	}

	// Terminator, then zero bits up to a byte boundary.
	if buf.Len()+4 <= totalDataBits {
		buf.AppendBits(0, 4)
	}
	for buf.Len()%8 != 0 {
		buf.AppendBit(false)
	}

	// Alternating pad bytes up to capacity.
	for i := 0; buf.Len() < totalDataBits; i++ {
		if i%2 == 0 {
			buf.AppendBits(0xEC, 8)
		} else {
			buf.AppendBits(0x11, 8)
		}
	}

	q.cache = interleave(buf, blocks)
	return q.cache, nil
}

// interleave splits the data stream into Reed-Solomon blocks, computes each
// block's ECC, and emits data then ECC codewords in column-major order.
func interleave(buf *bitutil.BitBuffer, blocks []RSBlock) []byte {
	data := make([][]byte, len(blocks))
	ecc := make([][]byte, len(blocks))
	maxData, maxECC := 0, 0
	total := 0

	offset := 0
	for r, blk := range blocks {
		d := make([]byte, blk.Data)
		for i := range d {
			d[i] = buf.ByteAt(offset + i)
		}
		offset += blk.Data
		data[r] = d
		ecc[r] = eccForBlock(d, blk.ECCount())

		if blk.Data > maxData {
			maxData = blk.Data
		}
		if blk.ECCount() > maxECC {
			maxECC = blk.ECCount()
		}
		total += blk.Total
	}

	out := make([]byte, 0, total)
	for i := 0; i < maxData; i++ {
		for r := range blocks {
			if i < len(data[r]) {
				out = append(out, data[r][i])
			}
		}
	}
	for i := 0; i < maxECC; i++ {
		for r := range blocks {
			if i < len(ecc[r]) {
				out = append(out, ecc[r][i])
			}
		}
	}
	return out
}

// eccForBlock computes ecCount ECC codewords for one block: the data
// polynomial shifted left by ecCount, reduced modulo the generator, with the
// remainder left-padded to exactly ecCount bytes.
func eccForBlock(data []byte, ecCount int) []byte {
	generator := reedsolomon.GeneratorPoly(ecCount)
	raw := reedsolomon.NewPolynomial(data, generator.Len()-1)
	rem := raw.Mod(generator)

	ecc := make([]byte, ecCount)
	for i := range ecc {
		if j := i + rem.Len() - ecCount; j >= 0 {
			ecc[i] = rem.At(j)
		}
	}
	return ecc
}
