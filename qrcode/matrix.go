package qrcode

import (
	"fmt"
	"math"
	"strings"

	qrbarcode "github.com/zenalex/qr-bar-code"
)

const numMaskPatterns = 8

const empty = 0xFF // unset module marker during construction

// maskFunc reports whether the module at row i, column j should be flipped.
type maskFunc func(i, j int) bool

// dataMasks contains the eight QR code mask patterns.
var dataMasks = [numMaskPatterns]maskFunc{
	func(i, j int) bool { return (i+j)&0x01 == 0 },
	func(i, j int) bool { return i&0x01 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return ((i/2)+(j/3))&0x01 == 0 },
	func(i, j int) bool { return (i*j)%6 == 0 },
	func(i, j int) bool { return ((i * j) % 6) < 3 },
	func(i, j int) bool { return ((i + j + ((i * j) % 3)) & 0x01) == 0 },
}

// Matrix is the finished module grid of an encoded symbol.
type Matrix struct {
	size int
	mask int
	data [][]byte
}

func newMatrix(size int) *Matrix {
	data := make([][]byte, size)
	for i := range data {
		data[i] = make([]byte, size)
	}
	return &Matrix{size: size, data: data}
}

// Size returns the module count per side.
func (m *Matrix) Size() int { return m.size }

// Mask returns the mask pattern index applied to the data region.
func (m *Matrix) Mask() int { return m.mask }

// Dark reports whether the module at column x, row y is dark.
func (m *Matrix) Dark(x, y int) bool { return m.data[y][x] == 1 }

func (m *Matrix) get(x, y int) byte    { return m.data[y][x] }
func (m *Matrix) set(x, y int, v byte) { m.data[y][x] = v }

func (m *Matrix) setBool(x, y int, v bool) {
	if v {
		m.data[y][x] = 1
	} else {
		m.data[y][x] = 0
	}
}

func (m *Matrix) clear(v byte) {
	for y := range m.data {
		for x := range m.data[y] {
			m.data[y][x] = v
		}
	}
}

// String returns a visual representation of the grid.
func (m *Matrix) String() string {
	var sb strings.Builder
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if m.Dark(x, y) {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Matrix places the codeword stream on the module grid. A forcedMask of 0-7
// selects that mask pattern; -1 selects the minimum-penalty mask, breaking
// ties by lowest index.
func (q *QRCode) Matrix(forcedMask int) (*Matrix, error) {
	if forcedMask < -1 || forcedMask >= numMaskPatterns {
		return nil, fmt.Errorf("%w: mask pattern %d", qrbarcode.ErrInvalidArgument, forcedMask)
	}
	codewords, err := q.DataCodewords()
	if err != nil {
		return nil, err
	}

	m := newMatrix(q.version.Dimension())
	mask := forcedMask
	if mask < 0 {
		mask = chooseMaskPattern(codewords, q.level, q.version, m)
	}
	buildMatrix(codewords, q.level, q.version, mask, m)
	m.mask = mask
	return m, nil
}

func chooseMaskPattern(codewords []byte, level ErrorCorrectionLevel, version *Version, m *Matrix) int {
	minPenalty := math.MaxInt32
	bestPattern := 0
	for i := 0; i < numMaskPatterns; i++ {
		buildMatrix(codewords, level, version, i, m)
		if penalty := calculateMaskPenalty(m); penalty < minPenalty {
			minPenalty = penalty
			bestPattern = i
		}
	}
	return bestPattern
}

func calculateMaskPenalty(m *Matrix) int {
	return applyMaskPenaltyRule1(m) +
		applyMaskPenaltyRule2(m) +
		applyMaskPenaltyRule3(m) +
		applyMaskPenaltyRule4(m)
}

// Rule 1: penalize runs of 5+ same-color modules.
func applyMaskPenaltyRule1(m *Matrix) int {
	return applyMaskPenaltyRule1Internal(m, true) + applyMaskPenaltyRule1Internal(m, false)
}

func applyMaskPenaltyRule1Internal(m *Matrix, isHorizontal bool) int {
	penalty := 0
	for i := 0; i < m.size; i++ {
		numSameBitCells := 0
		prevBit := byte(empty)
		for j := 0; j < m.size; j++ {
			var bit byte
			if isHorizontal {
				bit = m.get(j, i)
			} else {
				bit = m.get(i, j)
			}
			if bit == prevBit {
				numSameBitCells++
			} else {
				if numSameBitCells >= 5 {
					penalty += 3 + (numSameBitCells - 5)
				}
				numSameBitCells = 1
				prevBit = bit
			}
		}
		if numSameBitCells >= 5 {
			penalty += 3 + (numSameBitCells - 5)
		}
	}
	return penalty
}

// Rule 2: penalize 2x2 blocks of same color.
func applyMaskPenaltyRule2(m *Matrix) int {
	penalty := 0
	for y := 0; y < m.size-1; y++ {
		for x := 0; x < m.size-1; x++ {
			value := m.get(x, y)
			if value == m.get(x+1, y) && value == m.get(x, y+1) && value == m.get(x+1, y+1) {
				penalty += 3
			}
		}
	}
	return penalty
}

// Rule 3: penalize finder-like 1:1:3:1:1 patterns with 4-module white runs.
func applyMaskPenaltyRule3(m *Matrix) int {
	penalty := 0
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if x+6 < m.size &&
				m.get(x, y) == 1 && m.get(x+1, y) == 0 &&
				m.get(x+2, y) == 1 && m.get(x+3, y) == 1 &&
				m.get(x+4, y) == 1 && m.get(x+5, y) == 0 &&
				m.get(x+6, y) == 1 {
				leadingWhite := x+10 < m.size && m.get(x+7, y) == 0 && m.get(x+8, y) == 0 &&
					m.get(x+9, y) == 0 && m.get(x+10, y) == 0
				trailingWhite := x >= 4 && m.get(x-1, y) == 0 && m.get(x-2, y) == 0 &&
					m.get(x-3, y) == 0 && m.get(x-4, y) == 0
				if leadingWhite || trailingWhite {
					penalty += 40
				}
			}
			if y+6 < m.size &&
				m.get(x, y) == 1 && m.get(x, y+1) == 0 &&
				m.get(x, y+2) == 1 && m.get(x, y+3) == 1 &&
				m.get(x, y+4) == 1 && m.get(x, y+5) == 0 &&
				m.get(x, y+6) == 1 {
				leadingWhite := y+10 < m.size && m.get(x, y+7) == 0 && m.get(x, y+8) == 0 &&
					m.get(x, y+9) == 0 && m.get(x, y+10) == 0
				trailingWhite := y >= 4 && m.get(x, y-1) == 0 && m.get(x, y-2) == 0 &&
					m.get(x, y-3) == 0 && m.get(x, y-4) == 0
				if leadingWhite || trailingWhite {
					penalty += 40
				}
			}
		}
	}
	return penalty
}

// Rule 4: penalize deviation from 50% dark modules.
func applyMaskPenaltyRule4(m *Matrix) int {
	numDarkCells := 0
	total := m.size * m.size
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			if m.get(x, y) == 1 {
				numDarkCells++
			}
		}
	}
	fivePercentVariances := abs(numDarkCells*2-total) * 10 / total
	return fivePercentVariances * 10
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func buildMatrix(codewords []byte, level ErrorCorrectionLevel, version *Version, maskPattern int, m *Matrix) {
	m.clear(empty)
	embedBasicPatterns(version, m)
	embedTypeInfo(level, maskPattern, m)
	maybeEmbedVersionInfo(version, m)
	embedDataBits(codewords, maskPattern, m)
}

// 7x7 finder pattern.
var positionDetectionPattern = [7][7]byte{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

// 5x5 alignment pattern.
var positionAdjustmentPattern = [5][5]byte{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

func embedBasicPatterns(version *Version, m *Matrix) {
	embedPositionDetectionPattern(0, 0, m)
	embedPositionDetectionPattern(m.size-7, 0, m)
	embedPositionDetectionPattern(0, m.size-7, m)

	embedHorizontalSeparator(0, 7, m)
	embedHorizontalSeparator(m.size-8, 7, m)
	embedHorizontalSeparator(0, m.size-8, m)

	embedVerticalSeparator(7, 0, m)
	embedVerticalSeparator(m.size-8, 0, m)
	embedVerticalSeparator(7, m.size-7, m)

	if version.Number >= 2 {
		embedPositionAdjustmentPatterns(version, m)
	}

	embedTimingPatterns(m)

	// Dark module.
	m.set(8, m.size-8, 1)
}

func embedPositionDetectionPattern(xStart, yStart int, m *Matrix) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			m.set(xStart+x, yStart+y, positionDetectionPattern[y][x])
		}
	}
}

func embedHorizontalSeparator(xStart, yStart int, m *Matrix) {
	for x := 0; x < 8; x++ {
		if xStart+x < m.size {
			m.set(xStart+x, yStart, 0)
		}
	}
}

func embedVerticalSeparator(xStart, yStart int, m *Matrix) {
	for y := 0; y < 7; y++ {
		if yStart+y < m.size {
			m.set(xStart, yStart+y, 0)
		}
	}
}

func embedPositionAdjustmentPatterns(version *Version, m *Matrix) {
	centers := version.AlignmentPatternCenters
	for _, cy := range centers {
		for _, cx := range centers {
			// Skip centers already occupied by a finder pattern.
			if m.get(cx, cy) != empty {
				continue
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					m.set(cx-2+x, cy-2+y, positionAdjustmentPattern[y][x])
				}
			}
		}
	}
}

func embedTimingPatterns(m *Matrix) {
	for i := 8; i < m.size-8; i++ {
		bit := byte((i + 1) % 2)
		if m.get(i, 6) == empty {
			m.set(i, 6, bit)
		}
		if m.get(6, i) == empty {
			m.set(6, i, bit)
		}
	}
}

const (
	typeInfoPoly        = 0x537
	typeInfoMaskPattern = 0x5412
	versionInfoPoly     = 0x1F25
)

func embedTypeInfo(level ErrorCorrectionLevel, maskPattern int, m *Matrix) {
	typeInfo := (level.Bits() << 3) | maskPattern
	typeInfoBits := (typeInfo << 10) | calculateBCHCode(typeInfo, typeInfoPoly)
	typeInfoBits ^= typeInfoMaskPattern

	typeInfoCoordinates := [15][2]int{
		{8, 0}, {8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 7}, {8, 8},
		{7, 8}, {5, 8}, {4, 8}, {3, 8}, {2, 8}, {1, 8}, {0, 8},
	}

	for i := 0; i < 15; i++ {
		bit := byte((typeInfoBits >> uint(i)) & 1)
		coord := typeInfoCoordinates[i]
		m.set(coord[0], coord[1], bit)

		// Second copy along the top-right and bottom-left edges.
		if i < 8 {
			m.set(m.size-1-i, 8, bit)
		} else {
			m.set(8, m.size-7+(i-8), bit)
		}
	}
}

func maybeEmbedVersionInfo(version *Version, m *Matrix) {
	if version.Number < 7 {
		return
	}
	versionInfoBits := (version.Number << 12) | calculateBCHCode(version.Number, versionInfoPoly)

	bitIndex := 0
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			bit := byte((versionInfoBits >> uint(bitIndex)) & 1)
			bitIndex++
			m.set(i, m.size-11+j, bit)
			m.set(m.size-11+j, i, bit)
		}
	}
}

// embedDataBits routes the codeword bits through the grid in the zig-zag
// order, skipping the vertical timing column, applying the mask.
func embedDataBits(codewords []byte, maskPattern int, m *Matrix) {
	bitIndex := 0
	numBits := len(codewords) * 8
	mask := dataMasks[maskPattern]

	for j := m.size - 1; j > 0; j -= 2 {
		if j == 6 {
			j--
		}
		for count := 0; count < m.size; count++ {
			upward := (((m.size - 1 - j) / 2) & 1) == 0
			i := count
			if upward {
				i = m.size - 1 - count
			}
			for col := 0; col < 2; col++ {
				x := j - col
				if m.get(x, i) != empty {
					continue
				}
				bit := false
				if bitIndex < numBits {
					bit = codewords[bitIndex/8]&(0x80>>uint(bitIndex&7)) != 0
					bitIndex++
				}
				if mask(i, x) {
					bit = !bit
				}
				m.setBool(x, i, bit)
			}
		}
	}
}

func calculateBCHCode(value, poly int) int {
	msbSetInPoly := findMSBSet(poly)
	value <<= uint(msbSetInPoly - 1)
	for findMSBSet(value) >= msbSetInPoly {
		value ^= poly << uint(findMSBSet(value)-msbSetInPoly)
	}
	return value
}

func findMSBSet(value int) int {
	count := 0
	for value != 0 {
		value >>= 1
		count++
	}
	return count
}
