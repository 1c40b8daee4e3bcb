package reedsolomon

import "testing"

func TestExpLogRoundTrip(t *testing.T) {
	for x := 1; x < 256; x++ {
		if got := Exp(Log(byte(x))); got != byte(x) {
			t.Errorf("Exp(Log(%d)) = %d", x, got)
		}
	}
}

func TestExpFolding(t *testing.T) {
	if Exp(0) != 1 {
		t.Errorf("Exp(0) = %d, want 1", Exp(0))
	}
	if Exp(255) != Exp(0) {
		t.Errorf("Exp(255) = %d, want Exp(0)", Exp(255))
	}
	if Exp(-1) != Exp(254) {
		t.Errorf("Exp(-1) = %d, want Exp(254)", Exp(-1))
	}
	// alpha^8 = alpha^4 + alpha^3 + alpha^2 + 1 under 0x11D
	if Exp(8) != 0x1D {
		t.Errorf("Exp(8) = %#02x, want 0x1d", Exp(8))
	}
}

func TestLogZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for Log(0)")
		}
	}()
	Log(0)
}

func TestNewPolynomialTrimsAndShifts(t *testing.T) {
	p := NewPolynomial([]byte{0, 0, 5, 7}, 3)
	if p.Len() != 5 {
		t.Fatalf("Len = %d, want 5", p.Len())
	}
	want := []byte{5, 7, 0, 0, 0}
	for i, w := range want {
		if p.At(i) != w {
			t.Errorf("At(%d) = %d, want %d", i, p.At(i), w)
		}
	}
}

func TestMultiplyDegree(t *testing.T) {
	a := NewPolynomial([]byte{1, 2, 3}, 0)
	b := NewPolynomial([]byte{4, 5}, 0)
	if got := a.Multiply(b).Len(); got != 4 {
		t.Errorf("product length = %d, want 4", got)
	}
}

func TestMultiplyByOne(t *testing.T) {
	a := NewPolynomial([]byte{7, 0, 42}, 0)
	one := NewPolynomial([]byte{1}, 0)
	p := a.Multiply(one)
	if p.Len() != a.Len() {
		t.Fatalf("length changed: %d != %d", p.Len(), a.Len())
	}
	for i := 0; i < p.Len(); i++ {
		if p.At(i) != a.At(i) {
			t.Errorf("At(%d) = %d, want %d", i, p.At(i), a.At(i))
		}
	}
}

func TestGeneratorPoly(t *testing.T) {
	g := GeneratorPoly(7)
	if g.Len() != 8 {
		t.Fatalf("generator length = %d, want 8", g.Len())
	}
	if g.At(0) != 1 {
		t.Errorf("leading coefficient = %d, want 1", g.At(0))
	}
	// alpha^i must be a root for i in [0, 7).
	for i := 0; i < 7; i++ {
		if got := evaluate(g, Exp(i)); got != 0 {
			t.Errorf("generator(alpha^%d) = %d, want 0", i, got)
		}
	}
}

func TestModShorterThanDivisor(t *testing.T) {
	p := NewPolynomial([]byte{9}, 0)
	d := NewPolynomial([]byte{1, 2, 3}, 0)
	m := p.Mod(d)
	if m.Len() != 1 || m.At(0) != 9 {
		t.Errorf("Mod = len %d first %d, want unchanged", m.Len(), m.At(0))
	}
}

func TestModAlgebraicIdentity(t *testing.T) {
	// For any data block, data*x^ec + ecc must vanish modulo the generator.
	data := []byte{0x40, 0xD2, 0x75, 0x47, 0x76, 0x17, 0x32, 0x06, 0x27, 0x26, 0x96, 0xC6, 0xC6, 0x96, 0x70, 0xEC}
	const ecCount = 10

	g := GeneratorPoly(ecCount)
	raw := NewPolynomial(data, g.Len()-1)
	rem := raw.Mod(g)

	ecc := make([]byte, ecCount)
	for i := range ecc {
		if j := i + rem.Len() - ecCount; j >= 0 {
			ecc[i] = rem.At(j)
		}
	}

	if want := referenceECC(data, ecCount); !equalBytes(ecc, want) {
		t.Fatalf("ecc = %v, want %v", ecc, want)
	}

	full := NewPolynomial(append(append([]byte{}, data...), ecc...), 0)
	residue := full.Mod(g)
	for i := 0; i < residue.Len(); i++ {
		if residue.At(i) != 0 {
			t.Fatalf("residue coefficient %d = %d, want 0", i, residue.At(i))
		}
	}
}

// referenceECC computes the Reed-Solomon remainder with plain synthetic
// division, independent of the Polynomial type.
func referenceECC(data []byte, ecCount int) []byte {
	g := GeneratorPoly(ecCount)
	rem := make([]byte, len(data)+ecCount)
	copy(rem, data)
	for i := 0; i < len(data); i++ {
		factor := rem[i]
		if factor == 0 {
			continue
		}
		for j := 0; j < g.Len(); j++ {
			rem[i+j] ^= Exp(Log(g.At(j)) + Log(factor))
		}
	}
	return rem[len(data):]
}

func evaluate(p Polynomial, x byte) byte {
	var result byte
	for i := 0; i < p.Len(); i++ {
		if result == 0 {
			result = p.At(i)
			continue
		}
		if x != 0 {
			result = Exp(Log(result) + Log(x))
		} else {
			result = 0
		}
		result ^= p.At(i)
	}
	return result
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
