package bitutil

import "testing"

func TestAppendBit(t *testing.T) {
	b := NewBitBuffer()
	for i := 0; i < 9; i++ {
		b.AppendBit(i%2 == 0)
	}
	if b.Len() != 9 {
		t.Fatalf("Len = %d, want 9", b.Len())
	}
	if got := b.ByteAt(0); got != 0xAA {
		t.Errorf("ByteAt(0) = %#02x, want 0xaa", got)
	}
	if got := b.ByteAt(1); got != 0x80 {
		t.Errorf("ByteAt(1) = %#02x, want 0x80", got)
	}
}

func TestAppendBitsMSBFirst(t *testing.T) {
	b := NewBitBuffer()
	b.AppendBits(0x1, 4)
	b.AppendBits(0x2, 4)
	if b.Len() != 8 {
		t.Fatalf("Len = %d, want 8", b.Len())
	}
	if got := b.ByteAt(0); got != 0x12 {
		t.Errorf("ByteAt(0) = %#02x, want 0x12", got)
	}
}

func TestAppendBitsWide(t *testing.T) {
	b := NewBitBuffer()
	b.AppendBits(0xDEADBEEF, 32)
	want := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	for i, w := range want {
		if got := b.ByteAt(i); got != w {
			t.Errorf("ByteAt(%d) = %#02x, want %#02x", i, got, w)
		}
	}
}

func TestByteAtPastEnd(t *testing.T) {
	b := NewBitBuffer()
	b.AppendBits(0xFF, 8)
	if got := b.ByteAt(1); got != 0 {
		t.Errorf("ByteAt(1) = %#02x, want 0", got)
	}
	if got := b.ByteAt(100); got != 0 {
		t.Errorf("ByteAt(100) = %#02x, want 0", got)
	}
}

func TestPartialByteZeroPadded(t *testing.T) {
	b := NewBitBuffer()
	b.AppendBits(0x7, 3) // 111 followed by implicit zeros
	if got := b.ByteAt(0); got != 0xE0 {
		t.Errorf("ByteAt(0) = %#02x, want 0xe0", got)
	}
}

func TestAppendBitsRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for numBits > 32")
		}
	}()
	NewBitBuffer().AppendBits(0, 33)
}

func TestBytes(t *testing.T) {
	b := NewBitBuffer()
	b.AppendBits(0x123, 12)
	got := b.Bytes()
	if len(got) != 2 || got[0] != 0x12 || got[1] != 0x30 {
		t.Errorf("Bytes = %#v, want [0x12 0x30]", got)
	}
}

func TestString(t *testing.T) {
	b := NewBitBuffer()
	b.AppendBits(0xA5, 8)
	b.AppendBit(true)
	if got := b.String(); got != "X.X..X.X X" {
		t.Errorf("String = %q", got)
	}
}
