package example

import "testing"

func TestQuadOffsets(t *testing.T) {
	q := QuadFromBits(0x04030201)
	if q.A() != 0x01 || q.B() != 0x02 || q.C() != 0x03 || q.D() != 0x04 {
		t.Errorf("expected lanes 01 02 03 04, got %02x %02x %02x %02x", q.A(), q.B(), q.C(), q.D())
	}
	if QuadAOffset != 0 || QuadBOffset != 8 || QuadCOffset != 16 || QuadDOffset != 24 {
		t.Errorf("expected offsets 0 8 16 24, got %d %d %d %d", QuadAOffset, QuadBOffset, QuadCOffset, QuadDOffset)
	}
}

func TestQuadMSBOffsets(t *testing.T) {
	q := QuadMSBFromBits(0x04030201)
	if q.A() != 0x04 || q.B() != 0x03 || q.C() != 0x02 || q.D() != 0x01 {
		t.Errorf("expected lanes 04 03 02 01, got %02x %02x %02x %02x", q.A(), q.B(), q.C(), q.D())
	}
	if QuadMSBAOffset != 24 || QuadMSBBOffset != 16 || QuadMSBCOffset != 8 || QuadMSBDOffset != 0 {
		t.Errorf("expected offsets 24 16 8 0, got %d %d %d %d", QuadMSBAOffset, QuadMSBBOffset, QuadMSBCOffset, QuadMSBDOffset)
	}
}

func TestQuadRoundTrip(t *testing.T) {
	for _, raw := range []uint32{0, 0x04030201, 0xDEADBEEF, 0xFFFFFFFF} {
		if got := QuadFromBits(raw).IntoBits(); got != raw {
			t.Errorf("round trip 0x%08x: got 0x%08x", raw, got)
		}
	}
}

func TestQuadSetters(t *testing.T) {
	var q Quad
	q.SetC(0xAB)
	if got := q.IntoBits(); got != 0x00AB0000 {
		t.Errorf("expected 0x00AB0000, got 0x%08x", got)
	}
	if got := q.C(); got != 0xAB {
		t.Errorf("C: expected 0xAB, got 0x%02x", got)
	}
}

func TestWireEndianness(t *testing.T) {
	w := WireFromBits(0x78563412)
	if got := w.A(); got != 0x78 {
		t.Errorf("A: expected 0x78, got 0x%02x", got)
	}
	if got := w.D(); got != 0x12 {
		t.Errorf("D: expected 0x12, got 0x%02x", got)
	}
	// from=little swaps on the way in; into stays big.
	if got := w.IntoBits(); got != 0x12345678 {
		t.Errorf("IntoBits: expected 0x12345678, got 0x%08x", got)
	}
}
