package example

import (
	"testing"

	"github.com/alexhholmes/bitfieldgen/pkg/bitcodec"
)

func TestTokenRoundTrip(t *testing.T) {
	raw := bitcodec.U128(0x0123456789ABCDEF, 0xFEDCBA9876543210)
	if got := TokenFromBits(raw).IntoBits(); got != raw {
		t.Errorf("round trip: expected %v, got %v", raw, got)
	}
}

func TestTokenFields(t *testing.T) {
	tok := NewToken()
	tok.SetKey(0xDEADBEEFCAFEBABE)
	tok.SetCounter(42)
	tok.SetFlags(0x8001)

	if got := tok.Key(); got != 0xDEADBEEFCAFEBABE {
		t.Errorf("Key: expected 0xDEADBEEFCAFEBABE, got 0x%016x", got)
	}
	if got := tok.Counter(); got != 42 {
		t.Errorf("Counter: expected 42, got %d", got)
	}
	if got := tok.Flags(); got != 0x8001 {
		t.Errorf("Flags: expected 0x8001, got 0x%04x", got)
	}

	raw := tok.IntoBits()
	if raw.Lo != 0xDEADBEEFCAFEBABE {
		t.Errorf("Lo: expected the key word, got 0x%016x", raw.Lo)
	}
	if raw.Hi != 0x000080010000002A {
		t.Errorf("Hi: expected 0x000080010000002A, got 0x%016x", raw.Hi)
	}
}

func TestTokenMarshal(t *testing.T) {
	tok := NewToken()
	tok.SetKey(0x1122334455667788)
	tok.SetCounter(0x99AABBCC)

	buf, err := tok.MarshalBinary()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(buf) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(buf))
	}
	// Big-endian, high word first: the counter sits in bytes 4-7.
	if buf[4] != 0x99 || buf[15] != 0x88 {
		t.Fatalf("unexpected encoding: % x", buf)
	}

	var tok2 Token
	if err := tok2.UnmarshalBinary(buf); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !tok2.Equal(tok) {
		t.Error("expected equal tokens after round trip")
	}

	if err := tok2.UnmarshalBinary(buf[:8]); err == nil {
		t.Error("expected an error for a short buffer")
	}
}

func TestTokenString(t *testing.T) {
	tok := NewToken()
	tok.SetCounter(7)
	want := "Token{flags: 0, counter: 7, key: 0}"
	if got := tok.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
