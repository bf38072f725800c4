package example

import (
	"errors"
	"testing"

	"github.com/alexhholmes/bitfieldgen/pkg/bitcodec"
)

func TestControlDefaults(t *testing.T) {
	c := NewControl()
	if c.Mode() != ModeIdle {
		t.Errorf("Mode: expected ModeIdle, got %v", c.Mode())
	}
	if got := c.Gain(); got != 0x200 {
		t.Errorf("Gain: expected 0x200, got 0x%x", got)
	}
	if got := c.IntoBits(); got != 0x20000 {
		t.Errorf("IntoBits: expected 0x20000, got 0x%08x", got)
	}
	if got := NewControlWithoutDefaults().IntoBits(); got != 0 {
		t.Errorf("WithoutDefaults: expected 0, got 0x%08x", got)
	}
}

func TestControlSignExtension(t *testing.T) {
	// Trim occupies bits 4-7; the pattern 0b1001 reads back as -7.
	c := ControlFromBits(0x90)
	if got := c.Trim(); got != -7 {
		t.Errorf("Trim: expected -7, got %d", got)
	}

	c.SetTrim(-3)
	if got := c.Trim(); got != -3 {
		t.Errorf("Trim: expected -3, got %d", got)
	}

	if err := c.CheckedSetTrim(8); !errors.Is(err, bitcodec.ErrOverflow) {
		t.Errorf("CheckedSetTrim(8): expected ErrOverflow, got %v", err)
	}
	if err := c.CheckedSetTrim(-8); err != nil {
		t.Errorf("CheckedSetTrim(-8): unexpected error %v", err)
	}
}

func TestControlMode(t *testing.T) {
	c := NewControl()
	c.SetMode(ModeSleep)
	if c.Mode() != ModeSleep {
		t.Errorf("Mode: expected ModeSleep, got %v", c.Mode())
	}
	if got := c.IntoBits() & 0xF; got != 2 {
		t.Errorf("mode bits: expected 2, got %d", got)
	}

	if err := c.CheckedSetMode(ModeFromBits(0x1F)); !errors.Is(err, bitcodec.ErrOverflow) {
		t.Errorf("expected ErrOverflow for a 5-bit code, got %v", err)
	}
	if c.Mode() != ModeSleep {
		t.Errorf("Mode after failed set: expected ModeSleep, got %v", c.Mode())
	}
}

func TestControlEnable(t *testing.T) {
	c := NewControl()
	c.SetEnable(true)
	if !c.Enable() {
		t.Error("expected Enable to read true")
	}
	if got := c.IntoBits(); got != 0x60000 {
		t.Errorf("IntoBits: expected 0x60000, got 0x%08x", got)
	}

	c.SetEnable(false)
	if c.Enable() {
		t.Error("expected Enable to read false")
	}
}

func TestControlReadOnlyStatus(t *testing.T) {
	c := ControlFromBits(0x00F80000)
	if got := c.Status(); got != 0x1F {
		t.Errorf("Status: expected 0x1F, got 0x%02x", got)
	}
}

func TestControlFromBitsWithDefaults(t *testing.T) {
	c := ControlFromBitsWithDefaults(0xFFFFFFFF)
	if c.Mode() != ModeIdle {
		t.Errorf("Mode: expected ModeIdle, got %v", c.Mode())
	}
	if got := c.Gain(); got != 0x200 {
		t.Errorf("Gain: expected 0x200, got 0x%x", got)
	}
	if got := c.Trim(); got != -1 {
		t.Errorf("Trim: expected -1, got %d", got)
	}
	if got := c.IntoBits(); got != 0xFFFE00F0 {
		t.Errorf("IntoBits: expected 0xFFFE00F0, got 0x%08x", got)
	}
}

func TestControlBitOps(t *testing.T) {
	c := NewControlWithoutDefaults()

	c.SetBit(0, true)
	if !c.GetBit(0) {
		t.Error("expected bit 0 set")
	}
	if got := c.IntoBits(); got != 1 {
		t.Errorf("expected raw 1, got 0x%08x", got)
	}

	// Status is read-only: its bits read fine but writes are dropped.
	r := ControlFromBits(0x00F80000)
	if !r.GetBit(19) {
		t.Error("expected status bit 19 to read true")
	}
	c.SetBit(19, true)
	if got := c.IntoBits(); got != 1 {
		t.Errorf("write to bit 19 should be dropped, got 0x%08x", got)
	}
	if err := c.CheckedSetBit(19, true); !errors.Is(err, bitcodec.ErrNoWriteAccess) {
		t.Errorf("CheckedSetBit(19): expected ErrNoWriteAccess, got %v", err)
	}

	// Raw padding bits stay readable but reject writes.
	p := ControlFromBits(0x01000000)
	if !p.GetBit(24) {
		t.Error("expected raw padding bit 24 to read true")
	}
	if got, err := p.CheckedGetBit(24); err != nil || !got {
		t.Errorf("CheckedGetBit(24) = %v, %v; want true, nil", got, err)
	}
	if err := p.CheckedSetBit(24, false); !errors.Is(err, bitcodec.ErrNoWriteAccess) {
		t.Errorf("CheckedSetBit(24): expected ErrNoWriteAccess, got %v", err)
	}

	if _, err := c.CheckedGetBit(40); !errors.Is(err, bitcodec.ErrIndexRange) {
		t.Errorf("CheckedGetBit(40): expected ErrIndexRange, got %v", err)
	}
	if err := c.CheckedSetBit(5, true); err != nil {
		t.Errorf("CheckedSetBit(5): unexpected error %v", err)
	}
	if !c.GetBit(5) {
		t.Error("expected bit 5 set")
	}
}

func TestControlString(t *testing.T) {
	c := NewControl()
	want := "Control{status: 0, enable: false, gain: 512, trim: 0, mode: Idle}"
	if got := c.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestControlBuilder(t *testing.T) {
	c := NewControlBuilder().
		WithMode(ModeRun).
		WithTrim(-2).
		WithGain(100).
		WithEnable(true).
		Build()

	if c.Mode() != ModeRun {
		t.Errorf("Mode: expected ModeRun, got %v", c.Mode())
	}
	if got := c.Trim(); got != -2 {
		t.Errorf("Trim: expected -2, got %d", got)
	}
	if got := c.Gain(); got != 100 {
		t.Errorf("Gain: expected 100, got %d", got)
	}
	if !c.Enable() {
		t.Error("expected Enable set")
	}

	if _, err := NewControlBuilder().CheckedWithGain(0x400); !errors.Is(err, bitcodec.ErrOverflow) {
		t.Errorf("CheckedWithGain(0x400): expected ErrOverflow, got %v", err)
	}
}

func TestControlMarshal(t *testing.T) {
	c := ControlFromBits(0x12345678)
	buf, err := c.MarshalBinary()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if len(buf) != 4 || buf[0] != 0x12 || buf[3] != 0x78 {
		t.Fatalf("expected big-endian [12 34 56 78], got % x", buf)
	}

	var c2 Control
	if err := c2.UnmarshalBinary(buf); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !c2.Equal(c) {
		t.Error("expected equal values after round trip")
	}
}
