package example

import "fmt"

// Mode selects the Control operating state. Raw bit patterns enter and
// leave through ModeFromBits and IntoBits.
type Mode struct {
	code uint8
}

var (
	ModeIdle  = Mode{0}
	ModeRun   = Mode{1}
	ModeSleep = Mode{2}
	ModeFault = Mode{3}
)

// ModeFromBits maps a 4-bit pattern to a Mode.
func ModeFromBits(v uint8) Mode {
	return Mode{code: v}
}

// IntoBits returns the mode's bit pattern.
func (m Mode) IntoBits() uint8 {
	return m.code
}

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeRun:
		return "Run"
	case ModeSleep:
		return "Sleep"
	case ModeFault:
		return "Fault"
	}
	return fmt.Sprintf("Mode(%d)", m.code)
}
