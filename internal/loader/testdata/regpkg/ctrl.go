package regpkg

// Mode is carried through its bit bridge.
type Mode struct {
	bits uint8
}

// ModeFromBits unpacks a Mode from its 4-bit pattern.
func ModeFromBits(b uint8) Mode { return Mode{bits: b} }

// IntoBits packs the Mode back into its 4-bit pattern.
func (m Mode) IntoBits() uint8 { return m.bits }

// @bitfield width=16
type Ctrl struct {
	Mode  Mode  `bits:"4"`
	Speed Speed `bits:"4"`
	Run   bool  `bits:""`
	_     uint8 `bits:"7"`
}
