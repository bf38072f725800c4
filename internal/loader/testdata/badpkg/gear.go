package badpkg

// Gear has only half of the bit bridge.
type Gear struct {
	n uint8
}

// GearFromBits unpacks a Gear.
func GearFromBits(b uint8) Gear { return Gear{n: b} }

// @bitfield width=8
type Box struct {
	Gear Gear  `bits:"4"`
	_    uint8 `bits:"4"`
}
