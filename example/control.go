//go:build generate

package example

//go:generate go run github.com/alexhholmes/bitfieldgen/cmd/bitfieldgen control.go

// @bitfield width=32 bitops=on
type Control struct {
	Mode   Mode   `bits:"4,default=ModeIdle"`
	Trim   int8   `bits:"4"`
	Gain   uint16 `bits:"10,default=0x200"`
	Enable bool   `bits:""`
	Status uint8  `bits:"5,access=ro"`
	_pad   uint8  `bits:"8"`
}
