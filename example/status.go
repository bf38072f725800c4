//go:build generate

package example

//go:generate go run github.com/alexhholmes/bitfieldgen/cmd/bitfieldgen status.go

// @bitfield width=16
type StatusReg struct {
	A    uint8 `bits:"8"`
	B    uint8 `bits:"4"`
	_pad uint8 `bits:"4,default=0x3"`
}
