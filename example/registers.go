//go:build generate

package example

//go:generate go run github.com/alexhholmes/bitfieldgen/cmd/bitfieldgen registers.go

// @bitfield width=32 new=off marshal=off string=off builder=off
type Quad struct {
	A uint8 `bits:""`
	B uint8 `bits:""`
	C uint8 `bits:""`
	D uint8 `bits:""`
}

// @bitfield width=32 order=msb new=off marshal=off string=off builder=off
type QuadMSB struct {
	A uint8 `bits:""`
	B uint8 `bits:""`
	C uint8 `bits:""`
	D uint8 `bits:""`
}

// @bitfield width=32 from=little new=off marshal=off string=off builder=off
type Wire struct {
	A uint8 `bits:""`
	B uint8 `bits:""`
	C uint8 `bits:""`
	D uint8 `bits:""`
}
