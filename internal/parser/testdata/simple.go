package testdata

// @bitfield width=16
type StatusReg struct {
	A    uint8 `bits:""`
	B    uint8 `bits:"4"`
	_pad uint8 `bits:"4,default=0x3"`
}

type Mode uint8

// @bitfield width=32 order=msb from=little
type ControlReg struct {
	Kind    Mode   `bits:"4"`
	Level   int8   `bits:"4"`
	Count   uint16 `bits:""`
	Enabled bool   `bits:"1,default=true"`
	_       uint8  `bits:"7"`
	Note    string `bits:"-"`
}

// No annotation - should be skipped
type PlainStruct struct {
	Field uint32 `bits:"8"`
}
