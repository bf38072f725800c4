package regpkg

// Speed is a named integer; fields of this type convert directly.
type Speed uint8
