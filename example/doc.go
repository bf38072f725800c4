// Package example holds bitfield declarations and the code generated
// from them. The Go declarations live in generate-tagged files, the
// Token container in token.yaml; the *_bitfield.go files are the
// committed output. Regenerate with go generate.
package example

//go:generate go run github.com/alexhholmes/bitfieldgen/cmd/bitfieldgen token.yaml
