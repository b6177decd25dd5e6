package core

import "fmt"

type Variant int

const (
	VariantMain Variant = iota
	VariantSchrift
)

// Variants lists the geometry outputs of a job in render order.
var Variants = []Variant{VariantMain, VariantSchrift}

func (v Variant) Suffix() string {
	switch v {
	case VariantMain:
		return "main"
	case VariantSchrift:
		return "schrift"
	default:
		return fmt.Sprintf("variant-%d", int(v))
	}
}

func (v Variant) DoMain() bool {
	return v == VariantMain
}

func (v Variant) String() string {
	return v.Suffix()
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.Suffix()), nil
}
