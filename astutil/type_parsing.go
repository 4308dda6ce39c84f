package astutil

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultBits is the width of `uint` and `bytes` when no width is written
const DefaultBits = 256

// TypeKind is the family of a Compact primitive type
type TypeKind int

const (
	Uint TypeKind = iota
	Bytes
	Boolean
)

// Type is a Compact primitive type. Bits is only meaningful for `Uint` and
// `Bytes`
type Type struct {
	Kind TypeKind
	Bits int
}

func (t Type) String() string {
	switch t.Kind {
	case Uint:
		return fmt.Sprintf("Uint<%d>", t.Bits)
	case Bytes:
		return fmt.Sprintf("Bytes<%d>", t.Bits)
	case Boolean:
		return "Boolean"
	}
	panic(fmt.Errorf("Unknown type kind: %d", t.Kind))
}

// ParseType converts the spelling of a Solidity elementary type into its
// Compact equivalent. It returns false for any type without a mapping
//
// Ex: uint8 -> Uint<8>, bytes -> Bytes<256>, bool -> Boolean
func ParseType(solType string) (Type, bool) {
	if bits, ok := strings.CutPrefix(solType, "uint"); ok {
		if width, ok := parseWidth(bits); ok {
			return Type{Kind: Uint, Bits: width}, true
		}
	}

	if bits, ok := strings.CutPrefix(solType, "bytes"); ok {
		if width, ok := parseWidth(bits); ok {
			return Type{Kind: Bytes, Bits: width}, true
		}
	}

	switch solType {
	case "bool":
		return Type{Kind: Boolean}, true
	}
	return Type{}, false
}

// parseWidth reads the numeric suffix of a sized type, where an empty suffix
// means the default width. Anything other than plain decimal digits is
// rejected, so `uint8x` and `uint+8` have no width
func parseWidth(bits string) (int, bool) {
	if bits == "" {
		return DefaultBits, true
	}
	for _, c := range bits {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	width, err := strconv.Atoi(bits)
	if err != nil {
		// Only reachable when the digits overflow an int
		return 0, false
	}
	return width, true
}
