package keywords

import "golang.org/x/exp/slices"

// Solidity visibility specifiers, as solc reports them. solc uses "default"
// for declarations without an explicit specifier
var (
	Visibilities = []string{"public", "external", "internal", "private", "default"}
)

// Exported is the only visibility that makes a declaration part of the
// contract's Compact interface
const Exported = "public"

// IsExported reports whether a declaration with the given visibility should
// be marked `export`. Every other visibility, including `external`, is not
func IsExported(visibility string) bool {
	return visibility == Exported
}

// Compact keywords that are valid Solidity identifiers, and produce invalid
// Compact code when used as a name
var reservedKeywords = []string{
	"circuit", "disclose", "export", "fold", "from", "include", "ledger",
	"map", "module", "pad", "prefix", "pure", "sealed", "slice", "witness",
	"Boolean", "Bytes", "Field", "Opaque", "Uint", "Vector",
}

// IsReserved tests if a given identifier conflicts with a Compact keyword
func IsReserved(name string) bool {
	return slices.Contains(reservedKeywords, name)
}

// IsVisibility reports whether solc could have produced the given visibility
func IsVisibility(visibility string) bool {
	return slices.Contains(Visibilities, visibility)
}
