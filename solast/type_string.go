package solast

import "fmt"

// TypeString renders a type reference the way it would be written in
// Solidity, for use in messages
func TypeString(typ TypeName) string {
	switch typ := typ.(type) {
	case *ElementaryTypeName:
		return typ.Name
	case *UserDefinedTypeName:
		return typ.Path
	case *ArrayTypeName:
		return TypeString(typ.Base) + "[]"
	case *Mapping:
		return fmt.Sprintf("mapping(%s => %s)", TypeString(typ.Key), TypeString(typ.Value))
	case *UnsupportedType:
		return typ.Type
	case nil:
		return "<none>"
	}
	return typ.NodeType()
}
