package main

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/solpact/astutil"
)

const (
	// indentUnit is the text used for one level of nesting
	indentUnit = "    "

	// stdlibImport is emitted once for every contract
	stdlibImport = "import CompactStandardLibrary;"

	bannerLine = "// auto-generated code from Solidity source"
)

// Indent returns the leading whitespace for a line nested `depth` levels deep
func Indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(indentUnit, depth)
}

func exportPrefix(exported bool) string {
	if exported {
		return "export "
	}
	return ""
}

// GenPragma renders a version directive as a full pragma line
// Ex: language_version 0.16 -> pragma language_version 0.16;
func GenPragma(directive string) string {
	return fmt.Sprintf("pragma %s;", directive)
}

// GenLedger renders a top-level state variable
// Ex: export ledger round: Counter;
func GenLedger(exported bool, name, typ string) string {
	return fmt.Sprintf("%sledger %s: %s;", exportPrefix(exported), name, typ)
}

// GenLet renders a local binding, with an optional initial value
// Ex: let round: Counter;
func GenLet(name, typ, value string) string {
	if value == "" {
		return fmt.Sprintf("let %s: %s;", name, typ)
	}
	return fmt.Sprintf("let %s: %s = %s;", name, typ, value)
}

// GenReturnType renders the return type of a circuit. No return values is
// the empty tuple `[]`, a single value is its bare type, and anything else is
// a tuple of all the types
func GenReturnType(types []astutil.Type) string {
	if len(types) == 1 {
		return types[0].String()
	}

	names := make([]string, len(types))
	for ind, typ := range types {
		names[ind] = typ.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// GenCircuit assembles a circuit from its already-rendered pieces. The body is
// expected to be indented already, and may be empty
func GenCircuit(exported bool, name string, params []string, returnType, body string) string {
	var circuit strings.Builder
	fmt.Fprintf(&circuit, "%scircuit %s(%s): %s {\n", exportPrefix(exported), name, strings.Join(params, ", "), returnType)
	if body != "" {
		circuit.WriteString(body)
		circuit.WriteByte('\n')
	}
	circuit.WriteString("}")
	return circuit.String()
}
