package main

import (
	"strings"
	"unicode"

	"github.com/NickyBoy89/solpact/nodeutil"
	"github.com/NickyBoy89/solpact/solast"
	"github.com/pkg/errors"
)

// PrintStmt renders a statement nested `depth` levels deep. Every call
// returns only the text for its own statement, so sibling statements can
// never affect each other's indentation
//
// A block's statements are rendered one level deeper than the block itself,
// so a function body is printed at depth zero
func PrintStmt(stmt solast.Statement, depth int) (string, error) {
	switch stmt := stmt.(type) {
	case *solast.Block:
		if len(stmt.Statements) == 0 {
			return "", nil
		}

		lines := make([]string, 0, len(stmt.Statements))
		for _, inner := range stmt.Statements {
			line, err := PrintStmt(inner, depth+1)
			if err != nil {
				return "", err
			}
			lines = append(lines, line)
		}
		return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace), nil
	case *solast.ExpressionStatement:
		expr, err := PrintExpr(stmt.Expression)
		if err != nil {
			return "", err
		}
		return Indent(depth) + expr + ";", nil
	case *solast.VariableDeclarationStatement:
		// Reuse the declaration rules for the name and type checks
		line, err := ParseVariable(stmt.Declaration, false)
		if err != nil {
			return "", err
		}
		if stmt.Initial == nil {
			return Indent(depth) + line, nil
		}

		value, err := PrintExpr(stmt.Initial)
		if err != nil {
			return "", err
		}
		typ := stmt.Declaration.Type.(*solast.UserDefinedTypeName)
		return Indent(depth) + GenLet(*stmt.Declaration.Name, typ.Path, value), nil
	case nil:
		return "", errors.New("missing statement")
	}
	return "", nodeutil.Unsupported(stmt, "%s is not supported", stmt.NodeType())
}
