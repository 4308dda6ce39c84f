package main

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/solpact/nodeutil"
	"github.com/NickyBoy89/solpact/solast"
	"github.com/pkg/errors"
)

// PrintExpr renders an expression on a single line
func PrintExpr(expr solast.Expression) (string, error) {
	switch expr := expr.(type) {
	case *solast.Identifier:
		return expr.Name, nil
	case *solast.FunctionCall:
		callee, err := PrintExpr(expr.Callee)
		if err != nil {
			return "", err
		}

		args := make([]string, len(expr.Args))
		for ind, arg := range expr.Args {
			if args[ind], err = PrintExpr(arg); err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("%s(%s)", callee, strings.Join(args, ", ")), nil
	case *solast.MemberAccess:
		object, err := PrintExpr(expr.Object)
		if err != nil {
			return "", err
		}
		return object + "." + expr.Member, nil
	case *solast.NumberLiteral:
		return expr.Value, nil
	case nil:
		return "", errors.New("missing expression")
	}
	return "", nodeutil.Unsupported(expr, "%s is not supported", expr.NodeType())
}
