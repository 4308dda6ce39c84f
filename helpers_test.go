package main

import (
	"strings"
	"unicode"

	"github.com/NickyBoy89/solpact/solast"
)

func strPtr(s string) *string {
	return &s
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func ident(name string) *solast.Identifier {
	return &solast.Identifier{Pos: solast.NoPos, Name: name}
}

func elementary(name string) *solast.ElementaryTypeName {
	return &solast.ElementaryTypeName{Pos: solast.NoPos, Name: name}
}

func userType(path string) *solast.UserDefinedTypeName {
	return &solast.UserDefinedTypeName{Pos: solast.NoPos, Path: path}
}

func param(typ solast.TypeName, name string) *solast.Parameter {
	p := &solast.Parameter{Pos: solast.NoPos, Type: typ}
	if name != "" {
		p.Name = strPtr(name)
	}
	return p
}

// call builds `object.member(args...)`
func call(object, member string, args ...solast.Expression) *solast.FunctionCall {
	return &solast.FunctionCall{
		Pos:    solast.NoPos,
		Callee: &solast.MemberAccess{Pos: solast.NoPos, Object: ident(object), Member: member},
		Args:   args,
	}
}

func number(value string) *solast.NumberLiteral {
	return &solast.NumberLiteral{Pos: solast.NoPos, Value: value}
}

func exprStmt(expr solast.Expression) *solast.ExpressionStatement {
	return &solast.ExpressionStatement{Pos: solast.NoPos, Expression: expr}
}

func block(stmts ...solast.Statement) *solast.Block {
	return &solast.Block{Pos: solast.NoPos, Statements: stmts}
}

// counterUnit is the AST of a contract with one public `Counter` and one
// public `increment` function, as solc would produce it
func counterUnit() *solast.SourceUnit {
	return &solast.SourceUnit{
		Pos: solast.NoPos,
		Parts: []solast.SourceUnitPart{
			&solast.UnsupportedPart{Pos: solast.NoPos, Type: "PragmaDirective"},
			&solast.ContractDefinition{
				Pos:  solast.NoPos,
				Name: "CounterContract",
				Kind: solast.ContractKindContract,
				Parts: []solast.ContractPart{
					&solast.UnsupportedPart{Pos: solast.NoPos, Type: "UsingForDirective"},
					&solast.VariableDeclaration{
						Pos:           solast.NoPos,
						Name:          strPtr("round"),
						Type:          userType("Counter"),
						Visibility:    "public",
						StateVariable: true,
					},
					&solast.FunctionDefinition{
						Pos:        solast.NoPos,
						Name:       strPtr("increment"),
						Kind:       "function",
						Visibility: "public",
						Body:       block(exprStmt(call("round", "increment", number("1")))),
					},
				},
			},
		},
	}
}
