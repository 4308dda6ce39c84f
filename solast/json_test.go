package solast

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCombinedJSON(t *testing.T) {
	data, err := os.ReadFile("../testfiles/Counter.json")
	require.NoError(t, err)

	units, err := ParseCombinedJSON(data)
	require.NoError(t, err)
	require.Contains(t, units, "testfiles/Counter.sol")
	require.Contains(t, units, "testfiles/counter-lib.sol")

	unit := units["testfiles/Counter.sol"]
	contracts := unit.Contracts()
	require.Len(t, contracts, 1)

	contract := contracts[0]
	assert.Equal(t, "CounterContract", contract.Name)
	assert.Equal(t, ContractKindContract, contract.Kind)
	require.Len(t, contract.Parts, 3)

	assert.Equal(t, "UsingForDirective", contract.Parts[0].NodeType())

	round, ok := contract.Parts[1].(*VariableDeclaration)
	require.True(t, ok)
	require.NotNil(t, round.Name)
	assert.Equal(t, "round", *round.Name)
	assert.Equal(t, "public", round.Visibility)
	assert.True(t, round.StateVariable)
	assert.Equal(t, &UserDefinedTypeName{Pos: round.Type.NodePos(), Path: "Counter"}, round.Type)

	increment, ok := contract.Parts[2].(*FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "increment", *increment.Name)
	assert.Equal(t, "function", increment.Kind)
	assert.Empty(t, increment.Params)
	assert.Empty(t, increment.Returns)
	require.NotNil(t, increment.Body)
	require.Len(t, increment.Body.Statements, 1)

	stmt, ok := increment.Body.Statements[0].(*ExpressionStatement)
	require.True(t, ok)
	assert.Equal(t, Pos{Start: 225, Length: 19, Source: 0}, stmt.Pos)

	call, ok := stmt.Expression.(*FunctionCall)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
	assert.Equal(t, &NumberLiteral{Pos: Pos{Start: 241, Length: 1, Source: 0}, Value: "1"}, call.Args[0])

	member, ok := call.Callee.(*MemberAccess)
	require.True(t, ok)
	assert.Equal(t, "increment", member.Member)
	assert.Equal(t, "round", member.Object.(*Identifier).Name)
}

func TestParseLegacyTypeName(t *testing.T) {
	// Older versions of solc have no pathNode
	typ, err := decodeTypeName([]byte(`{"nodeType": "UserDefinedTypeName", "src": "1:7:0", "name": "Counter"}`))
	require.NoError(t, err)
	assert.Equal(t, &UserDefinedTypeName{Pos: Pos{Start: 1, Length: 7, Source: 0}, Path: "Counter"}, typ)

	typ, err = decodeTypeName([]byte(`{
		"nodeType": "UserDefinedTypeName",
		"src": "1:11:0",
		"pathNode": {"nodeType": "IdentifierPath", "name": "Lib.Counter", "src": "1:11:0"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Lib.Counter", TypeString(typ))
}

func TestParseCompositeTypeNames(t *testing.T) {
	typ, err := decodeTypeName([]byte(`{
		"nodeType": "Mapping",
		"src": "0:30:0",
		"keyType": {"nodeType": "ElementaryTypeName", "src": "8:7:0", "name": "address"},
		"valueType": {
			"nodeType": "ArrayTypeName",
			"src": "19:9:0",
			"baseType": {"nodeType": "ElementaryTypeName", "src": "19:7:0", "name": "uint256"}
		}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "mapping(address => uint256[])", TypeString(typ))

	typ, err = decodeTypeName([]byte(`{"nodeType": "FunctionTypeName", "src": "0:10:0"}`))
	require.NoError(t, err)
	assert.Equal(t, &UnsupportedType{Pos: Pos{Start: 0, Length: 10, Source: 0}, Type: "FunctionTypeName"}, typ)
}

func TestParseFunctionWithEmptySlots(t *testing.T) {
	part, err := decodeContractPart([]byte(`{
		"nodeType": "FunctionDefinition",
		"src": "0:80:0",
		"name": "",
		"kind": "constructor",
		"visibility": "public",
		"parameters": {
			"nodeType": "ParameterList",
			"src": "11:10:0",
			"parameters": [
				{"nodeType": "VariableDeclaration", "src": "12:6:0", "name": "",
				 "typeName": {"nodeType": "ElementaryTypeName", "src": "12:4:0", "name": "bool"}},
				null
			]
		},
		"returnParameters": {"nodeType": "ParameterList", "src": "22:2:0", "parameters": []},
		"body": null
	}`))
	require.NoError(t, err)

	fn, ok := part.(*FunctionDefinition)
	require.True(t, ok)
	assert.Nil(t, fn.Name)
	assert.Equal(t, "constructor", fn.Kind)
	assert.Nil(t, fn.Body)
	require.Len(t, fn.Params, 2)
	assert.Nil(t, fn.Params[0].Name)
	assert.Equal(t, "bool", TypeString(fn.Params[0].Type))
	assert.Nil(t, fn.Params[1])
	assert.Empty(t, fn.Returns)
}

func TestParseUnsupportedNodes(t *testing.T) {
	part, err := decodeContractPart([]byte(`{"nodeType": "EventDefinition", "src": "5:20:0", "name": "Changed"}`))
	require.NoError(t, err)
	assert.Equal(t, &UnsupportedPart{Pos: Pos{Start: 5, Length: 20, Source: 0}, Type: "EventDefinition"}, part)

	stmt, err := decodeStatement([]byte(`{"nodeType": "IfStatement", "src": "0:1:0"}`))
	require.NoError(t, err)
	assert.Equal(t, "IfStatement", stmt.NodeType())

	// Tuple declarations are not modelled
	stmt, err = decodeStatement([]byte(`{
		"nodeType": "VariableDeclarationStatement",
		"src": "0:20:0",
		"declarations": [null, null]
	}`))
	require.NoError(t, err)
	assert.IsType(t, &UnsupportedStatement{}, stmt)

	expr, err := decodeExpression([]byte(`{"nodeType": "Literal", "src": "0:7:0", "kind": "number", "value": "1", "subdenomination": "ether"}`))
	require.NoError(t, err)
	assert.IsType(t, &UnsupportedExpression{}, expr)

	expr, err = decodeExpression([]byte(`{"nodeType": "Literal", "src": "0:4:0", "kind": "string", "value": "hi"}`))
	require.NoError(t, err)
	assert.Equal(t, "string Literal", expr.NodeType())

	expr, err = decodeExpression([]byte(`{
		"nodeType": "FunctionCall",
		"src": "0:10:0",
		"expression": {"nodeType": "Identifier", "src": "0:1:0", "name": "f"},
		"arguments": [{"nodeType": "Literal", "src": "5:1:0", "kind": "number", "value": "1"}],
		"names": ["a"]
	}`))
	require.NoError(t, err)
	assert.IsType(t, &UnsupportedExpression{}, expr)
}

func TestParseVariableDeclarationStatement(t *testing.T) {
	stmt, err := decodeStatement([]byte(`{
		"nodeType": "VariableDeclarationStatement",
		"src": "0:20:0",
		"declarations": [{
			"nodeType": "VariableDeclaration",
			"src": "0:9:0",
			"name": "c",
			"typeName": {"nodeType": "UserDefinedTypeName", "src": "0:7:0", "name": "Counter"}
		}],
		"initialValue": {"nodeType": "Identifier", "src": "12:5:0", "name": "round"}
	}`))
	require.NoError(t, err)

	decl, ok := stmt.(*VariableDeclarationStatement)
	require.True(t, ok)
	assert.Equal(t, "c", *decl.Declaration.Name)
	assert.Equal(t, &Identifier{Pos: Pos{Start: 12, Length: 5, Source: 0}, Name: "round"}, decl.Initial)
}

func TestParseSourceUnitErrors(t *testing.T) {
	_, err := ParseSourceUnit([]byte(`{"nodeType": "ContractDefinition", "src": "0:1:0"}`))
	assert.Error(t, err)

	_, err = ParseSourceUnit([]byte(`{"nodeType": "SourceUnit", "src": "bad"}`))
	assert.Error(t, err)

	_, err = ParseSourceUnit([]byte(`{"nodeType": "SourceUnit", "src": "0:10:0", "nodes": [
		{"nodeType": "ContractDefinition", "src": "0:10:0", "name": "C", "contractKind": "contract", "nodes": [
			{"nodeType": "FunctionDefinition", "src": "0:5:0", "name": "f", "kind": "function",
			 "body": {"nodeType": "ExpressionStatement", "src": "0:1:0",
			          "expression": {"nodeType": "Identifier", "src": "0:1:0", "name": "x"}}}
		]}
	]}`))
	assert.ErrorContains(t, err, "not a Block")

	_, err = ParseCombinedJSON([]byte(`{"sources": {"a.sol": {}}}`))
	assert.ErrorContains(t, err, "has no AST")
}
