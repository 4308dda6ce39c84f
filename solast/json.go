package solast

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// nodeHeader holds the fields shared by every solc AST node, which are all
// that is needed to decide what Go type a node decodes into
type nodeHeader struct {
	NodeType string `json:"nodeType"`
	Src      string `json:"src"`
}

func readHeader(data json.RawMessage) (nodeHeader, Pos, error) {
	var header nodeHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return header, NoPos, err
	}
	pos, err := ParsePos(header.Src)
	return header, pos, err
}

func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// optionalName turns solc's empty-string convention for missing names into nil
func optionalName(name string) *string {
	if name == "" {
		return nil
	}
	return &name
}

// ParseSourceUnit decodes a single compact-format AST, as found under the
// `AST` key of `solc --combined-json ast`
func ParseSourceUnit(data []byte) (*SourceUnit, error) {
	var unit SourceUnit
	if err := json.Unmarshal(data, &unit); err != nil {
		return nil, err
	}
	return &unit, nil
}

// ParseCombinedJSON decodes the output of `solc --combined-json ast` and
// returns the AST of every source, keyed by its path
func ParseCombinedJSON(data []byte) (map[string]*SourceUnit, error) {
	var combined struct {
		Sources map[string]struct {
			AST       json.RawMessage `json:"AST"`
			LegacyAST json.RawMessage `json:"ast"`
		} `json:"sources"`
	}
	if err := json.Unmarshal(data, &combined); err != nil {
		return nil, errors.Wrap(err, "could not decode combined json")
	}

	units := make(map[string]*SourceUnit, len(combined.Sources))
	for path, source := range combined.Sources {
		raw := source.AST
		if isNull(raw) {
			raw = source.LegacyAST
		}
		if isNull(raw) {
			return nil, errors.Errorf("source %s has no AST", path)
		}

		unit, err := ParseSourceUnit(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "could not decode the AST of %s", path)
		}
		units[path] = unit
	}
	return units, nil
}

// UnmarshalJSON decodes a `SourceUnit` node. Its children are decoded based on
// their node type, and anything that is not a contract is kept as an
// `UnsupportedPart`
func (su *SourceUnit) UnmarshalJSON(data []byte) error {
	var aux struct {
		NodeType string            `json:"nodeType"`
		Src      string            `json:"src"`
		Nodes    []json.RawMessage `json:"nodes"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.NodeType != "SourceUnit" {
		return errors.Errorf("expected a SourceUnit node, got %q", aux.NodeType)
	}

	pos, err := ParsePos(aux.Src)
	if err != nil {
		return err
	}
	su.Pos = pos

	for _, nodeData := range aux.Nodes {
		part, err := decodeSourceUnitPart(nodeData)
		if err != nil {
			return err
		}
		su.Parts = append(su.Parts, part)
	}
	return nil
}

func decodeSourceUnitPart(data json.RawMessage) (SourceUnitPart, error) {
	header, pos, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	switch header.NodeType {
	case "ContractDefinition":
		return decodeContract(data, pos)
	}
	return &UnsupportedPart{Pos: pos, Type: header.NodeType}, nil
}

func decodeContract(data json.RawMessage, pos Pos) (*ContractDefinition, error) {
	var aux struct {
		Name         string            `json:"name"`
		ContractKind ContractKind      `json:"contractKind"`
		Nodes        []json.RawMessage `json:"nodes"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, errors.Wrap(err, "could not decode ContractDefinition")
	}

	contract := &ContractDefinition{Pos: pos, Name: aux.Name, Kind: aux.ContractKind}
	for _, nodeData := range aux.Nodes {
		part, err := decodeContractPart(nodeData)
		if err != nil {
			return nil, errors.Wrapf(err, "in contract %s", aux.Name)
		}
		contract.Parts = append(contract.Parts, part)
	}
	return contract, nil
}

func decodeContractPart(data json.RawMessage) (ContractPart, error) {
	header, pos, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	switch header.NodeType {
	case "VariableDeclaration":
		return decodeVariable(data, pos)
	case "FunctionDefinition":
		return decodeFunction(data, pos)
	}

	log.WithFields(log.Fields{
		"nodeType": header.NodeType,
		"src":      header.Src,
	}).Debug("Keeping contract part as unsupported")
	return &UnsupportedPart{Pos: pos, Type: header.NodeType}, nil
}

func decodeVariable(data json.RawMessage, pos Pos) (*VariableDeclaration, error) {
	var aux struct {
		Name          string          `json:"name"`
		TypeName      json.RawMessage `json:"typeName"`
		Visibility    string          `json:"visibility"`
		StateVariable bool            `json:"stateVariable"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, errors.Wrap(err, "could not decode VariableDeclaration")
	}

	var typ TypeName = &UnsupportedType{Pos: pos, Type: "var"}
	if !isNull(aux.TypeName) {
		var err error
		if typ, err = decodeTypeName(aux.TypeName); err != nil {
			return nil, err
		}
	}

	return &VariableDeclaration{
		Pos:           pos,
		Name:          optionalName(aux.Name),
		Type:          typ,
		Visibility:    aux.Visibility,
		StateVariable: aux.StateVariable,
	}, nil
}

func decodeParameterList(data json.RawMessage) ([]*Parameter, error) {
	if isNull(data) {
		return nil, nil
	}

	var aux struct {
		Parameters []json.RawMessage `json:"parameters"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, errors.Wrap(err, "could not decode ParameterList")
	}

	params := make([]*Parameter, len(aux.Parameters))
	for ind, paramData := range aux.Parameters {
		// An empty slot stays nil
		if isNull(paramData) {
			continue
		}
		_, pos, err := readHeader(paramData)
		if err != nil {
			return nil, err
		}
		decl, err := decodeVariable(paramData, pos)
		if err != nil {
			return nil, err
		}
		params[ind] = &Parameter{Pos: decl.Pos, Type: decl.Type, Name: decl.Name}
	}
	return params, nil
}

func decodeFunction(data json.RawMessage, pos Pos) (*FunctionDefinition, error) {
	var aux struct {
		Name             string          `json:"name"`
		Kind             string          `json:"kind"`
		Visibility       string          `json:"visibility"`
		Parameters       json.RawMessage `json:"parameters"`
		ReturnParameters json.RawMessage `json:"returnParameters"`
		Body             json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return nil, errors.Wrap(err, "could not decode FunctionDefinition")
	}

	function := &FunctionDefinition{
		Pos:        pos,
		Name:       optionalName(aux.Name),
		Kind:       aux.Kind,
		Visibility: aux.Visibility,
	}

	var err error
	if function.Params, err = decodeParameterList(aux.Parameters); err != nil {
		return nil, errors.Wrapf(err, "parameters of function %q", aux.Name)
	}
	if function.Returns, err = decodeParameterList(aux.ReturnParameters); err != nil {
		return nil, errors.Wrapf(err, "return parameters of function %q", aux.Name)
	}

	if !isNull(aux.Body) {
		body, err := decodeStatement(aux.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "body of function %q", aux.Name)
		}
		block, ok := body.(*Block)
		if !ok {
			return nil, errors.Errorf("body of function %q is a %s, not a Block", aux.Name, body.NodeType())
		}
		function.Body = block
	}

	return function, nil
}

func decodeTypeName(data json.RawMessage) (TypeName, error) {
	header, pos, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	switch header.NodeType {
	case "ElementaryTypeName":
		var aux struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return nil, errors.Wrap(err, "could not decode ElementaryTypeName")
		}
		return &ElementaryTypeName{Pos: pos, Name: aux.Name}, nil
	case "UserDefinedTypeName":
		// Newer versions of solc store the name in `pathNode`, older ones in `name`
		var aux struct {
			Name     string `json:"name"`
			PathNode *struct {
				Name string `json:"name"`
			} `json:"pathNode"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return nil, errors.Wrap(err, "could not decode UserDefinedTypeName")
		}
		path := aux.Name
		if aux.PathNode != nil && aux.PathNode.Name != "" {
			path = aux.PathNode.Name
		}
		return &UserDefinedTypeName{Pos: pos, Path: path}, nil
	case "ArrayTypeName":
		var aux struct {
			BaseType json.RawMessage `json:"baseType"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return nil, errors.Wrap(err, "could not decode ArrayTypeName")
		}
		base, err := decodeTypeName(aux.BaseType)
		if err != nil {
			return nil, err
		}
		return &ArrayTypeName{Pos: pos, Base: base}, nil
	case "Mapping":
		var aux struct {
			KeyType   json.RawMessage `json:"keyType"`
			ValueType json.RawMessage `json:"valueType"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return nil, errors.Wrap(err, "could not decode Mapping")
		}
		key, err := decodeTypeName(aux.KeyType)
		if err != nil {
			return nil, err
		}
		value, err := decodeTypeName(aux.ValueType)
		if err != nil {
			return nil, err
		}
		return &Mapping{Pos: pos, Key: key, Value: value}, nil
	}
	return &UnsupportedType{Pos: pos, Type: header.NodeType}, nil
}

func decodeStatement(data json.RawMessage) (Statement, error) {
	header, pos, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	switch header.NodeType {
	case "Block":
		var aux struct {
			Statements []json.RawMessage `json:"statements"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return nil, errors.Wrap(err, "could not decode Block")
		}
		block := &Block{Pos: pos}
		for _, stmtData := range aux.Statements {
			stmt, err := decodeStatement(stmtData)
			if err != nil {
				return nil, err
			}
			block.Statements = append(block.Statements, stmt)
		}
		return block, nil
	case "ExpressionStatement":
		var aux struct {
			Expression json.RawMessage `json:"expression"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return nil, errors.Wrap(err, "could not decode ExpressionStatement")
		}
		expr, err := decodeExpression(aux.Expression)
		if err != nil {
			return nil, err
		}
		return &ExpressionStatement{Pos: pos, Expression: expr}, nil
	case "VariableDeclarationStatement":
		var aux struct {
			Declarations []json.RawMessage `json:"declarations"`
			InitialValue json.RawMessage   `json:"initialValue"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return nil, errors.Wrap(err, "could not decode VariableDeclarationStatement")
		}
		// Tuple declarations such as `(uint a, , uint b) = f();` are not modelled
		if len(aux.Declarations) != 1 || isNull(aux.Declarations[0]) {
			return &UnsupportedStatement{Pos: pos, Type: header.NodeType}, nil
		}
		_, declPos, err := readHeader(aux.Declarations[0])
		if err != nil {
			return nil, err
		}
		decl, err := decodeVariable(aux.Declarations[0], declPos)
		if err != nil {
			return nil, err
		}
		stmt := &VariableDeclarationStatement{Pos: pos, Declaration: decl}
		if !isNull(aux.InitialValue) {
			if stmt.Initial, err = decodeExpression(aux.InitialValue); err != nil {
				return nil, err
			}
		}
		return stmt, nil
	}
	return &UnsupportedStatement{Pos: pos, Type: header.NodeType}, nil
}

func decodeExpression(data json.RawMessage) (Expression, error) {
	header, pos, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	switch header.NodeType {
	case "Identifier":
		var aux struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return nil, errors.Wrap(err, "could not decode Identifier")
		}
		return &Identifier{Pos: pos, Name: aux.Name}, nil
	case "FunctionCall":
		var aux struct {
			Expression json.RawMessage   `json:"expression"`
			Arguments  []json.RawMessage `json:"arguments"`
			Names      []string          `json:"names"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return nil, errors.Wrap(err, "could not decode FunctionCall")
		}
		// Calls with named arguments, `f({a: 1})`, have no positional form
		if len(aux.Names) > 0 {
			return &UnsupportedExpression{Pos: pos, Type: "FunctionCall with named arguments"}, nil
		}
		callee, err := decodeExpression(aux.Expression)
		if err != nil {
			return nil, err
		}
		call := &FunctionCall{Pos: pos, Callee: callee}
		for _, argData := range aux.Arguments {
			arg, err := decodeExpression(argData)
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
		}
		return call, nil
	case "MemberAccess":
		var aux struct {
			Expression json.RawMessage `json:"expression"`
			MemberName string          `json:"memberName"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return nil, errors.Wrap(err, "could not decode MemberAccess")
		}
		object, err := decodeExpression(aux.Expression)
		if err != nil {
			return nil, err
		}
		return &MemberAccess{Pos: pos, Object: object, Member: aux.MemberName}, nil
	case "Literal":
		var aux struct {
			Kind            string  `json:"kind"`
			Value           string  `json:"value"`
			Subdenomination *string `json:"subdenomination"`
		}
		if err := json.Unmarshal(data, &aux); err != nil {
			return nil, errors.Wrap(err, "could not decode Literal")
		}
		if aux.Kind == "number" && aux.Subdenomination == nil {
			return &NumberLiteral{Pos: pos, Value: aux.Value}, nil
		}
		return &UnsupportedExpression{Pos: pos, Type: aux.Kind + " Literal"}, nil
	}
	return &UnsupportedExpression{Pos: pos, Type: header.NodeType}, nil
}
