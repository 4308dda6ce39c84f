package main

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/solpact/astutil"
	"github.com/NickyBoy89/solpact/keywords"
	"github.com/NickyBoy89/solpact/nodeutil"
	"github.com/NickyBoy89/solpact/solast"
	log "github.com/sirupsen/logrus"
)

// ParseContractPart renders a single item of a contract's body. Items that
// have no Compact form, such as events or using directives, produce no text
// and no error
func ParseContractPart(part solast.ContractPart) (string, error) {
	switch part := part.(type) {
	case *solast.VariableDeclaration:
		return ParseVariable(part, true)
	case *solast.FunctionDefinition:
		return ParseCircuit(part)
	}

	log.WithFields(log.Fields{
		"nodeType": part.NodeType(),
		"src":      part.NodePos(),
	}).Debug("Skipping contract part")
	return "", nil
}

// ParseVariable renders a variable declaration. Declarations directly inside
// a contract become ledger state, and are exported if they are public, while
// any others become local bindings
//
// The declared type is copied through as it was written, so only a plain
// type identifier is accepted
func ParseVariable(decl *solast.VariableDeclaration, topLevel bool) (string, error) {
	name, err := nodeutil.RequireName(decl, decl.Name)
	if err != nil {
		return "", err
	}

	userType, ok := decl.Type.(*solast.UserDefinedTypeName)
	if !ok || userType.Path == "" || strings.Contains(userType.Path, ".") {
		return "", nodeutil.Unsupported(decl, "unsupported type %s for variable %s", solast.TypeString(decl.Type), name)
	}

	warnReserved(decl, name)

	if !topLevel {
		return GenLet(name, userType.Path, ""), nil
	}

	if decl.Visibility != "" && !keywords.IsVisibility(decl.Visibility) {
		log.WithFields(log.Fields{
			"variable":   name,
			"visibility": decl.Visibility,
		}).Warn("Unknown visibility, treating the variable as not exported")
	}

	return GenLedger(keywords.IsExported(decl.Visibility), name, userType.Path), nil
}

// ParseCircuit renders a function declaration as a Compact circuit, with its
// parameter and return types converted to their Compact equivalents
func ParseCircuit(fn *solast.FunctionDefinition) (string, error) {
	// solc leaves constructors and the fallback and receive functions unnamed,
	// so they are rejected before the name check reports them as malformed
	if fn.Kind != "" && fn.Kind != "function" {
		return "", nodeutil.Unsupported(fn, "%s functions are not supported", fn.Kind)
	}

	name, err := nodeutil.RequireName(fn, fn.Name)
	if err != nil {
		return "", err
	}

	warnReserved(fn, name)

	params := make([]string, 0, len(fn.Params))
	for _, param := range fn.Params {
		if param == nil {
			return "", nodeutil.Malformed(fn, "unnamed parameter found in function %s", name)
		}

		paramType, err := parseCircuitType(param, "parameter")
		if err != nil {
			return "", err
		}

		if param.Name == nil || *param.Name == "" {
			return "", nodeutil.Malformed(param, "parameter of type %s in function %s is missing a name", paramType, name)
		}

		params = append(params, fmt.Sprintf("%s: %s", *param.Name, paramType))
	}

	returnTypes := make([]astutil.Type, 0, len(fn.Returns))
	for _, ret := range fn.Returns {
		if ret == nil {
			return "", nodeutil.Unsupported(fn, "unnamed return binding in function %s", name)
		}

		retType, err := parseCircuitType(ret, "return")
		if err != nil {
			return "", err
		}
		returnTypes = append(returnTypes, retType)
	}

	var body string
	if fn.Body != nil {
		body, err = PrintStmt(fn.Body, 0)
		if err != nil {
			return "", err
		}
	}

	log.WithFields(log.Fields{
		"circuit": name,
		"params":  len(params),
		"returns": len(returnTypes),
	}).Debug("Parsed circuit")

	return GenCircuit(keywords.IsExported(fn.Visibility), name, params, GenReturnType(returnTypes), body), nil
}

// parseCircuitType maps the type of a parameter or return value, which must
// be an elementary type with a Compact equivalent
func parseCircuitType(param *solast.Parameter, role string) (astutil.Type, error) {
	elementary, ok := param.Type.(*solast.ElementaryTypeName)
	if !ok {
		return astutil.Type{}, nodeutil.Unsupported(param, "unsupported %s type expression %s", role, solast.TypeString(param.Type))
	}

	typ, ok := astutil.ParseType(elementary.Name)
	if !ok {
		return astutil.Type{}, nodeutil.Unmappable(param, "unsupported %s type '%s' found", role, elementary.Name)
	}
	return typ, nil
}

func warnReserved(node solast.Node, name string) {
	if keywords.IsReserved(name) {
		log.WithFields(log.Fields{
			"name": name,
			"src":  node.NodePos(),
		}).Warn("Name is a Compact keyword, the output will not compile")
	}
}
