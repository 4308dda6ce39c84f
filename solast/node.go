// Package solast holds the subset of the Solidity syntax tree that the
// transpiler understands, along with the decoders that build it from the
// JSON emitted by solc.
//
// Each node family (contract parts, type names, statements, expressions) is a
// closed set: the marker methods are unexported, so only this package can add
// a variant. Anything solc emits that is not modelled here is kept as an
// Unsupported* node that remembers its original node type.
package solast

// Node is implemented by every node in the tree
type Node interface {
	NodePos() Pos
	NodeType() string
}

// SourceUnitPart is any item found at the top level of a source file
type SourceUnitPart interface {
	Node
	sourceUnitPart()
}

// ContractPart is any item found directly inside a contract body
type ContractPart interface {
	Node
	contractPart()
}

// TypeName is a type reference, such as `uint256` or `Counter`
type TypeName interface {
	Node
	typeName()
}

// Statement is anything that can appear inside a function body
type Statement interface {
	Node
	statement()
}

// Expression is anything that produces a value
type Expression interface {
	Node
	expression()
}

// ContractKind is the keyword a contract was declared with
type ContractKind string

const (
	ContractKindContract  ContractKind = "contract"
	ContractKindLibrary   ContractKind = "library"
	ContractKindInterface ContractKind = "interface"
)

// SourceUnit is the root of a parsed file
type SourceUnit struct {
	Pos   Pos
	Parts []SourceUnitPart
}

// Contracts returns the contract definitions of the unit, in source order
func (su *SourceUnit) Contracts() []*ContractDefinition {
	var contracts []*ContractDefinition
	for _, part := range su.Parts {
		if contract, ok := part.(*ContractDefinition); ok {
			contracts = append(contracts, contract)
		}
	}
	return contracts
}

type ContractDefinition struct {
	Pos   Pos
	Name  string
	Kind  ContractKind
	Parts []ContractPart
}

// UnsupportedPart stands in for a top-level or contract-level item that has
// no representation here, such as events or using directives
type UnsupportedPart struct {
	Pos  Pos
	Type string
}

// VariableDeclaration is a state variable, a local variable, or a parameter
type VariableDeclaration struct {
	Pos Pos
	// Name is nil when the declaration has no name
	Name       *string
	Type       TypeName
	Visibility string
	// StateVariable is set by solc for declarations directly inside a contract
	StateVariable bool
}

// Parameter is one entry in a parameter or return list
type Parameter struct {
	Pos  Pos
	Type TypeName
	// Name is nil for unnamed parameters, such as `returns (uint)`
	Name *string
}

type FunctionDefinition struct {
	Pos Pos
	// Name is nil for constructors, fallback, and receive functions
	Name *string
	// Kind is one of "function", "constructor", "fallback", "receive"
	Kind       string
	Visibility string
	// A nil entry in Params or Returns is a binding slot with nothing in it
	Params  []*Parameter
	Returns []*Parameter
	// Body is nil for functions without an implementation
	Body *Block
}

type ElementaryTypeName struct {
	Pos  Pos
	Name string
}

// UserDefinedTypeName refers to a contract, struct, enum, or library type,
// possibly through a dotted path such as `Lib.Counter`
type UserDefinedTypeName struct {
	Pos  Pos
	Path string
}

type ArrayTypeName struct {
	Pos  Pos
	Base TypeName
}

type Mapping struct {
	Pos   Pos
	Key   TypeName
	Value TypeName
}

type UnsupportedType struct {
	Pos  Pos
	Type string
}

type Block struct {
	Pos        Pos
	Statements []Statement
}

type ExpressionStatement struct {
	Pos        Pos
	Expression Expression
}

// VariableDeclarationStatement declares a single local variable, with an
// optional initial value
type VariableDeclarationStatement struct {
	Pos         Pos
	Declaration *VariableDeclaration
	Initial     Expression
}

type UnsupportedStatement struct {
	Pos  Pos
	Type string
}

type Identifier struct {
	Pos  Pos
	Name string
}

type FunctionCall struct {
	Pos    Pos
	Callee Expression
	Args   []Expression
}

type MemberAccess struct {
	Pos    Pos
	Object Expression
	Member string
}

// NumberLiteral keeps the literal exactly as it was written
type NumberLiteral struct {
	Pos   Pos
	Value string
}

type UnsupportedExpression struct {
	Pos  Pos
	Type string
}

// Comment is a single `//` or `/* */` comment, including its markers
type Comment struct {
	Pos  Pos
	Text string
}

func (su *SourceUnit) NodePos() Pos  { return su.Pos }
func (*SourceUnit) NodeType() string { return "SourceUnit" }

func (cd *ContractDefinition) NodePos() Pos  { return cd.Pos }
func (*ContractDefinition) NodeType() string { return "ContractDefinition" }
func (*ContractDefinition) sourceUnitPart()  {}

func (up *UnsupportedPart) NodePos() Pos     { return up.Pos }
func (up *UnsupportedPart) NodeType() string { return up.Type }
func (*UnsupportedPart) sourceUnitPart()     {}
func (*UnsupportedPart) contractPart()       {}

func (vd *VariableDeclaration) NodePos() Pos  { return vd.Pos }
func (*VariableDeclaration) NodeType() string { return "VariableDeclaration" }
func (*VariableDeclaration) contractPart()    {}

func (p *Parameter) NodePos() Pos   { return p.Pos }
func (*Parameter) NodeType() string { return "VariableDeclaration" }

func (fd *FunctionDefinition) NodePos() Pos  { return fd.Pos }
func (*FunctionDefinition) NodeType() string { return "FunctionDefinition" }
func (*FunctionDefinition) contractPart()    {}

func (et *ElementaryTypeName) NodePos() Pos  { return et.Pos }
func (*ElementaryTypeName) NodeType() string { return "ElementaryTypeName" }
func (*ElementaryTypeName) typeName()        {}

func (ut *UserDefinedTypeName) NodePos() Pos  { return ut.Pos }
func (*UserDefinedTypeName) NodeType() string { return "UserDefinedTypeName" }
func (*UserDefinedTypeName) typeName()        {}

func (at *ArrayTypeName) NodePos() Pos  { return at.Pos }
func (*ArrayTypeName) NodeType() string { return "ArrayTypeName" }
func (*ArrayTypeName) typeName()        {}

func (m *Mapping) NodePos() Pos   { return m.Pos }
func (*Mapping) NodeType() string { return "Mapping" }
func (*Mapping) typeName()        {}

func (ut *UnsupportedType) NodePos() Pos     { return ut.Pos }
func (ut *UnsupportedType) NodeType() string { return ut.Type }
func (*UnsupportedType) typeName()           {}

func (b *Block) NodePos() Pos   { return b.Pos }
func (*Block) NodeType() string { return "Block" }
func (*Block) statement()       {}

func (es *ExpressionStatement) NodePos() Pos  { return es.Pos }
func (*ExpressionStatement) NodeType() string { return "ExpressionStatement" }
func (*ExpressionStatement) statement()       {}

func (vs *VariableDeclarationStatement) NodePos() Pos  { return vs.Pos }
func (*VariableDeclarationStatement) NodeType() string { return "VariableDeclarationStatement" }
func (*VariableDeclarationStatement) statement()       {}

func (us *UnsupportedStatement) NodePos() Pos     { return us.Pos }
func (us *UnsupportedStatement) NodeType() string { return us.Type }
func (*UnsupportedStatement) statement()          {}

func (i *Identifier) NodePos() Pos   { return i.Pos }
func (*Identifier) NodeType() string { return "Identifier" }
func (*Identifier) expression()      {}

func (fc *FunctionCall) NodePos() Pos  { return fc.Pos }
func (*FunctionCall) NodeType() string { return "FunctionCall" }
func (*FunctionCall) expression()      {}

func (ma *MemberAccess) NodePos() Pos  { return ma.Pos }
func (*MemberAccess) NodeType() string { return "MemberAccess" }
func (*MemberAccess) expression()      {}

func (nl *NumberLiteral) NodePos() Pos  { return nl.Pos }
func (*NumberLiteral) NodeType() string { return "Literal" }
func (*NumberLiteral) expression()      {}

func (ue *UnsupportedExpression) NodePos() Pos     { return ue.Pos }
func (ue *UnsupportedExpression) NodeType() string { return ue.Type }
func (*UnsupportedExpression) expression()         {}

func (c *Comment) NodePos() Pos   { return c.Pos }
func (*Comment) NodeType() string { return "Comment" }
