// Package ast declares the closed set of node types produced by the parser.
//
// Every node records the span of source it was built from in a Location.
// Nodes are never modified after the parser builds them.
package ast

import "github.com/gnoswap-labs/gqlfront/language/source"

// Location is the half-open byte span [Start, End) of a node within Source.
// Start and End are 0-indexed offsets into Source.Body.
type Location struct {
	Start  int
	End    int
	Source *source.Source
}

// Kind identifies the concrete type of a Node.
type Kind int

const (
	KindDocument Kind = iota
	KindOperationDefinition
	KindFragmentDefinition
	KindVariableDefinition
	KindSelectionSet
	KindField
	KindFragmentSpread
	KindInlineFragment
	KindArgument
	KindDirective
	KindName
	KindNamedType
	KindListType
	KindNonNullType
	KindVariable
	KindIntValue
	KindFloatValue
	KindStringValue
	KindBooleanValue
	KindNullValue
	KindEnumValue
	KindListValue
	KindObjectValue
	KindObjectField
)

var kindNames = [...]string{
	KindDocument:            "Document",
	KindOperationDefinition: "OperationDefinition",
	KindFragmentDefinition:  "FragmentDefinition",
	KindVariableDefinition:  "VariableDefinition",
	KindSelectionSet:        "SelectionSet",
	KindField:               "Field",
	KindFragmentSpread:      "FragmentSpread",
	KindInlineFragment:      "InlineFragment",
	KindArgument:            "Argument",
	KindDirective:           "Directive",
	KindName:                "Name",
	KindNamedType:           "NamedType",
	KindListType:            "ListType",
	KindNonNullType:         "NonNullType",
	KindVariable:            "Variable",
	KindIntValue:            "IntValue",
	KindFloatValue:          "FloatValue",
	KindStringValue:         "StringValue",
	KindBooleanValue:        "BooleanValue",
	KindNullValue:           "NullValue",
	KindEnumValue:           "EnumValue",
	KindListValue:           "ListValue",
	KindObjectValue:         "ObjectValue",
	KindObjectField:         "ObjectField",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Node is implemented by every AST node.
type Node interface {
	Kind() Kind
	GetLoc() Location
}

var (
	_ Node = (*Document)(nil)
	_ Node = (*Name)(nil)
	_ Node = (*Argument)(nil)
	_ Node = (*Directive)(nil)
	_ Node = (*VariableDefinition)(nil)
	_ Node = (*SelectionSet)(nil)
	_ Node = (*ObjectField)(nil)
)

// Document is the root of every successful parse.
type Document struct {
	Loc         Location
	Definitions []Definition
}

func (d *Document) Kind() Kind       { return KindDocument }
func (d *Document) GetLoc() Location { return d.Loc }

// Name is an identifier matching [_A-Za-z][_0-9A-Za-z]*.
type Name struct {
	Loc   Location
	Value string
}

func (n *Name) Kind() Kind       { return KindName }
func (n *Name) GetLoc() Location { return n.Loc }

// Argument is a `name: value` pair on a field or directive.
type Argument struct {
	Loc   Location
	Name  *Name
	Value Value
}

func (a *Argument) Kind() Kind       { return KindArgument }
func (a *Argument) GetLoc() Location { return a.Loc }

// Directive is an `@name(args)` annotation.
type Directive struct {
	Loc       Location
	Name      *Name
	Arguments []*Argument
}

func (d *Directive) Kind() Kind       { return KindDirective }
func (d *Directive) GetLoc() Location { return d.Loc }
