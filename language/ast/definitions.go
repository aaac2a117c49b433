package ast

// Definition is a top-level element of a Document: an OperationDefinition
// or a FragmentDefinition.
type Definition interface {
	Node
	GetDirectives() []*Directive
	GetSelectionSet() *SelectionSet
	isDefinition()
}

var (
	_ Definition = (*OperationDefinition)(nil)
	_ Definition = (*FragmentDefinition)(nil)
)

// Operation names.
const (
	OperationQuery        = "query"
	OperationMutation     = "mutation"
	OperationSubscription = "subscription"
)

// OperationDefinition is a query, mutation or subscription. The shorthand
// form `{ ... }` yields an anonymous query with no variable definitions.
type OperationDefinition struct {
	Loc                 Location
	Operation           string
	Name                *Name
	VariableDefinitions []*VariableDefinition
	Directives          []*Directive
	SelectionSet        *SelectionSet
}

func (op *OperationDefinition) Kind() Kind                     { return KindOperationDefinition }
func (op *OperationDefinition) GetLoc() Location               { return op.Loc }
func (op *OperationDefinition) GetDirectives() []*Directive    { return op.Directives }
func (op *OperationDefinition) GetSelectionSet() *SelectionSet { return op.SelectionSet }
func (*OperationDefinition) isDefinition()                     {}

// FragmentDefinition is `fragment Name on Type @dirs { ... }`.
type FragmentDefinition struct {
	Loc           Location
	Name          *Name
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (fd *FragmentDefinition) Kind() Kind                     { return KindFragmentDefinition }
func (fd *FragmentDefinition) GetLoc() Location               { return fd.Loc }
func (fd *FragmentDefinition) GetDirectives() []*Directive    { return fd.Directives }
func (fd *FragmentDefinition) GetSelectionSet() *SelectionSet { return fd.SelectionSet }
func (*FragmentDefinition) isDefinition()                     {}

// VariableDefinition is `$name: Type = default` inside an operation's
// parentheses. DefaultValue is nil when absent and never contains a
// Variable.
type VariableDefinition struct {
	Loc          Location
	Variable     *Variable
	Type         Type
	DefaultValue Value
}

func (vd *VariableDefinition) Kind() Kind       { return KindVariableDefinition }
func (vd *VariableDefinition) GetLoc() Location { return vd.Loc }
