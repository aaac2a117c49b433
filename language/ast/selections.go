package ast

// Selection is a member of a SelectionSet: Field, FragmentSpread or
// InlineFragment.
type Selection interface {
	Node
	GetDirectives() []*Directive
	isSelection()
}

var (
	_ Selection = (*Field)(nil)
	_ Selection = (*FragmentSpread)(nil)
	_ Selection = (*InlineFragment)(nil)
)

// SelectionSet is a non-empty `{ ... }` block.
type SelectionSet struct {
	Loc        Location
	Selections []Selection
}

func (ss *SelectionSet) Kind() Kind       { return KindSelectionSet }
func (ss *SelectionSet) GetLoc() Location { return ss.Loc }

type Field struct {
	Loc          Location
	Alias        *Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet
}

func (f *Field) Kind() Kind                  { return KindField }
func (f *Field) GetLoc() Location            { return f.Loc }
func (f *Field) GetDirectives() []*Directive { return f.Directives }
func (*Field) isSelection()                  {}

// FragmentSpread is `...Name @dirs`.
type FragmentSpread struct {
	Loc        Location
	Name       *Name
	Directives []*Directive
}

func (fs *FragmentSpread) Kind() Kind                  { return KindFragmentSpread }
func (fs *FragmentSpread) GetLoc() Location            { return fs.Loc }
func (fs *FragmentSpread) GetDirectives() []*Directive { return fs.Directives }
func (*FragmentSpread) isSelection()                   {}

// InlineFragment is `... on Type @dirs { ... }`.
type InlineFragment struct {
	Loc           Location
	TypeCondition *NamedType
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (inf *InlineFragment) Kind() Kind                  { return KindInlineFragment }
func (inf *InlineFragment) GetLoc() Location            { return inf.Loc }
func (inf *InlineFragment) GetDirectives() []*Directive { return inf.Directives }
func (*InlineFragment) isSelection()                    {}
