package ast

// Type is a type reference in a variable definition: NamedType, ListType
// or NonNullType.
type Type interface {
	Node
	isType()
}

var (
	_ Type = (*NamedType)(nil)
	_ Type = (*ListType)(nil)
	_ Type = (*NonNullType)(nil)
)

type NamedType struct {
	Loc  Location
	Name *Name
}

func (t *NamedType) Kind() Kind       { return KindNamedType }
func (t *NamedType) GetLoc() Location { return t.Loc }
func (*NamedType) isType()            {}

// ListType is `[Type]`.
type ListType struct {
	Loc  Location
	Type Type
}

func (t *ListType) Kind() Kind       { return KindListType }
func (t *ListType) GetLoc() Location { return t.Loc }
func (*ListType) isType()            {}

// NonNullType is `Type!`. Its Type is never itself a NonNullType.
type NonNullType struct {
	Loc  Location
	Type Type
}

func (t *NonNullType) Kind() Kind       { return KindNonNullType }
func (t *NonNullType) GetLoc() Location { return t.Loc }
func (*NonNullType) isType()            {}
