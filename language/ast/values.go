package ast

// Value is a literal or variable in argument and default-value positions.
type Value interface {
	Node
	isValue()
}

// Ensure that all value types implement Value.
var (
	_ Value = (*Variable)(nil)
	_ Value = (*IntValue)(nil)
	_ Value = (*FloatValue)(nil)
	_ Value = (*StringValue)(nil)
	_ Value = (*BooleanValue)(nil)
	_ Value = (*NullValue)(nil)
	_ Value = (*EnumValue)(nil)
	_ Value = (*ListValue)(nil)
	_ Value = (*ObjectValue)(nil)
)

// Variable is `$name`.
type Variable struct {
	Loc  Location
	Name *Name
}

func (v *Variable) Kind() Kind       { return KindVariable }
func (v *Variable) GetLoc() Location { return v.Loc }
func (*Variable) isValue()           {}

// IntValue holds the literal text; conversion is left to the consumer.
type IntValue struct {
	Loc   Location
	Value string
}

func (v *IntValue) Kind() Kind       { return KindIntValue }
func (v *IntValue) GetLoc() Location { return v.Loc }
func (*IntValue) isValue()           {}

// FloatValue holds the literal text; conversion is left to the consumer.
type FloatValue struct {
	Loc   Location
	Value string
}

func (v *FloatValue) Kind() Kind       { return KindFloatValue }
func (v *FloatValue) GetLoc() Location { return v.Loc }
func (*FloatValue) isValue()           {}

// StringValue holds the unescaped string contents.
type StringValue struct {
	Loc   Location
	Value string
}

func (v *StringValue) Kind() Kind       { return KindStringValue }
func (v *StringValue) GetLoc() Location { return v.Loc }
func (*StringValue) isValue()           {}

type BooleanValue struct {
	Loc   Location
	Value bool
}

func (v *BooleanValue) Kind() Kind       { return KindBooleanValue }
func (v *BooleanValue) GetLoc() Location { return v.Loc }
func (*BooleanValue) isValue()           {}

// NullValue is the `null` literal, only produced when the parser is
// configured to accept it.
type NullValue struct {
	Loc Location
}

func (v *NullValue) Kind() Kind       { return KindNullValue }
func (v *NullValue) GetLoc() Location { return v.Loc }
func (*NullValue) isValue()           {}

type EnumValue struct {
	Loc   Location
	Value string
}

func (v *EnumValue) Kind() Kind       { return KindEnumValue }
func (v *EnumValue) GetLoc() Location { return v.Loc }
func (*EnumValue) isValue()           {}

type ListValue struct {
	Loc    Location
	Values []Value
}

func (v *ListValue) Kind() Kind       { return KindListValue }
func (v *ListValue) GetLoc() Location { return v.Loc }
func (*ListValue) isValue()           {}

// ObjectValue is `{ name: value, ... }`. Field names are distinct.
type ObjectValue struct {
	Loc    Location
	Fields []*ObjectField
}

func (v *ObjectValue) Kind() Kind       { return KindObjectValue }
func (v *ObjectValue) GetLoc() Location { return v.Loc }
func (*ObjectValue) isValue()           {}

type ObjectField struct {
	Loc   Location
	Name  *Name
	Value Value
}

func (f *ObjectField) Kind() Kind       { return KindObjectField }
func (f *ObjectField) GetLoc() Location { return f.Loc }
