package printer

import "github.com/gnoswap-labs/gqlfront/language/ast"

// Tree converts node into nested maps and slices suitable for YAML or
// JSON encoding. Every map carries the node's "kind" and, unless the tree
// was parsed without locations, a "loc" with its start and end offsets.
// Absent optional children are left out.
func Tree(node ast.Node) map[string]any {
	if node == nil {
		return nil
	}

	m := map[string]any{"kind": node.Kind().String()}
	if loc := node.GetLoc(); loc != (ast.Location{}) {
		m["loc"] = map[string]int{"start": loc.Start, "end": loc.End}
	}

	set := func(key string, child ast.Node) {
		if child != nil {
			m[key] = Tree(child)
		}
	}

	switch n := node.(type) {
	case *ast.Document:
		m["definitions"] = trees(n.Definitions)
	case *ast.OperationDefinition:
		m["operation"] = n.Operation
		if n.Name != nil {
			set("name", n.Name)
		}
		if len(n.VariableDefinitions) > 0 {
			m["variableDefinitions"] = trees(n.VariableDefinitions)
		}
		if len(n.Directives) > 0 {
			m["directives"] = trees(n.Directives)
		}
		set("selectionSet", n.SelectionSet)
	case *ast.FragmentDefinition:
		set("name", n.Name)
		set("typeCondition", n.TypeCondition)
		if len(n.Directives) > 0 {
			m["directives"] = trees(n.Directives)
		}
		set("selectionSet", n.SelectionSet)
	case *ast.VariableDefinition:
		set("variable", n.Variable)
		set("type", n.Type)
		if n.DefaultValue != nil {
			set("defaultValue", n.DefaultValue)
		}
	case *ast.SelectionSet:
		m["selections"] = trees(n.Selections)
	case *ast.Field:
		if n.Alias != nil {
			set("alias", n.Alias)
		}
		set("name", n.Name)
		if len(n.Arguments) > 0 {
			m["arguments"] = trees(n.Arguments)
		}
		if len(n.Directives) > 0 {
			m["directives"] = trees(n.Directives)
		}
		if n.SelectionSet != nil {
			set("selectionSet", n.SelectionSet)
		}
	case *ast.FragmentSpread:
		set("name", n.Name)
		if len(n.Directives) > 0 {
			m["directives"] = trees(n.Directives)
		}
	case *ast.InlineFragment:
		set("typeCondition", n.TypeCondition)
		if len(n.Directives) > 0 {
			m["directives"] = trees(n.Directives)
		}
		set("selectionSet", n.SelectionSet)
	case *ast.Argument:
		set("name", n.Name)
		set("value", n.Value)
	case *ast.Directive:
		set("name", n.Name)
		if len(n.Arguments) > 0 {
			m["arguments"] = trees(n.Arguments)
		}
	case *ast.Name:
		m["value"] = n.Value
	case *ast.NamedType:
		set("name", n.Name)
	case *ast.ListType:
		set("type", n.Type)
	case *ast.NonNullType:
		set("type", n.Type)
	case *ast.Variable:
		set("name", n.Name)
	case *ast.IntValue:
		m["value"] = n.Value
	case *ast.FloatValue:
		m["value"] = n.Value
	case *ast.StringValue:
		m["value"] = n.Value
	case *ast.BooleanValue:
		m["value"] = n.Value
	case *ast.EnumValue:
		m["value"] = n.Value
	case *ast.ListValue:
		m["values"] = trees(n.Values)
	case *ast.ObjectValue:
		m["fields"] = trees(n.Fields)
	case *ast.ObjectField:
		set("name", n.Name)
		set("value", n.Value)
	}
	return m
}

func trees[T ast.Node](nodes []T) []map[string]any {
	out := make([]map[string]any, len(nodes))
	for i, n := range nodes {
		out[i] = Tree(n)
	}
	return out
}
