package graphql

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// executor walks one validated operation. Resolvers return whole objects as
// map[string]any keyed by schema field name; the executor projects them onto
// the requested selection set, keeping field order and aliases.
type executor struct {
	resolver *Resolver
	present  graphql.ErrorPresenterFunc
	vars     map[string]any
	errs     gqlerror.List
}

// executeRoot resolves every root field. A failing non-null root field nulls
// the whole data object.
func (e *executor) executeRoot(ctx context.Context, root *ast.Definition, set ast.SelectionSet) *object {
	out := &object{}
	for _, g := range e.collect(set, root.Name) {
		f := g.fields[0]
		if f.Name == "__typename" {
			out.set(g.key, root.Name)
			continue
		}

		v, err := e.resolveRoot(ctx, f)
		if err != nil {
			gqlErr := e.present(ctx, err)
			if len(gqlErr.Path) == 0 {
				gqlErr.Path = ast.Path{ast.PathName(g.key)}
			}
			e.errs = append(e.errs, gqlErr)
			if f.Definition != nil && f.Definition.Type.NonNull {
				return nil
			}
			out.set(g.key, nil)
			continue
		}
		out.set(g.key, e.complete(g.fields, v))
	}
	return out
}

func (e *executor) resolveRoot(ctx context.Context, f *ast.Field) (v any, err error) {
	if f.Name == "__schema" || f.Name == "__type" {
		return nil, gqlerror.Errorf("introspection is not supported")
	}
	defer func() {
		// ArgumentMap panics on literals that fail to convert.
		if r := recover(); r != nil {
			err = gqlerror.Errorf("invalid arguments for %s", f.Name)
		}
	}()
	return e.resolver.resolve(ctx, f.Name, f.ArgumentMap(e.vars))
}

func (e *executor) complete(fields []*ast.Field, v any) any {
	switch v := v.(type) {
	case map[string]any:
		return e.project(fields, v)
	case []map[string]any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, e.project(fields, item))
		}
		return out
	default:
		return v
	}
}

func (e *executor) project(fields []*ast.Field, obj map[string]any) *object {
	typeName := ""
	if def := fields[0].Definition; def != nil {
		typeName = def.Type.Name()
	}

	var set ast.SelectionSet
	for _, f := range fields {
		set = append(set, f.SelectionSet...)
	}

	out := &object{}
	for _, g := range e.collect(set, typeName) {
		name := g.fields[0].Name
		if name == "__typename" {
			out.set(g.key, typeName)
			continue
		}
		out.set(g.key, e.complete(g.fields, obj[name]))
	}
	return out
}

type fieldGroup struct {
	key    string
	fields []*ast.Field
}

// collect flattens fragments and merges fields sharing a response key.
func (e *executor) collect(set ast.SelectionSet, typeName string) []fieldGroup {
	var groups []fieldGroup
	index := map[string]int{}

	var walk func(ast.SelectionSet)
	walk = func(set ast.SelectionSet) {
		for _, sel := range set {
			switch sel := sel.(type) {
			case *ast.Field:
				if !e.included(sel.Directives) {
					continue
				}
				key := sel.Alias
				if key == "" {
					key = sel.Name
				}
				if i, ok := index[key]; ok {
					groups[i].fields = append(groups[i].fields, sel)
					continue
				}
				index[key] = len(groups)
				groups = append(groups, fieldGroup{key: key, fields: []*ast.Field{sel}})
			case *ast.InlineFragment:
				if !e.included(sel.Directives) || !matches(sel.TypeCondition, typeName) {
					continue
				}
				walk(sel.SelectionSet)
			case *ast.FragmentSpread:
				if !e.included(sel.Directives) || sel.Definition == nil || !matches(sel.Definition.TypeCondition, typeName) {
					continue
				}
				walk(sel.Definition.SelectionSet)
			}
		}
	}
	walk(set)
	return groups
}

func (e *executor) included(dirs ast.DirectiveList) bool {
	if d := dirs.ForName("skip"); d != nil {
		if skip, _ := d.ArgumentMap(e.vars)["if"].(bool); skip {
			return false
		}
	}
	if d := dirs.ForName("include"); d != nil {
		if include, _ := d.ArgumentMap(e.vars)["if"].(bool); !include {
			return false
		}
	}
	return true
}

func matches(condition, typeName string) bool {
	return condition == "" || condition == typeName
}

// object is a JSON object that keeps insertion order.
type object struct {
	keys   []string
	values []any
}

func (o *object) set(key string, v any) {
	o.keys = append(o.keys, key)
	o.values = append(o.values, v)
}

func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
