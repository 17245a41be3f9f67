// Package gomap converts mapping nodes to and from ordinary Go values.
//
// It is the host-binding surface of the converter: callers that want to
// work with plain Go data instead of ir nodes go through FromIR/ToIR, and
// Load/DumpYAML/DumpJSON bridge to YAML and JSON text with key order
// preserved.
package gomap

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/signadot/xmlmap/ir"
)

// FromIR converts node to Go values. Objects become yaml.MapSlice so key
// order survives; arrays become []any; scalars become bool, int64, float64
// or string; null becomes nil.
func FromIR(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			res[i] = yaml.MapItem{
				Key:   node.Fields[i].String,
				Value: FromIR(node.Values[i]),
			}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = FromIR(v)
		}
		return res
	default:
		return scalarFromIR(node)
	}
}

// FromIRMap is FromIR with objects as map[string]any, losing key order.
// Expression environments want plain maps.
func FromIRMap(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i := range node.Fields {
			res[node.Fields[i].String] = FromIRMap(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = FromIRMap(v)
		}
		return res
	default:
		return scalarFromIR(node)
	}
}

func scalarFromIR(node *ir.Node) any {
	switch node.Type {
	case ir.StringType:
		return node.String
	case ir.BoolType:
		return node.Bool
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return nil
	default:
		return nil
	}
}

// ToIR converts Go values back to mapping nodes. yaml.MapSlice keeps its
// order; map[string]any is ordered by sorted keys, which is documented
// rather than stable input order, since Go maps have none.
func ToIR(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x.Clone(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows the mapping's number range", x)
		}
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case yaml.MapSlice:
		res := ir.Object()
		for i := range x {
			key := fmt.Sprint(x[i].Key)
			val, err := ToIR(x[i].Value)
			if err != nil {
				return nil, err
			}
			res.Set(key, val)
		}
		return res, nil
	case map[string]any:
		res := ir.Object()
		for _, key := range slices.Sorted(maps.Keys(x)) {
			val, err := ToIR(x[key])
			if err != nil {
				return nil, err
			}
			res.Set(key, val)
		}
		return res, nil
	case []any:
		vs := make([]*ir.Node, len(x))
		for i := range x {
			val, err := ToIR(x[i])
			if err != nil {
				return nil, err
			}
			vs[i] = val
		}
		return ir.FromSlice(vs), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// Load parses YAML or JSON text into a mapping node, key order preserved.
func Load(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return ToIR(v)
}

// DumpYAML renders node as YAML, key order preserved.
func DumpYAML(node *ir.Node) ([]byte, error) {
	return yaml.Marshal(FromIR(node))
}

// DumpJSON renders node as JSON, key order preserved.
func DumpJSON(node *ir.Node) ([]byte, error) {
	return ir.ToJSON(node)
}
