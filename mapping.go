package xmlmap

import (
	"fmt"
	"strings"

	"github.com/signadot/xmlmap/ir"
	"github.com/signadot/xmlmap/xmltree"
)

const (
	// AttrPrefix marks attribute-derived keys in a mapping.
	AttrPrefix = "@"
	// TextKey holds text content when a node also carries attributes.
	TextKey = "#text"
)

// ToMapping converts an element tree to its ordered mapping: one top-level
// key, the root's name, holding the recursively converted root value.
func ToMapping(root *xmltree.Element) (*ir.Node, error) {
	v, err := nodeToValue(root)
	if err != nil {
		return nil, err
	}
	res := ir.Object()
	res.Set(root.Name, v)
	return res, nil
}

// nodeToValue is the core decode decision: scalar for text-only nodes,
// empty object for empty nodes, and otherwise an object combining
// attribute keys, the text key and child groups.
func nodeToValue(el *xmltree.Element) (*ir.Node, error) {
	if err := checkName(el.Name, "element"); err != nil {
		return nil, err
	}
	if len(el.Attrs) == 0 && len(el.Children) == 0 {
		if el.Text != "" {
			return ir.Infer(el.Text), nil
		}
		return ir.Object(), nil
	}
	obj := ir.Object()
	for i := range el.Attrs {
		a := &el.Attrs[i]
		if err := checkName(a.Name, "attribute"); err != nil {
			return nil, err
		}
		obj.Set(AttrPrefix+a.Name, ir.Infer(a.Value))
	}
	if el.Text != "" {
		obj.Set(TextKey, ir.Infer(el.Text))
	}
	for _, c := range el.Children {
		cv, err := nodeToValue(c)
		if err != nil {
			return nil, err
		}
		prev := ir.Get(obj, c.Name)
		switch {
		case prev == nil:
			obj.Set(c.Name, cv)
		case prev.Type == ir.ArrayType:
			// third or later sibling of the group
			prev.Values = append(prev.Values, cv)
		default:
			obj.Set(c.Name, ir.FromSlice([]*ir.Node{prev, cv}))
		}
	}
	return obj, nil
}

// FromMapping converts a mapping back to an element tree, the exact inverse
// of [ToMapping] for every mapping it produces.
func FromMapping(mapping *ir.Node) (*xmltree.Element, error) {
	if mapping == nil || mapping.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrAmbiguousStructure)
	}
	if len(mapping.Fields) != 1 {
		return nil, fmt.Errorf("%w: cannot determine root tag from %d top-level keys",
			ErrAmbiguousStructure, len(mapping.Fields))
	}
	name := mapping.Fields[0].String
	val := mapping.Values[0]
	if val.Type == ir.ArrayType {
		return nil, fmt.Errorf("%w: root %q cannot be a sequence", ErrAmbiguousStructure, name)
	}
	return valueToNode(name, val)
}

// valueToNode inverts nodeToValue: an object expands "@" keys to attributes
// and the rest to children, arrays under a key expand to repeated sibling
// elements, scalars become text content, empty objects become empty
// elements.
func valueToNode(name string, v *ir.Node) (*xmltree.Element, error) {
	if err := checkName(name, "element"); err != nil {
		return nil, err
	}
	el := xmltree.New(name)
	switch v.Type {
	case ir.ObjectType:
		for i := range v.Fields {
			key := v.Fields[i].String
			val := v.Values[i]
			switch {
			case key == TextKey:
				if !val.Type.IsLeaf() {
					return nil, fmt.Errorf("%w: %s key holds a %s",
						ErrAmbiguousStructure, TextKey, val.Type)
				}
				text, err := val.CanonicalText()
				if err != nil {
					return nil, err
				}
				el.Text = text
			case strings.HasPrefix(key, AttrPrefix):
				aName := key[len(AttrPrefix):]
				if err := checkName(aName, "attribute"); err != nil {
					return nil, err
				}
				if !val.Type.IsLeaf() {
					return nil, fmt.Errorf("%w: attribute key %q holds a %s",
						ErrAmbiguousStructure, key, val.Type)
				}
				text, err := val.CanonicalText()
				if err != nil {
					return nil, err
				}
				el.SetAttr(aName, text)
			case strings.HasPrefix(key, "#"):
				return nil, fmt.Errorf("%w: key %q", ErrReservedName, key)
			case val.Type == ir.ArrayType:
				for _, item := range val.Values {
					if item.Type == ir.ArrayType {
						return nil, fmt.Errorf("%w: sequence nested in sequence under %q",
							ErrAmbiguousStructure, key)
					}
					child, err := valueToNode(key, item)
					if err != nil {
						return nil, err
					}
					el.Append(child)
				}
			default:
				child, err := valueToNode(key, val)
				if err != nil {
					return nil, err
				}
				el.Append(child)
			}
		}
		if el.Text != "" && len(el.Children) > 0 {
			return nil, fmt.Errorf("%w: %q mixes %s with child elements",
				ErrAmbiguousStructure, name, TextKey)
		}
		return el, nil
	case ir.NullType:
		// nulls arrive only via patches and queries; lowered like an
		// empty mapping
		return el, nil
	default:
		text, err := v.CanonicalText()
		if err != nil {
			return nil, err
		}
		el.Text = text
		return el, nil
	}
}

func checkName(name, kind string) error {
	if name == "" {
		return fmt.Errorf("%w: empty %s name", ErrAmbiguousStructure, kind)
	}
	if name[0] == '@' || name[0] == '#' {
		return fmt.Errorf("%w: %s name %q starts with a key marker", ErrReservedName, kind, name)
	}
	return nil
}
