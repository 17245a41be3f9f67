package ir

// Node is one value in an ordered mapping.
//
// For ObjectType nodes, Fields[i] is the string-typed key for the value at
// Values[i]; there are always as many fields as values and keys are unique.
// For ArrayType nodes only Values is used. Scalar values live in String,
// Bool, Int64 or Float64 depending on Type.
type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Object returns an empty object node.
func Object() *Node {
	return &Node{Type: ObjectType}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

// KeyVal is one entry of an object under construction.
type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object preserving the given key order.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Fields[i] = FromString(kvs[i].Key)
		res.Values[i] = kvs[i].Val
	}
	return res
}

// Get returns the value under field, or nil.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set appends field or replaces its value, keeping first-insertion order.
func (y *Node) Set(field string, v *Node) *Node {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			y.Values[i] = v
			return y
		}
	}
	y.Fields = append(y.Fields, FromString(field))
	y.Values = append(y.Values, v)
	return y
}

// Keys returns the object's keys in insertion order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Fields != nil {
		res.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			res.Fields[i] = f.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks y depth first, calling f before and after each node's values.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
