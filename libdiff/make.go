package libdiff

import (
	"strconv"

	"github.com/signadot/xmlmap/ir"
)

// Make returns a node describing how from becomes to, or nil when the two
// are structurally equal.
func Make(from, to *ir.Node) *ir.Node {
	if ir.Equal(from, to) {
		return nil
	}
	switch {
	case from.Type == ir.ObjectType && to.Type == ir.ObjectType:
		return diffObjects(from, to)
	case from.Type == ir.ArrayType && to.Type == ir.ArrayType &&
		len(from.Values) == len(to.Values):
		return diffArrays(from, to)
	case from.Type == ir.StringType && to.Type == ir.StringType:
		return DiffString(from, to)
	default:
		return replace(from, to)
	}
}

func replace(from, to *ir.Node) *ir.Node {
	res := ir.Object()
	if from != nil {
		res.Set(DelKey, from.Clone())
	}
	if to != nil {
		res.Set(AddKey, to.Clone())
	}
	return res
}

// diffObjects walks from's keys in order, then to's additions in order.
func diffObjects(from, to *ir.Node) *ir.Node {
	res := ir.Object()
	for i := range from.Fields {
		key := from.Fields[i].String
		fv := from.Values[i]
		tv := ir.Get(to, key)
		if tv == nil {
			res.Set(key, replace(fv, nil))
			continue
		}
		if d := Make(fv, tv); d != nil {
			res.Set(key, d)
		}
	}
	for i := range to.Fields {
		key := to.Fields[i].String
		if ir.Get(from, key) == nil {
			res.Set(key, replace(nil, to.Values[i]))
		}
	}
	if len(res.Fields) == 0 {
		// same entries, different key order
		return replace(from, to)
	}
	return res
}

func diffArrays(from, to *ir.Node) *ir.Node {
	res := ir.Object()
	for i := range from.Values {
		if d := Make(from.Values[i], to.Values[i]); d != nil {
			res.Set(strconv.Itoa(i), d)
		}
	}
	return res
}
