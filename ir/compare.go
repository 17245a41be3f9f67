package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Object comparison is order-sensitive: two objects with the same entries
// in different key order are not equal.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareValues(a, b)
	case ObjectType:
		return compareObjects(a, b)
	case NullType:
		return 0
	}
	return 0
}

// Equal reports whether a and b are structurally identical, key order
// included.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	// Sub-rank: Int64 < Float64
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}
	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return 0
}

func numberSubRank(n *Node) int {
	if n.Int64 != nil {
		return 0
	}
	if n.Float64 != nil {
		return 1
	}
	return 2
}

func compareValues(a, b *Node) int {
	if d := cmp.Compare(len(a.Values), len(b.Values)); d != 0 {
		return d
	}
	for i := range a.Values {
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}

func compareObjects(a, b *Node) int {
	if d := cmp.Compare(len(a.Fields), len(b.Fields)); d != 0 {
		return d
	}
	for i := range a.Fields {
		if d := strings.Compare(a.Fields[i].String, b.Fields[i].String); d != 0 {
			return d
		}
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}
