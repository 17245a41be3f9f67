// Package ir provides the ordered mapping representation for decoded XML
// documents.
//
// A [Node] is a recursive tagged union: scalar types (bool, number, string,
// null) and composite types (object, array). Objects keep their keys in
// insertion order using parallel Fields/Values slices, so a decoded
// document's key order equals the order element and attribute names were
// first encountered, and survives re-encoding.
//
// Nodes are transient values: the package holds no state between calls and
// nodes are not safe for concurrent mutation.
package ir
