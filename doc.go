// Package xmlmap converts between XML documents and ordered, typed
// mappings, and back.
//
// # Mapping convention
//
// Decode produces a mapping with exactly one top-level key, the root
// element's name. Within a node:
//
//   - an attribute name="v" becomes the key "@name" with an inferred scalar
//     value; the "@" marker keeps attribute keys and element keys in
//     separate namespaces
//   - text content alongside attributes becomes the "#text" key
//   - a child tag occurring once becomes a single value under its name
//   - a child tag repeating among its siblings becomes an array of the
//     group's values in original sibling order
//   - an element with only text becomes a bare scalar
//   - an element with nothing at all becomes an empty mapping
//
// Scalar values are inferred from text with a fixed precedence: boolean
// literal, integer literal, float literal, string. Inference is reversed on
// encode by formatting scalars to canonical literals.
//
// Encode re-derives element structure from mapping shape alone: an array
// under key k always expands to repeated k elements, and a non-array value
// is always a single element. A length-1 array therefore encodes to one
// element and decodes back to a non-array value; the mapping format has no
// forced single-element list. Relative order between sibling groups of
// different names is kept per group but not interleaved; this is the one
// documented information loss.
//
// Element and attribute names beginning with "@" or "#" collide with the
// marker convention and are rejected, never mangled.
//
// All conversions are pure functions of their input: no state is shared
// between calls, and any number of conversions may run concurrently.
package xmlmap
