// Package libdiff computes structural diffs between mapping nodes.
//
// A diff is itself a mapping: objects are diffed per key, equal-length
// arrays per index, and changed leaves become {"-": old, "+": new} objects.
// Multiline string changes additionally carry a "~" key with a
// patch-formatted summary of the text change.
package libdiff

const (
	// DelKey holds the old value of a changed or removed entry.
	DelKey = "-"
	// AddKey holds the new value of a changed or added entry.
	AddKey = "+"
	// PatchKey holds a textual patch for multiline string changes.
	PatchKey = "~"
)
