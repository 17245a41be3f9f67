package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// GetPath resolves a dotted path inside y. Segments are object keys
// (attribute keys keep their "@" marker), optionally followed by one or
// more [i] array indexes:
//
//	root.item[1].@id
//
// Keys containing a literal "." or "[" cannot be addressed this way.
func (y *Node) GetPath(path string) (*Node, error) {
	cur := y
	if path == "" {
		return cur, nil
	}
	for _, seg := range strings.Split(path, ".") {
		key := seg
		var idxs []int
		for {
			open := strings.IndexByte(key, '[')
			if open < 0 {
				break
			}
			close := strings.IndexByte(key[open:], ']')
			if close < 0 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, seg)
			}
			i, err := strconv.Atoi(key[open+1 : open+close])
			if err != nil {
				return nil, fmt.Errorf("%w: bad index in %q", ErrPath, seg)
			}
			idxs = append(idxs, i)
			key = key[:open] + key[open+close+1:]
		}
		if key != "" {
			if cur.Type != ObjectType {
				return nil, fmt.Errorf("%w: %q indexes a %s", ErrPath, key, cur.Type)
			}
			next := Get(cur, key)
			if next == nil {
				return nil, fmt.Errorf("%w: no key %q", ErrPath, key)
			}
			cur = next
		}
		for _, i := range idxs {
			if cur.Type != ArrayType {
				return nil, fmt.Errorf("%w: [%d] indexes a %s", ErrPath, i, cur.Type)
			}
			if i < 0 || i >= len(cur.Values) {
				return nil, fmt.Errorf("%w: index %d out of range", ErrPath, i)
			}
			cur = cur.Values[i]
		}
	}
	return cur, nil
}
