package xmlmap

import (
	"bytes"
	"io"

	"github.com/signadot/xmlmap/encode"
	"github.com/signadot/xmlmap/ir"
)

// Encode converts a mapping to XML text, the inverse of [Decode].
func Encode(mapping *ir.Node, opts ...encode.EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(mapping, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes the mapping's XML form to w.
func EncodeTo(mapping *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	el, err := FromMapping(mapping)
	if err != nil {
		return err
	}
	return encode.Encode(el, w, opts...)
}
