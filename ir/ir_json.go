package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ToJSON renders y as JSON, preserving object key order. The standard
// library's map marshaling cannot do this, so composites are written by
// hand; strings go through encoding/json for escaping.
func ToJSON(y *Node) ([]byte, error) {
	var b bytes.Buffer
	if err := writeJSON(&b, y); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func writeJSON(b *bytes.Buffer, y *Node) error {
	switch y.Type {
	case NullType:
		b.WriteString("null")
	case BoolType:
		b.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		if y.Int64 != nil {
			b.WriteString(strconv.FormatInt(*y.Int64, 10))
			return nil
		}
		if y.Float64 == nil {
			return fmt.Errorf("%w: number with no value", ErrUnsupportedScalar)
		}
		f := *y.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: %v in json", ErrUnsupportedScalar, f)
		}
		// ".0" suffix on integral floats keeps them floats on reload
		b.WriteString(formatFloat(f))
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		b.Write(d)
	case ArrayType:
		b.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := writeJSON(b, v); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case ObjectType:
		b.WriteByte('{')
		for i := range y.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			d, err := json.Marshal(y.Fields[i].String)
			if err != nil {
				return err
			}
			b.Write(d)
			b.WriteByte(':')
			if err := writeJSON(b, y.Values[i]); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	default:
		return fmt.Errorf("%w: type %s", ErrUnsupportedScalar, y.Type)
	}
	return nil
}
