package ir

import (
	"errors"
	"testing"
)

func TestGetPath(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{"root", FromKeyVals([]KeyVal{
			{"@id", FromString("r1")},
			{"item", FromSlice([]*Node{
				FromInt(10),
				FromKeyVals([]KeyVal{{"@n", FromInt(2)}}),
			})},
		})},
	})
	tts := []struct {
		path string
		want *Node
		e    error
	}{
		{path: "root.@id", want: FromString("r1")},
		{path: "root.item[0]", want: FromInt(10)},
		{path: "root.item[1].@n", want: FromInt(2)},
		{path: "root.nope", e: ErrPath},
		{path: "root.item[5]", e: ErrPath},
		{path: "root.item[x]", e: ErrPath},
		{path: "root.@id[0]", e: ErrPath},
	}
	for _, tt := range tts {
		got, err := doc.GetPath(tt.path)
		if tt.e != nil {
			if !errors.Is(err, tt.e) {
				t.Errorf("%q: got %v, want %v", tt.path, err, tt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.path, err)
			continue
		}
		if !Equal(got, tt.want) {
			t.Errorf("%q: got %+v", tt.path, got)
		}
	}
}

func TestGetPathEmpty(t *testing.T) {
	doc := FromInt(3)
	got, err := doc.GetPath("")
	if err != nil || got != doc {
		t.Errorf("empty path should return the node itself")
	}
}
