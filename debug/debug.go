package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Map    bool
	Diff   bool
	Patch  bool
	Query  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("XMLMAP_DEBUG_TOKENS")
	d.Map = boolEnv("XMLMAP_DEBUG_MAP")
	d.Diff = boolEnv("XMLMAP_DEBUG_DIFF")
	d.Patch = boolEnv("XMLMAP_DEBUG_PATCH")
	d.Query = boolEnv("XMLMAP_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Map() bool {
	return d.Map
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}

