package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Cursor bool
	Render bool
	Query  bool
	Seed   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Cursor = boolEnv("ASTEDIT_DEBUG_CURSOR")
	d.Render = boolEnv("ASTEDIT_DEBUG_RENDER")
	d.Query = boolEnv("ASTEDIT_DEBUG_QUERY")
	d.Seed = boolEnv("ASTEDIT_DEBUG_SEED")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Cursor() bool {
	return d.Cursor
}
func Render() bool {
	return d.Render
}
func Query() bool {
	return d.Query
}
func Seed() bool {
	return d.Seed
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(d)
}
