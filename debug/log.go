package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/JoshCheek/ast-editing/ast"
)

var out io.Writer = os.Stderr

// SetOutput redirects debug logging and returns a function restoring the
// previous destination.
func SetOutput(w io.Writer) func() {
	prev := out
	out = w
	return func() { out = prev }
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ast.Node:
			args[i] = ast.Sprint(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
