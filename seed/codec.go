// Package seed supplies initial trees: a built-in example, and a codec for
// trees written as YAML or JSON.
//
// A tree is written with one single key map per tagged node, from the tag
// name to the list of its children. Leaves are strings and absent children
// are null:
//
//	Call:
//	- null
//	- foo
//	- ArgList: []
package seed

import (
	"fmt"
	"io"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/debug"

	"github.com/goccy/go-yaml"
)

// Decode reads a tree from YAML or JSON.
func Decode(data []byte) (ast.Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}
	n, err := ast.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}
	if debug.Seed() {
		debug.Logf("seed decoded %d bytes: %s\n", len(data), n)
	}
	return n, nil
}

// Read decodes the tree in r.
func Read(r io.Reader) (ast.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Encode writes n to w as YAML, or as JSON when asJSON is set.
func Encode(w io.Writer, n ast.Node, asJSON bool) error {
	var opts []yaml.EncodeOption
	if asJSON {
		opts = append(opts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(ast.ToAny(n), opts...)
	if err != nil {
		return fmt.Errorf("encoding seed: %w", err)
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	if len(d) > 0 && d[len(d)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
