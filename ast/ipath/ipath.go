// Package ipath provides index paths, which address a node in an ast tree
// by the sequence of child positions leading to it from the root.
//
// The text form is "$" for the root followed by one "[i]" per step:
//
//	$          the root
//	$[1]       second child of the root
//	$[1][0][2] third child of the first child of the second child
//
// A path never refers to a node by identity; it is only meaningful relative
// to a particular root.
package ipath

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var ErrBadPath = errors.New("bad path")

// Path is an ordered sequence of child indices. The empty path denotes the
// root. Methods never modify the receiver's backing array.
type Path []int

// Root returns the empty path.
func Root() Path { return Path{} }

func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, i := range p {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(']')
	}
	return b.String()
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Path) UnmarshalText(d []byte) error {
	pp, err := Parse(string(d))
	if err != nil {
		return err
	}
	*p = pp
	return nil
}

// Parse reads a path in text form. The leading "$" may be omitted, and
// indices may be negative; clamping resolves them against a tree.
func Parse(v string) (Path, error) {
	s := strings.TrimSpace(v)
	s = strings.TrimPrefix(s, "$")
	res := Path{}
	for len(s) > 0 {
		if s[0] != '[' {
			return nil, fmt.Errorf("%w: expected '[' at %q in %q", ErrBadPath, s, v)
		}
		end := strings.IndexByte(s, ']')
		if end == -1 {
			return nil, fmt.Errorf("%w: unterminated index in %q", ErrBadPath, v)
		}
		i, err := strconv.Atoi(strings.TrimSpace(s[1:end]))
		if err != nil {
			return nil, fmt.Errorf("%w: index %q in %q", ErrBadPath, s[1:end], v)
		}
		res = append(res, i)
		s = s[end+1:]
	}
	return res, nil
}

func MustParse(v string) Path {
	p, err := Parse(v)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) IsRoot() bool { return len(p) == 0 }

// Append returns a new path with i added as the last step.
func (p Path) Append(i ...int) Path {
	res := make(Path, len(p), len(p)+len(i))
	copy(res, p)
	return append(res, i...)
}

// Parent returns the path with the last step removed. The parent of the
// root is the root.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Root()
	}
	return slices.Clone(p[:len(p)-1])
}

// Last returns the last step; ok is false at the root.
func (p Path) Last() (i int, ok bool) {
	if len(p) == 0 {
		return 0, false
	}
	return p[len(p)-1], true
}

// WithLast returns a copy of p with its last step replaced by i. At the
// root it returns the root.
func (p Path) WithLast(i int) Path {
	if len(p) == 0 {
		return Root()
	}
	res := slices.Clone(p)
	res[len(res)-1] = i
	return res
}

func (p Path) Equal(o Path) bool {
	return slices.Equal(p, o)
}

// Compare orders paths in document (pre-order) order.
func Compare(a, b Path) int {
	return slices.Compare(a, b)
}
