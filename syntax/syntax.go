package syntax

import (
	"errors"
	"fmt"
)

// Syntax is a surface syntax the tree can be rendered in.
type Syntax int

const (
	RubySyntax Syntax = iota
	EcmaSyntax
)

var ErrBadSyntax = errors.New("bad syntax")

func ParseSyntax(v string) (Syntax, error) {
	s, ok := map[string]Syntax{
		"r":          RubySyntax,
		"rb":         RubySyntax,
		"ruby":       RubySyntax,
		"e":          EcmaSyntax,
		"js":         EcmaSyntax,
		"ecma":       EcmaSyntax,
		"ecmascript": EcmaSyntax,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadSyntax, v)
}

func (s Syntax) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s Syntax) MarshalText() ([]byte, error) {
	switch s {
	case RubySyntax:
		return []byte("ruby"), nil
	case EcmaSyntax:
		return []byte("ecma"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a syntax>", s)
	}
}

func (s *Syntax) UnmarshalText(d []byte) error {
	ps, err := ParseSyntax(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

// Suffix returns the conventional file extension, including the dot.
func (s Syntax) Suffix() string {
	switch s {
	case RubySyntax:
		return ".rb"
	case EcmaSyntax:
		return ".js"
	default:
		return ""
	}
}

// AllSyntaxes returns all supported syntaxes in display order.
func AllSyntaxes() []Syntax {
	return []Syntax{RubySyntax, EcmaSyntax}
}
