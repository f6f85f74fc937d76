package render

import (
	"fmt"
	"slices"

	"github.com/JoshCheek/ast-editing/ast"
)

type Kind int

const (
	// NodeKind is the rendering of one ast node.
	NodeKind Kind = iota
	// GroupKind is a styled run of fragments that is not a node.
	GroupKind
	// BlockKind starts and ends on its own line.
	BlockKind
	KeywordKind
	// PunctKind is syntax the dialect writes, such as "(" or " = ".
	PunctKind
	// TextKind is leaf text from the tree.
	TextKind
	// CursorKind is the zero width placeholder of an empty selection.
	CursorKind
)

func (k Kind) String() string {
	d, err := k.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case NodeKind:
		return []byte("node"), nil
	case GroupKind:
		return []byte("group"), nil
	case BlockKind:
		return []byte("block"), nil
	case KeywordKind:
		return []byte("keyword"), nil
	case PunctKind:
		return []byte("punct"), nil
	case TextKind:
		return []byte("text"), nil
	case CursorKind:
		return []byte("cursor"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a fragment kind>", k)
	}
}

func (k *Kind) UnmarshalText(d []byte) error {
	for _, c := range []Kind{NodeKind, GroupKind, BlockKind, KeywordKind, PunctKind, TextKind, CursorKind} {
		if c.String() == string(d) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown fragment kind %q", d)
}

// Fragment is a display tree produced by a Renderer. Fragments are not
// modified once returned.
type Fragment struct {
	Kind Kind `json:"kind"`
	// Tag is set on node fragments.
	Tag     ast.Tag  `json:"tag,omitempty"`
	Classes []string `json:"classes,omitempty"`
	// Key is the position of the fragment among its siblings in the
	// dialect's layout.
	Key      int         `json:"key"`
	Text     string      `json:"text,omitempty"`
	Children []*Fragment `json:"children,omitempty"`
}

// HasClass reports whether c is among f's classes.
func (f *Fragment) HasClass(c string) bool {
	return f != nil && slices.Contains(f.Classes, c)
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b *Fragment) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Key != b.Key || a.Text != b.Text {
		return false
	}
	if !slices.Equal(a.Classes, b.Classes) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// NodeClasses returns the classes of a node fragment for tag: the
// inherited classes followed by "Ast" and the tag name.
func NodeClasses(tag ast.Tag, inherited []string) []string {
	res := make([]string, 0, len(inherited)+2)
	res = append(res, inherited...)
	return append(res, "Ast", tag.String())
}

func Keyword(s string) *Fragment { return &Fragment{Kind: KeywordKind, Text: s} }
func Punct(s string) *Fragment   { return &Fragment{Kind: PunctKind, Text: s} }
func Cursor() *Fragment          { return &Fragment{Kind: CursorKind} }

// Texts returns the concatenated text of f's fragments in order, without
// layout. Cursors contribute nothing.
func Texts(f *Fragment) string {
	if f == nil {
		return ""
	}
	if len(f.Children) == 0 {
		return f.Text
	}
	var res []byte
	for _, c := range f.Children {
		res = append(res, Texts(c)...)
	}
	return string(res)
}
