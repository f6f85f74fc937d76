// Package text prints fragment trees as indented lines of text.
//
// Block fragments sit on lines of their own, and the contents of any
// fragment with the class "body" are indented one level. Everything else
// runs on in order. Colouring is optional and keyed by the kind of text and
// whether it lies under the selection.
package text

import (
	"bytes"
	"io"
	"strings"

	"github.com/JoshCheek/ast-editing/ast"
	"github.com/JoshCheek/ast-editing/render"
)

type printer struct {
	w   io.Writer
	err error

	indent int
	color  func(ColorAttr, bool, string) string
	open   string
	close  string
	glyph  string

	// placeholder stands in for unselected empty leaves.
	placeholder string

	depth     int
	col       int
	pendingNL bool
	// prefix holds an opening selection mark until the first text under
	// the selection is written, so it lands after any line break.
	prefix string
}

// style is inherited down the fragment tree.
type style struct {
	tag      ast.Tag
	selected bool
}

// Print writes f to w, ending with a newline when anything was written.
func Print(w io.Writer, f *render.Fragment, opts ...PrintOption) error {
	p := &printer{w: w, indent: 2, glyph: "_"}
	for _, opt := range opts {
		opt(p)
	}
	p.fragment(f, style{})
	if p.col > 0 {
		p.write("\n")
	}
	return p.err
}

// String returns the printed form of f.
func String(f *render.Fragment, opts ...PrintOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Print(buf, f, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString is String with surrounding space trimmed. It panics on error.
func MustString(f *render.Fragment, opts ...PrintOption) string {
	s, err := String(f, opts...)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(s)
}

func (p *printer) fragment(f *render.Fragment, st style) {
	if f == nil || p.err != nil {
		return
	}
	body := f.HasClass("body")
	mark := f.HasClass("selected") && !st.selected
	if body {
		p.depth++
	}
	if mark {
		st.selected = true
		p.prefix += p.open
	}
	switch f.Kind {
	case render.NodeKind:
		inner := st
		inner.tag = f.Tag
		p.children(f, inner)
	case render.GroupKind:
		p.children(f, st)
	case render.BlockKind:
		p.lineBreak()
		p.children(f, st)
		p.pendingNL = true
	case render.KeywordKind:
		p.text(f.Text, KeywordColor, st)
	case render.PunctKind:
		p.text(f.Text, PunctColor, st)
	case render.TextKind:
		switch {
		case mark && f.Text == "":
			p.text(p.glyph, CursorColor, st)
		case f.Text == "" && p.placeholder != "":
			p.text(p.placeholder, PlaceholderColor, st)
		default:
			p.text(f.Text, leafColor(st.tag), st)
		}
	case render.CursorKind:
		p.text(p.glyph, CursorColor, st)
	}
	if mark {
		p.closeMark()
	}
	if body {
		p.depth--
	}
}

func (p *printer) children(f *render.Fragment, st style) {
	for _, c := range f.Children {
		p.fragment(c, st)
	}
}

func leafColor(tag ast.Tag) ColorAttr {
	switch tag {
	case ast.StringLiteralTag, ast.SymbolLiteralTag:
		return LiteralColor
	case ast.ConstantTag:
		return ConstantColor
	case ast.InstanceVarRefTag, ast.LocalVarRefTag, ast.ParamListTag:
		return VariableColor
	case ast.CallTag, ast.MethodDefTag:
		return MessageColor
	default:
		return PlainColor
	}
}

func (p *printer) lineBreak() {
	p.pendingNL = false
	if p.col == 0 {
		return
	}
	p.write("\n")
	p.col = 0
}

// closeMark ends the selection on the line it was written on, ahead of any
// pending line break.
func (p *printer) closeMark() {
	nl := p.pendingNL
	p.pendingNL = false
	p.text(p.close, PunctColor, style{})
	p.pendingNL = p.pendingNL || nl
}

func (p *printer) text(s string, a ColorAttr, st style) {
	if s == "" && p.prefix == "" {
		return
	}
	if p.pendingNL {
		p.lineBreak()
	}
	if p.col == 0 && p.depth > 0 {
		ind := strings.Repeat(" ", p.indent*p.depth)
		p.write(ind)
		p.col += len(ind)
	}
	if p.prefix != "" {
		p.write(p.paint(PunctColor, false, p.prefix))
		p.col += len(p.prefix)
		p.prefix = ""
	}
	if s == "" {
		return
	}
	p.write(p.paint(a, st.selected, s))
	p.col += len(s)
}

func (p *printer) paint(a ColorAttr, selected bool, s string) string {
	if p.color == nil {
		return s
	}
	return p.color(a, selected, s)
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}
