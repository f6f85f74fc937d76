package text

type PrintOption func(*printer)

// Indent sets the number of spaces per body level. The default is 2.
func Indent(n int) PrintOption {
	return func(p *printer) { p.indent = n }
}

// WithColors draws fragments with c. Without it output is plain.
func WithColors(c *Colors) PrintOption {
	return func(p *printer) { p.color = c.Color }
}

// SelectionMarks surrounds the selected fragment with open and close.
func SelectionMarks(open, close string) PrintOption {
	return func(p *printer) { p.open, p.close = open, close }
}

// CursorGlyph sets what an empty selection prints as. The default is "_".
func CursorGlyph(g string) PrintOption {
	return func(p *printer) { p.glyph = g }
}

// EmptyGlyph sets what an unselected empty leaf prints as, so that empty
// arguments stay visible. By default it prints nothing.
func EmptyGlyph(g string) PrintOption {
	return func(p *printer) { p.placeholder = g }
}
