package text

import (
	"github.com/fatih/color"
)

type Colorable struct {
	Attr     ColorAttr
	Selected bool
}

type ColorAttr int

const (
	PlainColor ColorAttr = iota
	KeywordColor
	PunctColor
	LiteralColor
	ConstantColor
	VariableColor
	MessageColor
	CursorColor
	PlaceholderColor
)

func colorAttrs() []ColorAttr {
	return []ColorAttr{
		PlainColor, KeywordColor, PunctColor, LiteralColor,
		ConstantColor, VariableColor, MessageColor, CursorColor,
		PlaceholderColor,
	}
}

type Colors struct {
	Default func(string) string
	Map     map[Colorable]func(string) string
}

// NewColors returns the default palette. Selected variants of every
// attribute are drawn in reverse video. The palette always emits escape
// codes; whether to use it at all is up to the caller.
func NewColors() *Colors {
	base := map[ColorAttr]func() *color.Color{
		PlainColor:       func() *color.Color { return color.New(color.Reset) },
		KeywordColor:     func() *color.Color { return color.New(color.FgMagenta, color.Bold) },
		PunctColor:       func() *color.Color { return color.RGB(196, 128, 128) },
		LiteralColor:     func() *color.Color { return color.RGB(8, 196, 16) },
		ConstantColor:    func() *color.Color { return color.RGB(196, 96, 16) },
		VariableColor:    func() *color.Color { return color.RGB(128, 216, 236) },
		MessageColor:     func() *color.Color { return color.RGB(128, 168, 196) },
		CursorColor:      func() *color.Color { return color.New(color.FgWhite) },
		PlaceholderColor: func() *color.Color { return color.New(color.Faint) },
	}
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string) string{},
	}
	for _, a := range colorAttrs() {
		colors.Map[Colorable{Attr: a}] = sprint(base[a]())
		colors.Map[Colorable{Attr: a, Selected: true}] = sprint(base[a]().Add(color.ReverseVideo))
	}
	return colors
}

func sprint(c *color.Color) func(string) string {
	c.EnableColor()
	f := c.SprintFunc()
	return func(s string) string { return f(s) }
}

func colorDefault(v string) string { return v }

func (c *Colors) Color(a ColorAttr, selected bool, s string) string {
	return c.Get(a, selected)(s)
}

func (c *Colors) Get(a ColorAttr, selected bool) func(string) string {
	f := c.Map[Colorable{Attr: a, Selected: selected}]
	if f == nil {
		return c.Default
	}
	return f
}
