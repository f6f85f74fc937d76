package cursor

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBadCommand = errors.New("bad command")

// Command is one navigation or edit step issued by the presentation layer.
type Command int

const (
	NoOp Command = iota
	Descend
	Ascend
	Next
	Previous
	Insert
)

var commandNames = map[string]Command{
	"noop":     NoOp,
	".":        NoOp,
	"descend":  Descend,
	"in":       Descend,
	"i":        Descend,
	"ascend":   Ascend,
	"out":      Ascend,
	"o":        Ascend,
	"next":     Next,
	"n":        Next,
	"previous": Previous,
	"prev":     Previous,
	"p":        Previous,
	"insert":   Insert,
	"a":        Insert,
}

func ParseCommand(v string) (Command, error) {
	c, ok := commandNames[strings.ToLower(strings.TrimSpace(v))]
	if ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadCommand, v)
}

// ParseCommands reads a comma or space separated list of commands.
func ParseCommands(v string) ([]Command, error) {
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	res := make([]Command, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCommand(f)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

func (c Command) String() string {
	d, err := c.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (c Command) MarshalText() ([]byte, error) {
	switch c {
	case NoOp:
		return []byte("noop"), nil
	case Descend:
		return []byte("descend"), nil
	case Ascend:
		return []byte("ascend"), nil
	case Next:
		return []byte("next"), nil
	case Previous:
		return []byte("previous"), nil
	case Insert:
		return []byte("insert"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a command>", c)
	}
}

func (c *Command) UnmarshalText(d []byte) error {
	pc, err := ParseCommand(string(d))
	if err != nil {
		return err
	}
	*c = pc
	return nil
}

// AllCommands returns the command set in declaration order.
func AllCommands() []Command {
	return []Command{NoOp, Descend, Ascend, Next, Previous, Insert}
}

// Apply performs one command.
func (s State) Apply(c Command) State {
	switch c {
	case Descend:
		return s.MoveIn()
	case Ascend:
		return s.MoveOut()
	case Next:
		return s.MoveNext()
	case Previous:
		return s.MovePrev()
	case Insert:
		return s.InsertArg()
	default:
		return s
	}
}

// Run applies cmds in order and returns the final state.
func (s State) Run(cmds ...Command) State {
	for _, c := range cmds {
		s = s.Apply(c)
	}
	return s
}
