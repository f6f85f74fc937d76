package ipath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Path
	}{
		{"root", "$", Path{}},
		{"empty", "", Path{}},
		{"one", "$[1]", Path{1}},
		{"nested", "$[1][0][2]", Path{1, 0, 2}},
		{"no dollar", "[3][4]", Path{3, 4}},
		{"negative", "$[-1]", Path{-1}},
		{"spaces", " $[ 2 ] ", Path{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"$1", "$[1", "$[a]", "$[1]x", "$.a"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if !errors.Is(err, ErrBadPath) {
				t.Errorf("Parse(%q) err = %v, want ErrBadPath", in, err)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, p := range []Path{{}, {0}, {1, 2, 3}, {10, 0}} {
		s := p.String()
		got, err := Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(p) {
			t.Errorf("Parse(%q) = %v, want %v", s, got, p)
		}
	}
	if got := (Path{}).String(); got != "$" {
		t.Errorf("root String() = %q", got)
	}
}

func TestDerivedPathsDoNotAlias(t *testing.T) {
	base := make(Path, 2, 8)
	base[0], base[1] = 1, 2

	a := base.Append(3)
	b := base.Append(4)
	if a[2] != 3 || b[2] != 4 {
		t.Errorf("Append aliased: a=%v b=%v", a, b)
	}

	w := base.WithLast(9)
	if base[1] != 2 || w[1] != 9 {
		t.Errorf("WithLast modified receiver: base=%v w=%v", base, w)
	}

	par := base.Parent()
	par = append(par, 7)
	if base[1] != 2 {
		t.Errorf("Parent aliased receiver: base=%v", base)
	}
}

func TestLastAndParent(t *testing.T) {
	if _, ok := Root().Last(); ok {
		t.Error("root has a last step")
	}
	if !Root().Parent().IsRoot() {
		t.Error("parent of root is not root")
	}
	i, ok := Path{4, 5}.Last()
	if !ok || i != 5 {
		t.Errorf("Last() = %d, %v", i, ok)
	}
	if Compare(Path{0, 1}, Path{1}) >= 0 || Compare(Path{1}, Path{1, 0}) >= 0 {
		t.Error("Compare is not pre-order")
	}
}
