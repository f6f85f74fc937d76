package render

import (
	"github.com/JoshCheek/ast-editing/ast"
)

// Builder assembles the fragment of one node. Rendering errors from
// children are kept, the first one wins, and later calls become no-ops;
// Fragment reports it.
type Builder struct {
	r   *Renderer
	f   *Fragment
	err error
}

// Build starts the node fragment for a node with the given tag.
func (r *Renderer) Build(tag ast.Tag, classes []string, key int) *Builder {
	return &Builder{
		r: r,
		f: &Fragment{Kind: NodeKind, Tag: tag, Classes: NodeClasses(tag, classes), Key: key},
	}
}

func (b *Builder) sub(f *Fragment) *Builder {
	return &Builder{r: b.r, f: f}
}

func (b *Builder) add(f *Fragment) {
	if f != nil {
		b.f.Children = append(b.f.Children, f)
	}
}

// Node renders child n at position key with the given classes and adds
// its fragment. Absent children add nothing.
func (b *Builder) Node(n ast.Node, key int, classes ...string) *Builder {
	if b.err != nil {
		return b
	}
	f, err := b.r.Node(n, classes, key)
	if err != nil {
		b.err = err
		return b
	}
	b.add(f)
	return b
}

// Each renders every child of the list n, calling sep between them.
func (b *Builder) Each(n ast.Node, sep func(*Builder), classes ...string) *Builder {
	for i := range n.Len() {
		if i > 0 && sep != nil {
			sep(b)
		}
		b.Node(n.Child(i), i, classes...)
	}
	return b
}

func (b *Builder) Keyword(s string) *Builder {
	b.add(Keyword(s))
	return b
}

func (b *Builder) Punct(s string) *Builder {
	b.add(Punct(s))
	return b
}

// Space adds a single space.
func (b *Builder) Space() *Builder { return b.Punct(" ") }

// Block adds a block fragment, filled by fn.
func (b *Builder) Block(fn func(*Builder)) *Builder {
	return b.nest(&Fragment{Kind: BlockKind, Classes: []string{"displayBlock"}}, fn)
}

// Group adds a group fragment with the given classes, filled by fn.
func (b *Builder) Group(classes []string, fn func(*Builder)) *Builder {
	return b.nest(&Fragment{Kind: GroupKind, Classes: classes}, fn)
}

func (b *Builder) nest(f *Fragment, fn func(*Builder)) *Builder {
	if b.err != nil {
		return b
	}
	s := b.sub(f)
	fn(s)
	if s.err != nil {
		b.err = s.err
		return b
	}
	b.add(s.f)
	return b
}

func (b *Builder) Fragment() (*Fragment, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.f, nil
}
