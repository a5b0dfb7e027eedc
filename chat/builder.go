package chat

// Builder creates a flat list of components. Every appended part keeps the
// formatting of the part before it until Reset is called.
type Builder struct {
	parts   []*Component
	current *Component
}

// NewBuilder creates a builder whose first part holds content.
func NewBuilder(content string) *Builder {
	b := &Builder{}
	b.current = &Component{Text: content}
	b.parts = append(b.parts, b.current)
	return b
}

// Append starts a new part holding content.
func (b *Builder) Append(content string) *Builder {
	next := &Component{
		Text:       content,
		Colour:     b.current.Colour,
		Bold:       b.current.Bold,
		Italic:     b.current.Italic,
		Obfuscated: b.current.Obfuscated,
	}
	b.parts = append(b.parts, next)
	b.current = next
	return b
}

// AppendComponent adds c as a new part. The next part appended after it
// starts from the formatting of c.
func (b *Builder) AppendComponent(c *Component) *Builder {
	if c == nil {
		return b
	}
	b.parts = append(b.parts, c)
	b.current = c
	return b
}

// Colour sets the colour of the current part.
func (b *Builder) Colour(c Colour) *Builder {
	b.current.Colour = c
	return b
}

// Bold sets whether the current part is bold.
func (b *Builder) Bold(v bool) *Builder {
	b.current.Bold = v
	return b
}

// Italic sets whether the current part is italic.
func (b *Builder) Italic(v bool) *Builder {
	b.current.Italic = v
	return b
}

// Obfuscated sets whether the current part is obfuscated.
func (b *Builder) Obfuscated(v bool) *Builder {
	b.current.Obfuscated = v
	return b
}

// Reset clears the formatting of the current part.
func (b *Builder) Reset() *Builder {
	b.current.Colour = NoColour
	b.current.Bold = false
	b.current.Italic = false
	b.current.Obfuscated = false
	return b
}

// Create returns the parts built so far. Later calls on the builder do not
// change the returned components.
func (b *Builder) Create() []*Component {
	out := make([]*Component, len(b.parts))
	for i, p := range b.parts {
		out[i] = p.Clone()
	}
	return out
}

// Build creates components with a builder started from content.
func Build(content string, fn func(b *Builder)) []*Component {
	b := NewBuilder(content)
	if fn != nil {
		fn(b)
	}
	return b.Create()
}
