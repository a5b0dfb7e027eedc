package chat

import (
	"strings"

	"github.com/sandertv/gophertunnel/minecraft/text"
)

// Colour is a named text colour. Its value is the tag understood by
// text.Colourf.
type Colour string

// Colours available on Bedrock clients.
const (
	NoColour   Colour = ""
	Black      Colour = "black"
	DarkBlue   Colour = "dark-blue"
	DarkGreen  Colour = "dark-green"
	DarkAqua   Colour = "dark-aqua"
	DarkRed    Colour = "dark-red"
	DarkPurple Colour = "dark-purple"
	Gold       Colour = "gold"
	Grey       Colour = "grey"
	DarkGrey   Colour = "dark-grey"
	Blue       Colour = "blue"
	Green      Colour = "green"
	Aqua       Colour = "aqua"
	Red        Colour = "red"
	Purple     Colour = "purple"
	Yellow     Colour = "yellow"
	White      Colour = "white"
)

// Component is a piece of formatted text with optional children. Children
// inherit the formatting of their parent and may add to it.
type Component struct {
	Text       string
	Colour     Colour
	Bold       bool
	Italic     bool
	Obfuscated bool
	Extra      []*Component
}

// Option formats a component.
type Option func(*Component)

// WithColour sets the colour of a component.
func WithColour(c Colour) Option {
	return func(comp *Component) {
		comp.Colour = c
	}
}

// Bold makes a component bold.
func Bold() Option {
	return func(c *Component) {
		c.Bold = true
	}
}

// Italic makes a component italic.
func Italic() Option {
	return func(c *Component) {
		c.Italic = true
	}
}

// Obfuscated makes a component obfuscated.
func Obfuscated() Option {
	return func(c *Component) {
		c.Obfuscated = true
	}
}

// Text creates a component holding s.
func Text(s string, opts ...Option) *Component {
	c := &Component{Text: s}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Append adds children to c and returns c.
func (c *Component) Append(children ...*Component) *Component {
	c.Extra = append(c.Extra, children...)
	return c
}

// Clone returns a deep copy of the component tree.
func (c *Component) Clone() *Component {
	if c == nil {
		return nil
	}
	clone := *c
	if c.Extra != nil {
		clone.Extra = make([]*Component, len(c.Extra))
		for i, child := range c.Extra {
			clone.Extra[i] = child.Clone()
		}
	}
	return &clone
}

// String renders the component tree to a Minecraft formatted string.
func (c *Component) String() string {
	if c == nil {
		return ""
	}
	var (
		format strings.Builder
		args   []any
	)
	c.render(&format, &args)
	return text.Colourf(format.String(), args...)
}

// Plain returns the text of the component tree without formatting.
func (c *Component) Plain() string {
	return text.Clean(c.String())
}

// render writes c as a tagged format string. Text goes into args so that
// text.Colourf escapes it.
func (c *Component) render(format *strings.Builder, args *[]any) {
	tags := c.tags()
	for _, tag := range tags {
		format.WriteString("<" + tag + ">")
	}
	if c.Text != "" {
		format.WriteString("%s")
		*args = append(*args, c.Text)
	}
	for _, child := range c.Extra {
		if child != nil {
			child.render(format, args)
		}
	}
	for i := len(tags) - 1; i >= 0; i-- {
		format.WriteString("</" + tags[i] + ">")
	}
}

func (c *Component) tags() []string {
	var tags []string
	if c.Colour != NoColour {
		tags = append(tags, string(c.Colour))
	}
	if c.Bold {
		tags = append(tags, "b")
	}
	if c.Italic {
		tags = append(tags, "i")
	}
	if c.Obfuscated {
		tags = append(tags, "obfuscated")
	}
	return tags
}

// Join renders components one after another.
func Join(components ...*Component) string {
	var b strings.Builder
	for _, c := range components {
		b.WriteString(c.String())
	}
	return b.String()
}
