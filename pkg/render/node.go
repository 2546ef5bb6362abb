// Package render turns a parsed slide and a theme into a tree of styled
// blocks. Rendering is a pure function: the same slide and theme always
// produce an equal tree.
package render

// Kind identifies a node in the block tree.
type Kind string

// Container kinds.
const (
	KindFrame  Kind = "frame"
	KindPanel  Kind = "panel"
	KindRow    Kind = "row"
	KindColumn Kind = "column"
)

// Leaf kinds.
const (
	KindDisplay    Kind = "display"
	KindSubtitle   Kind = "subtitle"
	KindTitle      Kind = "title"
	KindHeading    Kind = "heading"
	KindSubheading Kind = "subheading"
	KindQuote      Kind = "quote"
	KindListItem   Kind = "list-item"
	KindEmphasis   Kind = "emphasis"
	KindImage      Kind = "image"
	KindSpacer     Kind = "spacer"
	KindParagraph  Kind = "paragraph"
)

// Container reports whether nodes of this kind carry children.
func (k Kind) Container() bool {
	switch k {
	case KindFrame, KindPanel, KindRow, KindColumn:
		return true
	}
	return false
}

// Align is the alignment of a container's content.
type Align string

const (
	AlignTop    Align = "top"
	AlignCenter Align = "center"
)

// Style carries the visual attributes of a node. Empty fields are unset.
type Style struct {
	Font            string `yaml:"font,omitempty" json:"font,omitempty"`
	Color           string `yaml:"color,omitempty" json:"color,omitempty"`
	Background      string `yaml:"background,omitempty" json:"background,omitempty"`
	BackgroundImage string `yaml:"background_image,omitempty" json:"background_image,omitempty"`
	Overlay         string `yaml:"overlay,omitempty" json:"overlay,omitempty"`
	Border          string `yaml:"border,omitempty" json:"border,omitempty"`
}

// Node is one element of the block tree.
type Node struct {
	Kind     Kind   `yaml:"kind" json:"kind"`
	Text     string `yaml:"text,omitempty" json:"text,omitempty"`
	URL      string `yaml:"url,omitempty" json:"url,omitempty"`
	Style    Style  `yaml:"style,omitempty" json:"style,omitempty"`
	Align    Align  `yaml:"align,omitempty" json:"align,omitempty"`
	Centered bool   `yaml:"centered,omitempty" json:"centered,omitempty"`
	Scroll   bool   `yaml:"scroll,omitempty" json:"scroll,omitempty"`
	Children []Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// Walk calls fn for n and every descendant in depth-first order.
func (n Node) Walk(fn func(Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Texts returns the text of every leaf under n, in order.
func (n Node) Texts() []string {
	var out []string
	n.Walk(func(c Node) {
		if c.Text != "" {
			out = append(out, c.Text)
		}
	})
	return out
}
