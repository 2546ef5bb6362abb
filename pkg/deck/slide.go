// Package deck parses presentation markup into slides.
//
// A document is split on lines holding exactly "---". Each non-empty block
// becomes one Slide. Lines starting with a recognised key (theme:, layout:,
// background:, image:, title:, subtitle:) are frontmatter and never reach
// the slide content, wherever they appear in the block.
package deck

import "slidedeck/pkg/theme"

// Layout is the template tag that arranges a slide.
type Layout string

const (
	LayoutDefault    Layout = "default"
	LayoutCover      Layout = "cover"
	LayoutQuote      Layout = "quote"
	LayoutTwoCols    Layout = "two-cols"
	LayoutImageRight Layout = "image-right"
	LayoutImageLeft  Layout = "image-left"
	LayoutCenter     Layout = "center"
	LayoutEnd        Layout = "end"
)

// Layouts lists every recognised layout tag.
var Layouts = []Layout{
	LayoutDefault,
	LayoutCover,
	LayoutQuote,
	LayoutTwoCols,
	LayoutImageRight,
	LayoutImageLeft,
	LayoutCenter,
	LayoutEnd,
}

// Known reports whether l is one of the recognised tags.
func (l Layout) Known() bool {
	for _, k := range Layouts {
		if l == k {
			return true
		}
	}
	return false
}

// Normalize maps unrecognised tags to LayoutDefault.
func (l Layout) Normalize() Layout {
	if l.Known() {
		return l
	}
	return LayoutDefault
}

// SplitMarker replaces a "::right::" line in slide content. It separates the
// two columns of a two-cols slide and is never rendered. The parser drops NUL
// bytes from its input, so the marker cannot come from the document itself.
const SplitMarker = "\x00split\x00"

// Metadata holds the optional per-slide keys. An empty field means the key
// was absent (or given no value).
type Metadata struct {
	Background string `yaml:"background,omitempty" json:"background,omitempty"`
	Image      string `yaml:"image,omitempty" json:"image,omitempty"`
	Title      string `yaml:"title,omitempty" json:"title,omitempty"`
	Subtitle   string `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
}

// Slide is one rendering unit. Layout keeps the tag exactly as written;
// renderers call Normalize.
type Slide struct {
	Layout   Layout   `yaml:"layout" json:"layout"`
	Content  string   `yaml:"content" json:"content"`
	Metadata Metadata `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// Deck is the result of parsing a document.
type Deck struct {
	Slides []Slide     `yaml:"slides" json:"slides"`
	Theme  theme.Theme `yaml:"theme" json:"theme"`
}

// Len returns the number of slides.
func (d Deck) Len() int {
	return len(d.Slides)
}

// Title returns the first non-empty slide title, or "".
func (d Deck) Title() string {
	for _, s := range d.Slides {
		if s.Metadata.Title != "" {
			return s.Metadata.Title
		}
	}
	return ""
}
