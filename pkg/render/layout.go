package render

import (
	"strings"

	"slidedeck/pkg/deck"
	"slidedeck/pkg/theme"
)

const (
	// ContrastText is the cover text colour over a background image.
	ContrastText = "#FFFFFF"
	// CoverOverlay darkens the cover panel over a background image.
	CoverOverlay = "rgba(0, 0, 0, 0.5)"
)

// Render lays out s with t. Unknown layouts render as deck.LayoutDefault and
// absent metadata simply omits its element; Render never fails.
func Render(s deck.Slide, t theme.Theme) Node {
	switch s.Layout.Normalize() {
	case deck.LayoutCover:
		return cover(s, t)
	case deck.LayoutQuote:
		return centered(s, t, false)
	case deck.LayoutTwoCols:
		return twoCols(s, t)
	case deck.LayoutImageRight:
		return withImage(s, t, false)
	case deck.LayoutImageLeft:
		return withImage(s, t, true)
	case deck.LayoutCenter, deck.LayoutEnd:
		return centered(s, t, true)
	case deck.LayoutDefault:
		return plain(s, t)
	}
	// Normalize only returns known layouts.
	return plain(s, t)
}

func frame(t theme.Theme, align Align, children ...Node) Node {
	return Node{
		Kind:     KindFrame,
		Align:    align,
		Style:    Style{Background: t.Colors.Background},
		Children: children,
	}
}

func column(children []Node) Node {
	return Node{Kind: KindColumn, Children: children}
}

func plain(s deck.Slide, t theme.Theme) Node {
	n := frame(t, AlignTop, Lines(s.Content, t, t.Colors.Text)...)
	n.Scroll = true
	return n
}

func centered(s deck.Slide, t theme.Theme, centerText bool) Node {
	col := column(Lines(s.Content, t, t.Colors.Text))
	col.Centered = centerText
	return frame(t, AlignCenter, col)
}

func cover(s deck.Slide, t theme.Theme) Node {
	bg := s.Metadata.Background
	text, sub := t.Colors.Text, t.Colors.Muted
	if bg != "" {
		text, sub = ContrastText, ContrastText
	}

	var children []Node
	if s.Metadata.Title != "" {
		children = append(children, Node{
			Kind:  KindDisplay,
			Text:  s.Metadata.Title,
			Style: Style{Font: t.Fonts.Heading, Color: text},
		})
	}
	if s.Metadata.Subtitle != "" {
		children = append(children, Node{
			Kind:  KindSubtitle,
			Text:  s.Metadata.Subtitle,
			Style: Style{Font: t.Fonts.Heading, Color: sub},
		})
	}
	children = append(children, Lines(s.Content, t, text)...)

	panel := Node{Kind: KindPanel, Centered: true, Children: children}
	n := frame(t, AlignCenter, panel)
	if bg != "" {
		n.Style = Style{BackgroundImage: bg}
		n.Children[0].Style.Overlay = CoverOverlay
	}
	return n
}

func twoCols(s deck.Slide, t theme.Theme) Node {
	left, right, _ := strings.Cut(s.Content, deck.SplitMarker)
	return frame(t, AlignTop, Node{
		Kind: KindRow,
		Children: []Node{
			column(Lines(left, t, t.Colors.Text)),
			column(Lines(right, t, t.Colors.Text)),
		},
	})
}

func withImage(s deck.Slide, t theme.Theme, imageFirst bool) Node {
	body := column(Lines(s.Content, t, t.Colors.Text))
	body.Align = AlignCenter

	media := Node{Kind: KindColumn, Align: AlignCenter}
	if s.Metadata.Image != "" {
		media.Children = []Node{{Kind: KindImage, URL: s.Metadata.Image}}
	}

	cols := []Node{body, media}
	if imageFirst {
		cols = []Node{media, body}
	}
	return frame(t, AlignTop, Node{Kind: KindRow, Children: cols})
}
