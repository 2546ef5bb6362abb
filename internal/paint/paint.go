// Package paint draws a render.Node tree onto a fixed-size terminal screen.
package paint

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"slidedeck/pkg/render"
)

// Backdrop stands in for a background image, which a terminal cannot show.
const Backdrop = "#3A3A3A"

const (
	framePadX = 2
	framePadY = 1
	columnGap = 4
)

// Painter renders block trees at a fixed size.
type Painter struct {
	Width  int
	Height int

	// Offset is the number of lines scrolled past on scrollable frames.
	Offset int
}

// New returns a Painter for a width x height screen.
func New(width, height int) *Painter {
	return &Painter{Width: width, Height: height}
}

type box struct {
	w, h int
	bg   string
}

// Paint returns the screen for n. The result is exactly Height lines when
// Height is positive.
func (p *Painter) Paint(n render.Node) string {
	w, h := max(p.Width, 1), max(p.Height, 1)
	if n.Kind != render.KindFrame {
		return fit(p.node(n, box{w: w, h: h}), w, h, 0)
	}

	bg := n.Style.Background
	if n.Style.BackgroundImage != "" {
		bg = Backdrop
	}
	inner := box{w: max(w-2*framePadX, 1), h: max(h-2*framePadY, 1), bg: bg}

	var body string
	if n.Style.BackgroundImage != "" {
		body = p.stack(append([]render.Node{{
			Kind: render.KindParagraph,
			Text: "▧ " + n.Style.BackgroundImage,
		}}, n.Children...), inner)
	} else {
		body = p.stack(n.Children, inner)
	}

	if n.Align == render.AlignCenter && lipgloss.Height(body) < inner.h {
		body = lipgloss.Place(inner.w, inner.h, lipgloss.Center, lipgloss.Center, body, whitespace(bg)...)
	}
	offset := 0
	if n.Scroll {
		offset = p.Offset
	}
	body = fit(body, inner.w, inner.h, offset)

	st := lipgloss.NewStyle().Padding(framePadY, framePadX)
	if bg != "" {
		st = st.Background(lipgloss.Color(bg))
	}
	return st.Render(body)
}

// Lines returns the number of lines n needs at the painter's width, used by
// hosts to bound Offset.
func (p *Painter) Lines(n render.Node) int {
	inner := box{w: max(p.Width-2*framePadX, 1), h: max(p.Height-2*framePadY, 1)}
	return lipgloss.Height(p.stack(n.Children, inner))
}

// MaxOffset is the largest useful Offset for n: zero unless n is a
// scrollable frame taller than the screen.
func (p *Painter) MaxOffset(n render.Node) int {
	if !n.Scroll {
		return 0
	}
	return max(p.Lines(n)-max(p.Height-2*framePadY, 1), 0)
}

func (p *Painter) stack(nodes []render.Node, b box) string {
	parts := make([]string, 0, len(nodes))
	for _, c := range nodes {
		parts = append(parts, p.node(c, b))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (p *Painter) node(n render.Node, b box) string {
	switch n.Kind {
	case render.KindFrame:
		sub := *p
		sub.Width, sub.Height = b.w, b.h
		return sub.Paint(n)
	case render.KindPanel:
		return p.panel(n, b)
	case render.KindRow:
		return p.row(n, b)
	case render.KindColumn:
		return p.column(n, b)
	case render.KindImage:
		return imageBox(n.URL, b)
	case render.KindSpacer:
		return ""
	}
	return leaf(n, b)
}

func (p *Painter) panel(n render.Node, b box) string {
	bg := b.bg
	if n.Style.Overlay != "" {
		bg = overlay(b.bg, n.Style.Overlay)
	}
	inner := box{w: max(b.w-10, 1), h: b.h, bg: bg}

	body := p.stack(n.Children, inner)
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 4)
	if n.Centered {
		body = lipgloss.NewStyle().Width(inner.w).Align(lipgloss.Center).Render(body)
	}
	if bg != "" {
		st = st.Background(lipgloss.Color(bg)).BorderBackground(lipgloss.Color(bg))
	}
	return st.Render(body)
}

func (p *Painter) row(n render.Node, b box) string {
	if len(n.Children) == 0 {
		return ""
	}
	gaps := columnGap * (len(n.Children) - 1)
	cw := max((b.w-gaps)/len(n.Children), 1)

	cols := make([]string, 0, len(n.Children)*2)
	for i, c := range n.Children {
		if i > 0 {
			cols = append(cols, strings.Repeat(" ", columnGap))
		}
		cell := p.node(c, box{w: cw, h: b.h, bg: b.bg})
		cols = append(cols, lipgloss.NewStyle().Width(cw).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (p *Painter) column(n render.Node, b box) string {
	body := p.stack(n.Children, b)
	if n.Centered {
		body = lipgloss.NewStyle().Width(b.w).Align(lipgloss.Center).Render(body)
	}
	if n.Align == render.AlignCenter && lipgloss.Height(body) < b.h {
		body = lipgloss.PlaceVertical(b.h, lipgloss.Center, body)
	}
	return body
}

func leaf(n render.Node, b box) string {
	st := lipgloss.NewStyle().Width(b.w)
	if n.Style.Color != "" {
		st = st.Foreground(lipgloss.Color(n.Style.Color))
	}
	if b.bg != "" {
		st = st.Background(lipgloss.Color(b.bg))
	}

	text := n.Text
	switch n.Kind {
	case render.KindDisplay:
		st = st.Bold(true).MarginBottom(1)
		text = strings.ToUpper(text)
	case render.KindSubtitle:
		st = st.Italic(true).MarginBottom(1)
	case render.KindTitle:
		st = st.Bold(true).Underline(true).MarginBottom(1)
	case render.KindHeading:
		st = st.Bold(true).MarginBottom(1)
	case render.KindSubheading:
		st = st.Bold(true).Faint(true)
	case render.KindQuote:
		st = st.Italic(true).
			Width(max(b.w-2, 1)).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			PaddingLeft(1)
		if n.Style.Border != "" {
			st = st.BorderForeground(lipgloss.Color(n.Style.Border))
		}
	case render.KindListItem:
		text = "• " + text
		st = st.PaddingLeft(2).Width(b.w)
	case render.KindEmphasis:
		st = st.Bold(true)
	}
	return st.Render(text)
}

func imageBox(url string, b box) string {
	w := min(max(b.w-2, 1), 48)
	label := runewidth.Truncate("🖼  "+url, w, "…")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(w).
		Align(lipgloss.Center).
		Padding(1, 0).
		Render(label)
}

// overlay blends an rgba(r, g, b, a) colour over base.
func overlay(base, rgba string) string {
	var r, g, bl int
	var a float64
	if _, err := fmt.Sscanf(rgba, "rgba(%d, %d, %d, %g)", &r, &g, &bl, &a); err != nil {
		return base
	}
	top := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(bl) / 255}
	under, err := colorful.Hex(base)
	if err != nil {
		return top.Hex()
	}
	return under.BlendRgb(top, a).Clamped().Hex()
}

func whitespace(bg string) []lipgloss.WhitespaceOption {
	if bg == "" {
		return nil
	}
	return []lipgloss.WhitespaceOption{lipgloss.WithWhitespaceBackground(lipgloss.Color(bg))}
}

// fit clips s to h lines starting at offset and pads it to exactly h lines.
func fit(s string, w, h, offset int) string {
	lines := strings.Split(s, "\n")
	if offset > 0 {
		offset = min(offset, max(len(lines)-h, 0))
		lines = lines[offset:]
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	for i, l := range lines {
		if lipgloss.Width(l) < w {
			lines[i] = l + strings.Repeat(" ", w-lipgloss.Width(l))
		}
	}
	return strings.Join(lines, "\n")
}
