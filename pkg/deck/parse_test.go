package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidedeck/pkg/theme"
)

func contents(d Deck) []string {
	out := make([]string, 0, len(d.Slides))
	for _, s := range d.Slides {
		out = append(out, s.Content)
	}
	return out
}

func TestParseSplitsOnDelimiter(t *testing.T) {
	d := NewParser().Parse("A\n---\nB\n---\nC")
	assert.Equal(t, []string{"A", "B", "C"}, contents(d))
	for _, s := range d.Slides {
		assert.Equal(t, LayoutDefault, s.Layout)
	}
}

func TestParseDropsEmptyBlocks(t *testing.T) {
	d := NewParser().Parse("A\n---\n\n---\nC")
	assert.Equal(t, []string{"A", "C"}, contents(d))

	d = NewParser().Parse("---\nA\n---\n   \n\t\n---\n")
	assert.Equal(t, []string{"A"}, contents(d))
}

func TestParseDelimiterMustBeWholeLine(t *testing.T) {
	d := NewParser().Parse("A --- B\n----\n ---\nC")
	require.Len(t, d.Slides, 1)
	assert.Equal(t, "A --- B\n----\n ---\nC", d.Slides[0].Content)
}

func TestParseEmptyDocument(t *testing.T) {
	d := NewParser().Parse("")
	assert.Empty(t, d.Slides)
	assert.Equal(t, theme.DefaultID, d.Theme.ID)
}

func TestParseFrontmatter(t *testing.T) {
	d := NewParser().Parse("layout: cover\ntitle: \"Hi\"\nBody text")
	require.Len(t, d.Slides, 1)

	s := d.Slides[0]
	assert.Equal(t, LayoutCover, s.Layout)
	assert.Equal(t, "Hi", s.Metadata.Title)
	assert.Equal(t, "Body text", s.Content)
}

func TestParseMetadataQuoting(t *testing.T) {
	doc := "background: 'https://example.com/bg.jpg'\n" +
		"image: \"https://example.com/a.png\"\n" +
		"title: 'Single'\n" +
		"subtitle:   \"Spaced\"  \n" +
		"Body"
	s := NewParser().Parse(doc).Slides[0]

	assert.Equal(t, "'https://example.com/bg.jpg'", s.Metadata.Background)
	assert.Equal(t, `"https://example.com/a.png"`, s.Metadata.Image)
	assert.Equal(t, "Single", s.Metadata.Title)
	assert.Equal(t, "Spaced", s.Metadata.Subtitle)
	assert.Equal(t, "Body", s.Content)
}

func TestParseThemePersistsAcrossSlides(t *testing.T) {
	d := NewParser().Parse("theme: apple-basic\nA\n---\nB")
	assert.Equal(t, "apple-basic", d.Theme.ID)
	assert.Equal(t, []string{"A", "B"}, contents(d))
}

func TestParseThemeLastKnownWins(t *testing.T) {
	doc := "theme: apple-basic\nA\n---\ntheme: default\nB\n---\ntheme: bogus\nC"
	d := NewParser().Parse(doc)
	assert.Equal(t, theme.DefaultID, d.Theme.ID)

	doc = "theme: default\nA\n---\ntheme: apple-basic\nB\n---\ntheme: bogus\nC"
	d = NewParser().Parse(doc)
	assert.Equal(t, "apple-basic", d.Theme.ID)
}

func TestParseUnknownThemeFallsBack(t *testing.T) {
	d := NewParser().Parse("theme: nonexistent\nA")
	assert.Equal(t, theme.DefaultID, d.Theme.ID)
	assert.Equal(t, []string{"A"}, contents(d))
}

func TestParseInjectedCatalog(t *testing.T) {
	c, err := theme.NewCatalog("plain", map[string]theme.Theme{
		"plain": {Name: "Plain", Colors: theme.Colors{Primary: "#000", Background: "#fff", Text: "#000", Muted: "#777"}},
		"night": {Name: "Night", Colors: theme.Colors{Primary: "#fff", Background: "#000", Text: "#fff", Muted: "#777"}},
	})
	require.NoError(t, err)

	p := NewParser(WithCatalog(c))
	assert.Equal(t, "night", p.Parse("theme: night\nA").Theme.ID)
	assert.Equal(t, "plain", p.Parse("theme: apple-basic\nA").Theme.ID)
}

func TestParseColumnBreak(t *testing.T) {
	s := NewParser().Parse("layout: two-cols\nLeft\n::right::\nRight").Slides[0]
	assert.Equal(t, LayoutTwoCols, s.Layout)
	assert.Equal(t, "Left\n"+SplitMarker+"\nRight", s.Content)

	// Only an exact line is a break.
	s = NewParser().Parse("Left\n ::right::\nRight").Slides[0]
	assert.Equal(t, "Left\n ::right::\nRight", s.Content)
}

func TestParseLineEndings(t *testing.T) {
	for name, doc := range map[string]string{
		"crlf": "A\r\n---\r\nlayout: two-cols\r\nB\r\n::right::\r\nC\r\n---\r\ntitle: \"D\"\r\nE",
		"cr":   "A\r---\rlayout: two-cols\rB\r::right::\rC\r---\rtitle: \"D\"\rE",
	} {
		t.Run(name, func(t *testing.T) {
			d := NewParser().Parse(doc)
			require.Len(t, d.Slides, 3)
			assert.Equal(t, "A", d.Slides[0].Content)
			assert.Equal(t, LayoutTwoCols, d.Slides[1].Layout)
			assert.Equal(t, "B\n"+SplitMarker+"\nC", d.Slides[1].Content)
			assert.Equal(t, "D", d.Slides[2].Metadata.Title)
			assert.Equal(t, "E", d.Slides[2].Content)
		})
	}
}

func TestParseByteOrderMark(t *testing.T) {
	d := NewParser().Parse("\ufefftheme: apple-basic\nA")
	assert.Equal(t, "apple-basic", d.Theme.ID)
	assert.Equal(t, []string{"A"}, contents(d))
}

func TestParseSplitMarkerNotFromText(t *testing.T) {
	s := NewParser().Parse("layout: two-cols\nA\n<!-- split -->\nB").Slides[0]
	assert.Equal(t, "A\n<!-- split -->\nB", s.Content)

	// NUL bytes are dropped, so a typed marker is plain text.
	s = NewParser().Parse("A\n\x00split\x00\nB").Slides[0]
	assert.Equal(t, "A\nsplit\nB", s.Content)
	assert.NotContains(t, s.Content, SplitMarker)
}

func TestParseKeepsInnerBlankLines(t *testing.T) {
	s := NewParser().Parse("layout: center\n\n# Hello\n\nworld\n\n").Slides[0]
	assert.Equal(t, "# Hello\n\nworld", s.Content)
}

func TestParseKeyAfterBodyIsStillFrontmatter(t *testing.T) {
	res, ok := ParseBlock("Intro\ntitle: Late\nMore", theme.Builtin())
	require.True(t, ok)
	assert.Equal(t, "Late", res.Slide.Metadata.Title)
	assert.Equal(t, "Intro\nMore", res.Slide.Content)
	assert.Equal(t, 1, res.LateKeys)
}

func TestParseUnknownLayoutPreserved(t *testing.T) {
	s := NewParser().Parse("layout: fancy\nX").Slides[0]
	assert.Equal(t, Layout("fancy"), s.Layout)
	assert.Equal(t, LayoutDefault, s.Layout.Normalize())
}

func TestParseBlockBlank(t *testing.T) {
	_, ok := ParseBlock(" \n\t\n", theme.Builtin())
	assert.False(t, ok)
}

func TestParseBlockKeyOnly(t *testing.T) {
	res, ok := ParseBlock("layout: end", theme.Builtin())
	require.True(t, ok)
	assert.Equal(t, LayoutEnd, res.Slide.Layout)
	assert.Equal(t, "", res.Slide.Content)
}

func TestLayoutKnown(t *testing.T) {
	for _, l := range Layouts {
		assert.True(t, l.Known(), l)
		assert.Equal(t, l, l.Normalize())
	}
	assert.False(t, Layout("").Known())
	assert.Equal(t, LayoutDefault, Layout("").Normalize())
}

func TestDeckTitle(t *testing.T) {
	d := NewParser().Parse("A\n---\ntitle: First\nB\n---\ntitle: Second\nC")
	assert.Equal(t, "First", d.Title())
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, "", NewParser().Parse("A").Title())
}
