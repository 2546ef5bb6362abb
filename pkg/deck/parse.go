package deck

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"slidedeck/pkg/theme"
)

var delimiter = regexp.MustCompile(`(?m)^---$`)

const columnBreak = "::right::"

// Parser turns markup documents into decks. It holds no per-document state
// and may be reused.
type Parser struct {
	catalog *theme.Catalog
	logger  zerolog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithCatalog sets the theme catalog used to validate theme: keys and to
// resolve the document theme.
func WithCatalog(c *theme.Catalog) Option {
	return func(p *Parser) {
		p.catalog = c
	}
}

// WithLogger sets the parser's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = l
	}
}

// NewParser returns a Parser using the built-in catalog unless configured
// otherwise.
func NewParser(opts ...Option) *Parser {
	p := &Parser{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	if p.catalog == nil {
		p.catalog = theme.Builtin()
	}
	return p
}

// Parse splits doc into slides and resolves the document theme. It never
// fails: unrecognised lines are content, unknown themes fall back to the
// catalog default, and an empty document yields an empty deck.
func (p *Parser) Parse(doc string) Deck {
	var (
		slides  []Slide
		themeID string
		skipped int
		blocks  = delimiter.Split(normalize(doc), -1)
	)

	for i, block := range blocks {
		res, ok := ParseBlock(block, p.catalog)
		if !ok {
			skipped++
			continue
		}
		if res.Theme != "" {
			themeID = res.Theme
		}
		if res.LateKeys > 0 {
			p.logger.Debug().
				Int("block", i).
				Int("keys", res.LateKeys).
				Msg("frontmatter key after body content")
		}
		slides = append(slides, res.Slide)
	}

	d := Deck{
		Slides: slides,
		Theme:  p.catalog.Resolve(themeID),
	}
	p.logger.Debug().
		Int("blocks", len(blocks)).
		Int("skipped", skipped).
		Int("slides", len(slides)).
		Str("theme", d.Theme.ID).
		Msg("parsed deck")
	return d
}

// BlockResult is the outcome of folding one block.
type BlockResult struct {
	Slide Slide

	// Theme is the last catalog theme named by a theme: key in the block.
	Theme string

	// LateKeys counts key lines that followed body content.
	LateKeys int
}

// ParseBlock parses a single delimiter-free block. ok is false when the
// block is blank and must not produce a slide.
func ParseBlock(block string, catalog *theme.Catalog) (BlockResult, bool) {
	trimmed := strings.TrimSpace(normalize(block))
	if trimmed == "" {
		return BlockResult{}, false
	}

	st := blockState{layout: LayoutDefault}
	for i, line := range strings.Split(trimmed, "\n") {
		st = st.step(i, line, catalog)
	}

	return BlockResult{
		Slide: Slide{
			Layout:   st.layout,
			Content:  strings.TrimSpace(strings.Join(st.lines, "\n")),
			Metadata: st.meta,
		},
		Theme:    st.theme,
		LateKeys: st.lateKeys,
	}, true
}

// blockState is the accumulator of the per-block fold. step returns a new
// state; the lines slice is only ever appended to.
type blockState struct {
	lines       []string
	layout      Layout
	meta        Metadata
	theme       string
	frontmatter bool
	hasBody     bool
	lateKeys    int
}

func (s blockState) step(i int, line string, catalog *theme.Catalog) blockState {
	if key, value, ok := frontmatterKey(line); ok {
		switch key {
		case "theme":
			if _, known := catalog.Lookup(value); known {
				s.theme = value
			}
		case "layout":
			s.layout = Layout(value)
		case "background":
			s.meta.Background = value
		case "image":
			s.meta.Image = value
		case "title":
			s.meta.Title = stripQuotes(value)
		case "subtitle":
			s.meta.Subtitle = stripQuotes(value)
		}
		if s.hasBody {
			s.lateKeys++
		}
		s.frontmatter = true
		return s
	}

	switch {
	case line == columnBreak:
		s.lines = append(s.lines, SplitMarker)
		s.frontmatter = false
	case strings.TrimSpace(line) == "":
		if s.frontmatter && i > 0 {
			s.frontmatter = false
		}
		s.lines = append(s.lines, line)
	default:
		s.frontmatter = false
		s.hasBody = true
		s.lines = append(s.lines, line)
	}
	return s
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\x00", "")

// normalize drops a leading byte order mark and NUL bytes and converts CRLF
// and lone CR line endings to LF.
func normalize(doc string) string {
	return lineEndings.Replace(strings.TrimPrefix(doc, "\ufeff"))
}

var frontmatterKeys = []string{"theme", "layout", "background", "image", "title", "subtitle"}

// frontmatterKey reports whether line starts with a recognised "key:" prefix
// and returns the trimmed remainder.
func frontmatterKey(line string) (key, value string, ok bool) {
	for _, k := range frontmatterKeys {
		if rest, found := strings.CutPrefix(line, k+":"); found {
			return k, strings.TrimSpace(rest), true
		}
	}
	return "", "", false
}

func stripQuotes(v string) string {
	return strings.TrimSpace(strings.Trim(v, `"'`))
}
