// Package theme holds the named colour and font bundles applied to a deck.
//
// A Catalog is an explicit value: parsers and renderers receive one rather
// than reaching for a package-level table, so tests can inject their own.
package theme

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultID is the catalog key used when a document names no theme.
const DefaultID = "default"

var (
	// ErrUnknownDefault is returned when a catalog's default ID has no entry.
	ErrUnknownDefault = errors.New("default theme not in catalog")
	// ErrInvalidColor is returned when a theme colour is not a hex colour.
	ErrInvalidColor = errors.New("invalid theme color")
)

// Colors is the colour set of a theme. Values are "#RRGGBB" strings.
type Colors struct {
	Primary    string `yaml:"primary"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
}

// Fonts is the font set of a theme.
type Fonts struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Theme is a named visual configuration.
type Theme struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Colors Colors `yaml:"colors"`
	Fonts  Fonts  `yaml:"fonts"`
}

// Validate checks that every colour parses as a hex colour.
func (t Theme) Validate() error {
	for field, value := range map[string]string{
		"primary":    t.Colors.Primary,
		"background": t.Colors.Background,
		"text":       t.Colors.Text,
		"muted":      t.Colors.Muted,
	} {
		if _, err := colorful.Hex(value); err != nil {
			return fmt.Errorf("%w: %s %q", ErrInvalidColor, field, value)
		}
	}
	return nil
}

// Catalog is a closed mapping from theme ID to Theme. It is immutable once
// built and safe to share.
type Catalog struct {
	themes    map[string]Theme
	defaultID string
}

// NewCatalog builds a catalog. The theme map keys are the IDs; each entry's
// ID field is overwritten with its key.
func NewCatalog(defaultID string, themes map[string]Theme) (*Catalog, error) {
	c := &Catalog{
		themes:    make(map[string]Theme, len(themes)),
		defaultID: defaultID,
	}
	for id, t := range themes {
		t.ID = id
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("theme %q: %w", id, err)
		}
		c.themes[id] = t
	}
	if _, ok := c.themes[defaultID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefault, defaultID)
	}
	return c, nil
}

// Lookup returns the theme registered under id.
func (c *Catalog) Lookup(id string) (Theme, bool) {
	t, ok := c.themes[id]
	return t, ok
}

// Resolve returns the theme registered under id, or the default theme when
// id is empty or unknown.
func (c *Catalog) Resolve(id string) Theme {
	if t, ok := c.themes[id]; ok {
		return t
	}
	return c.Default()
}

// Default returns the catalog's fallback theme.
func (c *Catalog) Default() Theme {
	return c.themes[c.defaultID]
}

// DefaultID returns the key of the fallback theme.
func (c *Catalog) DefaultID() string {
	return c.defaultID
}

// IDs returns every theme ID in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.themes))
	for id := range c.themes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func builtinThemes() map[string]Theme {
	return map[string]Theme{
		"apple-basic": {
			Name: "Apple Basic",
			Colors: Colors{
				Primary:    "#007AFF",
				Background: "#FFFFFF",
				Text:       "#1D1D1F",
				Muted:      "#86868B",
			},
			Fonts: Fonts{
				Heading: `-apple-system, BlinkMacSystemFont, "SF Pro Display", "Segoe UI", sans-serif`,
				Body:    `-apple-system, BlinkMacSystemFont, "SF Pro Text", "Segoe UI", sans-serif`,
			},
		},
		DefaultID: {
			Name: "Default",
			Colors: Colors{
				Primary:    "#3B82F6",
				Background: "#FFFFFF",
				Text:       "#1F2937",
				Muted:      "#6B7280",
			},
			Fonts: Fonts{
				Heading: "system-ui, sans-serif",
				Body:    "system-ui, sans-serif",
			},
		},
	}
}

// Builtin returns the stock catalog: "default" and "apple-basic".
func Builtin() *Catalog {
	c, err := NewCatalog(DefaultID, builtinThemes())
	if err != nil {
		panic(err) // stock palette is constant
	}
	return c
}
