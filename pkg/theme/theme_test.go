package theme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	c := Builtin()

	assert.Equal(t, []string{"apple-basic", "default"}, c.IDs())
	assert.Equal(t, DefaultID, c.DefaultID())

	apple, ok := c.Lookup("apple-basic")
	require.True(t, ok)
	assert.Equal(t, "apple-basic", apple.ID)
	assert.Equal(t, "Apple Basic", apple.Name)
	assert.Equal(t, "#007AFF", apple.Colors.Primary)

	assert.Equal(t, "Default", c.Default().Name)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	c := Builtin()

	assert.Equal(t, "apple-basic", c.Resolve("apple-basic").ID)
	assert.Equal(t, DefaultID, c.Resolve("nonexistent").ID)
	assert.Equal(t, DefaultID, c.Resolve("").ID)
}

func TestNewCatalogErrors(t *testing.T) {
	valid := Theme{Colors: Colors{Primary: "#000000", Background: "#FFFFFF", Text: "#111111", Muted: "#888888"}}

	_, err := NewCatalog("missing", map[string]Theme{"only": valid})
	assert.True(t, errors.Is(err, ErrUnknownDefault))

	bad := valid
	bad.Colors.Text = "purple"
	_, err = NewCatalog("bad", map[string]Theme{"bad": bad})
	assert.True(t, errors.Is(err, ErrInvalidColor))
	assert.Contains(t, err.Error(), `text "purple"`)
}

func TestLoadCatalog(t *testing.T) {
	doc := `
default: midnight
themes:
  midnight:
    name: Midnight
    colors:
      primary: "#7AA2F7"
      background: "#1A1B26"
      text: "#C0CAF5"
      muted: "#565F89"
    fonts:
      heading: Inter
      body: Inter
`
	c, err := LoadCatalog(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"apple-basic", "default", "midnight"}, c.IDs())
	assert.Equal(t, "midnight", c.Default().ID)
	assert.Equal(t, "Midnight", c.Resolve("nope").Name)
}

func TestLoadCatalogEmptyKeepsBuiltins(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultID, c.Default().ID)
	assert.Len(t, c.IDs(), 2)
}

func TestLoadCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "themes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default: apple-basic\n"), 0o644))

	c, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, "apple-basic", c.Default().ID)

	_, err = LoadCatalogFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
