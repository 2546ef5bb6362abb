package theme

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a theme catalog:
//
//	default: midnight
//	themes:
//	  midnight:
//	    name: Midnight
//	    colors: {primary: "#7AA2F7", background: "#1A1B26", text: "#C0CAF5", muted: "#565F89"}
//	    fonts: {heading: "Inter", body: "Inter"}
type catalogFile struct {
	Default string           `yaml:"default"`
	Themes  map[string]Theme `yaml:"themes"`
}

// LoadCatalog decodes a YAML catalog. The built-in themes are merged
// underneath, so a file may override or extend them. An empty default key
// keeps DefaultID.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var f catalogFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode theme catalog: %w", err)
	}

	themes := builtinThemes()
	for id, t := range f.Themes {
		themes[id] = t
	}

	defaultID := f.Default
	if defaultID == "" {
		defaultID = DefaultID
	}
	return NewCatalog(defaultID, themes)
}

// LoadCatalogFile reads a YAML catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open theme catalog: %w", err)
	}
	defer f.Close()

	c, err := LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
