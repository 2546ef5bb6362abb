package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"slidedeck/internal/config"
	"slidedeck/internal/logging"
	"slidedeck/pkg/deck"
	"slidedeck/pkg/theme"
)

var (
	configPath string
	themesPath string
	logLevel   string

	cfg     *config.Config
	catalog *theme.Catalog
	logger  = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "slidedeck",
	Short: "slidedeck presents markdown slide decks in the terminal",
	Long: `slidedeck parses a single markdown document split by "---" lines into slides,
with per-slide frontmatter (layout, title, image, ...) and a document theme.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Config file")
	rootCmd.PersistentFlags().StringVar(&themesPath, "themes", "", "Theme catalog YAML file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// setup resolves configuration, logging and the theme catalog for every
// subcommand. Flags win over the config file when explicitly set.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("themes") {
		c.Themes = themesPath
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = logLevel
		if err := c.Validate(); err != nil {
			return err
		}
	}
	cfg = c

	logger, err = logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	catalog, err = cfg.Catalog()
	if err != nil {
		return fmt.Errorf("load themes: %w", err)
	}
	logger.Debug().Strs("themes", catalog.IDs()).Str("default", catalog.DefaultID()).Msg("theme catalog ready")
	return nil
}

func newParser(l zerolog.Logger) *deck.Parser {
	return deck.NewParser(deck.WithCatalog(catalog), deck.WithLogger(l))
}

// readDeck loads and parses a document file.
func readDeck(path string) (deck.Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("read document: %w", err)
	}
	return newParser(logger).Parse(string(data)), nil
}
