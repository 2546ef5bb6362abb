package main

import (
	"github.com/spf13/cobra"

	"slidedeck/internal/logging"
	"slidedeck/internal/presenter"
)

var (
	presentWatch bool
	presentTitle string
	presentLog   string
)

var presentCmd = &cobra.Command{
	Use:   "present <file>",
	Short: "Present a deck interactively",
	Long: `Opens the deck full screen. Navigate with ←/→ (h/l), jump with 1-9,
g/G for first/last, t for thumbnails, s for source, y to copy, q to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: runPresent,
}

func init() {
	presentCmd.Flags().BoolVarP(&presentWatch, "watch", "w", false, "Reload when the file changes")
	presentCmd.Flags().StringVar(&presentTitle, "title", "", "Status bar title (default: first slide title)")
	presentCmd.Flags().StringVar(&presentLog, "log-file", "", "Write logs to this file (the screen is taken)")
	rootCmd.AddCommand(presentCmd)
}

func runPresent(cmd *cobra.Command, args []string) error {
	logFile := cfg.LogFile
	if cmd.Flags().Changed("log-file") {
		logFile = presentLog
	}

	l := logging.NewNop()
	if logFile != "" {
		fl, closer, err := logging.NewFile(logFile, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer closer.Close()
		l = fl
	}

	return presenter.Run(args[0],
		presenter.WithParser(newParser(l)),
		presenter.WithLogger(l),
		presenter.WithWatch(presentWatch),
		presenter.WithWordWrap(cfg.WordWrap),
		presenter.WithTitle(presentTitle),
	)
}
