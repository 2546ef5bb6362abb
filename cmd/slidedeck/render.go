package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"slidedeck/internal/paint"
	"slidedeck/pkg/render"
)

var (
	renderSlide   int
	renderWidth   int
	renderHeight  int
	renderNoColor bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Print slides to stdout",
	Long:  `Paints one slide (--slide n, 1-based) or every slide (--slide 0) without the interactive host.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().IntVarP(&renderSlide, "slide", "n", 0, "Slide number to print, 0 for all")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Output width (default: terminal width or 80)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 24, "Output height per slide")
	renderCmd.Flags().BoolVar(&renderNoColor, "no-color", false, "Disable colors")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	d, err := readDeck(args[0])
	if err != nil {
		return err
	}
	if renderSlide < 0 || renderSlide > d.Len() {
		return fmt.Errorf("slide %d out of range (deck has %d)", renderSlide, d.Len())
	}

	if renderNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	width := renderWidth
	if width <= 0 {
		width = 80
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				width = w
			}
		}
	}
	p := paint.New(width, renderHeight)

	out := cmd.OutOrStdout()
	for i, s := range d.Slides {
		if renderSlide != 0 && i != renderSlide-1 {
			continue
		}
		logger.Debug().Int("slide", i+1).Str("layout", string(s.Layout)).Msg("render")
		fmt.Fprintln(out, p.Paint(render.Render(s, d.Theme)))
	}
	return nil
}
