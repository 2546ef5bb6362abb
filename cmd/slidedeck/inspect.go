package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"slidedeck/pkg/render"
)

var inspectTree bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Dump the parsed deck as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectTree, "tree", false, "Dump the rendered block tree of every slide instead")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	d, err := readDeck(args[0])
	if err != nil {
		return err
	}

	var v any = d
	if inspectTree {
		trees := make([]render.Node, 0, d.Len())
		for _, s := range d.Slides {
			trees = append(trees, render.Render(s, d.Theme))
		}
		v = trees
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}
	return enc.Close()
}
