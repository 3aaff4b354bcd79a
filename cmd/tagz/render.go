package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagz/pkg/render"
)

func renderCmd(g *globals) *cobra.Command {
	var flags rendererFlags

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Parse a document and render it back",
		Long: `Parse HTML from a file (or standard input) and render the resulting
element tree. Full documents keep their doctype.

Examples:
  tagz render index.html
  tagz render --pretty --indent="  " index.html
  echo '<p class="b a">hi</p>' | tagz render`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := flags.config(cmd, g)
			if err != nil {
				return err
			}
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := writeDocument(out, render.NewRenderer(rc), doc); err != nil {
				return err
			}
			if !rc.Pretty {
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	flags.bind(cmd)
	return cmd
}

func linesCmd(g *globals) *cobra.Command {
	var indent string

	cmd := &cobra.Command{
		Use:   "lines [file]",
		Short: "Render a document one pretty line at a time",
		Long: `Render the pretty form of a document as a lazy stream of lines.
With --number each line is prefixed by its line number.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, _ := cmd.Flags().GetBool("number")
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("indent") {
				indent = cfg.Render.Indent
			}
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			r := render.NewRenderer(render.RendererConfig{Pretty: true, Indent: indent})
			n := 0
			for line := range documentLines(r, doc) {
				n++
				if number {
					fmt.Fprintf(cmd.OutOrStdout(), "%4d  %s\n", n, line)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&indent, "indent", "", "Indent unit (default from tagz.json)")
	cmd.Flags().BoolP("number", "n", false, "Prefix lines with their number")
	return cmd
}

func chunksCmd(g *globals) *cobra.Command {
	var (
		flags rendererFlags
		size  int
	)

	cmd := &cobra.Command{
		Use:   "chunks [file]",
		Short: "Show how a document is split for streaming",
		Long: `Render a document in chunks of at most --size bytes (extended to the
next UTF-8 boundary) and print each chunk as a quoted Go string.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := flags.config(cmd, g)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				cfg, err := g.loadConfig()
				if err != nil {
					return err
				}
				size = cfg.Render.ChunkSize
			}
			doc, err := readDocument(cmd, args)
			if err != nil {
				return err
			}

			for chunk := range documentChunks(render.NewRenderer(rc), doc, size) {
				fmt.Fprintf(cmd.OutOrStdout(), "%q\n", chunk)
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().IntVarP(&size, "size", "s", render.DefaultChunkSize, "Chunk size in bytes")
	return cmd
}
