package main

import (
	"io"
	"iter"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagz/internal/errors"
	"github.com/vango-dev/tagz/pkg/parse"
	"github.com/vango-dev/tagz/pkg/render"
)

// readDocument parses the file named by args[0], or standard input when no
// file or "-" is given.
func readDocument(cmd *cobra.Command, args []string) (parse.Result, error) {
	if len(args) == 0 || args[0] == "-" {
		return parse.Reader(cmd.InOrStdin())
	}

	f, err := os.Open(args[0])
	if err != nil {
		return parse.Result{}, errors.New("E120").WithDetailf("reading %s", args[0]).Wrap(err)
	}
	defer f.Close()
	return parse.Reader(f)
}

func writeDocument(w io.Writer, r *render.Renderer, doc parse.Result) error {
	if doc.IsPage() {
		return r.RenderPage(w, doc.Page)
	}
	return r.RenderToWriter(w, doc.Element)
}

func documentLines(r *render.Renderer, doc parse.Result) iter.Seq[string] {
	if doc.IsPage() {
		return r.PageLines(doc.Page)
	}
	return r.Lines(doc.Element)
}

func documentChunks(r *render.Renderer, doc parse.Result, size int) iter.Seq[string] {
	if doc.IsPage() {
		return r.PageChunks(doc.Page, size)
	}
	return r.Chunks(doc.Element, size)
}

// rendererFlags binds --pretty and --indent. Unset flags fall back to the
// render section of tagz.json.
type rendererFlags struct {
	pretty bool
	indent string
}

func (f *rendererFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.pretty, "pretty", "p", false, "Indent output, one node per line")
	cmd.Flags().StringVar(&f.indent, "indent", "", "Indent unit in pretty mode (default from tagz.json)")
}

func (f *rendererFlags) config(cmd *cobra.Command, g *globals) (render.RendererConfig, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return render.RendererConfig{}, err
	}
	rc := render.RendererConfig{
		Pretty: cfg.Render.Pretty,
		Indent: cfg.Render.Indent,
	}
	if cmd.Flags().Changed("pretty") {
		rc.Pretty = f.pretty
	}
	if cmd.Flags().Changed("indent") {
		rc.Indent = f.indent
	}
	return rc, nil
}
