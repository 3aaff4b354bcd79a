package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagz/pkg/publish"
)

func publishCmd(g *globals) *cobra.Command {
	var (
		flags  rendererFlags
		dir    string
		bucket string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "publish <file> <key>",
		Short: "Render a document and store it",
		Long: `Parse a document, render it and store the result under key.

Documents go to the S3 bucket configured in tagz.json (or --bucket),
or below a local directory with --dir. S3 credentials are read from
AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.

Examples:
  tagz publish index.html index.html --bucket=my-site
  tagz publish --dir=public --pretty page.html docs/page.html`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			rc, err := flags.config(cmd, g)
			if err != nil {
				return err
			}
			doc, err := readDocument(cmd, args[:1])
			if err != nil {
				return err
			}

			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if cmd.Flags().Changed("prefix") {
				cfg.Publish.Prefix = prefix
			}
			opts := []publish.Option{
				publish.WithPrefix(cfg.Publish.Prefix),
				publish.WithRendererConfig(rc),
				publish.WithLogger(g.logger),
			}

			var p *publish.Publisher
			if dir != "" {
				store, err := publish.NewDiskStore(dir)
				if err != nil {
					return err
				}
				p = publish.New(store, opts...)
			} else if p, err = publish.FromConfig(cfg, opts...); err != nil {
				return err
			}

			var res publish.Result
			if doc.IsPage() {
				res, err = p.PublishPage(cmd.Context(), args[1], doc.Page)
			} else {
				res, err = p.PublishElement(cmd.Context(), args[1], doc.Element)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", res.Key, res.Bytes)
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Write to a local directory instead of S3")
	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from tagz.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from tagz.json)")
	return cmd
}
