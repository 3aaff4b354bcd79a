package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagz/pkg/datauri"
)

func datauriCmd() *cobra.Command {
	var mediaType string

	cmd := &cobra.Command{
		Use:   "datauri <file>",
		Short: "Encode a file as a data URI",
		Long: `Print a base64 data URI for a file, ready to inline in a src or href
attribute. The media type is guessed from the extension unless --type
is given.

Examples:
  tagz datauri logo.png
  tagz datauri --type=image/svg+xml icon`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uri, err := datauri.Open(args[0], mediaType)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), uri)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mediaType, "type", "t", "", "Media type (default guessed from extension)")
	return cmd
}
