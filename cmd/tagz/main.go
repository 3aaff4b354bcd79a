package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/tagz/internal/config"
	"github.com/vango-dev/tagz/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globals holds the persistent flags shared by every command.
type globals struct {
	configPath string
	logLevel   string
	noColor    bool
	logger     *logrus.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{logger: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "tagz",
		Short: "Build, render and serve HTML element trees",
		Long: `tagz works with HTML documents as element trees.

It parses markup into a tree and renders it back, compact or pretty,
as a whole string, line by line or in fixed-size chunks. The same
renderer is available over HTTP and WebSocket with "tagz serve", and
"tagz publish" stores rendered documents on disk or in S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setupLogger(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Path to tagz.json (default ./tagz.json when present)")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		renderCmd(g),
		linesCmd(g),
		chunksCmd(g),
		datauriCmd(),
		serveCmd(g),
		publishCmd(g),
		versionCmd(),
	)

	return rootCmd
}

func (g *globals) setupLogger(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(g.logLevel)
	if err != nil {
		return errors.New("E112").WithDetailf("invalid --log-level %q", g.logLevel).Wrap(err)
	}
	g.logger.SetLevel(level)
	g.logger.SetOutput(cmd.ErrOrStderr())
	g.logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: g.noColor,
	})
	if g.noColor {
		errors.DisableColors()
	}
	return nil
}

// loadConfig reads --config when given and ./tagz.json otherwise, falling
// back to defaults when no file exists.
func (g *globals) loadConfig() (*config.Config, error) {
	if g.configPath != "" {
		return config.LoadFile(g.configPath)
	}
	return config.LoadOrDefault(".")
}
