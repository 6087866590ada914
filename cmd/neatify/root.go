package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/neatify/cmd/neatify/commands"
	"github.com/walteh/neatify/cmd/neatify/opts"
	"github.com/walteh/neatify/pkg/log"
)

// newRootCmd builds the neatify command tree writing user output to console
func newRootCmd(console io.Writer) *cobra.Command {
	o := &opts.RootOpts{Console: console}

	cmd := &cobra.Command{
		Use:   "neatify",
		Short: "Tidy source files in place",
		Long: `neatify walks a directory and rewrites every text file through a fixed
pipeline of optional stages: comment removal, empty line removal, trailing
space trimming, bracket spacing, quote style and indentation.

Stages are enabled in a config file. Without --config the working tree is
searched for .neatify.json.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := setupLogging(o.Debug)
			cmd.SetContext(log.NewContext(cmd.Context(), log.New(o.Console, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunNeatify(cmd.Context(), o)
		},
	}

	addRootFlags(cmd, o)

	cmd.SetOut(console)
	cmd.AddCommand(
		newVersionCmd(),
		commands.NewCleanExamplesCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default: search for .neatify.json)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVar(&o.Check, "check", false, "report files that would change without writing them")
	cmd.Flags().StringVarP(&o.Path, "path", "p", "", "root directory, overrides the config")
}

// setupLogging configures zerolog based on flags and returns the chosen level
func setupLogging(debug bool) zerolog.Level {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	return level
}
