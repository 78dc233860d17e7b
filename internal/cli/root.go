// Package cli provides the Cobra command structure for mdtidy.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtidy/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are the persistent flags shared by all subcommands.
type rootFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root mdtidy command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "mdtidy",
		Short: "An offset-tracking Markdown formatter",
		Long: `mdtidy formats Markdown documents: heading level shifting, dotted heading
numbering, list marker cleanup, code fence language tagging, and optional
image upload to object storage.

Edits are applied through an offset-tracking mutation engine, so an editor
cursor position survives the whole formatting operation.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newFmtCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
