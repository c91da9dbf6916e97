// Package cli implements the pinsearch developer command line.
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/npillmayer/pinsearch/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	var noColor bool
	root := &cobra.Command{
		Use:   "pinsearch",
		Short: "Pinyin and romaji search for the Everything plugin",
		Long: `pinsearch matches patterns against file names the way the plugin does inside
the host: literally, by pinyin of Han characters, and by romaji of kana.

It also validates plugin configuration files and locates the process offsets
quick select depends on in a host executable.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	root.AddCommand(
		newMatchCmd(),
		newConfigCmd(),
		newOffsetsCmd(),
		newReadingsCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line. It is called once by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}
