package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/npillmayer/pinsearch/internal/config"
	"github.com/npillmayer/pinsearch/internal/offsets"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect plugin configuration files",
	}
	cmd.AddCommand(newConfigDefaultsCmd(), newConfigCheckCmd(), newConfigDeriveCmd())
	return cmd
}

func newConfigDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(config.DefaultYAML)
			return err
		},
	}
}

func newConfigCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE]",
		Short: "Validate a configuration file",
		Long: `Validate a configuration file. Without FILE, the file the plugin would load
next to this executable is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(firstArg(args))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			warn := color.New(color.FgYellow).SprintFunc()
			for _, warning := range loaded.Warnings {
				fmt.Fprintf(w, "%s %s\n", warn("warning:"), warning.Message)
			}
			fmt.Fprintf(w, "%s %s\n", color.GreenString("ok:"), loaded.Path)
			return nil
		},
	}
}

func newConfigDeriveCmd() *cobra.Command {
	var exe string
	cmd := &cobra.Command{
		Use:   "derive [FILE]",
		Short: "Print the configuration handed to the native core",
		Long: `Print the JSON configuration the plugin hands to the native core on start.
With --exe, the process offsets found in the given host executable are
included.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(firstArg(args))
			if err != nil {
				return err
			}
			d := config.Fixup(loaded.Config)
			if exe != "" {
				offs, err := offsets.FromFile(exe, offsets.DefaultSignatures)
				if err != nil {
					return err
				}
				d = d.WithOffsets(offs)
			}
			text, err := d.JSON()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(pretty.Pretty([]byte(text)))
			return err
		},
	}
	cmd.Flags().StringVar(&exe, "exe", "", "Host executable to take process offsets from")
	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
