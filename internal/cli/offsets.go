package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/npillmayer/pinsearch/internal/offsets"
	"github.com/spf13/cobra"
)

func newOffsetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "offsets EXE",
		Short: "Locate the quick select hooks in a host executable",
		Long: `Scan the executable sections of a host executable for the code signatures
quick select hooks into, and print their relative virtual addresses.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offs, err := offsets.FromFile(args[0], offsets.DefaultSignatures)
			if err != nil && !errors.Is(err, offsets.ErrNotFound) {
				return err
			}
			w := cmd.OutOrStdout()
			for _, sig := range offsets.DefaultSignatures {
				if rva, ok := offs[sig.Name]; ok {
					fmt.Fprintf(w, "%-20s %#08x\n", sig.Name, rva)
				} else {
					fmt.Fprintf(w, "%-20s %s\n", sig.Name, color.RedString("not found"))
				}
			}
			return err
		},
	}
}

