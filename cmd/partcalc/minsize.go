package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMinSizeCmd(a *app) *cobra.Command {
	var minW, minH int
	cmd := &cobra.Command{
		Use:   "minsize scene.yaml",
		Short: "Print the smallest container size that fits every part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.load(args[0], sizeFlags{}, nil)
			if err != nil {
				return err
			}
			sz := in.ctx.MinSizeRestricted(minW, minH)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%dx%d\n", sz.Width, sz.Height)
			return err
		},
	}
	cmd.Flags().IntVar(&minW, "min-width", 0, "smallest width to start from")
	cmd.Flags().IntVar(&minH, "min-height", 0, "smallest height to start from")
	return cmd
}
