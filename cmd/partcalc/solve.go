package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		size   sizeFlags
		format string
		jobs   int
	)
	cmd := &cobra.Command{
		Use:   "solve scene.yaml [scene.yaml...]",
		Short: "Print the solved geometry of every part",
		Long: `Solve loads each scene, applies its initial states and prints the final
geometry, visibility and color of every part. Scenes are solved
concurrently, one context each, and printed in argument order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]sceneResult, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(max(jobs, 1))
			for i, path := range args {
				g.Go(func() error {
					// Scenes still queued behind a failed one are skipped.
					if err := ctx.Err(); err != nil {
						return err
					}
					in, err := a.load(path, size, nil)
					if err != nil {
						return err
					}
					results[i], err = in.collect()
					return err
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), format, results)
		},
	}
	size.register(cmd)
	cmd.Flags().StringVarP(&format, "output", "o", "text", "output format: text, json or yaml")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "scenes solved in parallel")
	return cmd
}
