package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-parts/internal/calc"
)

func newFramesCmd(a *app) *cobra.Command {
	var (
		size   sizeFlags
		frames int
		format string
		tween  string
	)
	cmd := &cobra.Command{
		Use:   "frames scene.yaml",
		Short: "Step the scene's transitions frame by frame",
		Long: `Frames starts every transition listed in the scene, then samples it at
frames+1 evenly spaced times from start to end. Each sample maps the
elapsed time through the transition's tween before the parts are solved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 1 {
				return errors.New("--frames must be at least 1")
			}
			override := calc.Tween(0)
			if tween != "" {
				var err error
				if override, err = calc.ParseTween(tween); err != nil {
					return err
				}
			}

			in, err := a.load(args[0], size, nil)
			if err != nil {
				return err
			}
			trs := in.scene.Transitions
			if len(trs) == 0 {
				return errors.New("scene has no transitions")
			}
			for _, tr := range trs {
				if err := in.ctx.BeginTransition(tr.Part, tr.State, tr.Value); err != nil {
					return err
				}
			}

			var results []sceneResult
			for i := 0; i <= frames; i++ {
				t := float64(i) / float64(frames)
				for _, tr := range trs {
					mode := tr.Tween
					if tween != "" {
						mode = override
					}
					if err := in.ctx.SetTransitionPos(tr.Part, calc.TweenPos(mode, t, tr.Factor)); err != nil {
						return err
					}
				}
				res, err := in.collect()
				if err != nil {
					return err
				}
				res.Frame, res.Pos = &i, &t
				results = append(results, res)
			}
			for _, tr := range trs {
				if err := in.ctx.EndTransition(tr.Part); err != nil {
					return err
				}
			}
			a.log.Debug("transitions stepped",
				zap.String("scene", in.path),
				zap.Int("transitions", len(trs)),
				zap.Int("frames", frames))
			return writeResults(cmd.OutOrStdout(), format, results)
		},
	}
	size.register(cmd)
	cmd.Flags().IntVarP(&frames, "frames", "n", 4, "number of steps from start to end")
	cmd.Flags().StringVarP(&format, "output", "o", "text", "output format: text, json or yaml")
	cmd.Flags().StringVar(&tween, "tween", "", "tween for every transition, overriding the scene")
	return cmd
}
