package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newScreen is replaced in tests.
var newScreen = tcell.NewScreen

const dragStep = 0.1

func newRenderCmd(a *app) *cobra.Command {
	var (
		size     sizeFlags
		snapshot bool
	)
	cmd := &cobra.Command{
		Use:   "render scene.yaml",
		Short: "Draw the scene in the terminal",
		Long: `Render draws the scene on the terminal and follows resizes. Arrow keys
step every dragable part; q or Esc quits.

With --snapshot the scene is drawn once off screen and printed as text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if snapshot {
				return a.snapshot(cmd, args[0], size)
			}
			return a.interactive(args[0], size)
		},
	}
	size.register(cmd)
	cmd.Flags().BoolVar(&snapshot, "snapshot", false, "print one frame as text instead of running interactively")
	return cmd
}

func (a *app) snapshot(cmd *cobra.Command, path string, size sizeFlags) error {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	in, err := a.load(path, size, screen)
	if err != nil {
		return err
	}
	g := in.ctx.Geometry()
	screen.SetSize(g.Width, g.Height)
	in.ctx.Recalc()
	in.renderer.Draw()

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(in.renderer.Snapshot(), "\n"))
	return err
}

func (a *app) interactive(path string, size sizeFlags) error {
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	in, err := a.load(path, size, screen)
	if err != nil {
		return err
	}
	c := in.ctx

	var dragable []int
	for _, p := range c.Collection().Parts {
		if p.Dragable.Enabled() {
			dragable = append(dragable, p.ID)
			if err := c.DragStepSet(p.ID, dragStep, dragStep); err != nil {
				return err
			}
		}
	}

	draw := func() {
		c.Recalc()
		in.renderer.Draw()
		in.renderer.Show()
	}
	if size.width == 0 && size.height == 0 {
		w, h := screen.Size()
		c.Resize(w, h)
	}
	draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			if size.width == 0 && size.height == 0 {
				w, h := ev.Size()
				c.Resize(w, h)
			}
			screen.Sync()
			draw()
		case *tcell.EventKey:
			dx, dy := 0.0, 0.0
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return nil
				}
			case tcell.KeyLeft:
				dx = -1
			case tcell.KeyRight:
				dx = 1
			case tcell.KeyUp:
				dy = -1
			case tcell.KeyDown:
				dy = 1
			}
			if dx == 0 && dy == 0 {
				continue
			}
			for _, id := range dragable {
				if err := c.DragStep(id, dx, dy); err != nil {
					a.log.Warn("drag step failed", zap.Int("part", id), zap.Error(err))
				}
			}
			draw()
		case nil:
			return nil
		}
	}
}
