package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-parts/internal/calc"
	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
	"github.com/grindlemire/go-parts/internal/scene"
	"github.com/grindlemire/go-parts/internal/termrender"
)

// sizeFlags lets a command override the container size.
type sizeFlags struct {
	width  int
	height int
}

func (f *sizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "container width (default from scene or config)")
	cmd.Flags().IntVar(&f.height, "height", 0, "container height (default from scene or config)")
}

// instance is a loaded scene with a context ready to recalculate.
type instance struct {
	path     string
	scene    *scene.Scene
	ctx      *calc.Context
	renderer *termrender.Renderer
}

// load reads a scene and instantiates it on screen. The container size
// comes from the flags, then the scene, then the configuration. A nil screen
// gives a headless renderer that still measures text.
func (a *app) load(path string, size sizeFlags, screen tcell.Screen) (*instance, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	r := termrender.New(screen, images(s))

	eng := a.cfg.Engine
	opts := []calc.Option{
		calc.WithLogger(a.log.With(zap.String("scene", path))),
		calc.WithScale(eng.Scale),
		calc.WithCalcCache(eng.CalcCache),
		calc.WithGeometry(layout.NewRect(0, 0, a.cfg.Render.Width, a.cfg.Render.Height)),
	}
	if p := eng.Perspective; p.Focal > 0 {
		opts = append(opts, calc.WithDefaultPerspective(calc.Perspective{X: p.X, Y: p.Y, Z0: p.Z0, Focal: p.Focal}))
	}
	opts = append(opts, s.Options()...)

	c, err := calc.New(s.Collection, r, opts...)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	if size.width > 0 || size.height > 0 {
		g := c.Geometry()
		if size.width > 0 {
			g.Width = size.width
		}
		if size.height > 0 {
			g.Height = size.height
		}
		c.Resize(g.Width, g.Height)
	}

	swallowAll(s.Collection, c, r)
	if err := s.Apply(c); err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return &instance{path: path, scene: s, ctx: c, renderer: r}, nil
}

func images(s *scene.Scene) []termrender.Image {
	out := make([]termrender.Image, 0, len(s.Images))
	for _, img := range s.Images {
		out = append(out, termrender.Image{Size: img.Size, Glyph: img.Glyph})
	}
	return out
}

// swallowAll gives every swallow part a placeholder object so embedded
// content shows up in the terminal.
func swallowAll(coll *model.Collection, c *calc.Context, r *termrender.Renderer) {
	for _, p := range coll.Parts {
		if p.Type != model.PartSwallow {
			continue
		}
		_ = c.Swallow(p.ID, r.NewSwallowObject(p.Name, layout.RGBA(96, 96, 160, 255)))
	}
}
