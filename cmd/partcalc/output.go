package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-parts/internal/layout"
)

type partResult struct {
	Name    string  `json:"name" yaml:"name"`
	Type    string  `json:"type" yaml:"type"`
	State   string  `json:"state" yaml:"state"`
	Value   float64 `json:"value" yaml:"value"`
	Visible bool    `json:"visible" yaml:"visible"`
	X       int     `json:"x" yaml:"x"`
	Y       int     `json:"y" yaml:"y"`
	Width   int     `json:"width" yaml:"width"`
	Height  int     `json:"height" yaml:"height"`
	Color   string  `json:"color" yaml:"color"`
}

type sceneResult struct {
	Scene      string       `json:"scene" yaml:"scene"`
	Collection string       `json:"collection" yaml:"collection"`
	Width      int          `json:"width" yaml:"width"`
	Height     int          `json:"height" yaml:"height"`
	Frame      *int         `json:"frame,omitempty" yaml:"frame,omitempty"`
	Pos        *float64     `json:"pos,omitempty" yaml:"pos,omitempty"`
	Parts      []partResult `json:"parts" yaml:"parts"`
}

// collect recalculates the instance and reads back every part.
func (in *instance) collect() (sceneResult, error) {
	c := in.ctx
	c.Recalc()
	g := c.Geometry()
	res := sceneResult{
		Scene:      in.path,
		Collection: c.Collection().Name,
		Width:      g.Width,
		Height:     g.Height,
	}
	for _, p := range c.Collection().Parts {
		params, err := c.Params(p.ID)
		if err != nil {
			return sceneResult{}, err
		}
		state, value, err := c.State(p.ID)
		if err != nil {
			return sceneResult{}, err
		}
		res.Parts = append(res.Parts, partResult{
			Name:    p.Name,
			Type:    p.Type.String(),
			State:   state,
			Value:   value,
			Visible: params.Visible,
			X:       params.Rect.X,
			Y:       params.Rect.Y,
			Width:   params.Rect.Width,
			Height:  params.Rect.Height,
			Color:   hex(params.Color),
		})
	}
	return res, nil
}

func hex(c layout.Color) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// writeResults prints results in the requested format: text, json or yaml.
func writeResults(w io.Writer, format string, results []sceneResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		for _, r := range results {
			if err := writeText(w, r); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, r sceneResult) error {
	header := fmt.Sprintf("%s (%s) %dx%d", r.Scene, r.Collection, r.Width, r.Height)
	if r.Frame != nil {
		header += fmt.Sprintf(" frame %d pos %.3f", *r.Frame, *r.Pos)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  PART\tTYPE\tSTATE\tVISIBLE\tX\tY\tW\tH\tCOLOR")
	for _, p := range r.Parts {
		fmt.Fprintf(tw, "  %s\t%s\t%s %.2f\t%t\t%d\t%d\t%d\t%d\t%s\n",
			p.Name, p.Type, p.State, p.Value, p.Visible, p.X, p.Y, p.Width, p.Height, p.Color)
	}
	return tw.Flush()
}
