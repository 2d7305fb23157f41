package calc

import (
	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

// Blend merges the solved parameters of the two descriptions of a
// transitioning part. Without p2 the result is p1.
func Blend(p1 CalcParams, p2 *CalcParams, pos float64) CalcParams {
	if p2 == nil {
		return p1
	}
	out := p1
	out.Rect = layout.InterpRect(p1.Rect, p2.Rect, pos)
	out.Req = layout.InterpRect(p1.Req, p2.Req, pos)
	out.Visible = blendVisible(p1.Visible, p2.Visible, pos)
	out.Smooth = pick(p1.Smooth, p2.Smooth, pos)
	out.Color = layout.InterpColor(p1.Color, p2.Color, pos)

	switch p1.Type {
	case model.PartImage, model.PartProxy:
		out.Fill = FillParams{
			Rect:   layout.InterpRect(p1.Fill.Rect, p2.Fill.Rect, pos),
			Smooth: pick(p1.Fill.Smooth, p2.Fill.Smooth, pos),
			Tile:   pick(p1.Fill.Tile, p2.Fill.Tile, pos),
		}
		if p1.Type == model.PartImage {
			out.Image = ImageParams{
				Border:  layout.InterpEdges(p1.Image.Border, p2.Image.Border, pos),
				ScaleBy: layout.InterpFloat(p1.Image.ScaleBy, p2.Image.ScaleBy, pos),
			}
		}
	case model.PartText, model.PartTextblock:
		out.Text = TextParams{
			Size:     layout.Interp(p1.Text.Size, p2.Text.Size, pos),
			AlignX:   layout.InterpFloat(p1.Text.AlignX, p2.Text.AlignX, pos),
			AlignY:   layout.InterpFloat(p1.Text.AlignY, p2.Text.AlignY, pos),
			Ellipsis: layout.InterpFloat(p1.Text.Ellipsis, p2.Text.Ellipsis, pos),
			Color2:   layout.InterpColor(p1.Text.Color2, p2.Text.Color2, pos),
			Color3:   layout.InterpColor(p1.Text.Color3, p2.Text.Color3, pos),
		}
	case model.PartBox, model.PartTable:
		out.Box.AlignX = layout.InterpFloat(p1.Box.AlignX, p2.Box.AlignX, pos)
		out.Box.AlignY = layout.InterpFloat(p1.Box.AlignY, p2.Box.AlignY, pos)
		out.Box.PaddingX = layout.Interp(p1.Box.PaddingX, p2.Box.PaddingX, pos)
		out.Box.PaddingY = layout.Interp(p1.Box.PaddingY, p2.Box.PaddingY, pos)
	case model.PartRectangle, model.PartSwallow, model.PartGroup, model.PartExternal,
		model.PartSpacer:
	}

	out.Map = blendMap(p1.Map, p2.Map, pos)
	return out
}

// blendVisible keeps a part visible for the whole transition between a
// visible and an invisible state, hiding it only at the invisible end.
func blendVisible(v1, v2 bool, pos float64) bool {
	switch {
	case v1 && !v2:
		return pos != 1
	case !v1 && v2:
		return pos != 0
	default:
		return v1
	}
}

// pick switches discrete values halfway through a transition.
func pick[T any](a, b T, pos float64) T {
	if pos < 0.5 {
		return a
	}
	return b
}

// blendMap interpolates the map fields both sides share. A light or
// perspective only one side has is taken as is.
func blendMap(m1, m2 *MapParams, pos float64) *MapParams {
	switch {
	case m1 == nil && m2 == nil:
		return nil
	case m1 == nil:
		out := *m2
		return &out
	case m2 == nil:
		out := *m1
		return &out
	}
	out := *m1
	out.Center = interpPoint3(m1.Center, m2.Center, pos)
	out.RotX = layout.InterpFloat(m1.RotX, m2.RotX, pos)
	out.RotY = layout.InterpFloat(m1.RotY, m2.RotY, pos)
	out.RotZ = layout.InterpFloat(m1.RotZ, m2.RotZ, pos)
	out.ZoomX = layout.InterpFloat(m1.ZoomX, m2.ZoomX, pos)
	out.ZoomY = layout.InterpFloat(m1.ZoomY, m2.ZoomY, pos)

	switch {
	case m1.Lighted && m2.Lighted:
		out.Light = interpPoint3(m1.Light, m2.Light, pos)
		out.LightColor = layout.InterpColor(m1.LightColor, m2.LightColor, pos)
		out.Ambient = layout.InterpColor(m1.Ambient, m2.Ambient, pos)
	case m2.Lighted:
		out.Lighted = true
		out.Light, out.LightColor, out.Ambient = m2.Light, m2.LightColor, m2.Ambient
	}

	switch {
	case m1.PerspOn && m2.PerspOn:
		out.Persp = interpPoint3(m1.Persp, m2.Persp, pos)
		out.Focal = layout.Interp(m1.Focal, m2.Focal, pos)
	case m2.PerspOn:
		out.PerspOn = true
		out.Persp, out.Focal = m2.Persp, m2.Focal
	}
	out.PerspFallback = m1.PerspFallback || m2.PerspFallback
	return &out
}

func interpPoint3(a, b layout.Point3, pos float64) layout.Point3 {
	return layout.Point3{
		X: layout.Interp(a.X, b.X, pos),
		Y: layout.Interp(a.Y, b.Y, pos),
		Z: layout.Interp(a.Z, b.Z, pos),
	}
}
