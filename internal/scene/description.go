package scene

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setPair(x, y *float64, v *pair) {
	if v != nil {
		*x, *y = v[0], v[1]
	}
}

func setIntPair(x, y *int, v *intPair) {
	if v != nil {
		*x, *y = v[0], v[1]
	}
}

func setBoolPair(x, y *bool, v *boolPair) {
	if v != nil {
		*x, *y = v[0], v[1]
	}
}

func setColor(dst *layout.Color, c *Color) {
	if c != nil {
		*dst = layout.Color(*c)
	}
}

// description builds one description of p. It starts from the defaults, or
// from a copy of an earlier description of the same part when inherit is set.
func (b *builder) description(p *model.Part, f descFile) (*model.Description, error) {
	state := stateName(f.State)
	where := fmt.Sprintf("%s[%s %.2f]", p.Name, state, f.Value)

	d := model.NewDescription(state, f.Value)
	if f.Inherit != nil {
		from := inheritFrom(p, *f.Inherit)
		if from == nil {
			return nil, fmt.Errorf("inherit: %w: state %q", ErrUnknownReference, *f.Inherit)
		}
		*d = *from
		d.Image.Tweens = slices.Clone(from.Image.Tweens)
		d.State, d.Value = state, f.Value
	}

	set(&d.Visible, f.Visible)
	setPair(&d.AlignX, &d.AlignY, f.Align)
	setBoolPair(&d.FixedW, &d.FixedH, f.Fixed)
	setIntPair(&d.Min.Width, &d.Min.Height, f.Min)
	setIntPair(&d.Max.Width, &d.Max.Height, f.Max)
	setIntPair(&d.StepX, &d.StepY, f.Step)
	setColor(&d.Color, f.Color)
	setColor(&d.Color2, f.Color2)
	setColor(&d.Color3, f.Color3)
	set(&d.ColorClass, f.ColorClass)
	if f.ClipTo != nil {
		d.ClipTo = b.ref(where+".clip_to", *f.ClipTo)
	}
	if f.Proxy != nil {
		d.ProxySrc = b.ref(where+".proxy_source", *f.Proxy)
	}

	if a := f.Aspect; a != nil {
		set(&d.Aspect.Min, a.Min)
		set(&d.Aspect.Max, a.Max)
		if a.Prefer != nil {
			pref, err := model.ParseAspectPrefer(*a.Prefer)
			if err != nil {
				return nil, err
			}
			d.Aspect.Prefer = pref
		}
	}

	b.rel(where+".rel1", &d.Rel1, f.Rel1)
	b.rel(where+".rel2", &d.Rel2, f.Rel2)
	b.mapping(where+".map", &d.Map, f.Map)

	if pf := f.Persp; pf != nil {
		set(&d.Persp.ZPlane, pf.ZPlane)
		set(&d.Persp.Focal, pf.Focal)
	}

	if img := f.Image; img != nil {
		if img.Normal != nil {
			d.Image.ID = b.image(where+".image.normal", *img.Normal)
		}
		if img.Tweens != nil {
			d.Image.Tweens = make([]int, 0, len(img.Tweens))
			for _, name := range img.Tweens {
				d.Image.Tweens = append(d.Image.Tweens, b.image(where+".image.tweens", name))
			}
		}
		if e := img.Border; e != nil {
			d.Image.Border = layout.EdgeTRBL(e[0], e[1], e[2], e[3])
		}
		set(&d.Image.BorderScaleBy, img.BorderScaleBy)
		set(&d.Image.MinLimit, img.MinLimit)
		set(&d.Image.MaxLimit, img.MaxLimit)
	}

	if fl := f.Fill; fl != nil {
		if fl.Type != nil {
			switch *fl.Type {
			case "scale":
				d.Fill.Type = model.FillScale
			case "tile":
				d.Fill.Type = model.FillTile
			default:
				return nil, fmt.Errorf("unknown fill type %q", *fl.Type)
			}
		}
		set(&d.Fill.Smooth, fl.Smooth)
		if o := fl.Origin; o != nil {
			setPair(&d.Fill.PosRelX, &d.Fill.PosRelY, o.Relative)
			setIntPair(&d.Fill.PosAbsX, &d.Fill.PosAbsY, o.Offset)
		}
		if sz := fl.Size; sz != nil {
			setPair(&d.Fill.RelX, &d.Fill.RelY, sz.Relative)
			setIntPair(&d.Fill.AbsX, &d.Fill.AbsY, sz.Offset)
		}
	}

	if t := f.Text; t != nil {
		set(&d.Text.Text, t.Text)
		set(&d.Text.Font, t.Font)
		set(&d.Text.Style, t.Style)
		set(&d.Text.Size, t.Size)
		set(&d.Text.Wrap, t.Wrap)
		setBoolPair(&d.Text.MinX, &d.Text.MinY, t.Min)
		setBoolPair(&d.Text.MaxX, &d.Text.MaxY, t.Max)
		setPair(&d.Text.AlignX, &d.Text.AlignY, t.Align)
		set(&d.Text.Ellipsis, t.Ellipsis)
	}

	if bx := f.Box; bx != nil {
		set(&d.Box.Layout, bx.Layout)
		setPair(&d.Box.AlignX, &d.Box.AlignY, bx.Align)
		setIntPair(&d.Box.PaddingX, &d.Box.PaddingY, bx.Padding)
		setBoolPair(&d.Box.MinH, &d.Box.MinV, bx.Min)
		if bx.Homogeneous != nil {
			h, err := parseHomogeneous(*bx.Homogeneous)
			if err != nil {
				return nil, err
			}
			d.Box.Homogeneous = h
		}
	}
	return d, nil
}

func inheritFrom(p *model.Part, state string) *model.Description {
	var found *model.Description
	p.Descriptions(func(d *model.Description) {
		if found == nil && d.State == state {
			found = d
		}
	})
	return found
}

func (b *builder) rel(where string, dst *model.Rel, f *relFile) {
	if f == nil {
		return
	}
	setPair(&dst.RelativeX, &dst.RelativeY, f.Relative)
	setIntPair(&dst.OffsetX, &dst.OffsetY, f.Offset)
	if f.To != nil {
		id := b.ref(where+".to", *f.To)
		dst.ToX, dst.ToY = id, id
	}
	if f.ToX != nil {
		dst.ToX = b.ref(where+".to_x", *f.ToX)
	}
	if f.ToY != nil {
		dst.ToY = b.ref(where+".to_y", *f.ToY)
	}
}

func (b *builder) mapping(where string, dst *model.Map, f *mapFile) {
	if f == nil {
		return
	}
	set(&dst.On, f.On)
	if f.Center != nil {
		dst.Center = b.ref(where+".center", *f.Center)
	}
	if f.Light != nil {
		dst.Light = b.ref(where+".light", *f.Light)
	}
	if f.Perspective != nil {
		dst.Persp = b.ref(where+".perspective", *f.Perspective)
	}
	set(&dst.PerspOn, f.PerspectiveOn)
	set(&dst.Backcull, f.Backcull)
	set(&dst.Smooth, f.Smooth)
	set(&dst.Alpha, f.Alpha)
	if r := f.Rotation; r != nil {
		dst.RotX, dst.RotY, dst.RotZ = r[0], r[1], r[2]
	}
	setPair(&dst.ZoomX, &dst.ZoomY, f.Zoom)
}

func parseHomogeneous(s string) (model.Homogeneous, error) {
	switch s {
	case "", "none":
		return model.HomogeneousNone, nil
	case "table":
		return model.HomogeneousTable, nil
	case "item":
		return model.HomogeneousItem, nil
	default:
		return 0, fmt.Errorf("unknown homogeneous mode %q", s)
	}
}
