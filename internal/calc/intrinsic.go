package calc

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-parts/internal/model"
)

// intrinsic lets text, container and image parts contribute size bounds
// from their content.
func (c *Context) intrinsic(rp *realPart, d, chosen *model.Description, ev eval, lim *limits, pos float64) {
	switch rp.part.Type {
	case model.PartText, model.PartTextblock:
		c.textLimits(rp, d, chosen, ev, lim)
	case model.PartBox, model.PartTable:
		c.containerLimits(rp, d, lim)
	case model.PartImage:
		c.imageLimits(rp, d, lim, pos)
	case model.PartRectangle, model.PartSwallow, model.PartGroup, model.PartExternal,
		model.PartProxy, model.PartSpacer:
	}
	lim.normalize()
}

// textState builds the text attributes of description d.
func (c *Context) textState(rp *realPart, d *model.Description) TextState {
	return TextState{
		Text:     d.Text.Text,
		Font:     d.Text.Font,
		Style:    d.Text.Style,
		Size:     scaleInt(d.Text.Size, c.scaleFor(rp.part)),
		Wrap:     d.Text.Wrap,
		AlignX:   d.Text.AlignX,
		AlignY:   d.Text.AlignY,
		Ellipsis: d.Text.Ellipsis,
		Color2:   d.Color2,
		Color3:   d.Color3,
	}
}

func (c *Context) textLimits(rp *realPart, d, chosen *model.Description, ev eval, lim *limits) {
	t := chosen.Text
	if !t.MinX && !t.MinY && !t.MaxX && !t.MaxY {
		return
	}
	obj, ok := rp.object.(TextObject)
	if !ok {
		return
	}
	wrap := 0
	if d.Text.Wrap && !t.MinX && !t.MaxX {
		wrap = max(int(ev.w), 1)
	}
	sz, err := obj.MeasureText(c.textState(rp, d), wrap)
	if err != nil {
		c.log.Warn("measuring text failed", append(c.partFields(rp), zap.Error(err))...)
		return
	}
	if t.MinX {
		lim.minW = max(lim.minW, sz.Width)
	}
	if t.MinY {
		lim.minH = max(lim.minH, sz.Height)
	}
	if t.MaxX && (lim.maxW < 0 || sz.Width < lim.maxW) {
		lim.maxW = sz.Width
	}
	if t.MaxY && (lim.maxH < 0 || sz.Height < lim.maxH) {
		lim.maxH = sz.Height
	}
}

func (c *Context) containerLimits(rp *realPart, d *model.Description, lim *limits) {
	if !d.Box.MinH && !d.Box.MinV {
		return
	}
	obj, ok := rp.object.(ContainerObject)
	if !ok {
		return
	}
	sz := obj.MinSize()
	if d.Box.MinH {
		lim.minW = max(lim.minW, sz.Width)
	}
	if d.Box.MinV {
		lim.minH = max(lim.minH, sz.Height)
	}
}

func (c *Context) imageLimits(rp *realPart, d *model.Description, lim *limits, pos float64) {
	if !d.Image.MinLimit && !d.Image.MaxLimit {
		return
	}
	sz, ok := c.imageNaturalSize(rp, pos)
	if !ok {
		return
	}
	if d.Image.MinLimit {
		lim.minW = max(lim.minW, sz.Width)
		lim.minH = max(lim.minH, sz.Height)
	}
	if d.Image.MaxLimit {
		lim.maxW = sz.Width
		lim.maxH = sz.Height
	}
}
