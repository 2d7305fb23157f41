package calc

import (
	"go.uber.org/zap"

	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

// imageFrame picks the image shown at pos. While transitioning, the frames
// are the "from" image, the "to" description's tweens and the "to" image,
// and pos selects one of them.
func (c *Context) imageFrame(rp *realPart, pos float64) int {
	from := rp.param1.desc.Image.ID
	if rp.param2 == nil {
		return from
	}
	to := rp.param2.desc.Image
	count := 2 + len(to.Tweens)
	n := int(pos * (float64(count) - 0.5))
	switch {
	case n <= 0:
		return from
	case n >= count-1:
		return to.ID
	default:
		return to.Tweens[n-1]
	}
}

// imageNaturalSize reports the pixel size of the image shown at pos.
func (c *Context) imageNaturalSize(rp *realPart, pos float64) (layout.Size, bool) {
	obj, ok := rp.object.(ImageObject)
	if !ok {
		return layout.Size{}, false
	}
	id := c.imageFrame(rp, pos)
	if id == model.NoRef {
		return layout.Size{}, false
	}
	sz, err := obj.ImageSize(id)
	if err != nil {
		c.log.Warn("reading image size failed",
			append(c.partFields(rp), zap.Int("image", id), zap.Error(err))...)
		return layout.Size{}, false
	}
	return sz, true
}

// fill computes the fill rectangle of image and proxy parts. Tiled fills
// are relative to the content's natural size, scaled fills to the solved box.
func (c *Context) fill(rp *realPart, s *slot, p *CalcParams, pos float64) {
	var natural layout.Size
	var haveNatural bool
	switch rp.part.Type {
	case model.PartImage:
		if s.desc.Fill.Type == model.FillTile {
			natural, haveNatural = c.imageNaturalSize(rp, pos)
		}
	case model.PartProxy:
		if s.desc.Fill.Type == model.FillTile && s.proxy != model.NoRef {
			natural, haveNatural = c.parts[s.proxy].geom.Size(), true
		}
	default:
		return
	}

	f := s.desc.Fill
	fw, fh := p.Rect.Width, p.Rect.Height
	if haveNatural {
		fw, fh = natural.Width, natural.Height
	}
	p.Fill = FillParams{
		Rect: layout.Rect{
			X:      f.PosAbsX + layout.Round(f.PosRelX*float64(fw)),
			Y:      f.PosAbsY + layout.Round(f.PosRelY*float64(fh)),
			Width:  f.AbsX + layout.Round(f.RelX*float64(fw)),
			Height: f.AbsY + layout.Round(f.RelY*float64(fh)),
		},
		Smooth: f.Smooth,
		Tile:   f.Type == model.FillTile,
	}
}
