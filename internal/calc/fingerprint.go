package calc

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/grindlemire/go-parts/internal/layout"
)

// fingerprinter accumulates everything the apply stage pushes for one part
// so an unchanged part can skip touching its render object.
type fingerprinter struct {
	buf []byte
}

func (f *fingerprinter) reset(buf []byte) {
	f.buf = buf[:0]
}

func (f *fingerprinter) putInt(v int) {
	f.buf = binary.LittleEndian.AppendUint64(f.buf, uint64(int64(v)))
}

func (f *fingerprinter) putFloat(v float64) {
	f.buf = binary.LittleEndian.AppendUint64(f.buf, math.Float64bits(v))
}

func (f *fingerprinter) putBool(v bool) {
	if v {
		f.buf = append(f.buf, 1)
	} else {
		f.buf = append(f.buf, 0)
	}
}

func (f *fingerprinter) putString(s string) {
	f.putInt(len(s))
	f.buf = append(f.buf, s...)
}

func (f *fingerprinter) putRect(r layout.Rect) {
	f.putInt(r.X)
	f.putInt(r.Y)
	f.putInt(r.Width)
	f.putInt(r.Height)
}

func (f *fingerprinter) putColor(c layout.Color) {
	f.buf = append(f.buf, c.R, c.G, c.B, c.A)
}

func (f *fingerprinter) putPoint3(p layout.Point3) {
	f.putInt(p.X)
	f.putInt(p.Y)
	f.putInt(p.Z)
}

func (f *fingerprinter) sum() uint64 {
	return xxhash.Sum64(f.buf)
}

// fingerprint hashes the applied state of rp.
func (c *Context) fingerprint(rp *realPart, frame int, text *TextState) uint64 {
	var f fingerprinter
	f.reset(c.fp)
	defer func() { c.fp = f.buf }()

	p := &rp.final
	f.putInt(c.box.X)
	f.putInt(c.box.Y)
	f.putRect(p.Rect)
	f.putBool(p.Visible)
	f.putBool(p.Smooth)
	f.putColor(p.Color)
	f.putInt(c.clipFor(rp))
	f.putInt(frame)
	f.putInt(proxySourceID(rp))

	f.putRect(p.Fill.Rect)
	f.putBool(p.Fill.Smooth)
	f.putBool(p.Fill.Tile)
	f.putInt(p.Image.Border.Top)
	f.putInt(p.Image.Border.Right)
	f.putInt(p.Image.Border.Bottom)
	f.putInt(p.Image.Border.Left)
	f.putFloat(p.Image.ScaleBy)

	if text != nil {
		f.putString(text.Text)
		f.putString(text.Font)
		f.putString(text.Style)
		f.putInt(text.Size)
		f.putBool(text.Wrap)
		f.putFloat(text.AlignX)
		f.putFloat(text.AlignY)
		f.putFloat(text.Ellipsis)
		f.putColor(text.Color2)
		f.putColor(text.Color3)
	}

	f.putString(p.Box.Layout)
	f.putFloat(p.Box.AlignX)
	f.putFloat(p.Box.AlignY)
	f.putInt(p.Box.PaddingX)
	f.putInt(p.Box.PaddingY)
	f.putInt(int(p.Box.Homogeneous))

	f.putBool(p.Map != nil)
	if m := p.Map; m != nil {
		f.putPoint3(m.Center)
		f.putFloat(m.RotX)
		f.putFloat(m.RotY)
		f.putFloat(m.RotZ)
		f.putFloat(m.ZoomX)
		f.putFloat(m.ZoomY)
		f.putBool(m.Lighted)
		f.putPoint3(m.Light)
		f.putColor(m.LightColor)
		f.putColor(m.Ambient)
		f.putBool(m.PerspOn)
		f.putPoint3(m.Persp)
		f.putInt(m.Focal)
		f.putBool(rp.chosen.Map.Smooth)
		f.putBool(rp.chosen.Map.Alpha)
		f.putBool(rp.chosen.Map.Backcull)
		if pp := c.fallbackPerspective(); m.PerspFallback && pp != nil {
			f.putInt(pp.X)
			f.putInt(pp.Y)
			f.putInt(pp.Z0)
			f.putInt(pp.Focal)
		}
	}
	return f.sum()
}
