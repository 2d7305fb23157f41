package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-parts/internal/calc"
	"github.com/grindlemire/go-parts/internal/layout"
	"github.com/grindlemire/go-parts/internal/model"
)

// ErrUnknownReference is returned when a name in the file does not match
// any part, image or description state.
var ErrUnknownReference = errors.New("unknown reference")

// DefaultState is the state name of a description that does not set one.
const DefaultState = "default"

// Image is a named image with its natural size. Glyph is the character a
// terminal backend fills it with.
type Image struct {
	Name  string
	Size  layout.Size
	Glyph rune
}

// State is an initial description choice for a part.
type State struct {
	Part  int
	State string
	Value float64
}

// Hint attaches swallow hints to a part.
type Hint struct {
	Part  int
	Hints calc.SwallowHints
}

// Vec is an x/y pair of drag values.
type Vec struct {
	X, Y float64
}

// Drag is the initial drag configuration of a part. Nil fields are left at
// their defaults.
type Drag struct {
	Part  int
	Value *Vec
	Size  *Vec
	Step  *Vec
	Page  *Vec
}

// Transition describes an animated change of a part's description.
type Transition struct {
	Part   int
	State  string
	Value  float64
	Tween  calc.Tween
	Factor float64
}

// Scene is a decoded scene file.
type Scene struct {
	Collection   *model.Collection
	Size         layout.Size // zero when the file does not set one
	Scale        float64     // zero when the file does not set one
	Perspective  *calc.Perspective
	ColorClasses map[string]calc.ColorClass
	Images       []Image
	States       []State
	Hints        []Hint
	Drags        []Drag
	Transitions  []Transition
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Decode reads one scene document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f fileScene
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	return build(&f)
}

// ImageID returns the id of the named image.
func (s *Scene) ImageID(name string) (int, bool) {
	i := slices.IndexFunc(s.Images, func(img Image) bool { return img.Name == name })
	return i, i >= 0
}

// Options returns the context options the scene configures.
func (s *Scene) Options() []calc.Option {
	var opts []calc.Option
	if s.Size != (layout.Size{}) {
		opts = append(opts, calc.WithGeometry(layout.NewRect(0, 0, s.Size.Width, s.Size.Height)))
	}
	if s.Scale > 0 {
		opts = append(opts, calc.WithScale(s.Scale))
	}
	for name, cc := range s.ColorClasses {
		opts = append(opts, calc.WithColorClass(name, cc))
	}
	return opts
}

// Apply puts c into the scene's initial state, recalculating once at the end.
func (s *Scene) Apply(c *calc.Context) error {
	c.Freeze()
	defer c.Thaw()

	if s.Perspective != nil {
		c.SetPerspective(s.Perspective)
	}
	for _, h := range s.Hints {
		if err := c.SetSwallowHints(h.Part, h.Hints); err != nil {
			return err
		}
	}
	for _, st := range s.States {
		if err := c.SetState(st.Part, st.State, st.Value); err != nil {
			return err
		}
	}
	for _, d := range s.Drags {
		if err := applyDrag(c, d); err != nil {
			return err
		}
	}
	return nil
}

func applyDrag(c *calc.Context, d Drag) error {
	if d.Size != nil {
		if err := c.DragSizeSet(d.Part, d.Size.X, d.Size.Y); err != nil {
			return err
		}
	}
	if d.Step != nil {
		if err := c.DragStepSet(d.Part, d.Step.X, d.Step.Y); err != nil {
			return err
		}
	}
	if d.Page != nil {
		if err := c.DragPageSet(d.Part, d.Page.X, d.Page.Y); err != nil {
			return err
		}
	}
	if d.Value != nil {
		return c.DragValueSet(d.Part, d.Value.X, d.Value.Y)
	}
	return nil
}

func build(f *fileScene) (*Scene, error) {
	b := &builder{
		parts:  make(map[string]int, len(f.Parts)),
		images: make(map[string]int, len(f.Images)),
	}
	s := &Scene{
		Scale:        f.Scale,
		ColorClasses: make(map[string]calc.ColorClass, len(f.ColorClasses)),
	}
	if f.Size != nil {
		s.Size = layout.Size{Width: f.Size.Width, Height: f.Size.Height}
	}
	if f.Perspective != nil {
		s.Perspective = &calc.Perspective{
			X:     f.Perspective.X,
			Y:     f.Perspective.Y,
			Z0:    f.Perspective.Z0,
			Focal: f.Perspective.Focal,
		}
	}
	for name, cc := range f.ColorClasses {
		s.ColorClasses[name] = calc.ColorClass{
			Color:  colorOr(cc.Color),
			Color2: colorOr(cc.Color2),
			Color3: colorOr(cc.Color3),
		}
	}

	for i, img := range f.Images {
		if _, dup := b.images[img.Name]; dup {
			return nil, fmt.Errorf("duplicate image %q", img.Name)
		}
		b.images[img.Name] = i
		glyph := '#'
		if img.Glyph != "" {
			glyph, _ = utf8.DecodeRuneInString(img.Glyph)
		}
		s.Images = append(s.Images, Image{
			Name:  img.Name,
			Size:  layout.Size{Width: img.Width, Height: img.Height},
			Glyph: glyph,
		})
	}

	for i, p := range f.Parts {
		if _, dup := b.parts[p.Name]; !dup {
			b.parts[p.Name] = i
		}
	}

	parts := make([]*model.Part, 0, len(f.Parts))
	for _, pf := range f.Parts {
		p, err := b.part(pf)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	if b.err != nil {
		return nil, b.err
	}

	coll, err := model.NewCollection(f.Name, parts)
	if err != nil {
		return nil, err
	}
	s.Collection = coll

	if err := b.runtime(f, s); err != nil {
		return nil, err
	}
	return s, nil
}

func colorOr(c *Color) layout.Color {
	if c == nil {
		return layout.White
	}
	return layout.Color(*c)
}

// builder resolves names while converting file types. The first failed
// lookup is kept in err; later conversions still run but their result is
// discarded.
type builder struct {
	parts  map[string]int
	images map[string]int
	err    error
}

func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *builder) ref(where, name string) int {
	if name == "" {
		return model.NoRef
	}
	id, ok := b.parts[name]
	if !ok {
		b.fail(fmt.Errorf("%s: %w: part %q", where, ErrUnknownReference, name))
		return model.NoRef
	}
	return id
}

func (b *builder) image(where, name string) int {
	if name == "" {
		return model.NoRef
	}
	id, ok := b.images[name]
	if !ok {
		b.fail(fmt.Errorf("%s: %w: image %q", where, ErrUnknownReference, name))
		return model.NoRef
	}
	return id
}

func (b *builder) partID(where, name string) (int, error) {
	id, ok := b.parts[name]
	if !ok {
		return model.NoRef, fmt.Errorf("%s: %w: part %q", where, ErrUnknownReference, name)
	}
	return id, nil
}

func (b *builder) part(pf partFile) (*model.Part, error) {
	typ := model.PartRectangle
	if pf.Type != "" {
		t, err := model.ParsePartType(pf.Type)
		if err != nil {
			return nil, fmt.Errorf("part %q: %w", pf.Name, err)
		}
		typ = t
	}

	p := model.NewPart(pf.Name, typ)
	p.Scale = pf.Scale
	p.ClipTo = b.ref(pf.Name+".clip_to", pf.ClipTo)
	if d := pf.Dragable; d != nil {
		p.Dragable = model.Dragable{
			X:       dragDir(d.X),
			Y:       dragDir(d.Y),
			StepX:   d.StepX,
			StepY:   d.StepY,
			CountX:  d.CountX,
			CountY:  d.CountY,
			Confine: b.ref(pf.Name+".dragable.confine", d.Confine),
			Events:  b.ref(pf.Name+".dragable.events", d.Events),
		}
	}

	for i, df := range pf.Descriptions {
		d, err := b.description(p, df)
		if err != nil {
			return nil, fmt.Errorf("part %q description %d: %w", pf.Name, i, err)
		}
		if i == 0 {
			p.Default = d
		} else {
			p.Others = append(p.Others, d)
		}
	}
	return p, nil
}

func dragDir(v int) model.DragDir {
	switch {
	case v > 0:
		return model.DragNormal
	case v < 0:
		return model.DragInverted
	default:
		return model.DragOff
	}
}

func (b *builder) runtime(f *fileScene, s *Scene) error {
	for _, st := range f.States {
		id, err := b.partID("states", st.Part)
		if err != nil {
			return err
		}
		s.States = append(s.States, State{Part: id, State: stateName(st.State), Value: st.Value})
	}

	for _, h := range f.Hints {
		id, err := b.partID("hints", h.Part)
		if err != nil {
			return err
		}
		mode, err := parseAspectControl(h.Mode)
		if err != nil {
			return fmt.Errorf("hints %q: %w", h.Part, err)
		}
		hints := calc.SwallowHints{AspectMode: mode}
		if h.Min != nil {
			hints.Min = layout.Size{Width: h.Min[0], Height: h.Min[1]}
		}
		if h.Max != nil {
			hints.Max = layout.Size{Width: h.Max[0], Height: h.Max[1]}
		}
		if h.Aspect != nil {
			hints.AspectW, hints.AspectH = h.Aspect[0], h.Aspect[1]
		}
		s.Hints = append(s.Hints, Hint{Part: id, Hints: hints})
	}

	for _, d := range f.Drags {
		id, err := b.partID("drags", d.Part)
		if err != nil {
			return err
		}
		s.Drags = append(s.Drags, Drag{
			Part:  id,
			Value: vec(d.Value),
			Size:  vec(d.Size),
			Step:  vec(d.Step),
			Page:  vec(d.Page),
		})
	}

	for _, t := range f.Transitions {
		id, err := b.partID("transitions", t.Part)
		if err != nil {
			return err
		}
		tween := calc.TweenLinear
		if t.Tween != "" {
			if tween, err = calc.ParseTween(t.Tween); err != nil {
				return fmt.Errorf("transitions %q: %w", t.Part, err)
			}
		}
		s.Transitions = append(s.Transitions, Transition{
			Part:   id,
			State:  stateName(t.State),
			Value:  t.Value,
			Tween:  tween,
			Factor: t.Factor,
		})
	}
	return nil
}

func stateName(s string) string {
	if s == "" {
		return DefaultState
	}
	return s
}

func vec(p *pair) *Vec {
	if p == nil {
		return nil
	}
	return &Vec{X: p[0], Y: p[1]}
}

func parseAspectControl(s string) (calc.AspectControl, error) {
	switch s {
	case "", "default":
		return calc.AspectControlDefault, nil
	case "neither", "none":
		return calc.AspectControlNeither, nil
	case "horizontal":
		return calc.AspectControlHorizontal, nil
	case "vertical":
		return calc.AspectControlVertical, nil
	case "both":
		return calc.AspectControlBoth, nil
	default:
		return 0, fmt.Errorf("unknown aspect control %q", s)
	}
}
