package scene

// The types in this file mirror the YAML layout. Pointer fields are
// optional and leave the inherited value untouched when absent.

type pair [2]float64

type intPair [2]int

type boolPair [2]bool

type sizeFile struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type fileScene struct {
	Name         string                    `yaml:"name"`
	Size         *sizeFile                 `yaml:"size"`
	Scale        float64                   `yaml:"scale"`
	Perspective  *perspectiveFile          `yaml:"perspective"`
	ColorClasses map[string]colorClassFile `yaml:"color_classes"`
	Images       []imageFile               `yaml:"images"`
	Parts        []partFile                `yaml:"parts"`
	States       []stateFile               `yaml:"states"`
	Hints        []hintFile                `yaml:"hints"`
	Drags        []dragFile                `yaml:"drags"`
	Transitions  []transitionFile          `yaml:"transitions"`
}

type perspectiveFile struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	Z0    int `yaml:"z0"`
	Focal int `yaml:"focal"`
}

type colorClassFile struct {
	Color  *Color `yaml:"color"`
	Color2 *Color `yaml:"color2"`
	Color3 *Color `yaml:"color3"`
}

type imageFile struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Glyph  string `yaml:"glyph"`
}

type partFile struct {
	Name         string        `yaml:"name"`
	Type         string        `yaml:"type"`
	Scale        bool          `yaml:"scale"`
	ClipTo       string        `yaml:"clip_to"`
	Dragable     *dragableFile `yaml:"dragable"`
	Descriptions []descFile    `yaml:"descriptions"`
}

type dragableFile struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	StepX   int    `yaml:"step_x"`
	StepY   int    `yaml:"step_y"`
	CountX  int    `yaml:"count_x"`
	CountY  int    `yaml:"count_y"`
	Confine string `yaml:"confine"`
	Events  string `yaml:"events"`
}

type descFile struct {
	State      string      `yaml:"state"`
	Value      float64     `yaml:"value"`
	Inherit    *string     `yaml:"inherit"`
	Visible    *bool       `yaml:"visible"`
	Align      *pair       `yaml:"align"`
	Fixed      *boolPair   `yaml:"fixed"`
	Min        *intPair    `yaml:"min"`
	Max        *intPair    `yaml:"max"`
	Step       *intPair    `yaml:"step"`
	Aspect     *aspectFile `yaml:"aspect"`
	Rel1       *relFile    `yaml:"rel1"`
	Rel2       *relFile    `yaml:"rel2"`
	Color      *Color      `yaml:"color"`
	Color2     *Color      `yaml:"color2"`
	Color3     *Color      `yaml:"color3"`
	ColorClass *string     `yaml:"color_class"`
	ClipTo     *string     `yaml:"clip_to"`
	Map        *mapFile    `yaml:"map"`
	Persp      *perspFile  `yaml:"perspective"`
	Image      *imageDesc  `yaml:"image"`
	Fill       *fillFile   `yaml:"fill"`
	Text       *textFile   `yaml:"text"`
	Box        *boxFile    `yaml:"box"`
	Proxy      *string     `yaml:"proxy_source"`
}

type aspectFile struct {
	Min    *float64 `yaml:"min"`
	Max    *float64 `yaml:"max"`
	Prefer *string  `yaml:"prefer"`
}

// relFile anchors one corner. To sets both axes; ToX and ToY override it.
type relFile struct {
	Relative *pair    `yaml:"relative"`
	Offset   *intPair `yaml:"offset"`
	To       *string  `yaml:"to"`
	ToX      *string  `yaml:"to_x"`
	ToY      *string  `yaml:"to_y"`
}

type mapFile struct {
	On            *bool       `yaml:"on"`
	Center        *string     `yaml:"center"`
	Light         *string     `yaml:"light"`
	Perspective   *string     `yaml:"perspective"`
	PerspectiveOn *bool       `yaml:"perspective_on"`
	Backcull      *bool       `yaml:"backcull"`
	Smooth        *bool       `yaml:"smooth"`
	Alpha         *bool       `yaml:"alpha"`
	Rotation      *[3]float64 `yaml:"rotation"`
	Zoom          *pair       `yaml:"zoom"`
}

type perspFile struct {
	ZPlane *int `yaml:"zplane"`
	Focal  *int `yaml:"focal"`
}

type imageDesc struct {
	Normal        *string  `yaml:"normal"`
	Tweens        []string `yaml:"tweens"`
	Border        *[4]int  `yaml:"border"` // top, right, bottom, left
	BorderScaleBy *float64 `yaml:"border_scale_by"`
	MinLimit      *bool    `yaml:"min_limit"`
	MaxLimit      *bool    `yaml:"max_limit"`
}

type fillFile struct {
	Type   *string     `yaml:"type"`
	Smooth *bool       `yaml:"smooth"`
	Origin *fillCorner `yaml:"origin"`
	Size   *fillCorner `yaml:"size"`
}

type fillCorner struct {
	Relative *pair    `yaml:"relative"`
	Offset   *intPair `yaml:"offset"`
}

type textFile struct {
	Text     *string   `yaml:"text"`
	Font     *string   `yaml:"font"`
	Style    *string   `yaml:"style"`
	Size     *int      `yaml:"size"`
	Wrap     *bool     `yaml:"wrap"`
	Min      *boolPair `yaml:"min"`
	Max      *boolPair `yaml:"max"`
	Align    *pair     `yaml:"align"`
	Ellipsis *float64  `yaml:"ellipsis"`
}

type boxFile struct {
	Layout      *string   `yaml:"layout"`
	Align       *pair     `yaml:"align"`
	Padding     *intPair  `yaml:"padding"`
	Min         *boolPair `yaml:"min"`
	Homogeneous *string   `yaml:"homogeneous"`
}

type stateFile struct {
	Part  string  `yaml:"part"`
	State string  `yaml:"state"`
	Value float64 `yaml:"value"`
}

type hintFile struct {
	Part   string   `yaml:"part"`
	Min    *intPair `yaml:"min"`
	Max    *intPair `yaml:"max"`
	Aspect *intPair `yaml:"aspect"`
	Mode   string   `yaml:"mode"`
}

type dragFile struct {
	Part  string `yaml:"part"`
	Value *pair  `yaml:"value"`
	Size  *pair  `yaml:"size"`
	Step  *pair  `yaml:"step"`
	Page  *pair  `yaml:"page"`
}

type transitionFile struct {
	Part   string  `yaml:"part"`
	State  string  `yaml:"state"`
	Value  float64 `yaml:"value"`
	Tween  string  `yaml:"tween"`
	Factor float64 `yaml:"factor"`
}
