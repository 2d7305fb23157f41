package model

import "fmt"

// NoRef marks an absent part reference.
const NoRef = -1

// PartType is the closed set of part kinds. Solver and apply stages switch
// on it exhaustively.
type PartType uint8

const (
	PartRectangle PartType = iota
	PartImage
	PartText
	PartTextblock
	PartBox
	PartTable
	PartSwallow
	PartGroup
	PartExternal
	PartProxy
	PartSpacer
)

var partTypeNames = [...]string{
	PartRectangle: "rectangle",
	PartImage:     "image",
	PartText:      "text",
	PartTextblock: "textblock",
	PartBox:       "box",
	PartTable:     "table",
	PartSwallow:   "swallow",
	PartGroup:     "group",
	PartExternal:  "external",
	PartProxy:     "proxy",
	PartSpacer:    "spacer",
}

func (t PartType) String() string {
	if int(t) < len(partTypeNames) {
		return partTypeNames[t]
	}
	return fmt.Sprintf("PartType(%d)", t)
}

// ParsePartType maps a type name to its PartType.
func ParsePartType(s string) (PartType, error) {
	for i, name := range partTypeNames {
		if name == s {
			return PartType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown part type %q", s)
}

// IsTextual reports whether the part's intrinsic size comes from text.
func (t PartType) IsTextual() bool {
	return t == PartText || t == PartTextblock
}

// IsContainer reports whether the part packs child objects.
func (t PartType) IsContainer() bool {
	return t == PartBox || t == PartTable
}

// Embeds reports whether the part hosts an externally provided object.
func (t PartType) Embeds() bool {
	return t == PartSwallow || t == PartGroup || t == PartExternal
}

// AspectPrefer selects which dimension yields when enforcing an aspect ratio.
type AspectPrefer uint8

const (
	AspectNone AspectPrefer = iota
	AspectVertical
	AspectHorizontal
	AspectBoth
	AspectSource
)

var aspectNames = [...]string{
	AspectNone:       "none",
	AspectVertical:   "vertical",
	AspectHorizontal: "horizontal",
	AspectBoth:       "both",
	AspectSource:     "source",
}

func (a AspectPrefer) String() string {
	if int(a) < len(aspectNames) {
		return aspectNames[a]
	}
	return fmt.Sprintf("AspectPrefer(%d)", a)
}

// ParseAspectPrefer maps a preference name to its AspectPrefer.
func ParseAspectPrefer(s string) (AspectPrefer, error) {
	if s == "" {
		return AspectNone, nil
	}
	for i, name := range aspectNames {
		if name == s {
			return AspectPrefer(i), nil
		}
	}
	return 0, fmt.Errorf("unknown aspect preference %q", s)
}

// FillType selects how image content covers the solved box.
type FillType uint8

const (
	FillScale FillType = iota
	FillTile
)

// Homogeneous is the table cell sizing mode.
type Homogeneous uint8

const (
	HomogeneousNone Homogeneous = iota
	HomogeneousTable
	HomogeneousItem
)
