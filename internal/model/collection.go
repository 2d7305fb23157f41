package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDefaultDescription is returned when a part has no default description.
	ErrNoDefaultDescription = errors.New("part has no default description")
	// ErrDuplicatePart is returned when two parts share a name.
	ErrDuplicatePart = errors.New("duplicate part name")
)

// Collection is a group of parts instantiated together. Part ids are their
// index in Parts.
type Collection struct {
	ID    int
	Name  string
	Parts []*Part

	byName map[string]int
}

// NewCollection assigns part ids in order and validates the collection.
func NewCollection(name string, parts []*Part) (*Collection, error) {
	c := &Collection{
		Name:   name,
		Parts:  parts,
		byName: make(map[string]int, len(parts)),
	}
	for i, p := range parts {
		if _, ok := c.byName[p.Name]; ok {
			return nil, fmt.Errorf("collection %q: %w: %q", name, ErrDuplicatePart, p.Name)
		}
		p.ID = i
		c.byName[p.Name] = i
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the load-time invariants that cannot be degraded around.
func (c *Collection) Validate() error {
	for _, p := range c.Parts {
		if p.Default == nil {
			return fmt.Errorf("collection %q part %q: %w", c.Name, p.Name, ErrNoDefaultDescription)
		}
	}
	return nil
}

// PartID returns the id of the named part.
func (c *Collection) PartID(name string) (int, bool) {
	id, ok := c.byName[name]
	return id, ok
}

// Part returns the part with the given id, or nil if out of range.
func (c *Collection) Part(id int) *Part {
	if id < 0 || id >= len(c.Parts) {
		return nil
	}
	return c.Parts[id]
}

// ValidRef reports whether id is NoRef or names an existing part.
func (c *Collection) ValidRef(id int) bool {
	return id == NoRef || (id >= 0 && id < len(c.Parts))
}

// DanglingRef is a reference to a part id that does not exist.
type DanglingRef struct {
	Part        string
	Description string
	Value       float64
	Field       string
	Ref         int
}

func (r DanglingRef) String() string {
	if r.Description == "" {
		return fmt.Sprintf("part %q %s -> %d", r.Part, r.Field, r.Ref)
	}
	return fmt.Sprintf("part %q description %q %.2f %s -> %d", r.Part, r.Description, r.Value, r.Field, r.Ref)
}

// DanglingRefs lists every reference that points outside the collection.
// Such references are treated as absent by the solver.
func (c *Collection) DanglingRefs() []DanglingRef {
	var out []DanglingRef
	for _, p := range c.Parts {
		check := func(field string, id int) {
			if !c.ValidRef(id) {
				out = append(out, DanglingRef{Part: p.Name, Field: field, Ref: id})
			}
		}
		check("clip_to", p.ClipTo)
		check("dragable.confine", p.Dragable.Confine)
		check("dragable.events", p.Dragable.Events)
		p.Descriptions(func(d *Description) {
			d.Refs(func(field string, id int) {
				if !c.ValidRef(id) {
					out = append(out, DanglingRef{
						Part:        p.Name,
						Description: d.State,
						Value:       d.Value,
						Field:       field,
						Ref:         id,
					})
				}
			})
		})
	}
	return out
}
