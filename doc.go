// Package parts lays out collections of named parts whose boxes are
// anchored to each other and to their container.
//
// Users import this single package for the public API: collection model,
// layout context, transitions, drag, min size queries, render object
// interfaces and the YAML scene loader.
//
// A typical session loads a collection, creates a context with a renderer
// and lets it recalculate:
//
//	s, err := parts.LoadScene("dialog.yaml")
//	...
//	c, err := parts.New(s.Collection, renderer, s.Options()...)
//	...
//	err = s.Apply(c)
//	c.Recalc()
package parts
