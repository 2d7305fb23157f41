// Package scene reads YAML scene files: one collection of parts plus the
// runtime state a context starts from (container size, color classes, part
// states, swallow hints, drag values and transitions).
//
// Parts, images and references are addressed by name in the file and
// resolved to ids once, at load time.
package scene
