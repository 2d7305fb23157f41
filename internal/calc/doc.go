// Package calc is the part geometry engine.
//
// A [Context] owns one instantiated collection: an arena of real parts
// addressed by part id, the container box, and the bookkeeping for one
// recalculation pass (generation counter, freeze depth, pending dirty
// requests). A pass walks every part, resolving the parts it depends on
// first (anchors per axis, drag confinement, clipping, proxy sources, map
// centers, lights and perspective), solves the "from" and optional "to"
// descriptions, blends them by the transition position and pushes the result
// to the render objects.
//
// Everything here runs on the goroutine that owns the object tree. Cycles in
// malformed descriptions are detected with a per-part in-progress mask and
// logged; they never recurse forever.
package calc
