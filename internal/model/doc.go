// Package model is the read-only data model consumed by the part solver:
// collections of parts, each with a default description and alternate
// descriptions selected by state name and value.
//
// Parts reference each other by integer id. A reference of [NoRef] means
// "none", which for anchors is the container itself.
package model
