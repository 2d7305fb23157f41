// Package termrender draws solved parts onto a tcell screen, one cell per
// layout unit.
//
// Objects are painted in part order, so later parts stack on top of earlier
// ones. Rectangles and boxes fill their background, images fill their area
// with the image's glyph, and text is laid out with go-runewidth so wide
// runes take two cells. Colors arrive premultiplied and are composited over
// whatever background is already on screen.
package termrender
