// Package render draws projective points and lines, the one place in
// the library where floating point is allowed: coordinates leave the
// exact core only at this boundary.
//
// What:
//
//   - Canvas: the homogeneous-to-screen mapping; the origin sits at the
//     canvas center, y grows upward, and points at infinity project to
//     nothing (reported by an ok bool, never an error).
//   - SVG: a streaming writer emitting SVG elements to an io.Writer.
//   - PNG, SavePNG: rasterization through github.com/fogleman/gg.
//
// Why:
//
//   - Exactness matters for the geometry, not for the pixels; once a
//     figure is being drawn, float64 is the honest representation.
//
// Drawing a full line picks two far-apart finite points on it and draws
// the segment between them; the line at infinity has no finite points
// and is skipped.
package render
