// Package ckplane layers a metric structure on the projective plane: a
// Cayley-Klein geometry is the incidence plane of package pgplane plus
// one polarity ("perp"), a model-specific map between points and lines
// that defines perpendicularity. Every metric notion, from altitudes to
// reflections, is derived from that single map.
//
// What:
//
//   - Polarity: the per-model strategy supplying the point and line
//     polar formulas.
//   - Point[M] / Line[M]: one generic dual pair shared by all models;
//     the model type parameter fixes which polarity Perp dispatches to
//     and keeps objects of different models apart at compile time.
//   - Five models: Elliptic, Hyperbolic, MyCK, Euclidean, Perspective,
//     with aliases EllPoint/EllLine, HypPoint/HypLine, MyCKPoint/
//     MyCKLine, EuclidPoint/EuclidLine, PerspPoint/PerspLine.
//   - Algorithms: IsPerpendicular, Altitude, Orthocenter, TriAltitude,
//     Reflect.
//   - Euclidean and perspective extras: parallelism tests and midpoints
//     (EuclidIsParallel, EuclidMidpoint, PerspIsParallel, PerspMidpoint).
//
// Why:
//
//   - One polarity formula per model is the entire difference between
//     elliptic, hyperbolic and Euclidean geometry here; representing it
//     as a zero-size strategy type consumed by one generic pair keeps
//     the five models to a few lines each and the algorithms to a single
//     implementation.
//
// Errors (sentinel, shared with pgplane):
//
//   - pgplane.ErrDegenerateTriangle: collinear vertices passed to
//     Orthocenter or TriAltitude.
//   - pgplane.ErrNonCollinear: propagated from the harmonic-conjugate
//     construction inside Reflect for degenerate mirror/point setups.
package ckplane
