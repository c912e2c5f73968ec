// Package transform_test provides runnable examples for projective
// transformations; each prints its expected output.
package transform_test

import (
	"fmt"

	"github.com/katalvlaran/projgeom/frac"
	"github.com/katalvlaran/projgeom/pgplane"
	"github.com/katalvlaran/projgeom/transform"
)

// ExampleTransform_ApplyPoint translates an affine point.
func ExampleTransform_ApplyPoint() {
	// 1) The shift (x, y) -> (x+3, y+1).
	t := transform.Translation(3, 1)

	// 2) Applied to (1, 1).
	p, err := t.ApplyPoint(pgplane.PgPointAt(1, 1, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("image:", p.Coord)
	// Output:
	// image: [4 2 1]
}

// ExampleTransform_Compose chains a scaling after a translation.
func ExampleTransform_Compose() {
	// 1) Translate first, then double both coordinates.
	t := transform.Scaling(frac.FromInt(2), frac.FromInt(2)).
		Compose(transform.Translation(1, 0))

	// 2) (1, 1) -> (2, 1) -> (4, 2).
	p, err := t.ApplyPoint(pgplane.PgPointAt(1, 1, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("image:", p.Coord)
	// Output:
	// image: [4 2 1]
}
