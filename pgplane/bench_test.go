package pgplane_test

import (
	"testing"

	"github.com/katalvlaran/projgeom/pgplane"
)

// BenchmarkMeet measures the raw join of two points.
func BenchmarkMeet(b *testing.B) {
	p := pgplane.PgPointAt(3, -2, 7)
	q := pgplane.PgPointAt(-1, 5, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Meet(q)
	}
}

// BenchmarkHarmConj measures the full harmonic-conjugate construction.
func BenchmarkHarmConj(b *testing.B) {
	a := pgplane.PgPointAt(0, 0, 1)
	c := pgplane.PgPointAt(4, 0, 1)
	m := pgplane.PgPointAt(2, 0, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pgplane.HarmConj[pgplane.PgPoint, pgplane.PgLine](a, c, m); err != nil {
			b.Fatalf("HarmConj failed: %v", err)
		}
	}
}

// BenchmarkCheckPappus measures the nine-point hexagon construction.
func BenchmarkCheckPappus(b *testing.B) {
	co1 := [3]pgplane.PgPoint{
		pgplane.PgPointAt(0, 0, 1),
		pgplane.PgPointAt(1, 0, 1),
		pgplane.PgPointAt(3, 0, 1),
	}
	co2 := [3]pgplane.PgPoint{
		pgplane.PgPointAt(0, 1, 1),
		pgplane.PgPointAt(2, 1, 1),
		pgplane.PgPointAt(5, 1, 1),
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pgplane.CheckPappus[pgplane.PgPoint, pgplane.PgLine](co1, co2)
	}
}
