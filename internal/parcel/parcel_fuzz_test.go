package parcel

import (
	"math"
	"testing"

	dErrors "parcelsort/pkg/domain-errors"
)

// FuzzNew checks that construction never panics and that it returns either a
// package satisfying every invariant or a typed error, never both.
func FuzzNew(f *testing.F) {
	f.Add(50, 30, 20, 5000.0)
	f.Add(150, 30, 20, 25000.0)
	f.Add(0, 0, 0, 0.0)
	f.Add(-1, 10, 10, 10.0)
	f.Add(10, 10, 10, math.NaN())
	f.Add(10, 10, 10, math.Inf(1))
	f.Add(math.MaxInt32, math.MaxInt32, math.MaxInt32, math.MaxFloat64)

	f.Fuzz(func(t *testing.T, width, height, length int, mass float64) {
		p, err := New(width, height, length, mass)
		if err != nil {
			if !dErrors.HasCode(err, dErrors.CodeInvalidDimension) && !dErrors.HasCode(err, dErrors.CodeInvalidMass) {
				t.Fatalf("unexpected error code for %v", err)
			}
			if p != (Package{}) {
				t.Fatal("package returned alongside error")
			}
			return
		}

		d := p.Dimension()
		if d.Width() <= 0 || d.Height() <= 0 || d.Length() <= 0 {
			t.Fatalf("accepted non-positive dimension %+v", d)
		}
		if !(p.Mass() > 0) || math.IsInf(p.Mass(), 0) {
			t.Fatalf("accepted invalid mass %v", p.Mass())
		}
	})
}
