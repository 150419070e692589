package snapfit

import (
	"math"
	"testing"
)

func TestUnitFactors(t *testing.T) {
	if got := InToMM(1); got != 25.4 {
		t.Errorf("InToMM(1) = %v", got)
	}
	if got := LbfToN(1); got != 4.44822 {
		t.Errorf("LbfToN(1) = %v", got)
	}
	if got := PsiToPa(1); got != 6894.76 {
		t.Errorf("PsiToPa(1) = %v", got)
	}
	if got := In3ToMM3(1); math.Abs(got-16387.064)/16387.064 > 1e-12 {
		t.Errorf("In3ToMM3(1) = %v, want 16387.064", got)
	}
}

func TestUnitRoundTrips(t *testing.T) {
	const relTol = 1e-9
	values := []float64{1e-6, 0.1, 1, 25.4, 1234.5678, 9.9e8}
	trips := []struct {
		name     string
		fwd, rev func(float64) float64
	}{
		{"mm/in", MMToIn, InToMM},
		{"N/lbf", NToLbf, LbfToN},
		{"Pa/psi", PaToPsi, PsiToPa},
		{"mm3/in3", MM3ToIn3, In3ToMM3},
	}
	for _, trip := range trips {
		for _, v := range values {
			back := trip.rev(trip.fwd(v))
			if math.Abs(back-v)/v > relTol {
				t.Errorf("%s round trip of %g gave %g", trip.name, v, back)
			}
		}
	}
}
