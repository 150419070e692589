package snapfit

import (
	"errors"
	"testing"
)

func referenceSweep() SweepSpec {
	return SweepSpec{
		Param:    SweepThickness,
		Start:    1.0,
		Stop:     5.0,
		Steps:    20,
		Baseline: referenceRectangle(),
	}
}

func TestSweepRowCountAndEndpoints(t *testing.T) {
	spec := referenceSweep()
	rows, err := Sweep(spec)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(rows) != spec.Steps {
		t.Fatalf("len(rows) = %d, want %d", len(rows), spec.Steps)
	}
	if rows[0].Value != spec.Start {
		t.Errorf("first value = %g, want %g", rows[0].Value, spec.Start)
	}
	if rows[len(rows)-1].Value != spec.Stop {
		t.Errorf("last value = %g, want %g", rows[len(rows)-1].Value, spec.Stop)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Value <= rows[i-1].Value {
			t.Errorf("values not strictly increasing at %d: %g then %g", i, rows[i-1].Value, rows[i].Value)
		}
	}
}

func TestSweepTwoStepsHitsBothEndpoints(t *testing.T) {
	spec := referenceSweep()
	spec.Steps = 2
	rows, err := Sweep(spec)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(rows) != 2 || rows[0].Value != spec.Start || rows[1].Value != spec.Stop {
		t.Fatalf("rows = %+v, want exactly the two endpoints", rows)
	}
}

func TestSweepOverridesNamedParameterOnly(t *testing.T) {
	spec := referenceSweep()
	spec.Param = SweepLength
	spec.Start = 20
	spec.Stop = 40
	spec.Steps = 3
	rows, err := Sweep(spec)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	for _, row := range rows {
		in := referenceRectangle()
		in.LengthMM = row.Value
		want, err := Calculate(in)
		if err != nil {
			t.Fatalf("Calculate(L=%g): %v", row.Value, err)
		}
		if row.Result != want {
			t.Errorf("L=%g: got %+v, want %+v", row.Value, row.Result, want)
		}
	}
}

func TestSweepStrainVariesStrain(t *testing.T) {
	spec := referenceSweep()
	spec.Param = SweepStrain
	spec.Start = 0.01
	spec.Stop = 0.05
	spec.Steps = 5
	rows, err := Sweep(spec)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	// Deflection scales linearly with strain; doubling strain doubles y.
	approx(t, "y ratio", rows[4].DeflectionMM/rows[0].DeflectionMM, 5.0, 1e-9)
}

func TestSweepFailsWholeTableOnBadRow(t *testing.T) {
	// Thickness passing through zero invalidates one row; no partial
	// table comes back.
	spec := referenceSweep()
	spec.Start = -1.0
	spec.Stop = 1.0
	spec.Steps = 5
	rows, err := Sweep(spec)
	var inv *InvalidParameterError
	if !errors.As(err, &inv) {
		t.Fatalf("got %v, want InvalidParameterError", err)
	}
	if rows != nil {
		t.Errorf("rows = %+v, want nil on failure", rows)
	}
}

func TestSweepRejectsBadSpec(t *testing.T) {
	spec := referenceSweep()
	spec.Steps = 1
	if _, err := Sweep(spec); err == nil {
		t.Error("steps=1 accepted, want error")
	}

	spec = referenceSweep()
	spec.Param = "friction"
	if _, err := Sweep(spec); err == nil {
		t.Error("unsupported sweep parameter accepted, want error")
	}
}

func TestSweepDoesNotMutateBaseline(t *testing.T) {
	spec := referenceSweep()
	before := *spec.Baseline.ThicknessMM
	if _, err := Sweep(spec); err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if *spec.Baseline.ThicknessMM != before {
		t.Errorf("baseline thickness mutated: %g -> %g", before, *spec.Baseline.ThicknessMM)
	}
}
