package snapfit

import (
	"errors"
	"testing"
)

func TestCatalogFactors(t *testing.T) {
	want := map[Profile]float64{
		RectangleConstant:     0.67,
		RectangleYHalved:      1.09,
		RectangleZQuartered:   0.86,
		TrapezoidConstant:     1.00,
		TrapezoidYHalved:      1.64,
		TrapezoidZQuartered:   1.28,
		RingSegmentConstant:   1.00,
		RingSegmentYHalved:    1.64,
		RingSegmentZQuartered: 1.28,
		IrregularConstant:     1.0 / 3.0,
		IrregularYHalved:      0.55,
		IrregularZQuartered:   0.43,
	}
	if len(want) != 12 {
		t.Fatalf("reference table has %d entries, want 12", len(want))
	}
	for p, factor := range want {
		got, err := FactorOf(p)
		if err != nil {
			t.Errorf("FactorOf(%s): %v", p, err)
			continue
		}
		if got != factor {
			t.Errorf("FactorOf(%s) = %v, want %v", p, got, factor)
		}
	}
}

func TestProfilesListsWholeCatalog(t *testing.T) {
	all := Profiles()
	if len(all) != 12 {
		t.Fatalf("Profiles() returned %d entries, want 12", len(all))
	}
	seen := make(map[Profile]bool, len(all))
	for _, p := range all {
		if seen[p] {
			t.Errorf("duplicate profile %s", p)
		}
		seen[p] = true
		if _, err := FactorOf(p); err != nil {
			t.Errorf("listed profile %s not in catalog: %v", p, err)
		}
	}
}

func TestFactorOfUnknownProfile(t *testing.T) {
	_, err := FactorOf("octagon_constant")
	var unknown *UnknownProfileError
	if !errors.As(err, &unknown) {
		t.Fatalf("got %v, want UnknownProfileError", err)
	}
	if unknown.Profile != "octagon_constant" {
		t.Errorf("error carries profile %q", unknown.Profile)
	}
}

func TestFamilyOf(t *testing.T) {
	cases := map[Profile]Family{
		RectangleYHalved:      FamilyRectangle,
		TrapezoidZQuartered:   FamilyTrapezoid,
		RingSegmentConstant:   FamilyRingSegment,
		IrregularZQuartered:   FamilyIrregular,
		RingSegmentZQuartered: FamilyRingSegment,
	}
	for p, want := range cases {
		got, err := FamilyOf(p)
		if err != nil {
			t.Errorf("FamilyOf(%s): %v", p, err)
			continue
		}
		if got != want {
			t.Errorf("FamilyOf(%s) = %s, want %s", p, got, want)
		}
	}
	if _, err := FamilyOf("nope"); err == nil {
		t.Error("FamilyOf accepted unknown profile")
	}
}
