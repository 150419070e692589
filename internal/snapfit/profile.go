package snapfit

// Profile identifies one of the twelve cantilever cross-section variants
// from the Bayer snap-fit design manual: four section families, each with
// three taper sub-variants.
type Profile string

const (
	RectangleConstant   Profile = "rectangle_constant"
	RectangleYHalved    Profile = "rectangle_y_halved"
	RectangleZQuartered Profile = "rectangle_z_quartered"

	TrapezoidConstant   Profile = "trapezoid_constant"
	TrapezoidYHalved    Profile = "trapezoid_y_halved"
	TrapezoidZQuartered Profile = "trapezoid_z_quartered"

	RingSegmentConstant   Profile = "ring_segment_constant"
	RingSegmentYHalved    Profile = "ring_segment_y_halved"
	RingSegmentZQuartered Profile = "ring_segment_z_quartered"

	IrregularConstant   Profile = "irregular_constant"
	IrregularYHalved    Profile = "irregular_y_halved"
	IrregularZQuartered Profile = "irregular_z_quartered"
)

// Family is the cross-section shape group a profile belongs to. It decides
// which geometry fields an evaluation requires.
type Family string

const (
	FamilyRectangle   Family = "rectangle"
	FamilyTrapezoid   Family = "trapezoid"
	FamilyRingSegment Family = "ring_segment"
	FamilyIrregular   Family = "irregular"
)

type profileEntry struct {
	family Family
	factor float64
}

// Published deflection correction factors. Fixed reference constants, not
// derived at runtime.
var catalog = map[Profile]profileEntry{
	RectangleConstant:   {FamilyRectangle, 0.67},
	RectangleYHalved:    {FamilyRectangle, 1.09},
	RectangleZQuartered: {FamilyRectangle, 0.86},

	TrapezoidConstant:   {FamilyTrapezoid, 1.00},
	TrapezoidYHalved:    {FamilyTrapezoid, 1.64},
	TrapezoidZQuartered: {FamilyTrapezoid, 1.28},

	RingSegmentConstant:   {FamilyRingSegment, 1.00},
	RingSegmentYHalved:    {FamilyRingSegment, 1.64},
	RingSegmentZQuartered: {FamilyRingSegment, 1.28},

	IrregularConstant:   {FamilyIrregular, 1.0 / 3.0},
	IrregularYHalved:    {FamilyIrregular, 0.55},
	IrregularZQuartered: {FamilyIrregular, 0.43},
}

// Profiles returns all catalog entries in a stable order, suitable for
// listing in a UI or a validation message.
func Profiles() []Profile {
	return []Profile{
		RectangleConstant, RectangleYHalved, RectangleZQuartered,
		TrapezoidConstant, TrapezoidYHalved, TrapezoidZQuartered,
		RingSegmentConstant, RingSegmentYHalved, RingSegmentZQuartered,
		IrregularConstant, IrregularYHalved, IrregularZQuartered,
	}
}

// FactorOf returns the deflection correction factor C for a profile.
func FactorOf(p Profile) (float64, error) {
	entry, ok := catalog[p]
	if !ok {
		return 0, &UnknownProfileError{Profile: p}
	}
	return entry.factor, nil
}

// FamilyOf returns the cross-section family of a profile.
func FamilyOf(p Profile) (Family, error) {
	entry, ok := catalog[p]
	if !ok {
		return "", &UnknownProfileError{Profile: p}
	}
	return entry.family, nil
}
