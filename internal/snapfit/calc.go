package snapfit

import "math"

// Input is one snap-fit evaluation request. All arithmetic is metric:
// lengths in mm, modulus in Pa, forces come out in N. Geometry fields are
// pointers because each profile family requires a different subset; a nil
// required field is a contract violation, an extra one is ignored.
type Input struct {
	Profile Profile `json:"profile"`

	ModulusPa float64 `json:"modulus_pa"`
	Strain    float64 `json:"strain"`
	LengthMM  float64 `json:"length_mm"`

	ThicknessMM       *float64 `json:"thickness_mm,omitempty"`
	WidthMM           *float64 `json:"width_mm,omitempty"`
	RootWidthMM       *float64 `json:"root_width_mm,omitempty"`
	OuterRadiusMM     *float64 `json:"outer_radius_mm,omitempty"`
	SectionModulusMM3 *float64 `json:"section_modulus_mm3,omitempty"`

	Friction     float64 `json:"friction"`
	LeadAngleDeg float64 `json:"lead_angle_deg"`
}

// Result holds the three sizing quantities for one evaluation.
type Result struct {
	DeflectionMM     float64 `json:"deflection_mm"`      // permissible deflection y
	DeflectionForceN float64 `json:"deflection_force_n"` // force P at full deflection
	MatingForceN     float64 `json:"mating_force_n"`     // insertion force W
}

// geometry is the closed set of cross-section shapes. Each carries only the
// dimensions its family needs, so a constructed geometry can never be
// missing a field.
type geometry interface {
	// deflection returns the permissible tip deflection y for the given
	// correction factor, allowable strain and cantilever length.
	deflection(factor, strain, lengthMM float64) float64
	// sectionModulus returns Z of the root cross section in mm³.
	sectionModulus() float64
}

type rectangle struct{ h, b float64 }

func (g rectangle) deflection(factor, strain, lengthMM float64) float64 {
	return factor * strain * lengthMM * lengthMM / g.h
}

func (g rectangle) sectionModulus() float64 {
	return g.b * g.h * g.h / 6.0
}

type trapezoid struct{ h, a, b float64 }

func (g trapezoid) deflection(factor, strain, lengthMM float64) float64 {
	return factor * ((g.a + g.b) / (2.0*g.a + g.b)) * strain * lengthMM * lengthMM / g.h
}

func (g trapezoid) sectionModulus() float64 {
	return g.h * g.h / 12.0 * (g.a*g.a + 4.0*g.a*g.b + g.b*g.b) / (2.0*g.a + g.b)
}

// ringSegment and irregular sections are not parameterized down to raw
// dimensions; the caller supplies the section modulus directly.
type ringSegment struct{ r2, z float64 }

func (g ringSegment) deflection(factor, strain, lengthMM float64) float64 {
	return factor * strain * lengthMM * lengthMM / g.r2
}

func (g ringSegment) sectionModulus() float64 { return g.z }

type irregular struct{ h, z float64 }

func (g irregular) deflection(factor, strain, lengthMM float64) float64 {
	return factor * strain * lengthMM * lengthMM / g.h
}

func (g irregular) sectionModulus() float64 { return g.z }

// required unwraps a profile-dependent geometry field, distinguishing an
// absent field from a non-physical one.
func required(v *float64, field string) (float64, error) {
	if v == nil {
		return 0, &MissingParameterError{Field: field}
	}
	if *v <= 0 {
		return 0, invalid(field, "must be positive")
	}
	return *v, nil
}

func buildGeometry(family Family, in Input) (geometry, error) {
	switch family {
	case FamilyRectangle:
		h, err := required(in.ThicknessMM, "thickness_mm")
		if err != nil {
			return nil, err
		}
		b, err := required(in.WidthMM, "width_mm")
		if err != nil {
			return nil, err
		}
		return rectangle{h: h, b: b}, nil
	case FamilyTrapezoid:
		h, err := required(in.ThicknessMM, "thickness_mm")
		if err != nil {
			return nil, err
		}
		a, err := required(in.RootWidthMM, "root_width_mm")
		if err != nil {
			return nil, err
		}
		b, err := required(in.WidthMM, "width_mm")
		if err != nil {
			return nil, err
		}
		return trapezoid{h: h, a: a, b: b}, nil
	case FamilyRingSegment:
		r2, err := required(in.OuterRadiusMM, "outer_radius_mm")
		if err != nil {
			return nil, err
		}
		z, err := required(in.SectionModulusMM3, "section_modulus_mm3")
		if err != nil {
			return nil, err
		}
		return ringSegment{r2: r2, z: z}, nil
	default: // FamilyIrregular
		h, err := required(in.ThicknessMM, "thickness_mm")
		if err != nil {
			return nil, err
		}
		z, err := required(in.SectionModulusMM3, "section_modulus_mm3")
		if err != nil {
			return nil, err
		}
		return irregular{h: h, z: z}, nil
	}
}

// Calculate evaluates one snap-fit design per the Bayer cantilever method.
// Pure function: no state, no I/O, identical inputs give identical outputs.
func Calculate(in Input) (Result, error) {
	entry, ok := catalog[in.Profile]
	if !ok {
		return Result{}, &UnknownProfileError{Profile: in.Profile}
	}

	if in.ModulusPa <= 0 {
		return Result{}, invalid("modulus_pa", "must be positive")
	}
	if in.Strain <= 0 {
		return Result{}, invalid("strain", "must be positive")
	}
	if in.LengthMM <= 0 {
		return Result{}, invalid("length_mm", "must be positive")
	}
	if in.Friction < 0 {
		return Result{}, invalid("friction", "must be non-negative")
	}
	if in.LeadAngleDeg < 0 || in.LeadAngleDeg >= 90 {
		return Result{}, invalid("lead_angle_deg", "must be in [0, 90)")
	}

	tanAlpha := math.Tan(in.LeadAngleDeg * math.Pi / 180.0)
	if in.Friction*tanAlpha >= 1 {
		// Self-locking: insertion force denominator goes non-positive.
		return Result{}, invalid("friction", "mu*tan(alpha) >= 1, joint is self-locking")
	}

	geom, err := buildGeometry(entry.family, in)
	if err != nil {
		return Result{}, err
	}

	// Pa over mm² is meaningless; the bending formulas run in N/mm² so that
	// Z [mm³] * E [N/mm²] / L [mm] lands in newtons.
	modulusNmm2 := in.ModulusPa / 1e6

	y := geom.deflection(entry.factor, in.Strain, in.LengthMM)
	p := geom.sectionModulus() * modulusNmm2 * in.Strain / in.LengthMM
	w := p * (in.Friction + tanAlpha) / (1.0 - in.Friction*tanAlpha)

	return Result{
		DeflectionMM:     y,
		DeflectionForceN: p,
		MatingForceN:     w,
	}, nil
}
