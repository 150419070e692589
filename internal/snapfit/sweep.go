package snapfit

// SweepParam names the input varied by a parametric study. The set matches
// the three sensitivities the calculator exposes.
type SweepParam string

const (
	SweepThickness SweepParam = "thickness_mm"
	SweepLength    SweepParam = "length_mm"
	SweepStrain    SweepParam = "strain"
)

// SweepSpec describes a single-parameter sensitivity study: Steps values
// evenly spaced from Start to Stop inclusive, substituted one at a time
// into the baseline input.
type SweepSpec struct {
	Param    SweepParam `json:"param"`
	Start    float64    `json:"start"`
	Stop     float64    `json:"stop"`
	Steps    int        `json:"steps"`
	Baseline Input      `json:"baseline"`
}

// SweepRow is one sampled point of a study.
type SweepRow struct {
	Value float64 `json:"value"`
	Result
}

// Sweep evaluates the baseline once per sampled value, ascending. If any
// single evaluation fails, the whole sweep fails; no partial table is
// returned.
func Sweep(spec SweepSpec) ([]SweepRow, error) {
	switch spec.Param {
	case SweepThickness, SweepLength, SweepStrain:
	default:
		return nil, invalid("param", "not a sweepable parameter")
	}
	if spec.Steps < 2 {
		return nil, invalid("steps", "must be at least 2")
	}

	rows := make([]SweepRow, 0, spec.Steps)
	for i := 0; i < spec.Steps; i++ {
		v := spec.Start + (spec.Stop-spec.Start)*float64(i)/float64(spec.Steps-1)

		in := spec.Baseline
		switch spec.Param {
		case SweepThickness:
			t := v
			in.ThicknessMM = &t
		case SweepLength:
			in.LengthMM = v
		case SweepStrain:
			in.Strain = v
		}

		res, err := Calculate(in)
		if err != nil {
			return nil, err
		}
		rows = append(rows, SweepRow{Value: v, Result: res})
	}
	return rows, nil
}
