package snapfit

// Display-basis conversion factors. The engine itself only ever sees
// millimeters, newtons and pascals; callers that present imperial values
// convert at the edge with these helpers.
const (
	mmPerIn  = 25.4
	nPerLbf  = 4.44822
	paPerPsi = 6894.76
)

func InToMM(v float64) float64  { return v * mmPerIn }
func MMToIn(v float64) float64  { return v / mmPerIn }
func LbfToN(v float64) float64  { return v * nPerLbf }
func NToLbf(v float64) float64  { return v / nPerLbf }
func PsiToPa(v float64) float64 { return v * paPerPsi }
func PaToPsi(v float64) float64 { return v / paPerPsi }

// In3ToMM3 converts a section modulus from cubic inches to cubic mm.
func In3ToMM3(v float64) float64 { return v * mmPerIn * mmPerIn * mmPerIn }

func MM3ToIn3(v float64) float64 { return v / (mmPerIn * mmPerIn * mmPerIn) }
