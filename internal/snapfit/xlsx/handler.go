package xlsx

import (
	"encoding/json"
	"net/http"
	"strconv"

	snapfit "SnapForge/internal/snapfit"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int              `json:"count"`
	Results []snapfit.Result `json:"results"`
	Skipped []int            `json:"skipped,omitempty"`
}

// Import reads snap-fit inputs from an uploaded workbook, one design per
// row, and evaluates each. Unparseable or invalid rows are skipped and
// reported by row number, matching spreadsheet-import expectations rather
// than the batch endpoint's fail-fast contract.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := ImportResult{}
	for i := 1; i < len(rows); i++ {
		input, err := ParseRow(rows[i])
		if err != nil {
			out.Skipped = append(out.Skipped, i+1)
			continue
		}
		res, err := snapfit.Calculate(input)
		if err != nil {
			out.Skipped = append(out.Skipped, i+1)
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// SweepExport runs a sweep and streams the table as an XLSX download.
func (h *Handler) SweepExport(w http.ResponseWriter, r *http.Request) {
	var spec snapfit.SweepSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	f, err := RunSweepWorkbook(spec)
	if err != nil {
		http.Error(w, "Sweep error: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"snapfit-sweep.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}

// ParseRow maps one sheet row onto a snap-fit input. Expected columns:
// profile, modulus_pa, strain, length_mm, thickness_mm, width_mm,
// root_width_mm, outer_radius_mm, section_modulus_mm3, friction,
// lead_angle_deg. Empty geometry cells stay absent.
func ParseRow(row []string) (snapfit.Input, error) {
	if len(row) < 4 {
		return snapfit.Input{}, strconv.ErrSyntax
	}
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	modulus, err := strconv.ParseFloat(cell(1), 64)
	if err != nil {
		return snapfit.Input{}, err
	}
	strain, err := strconv.ParseFloat(cell(2), 64)
	if err != nil {
		return snapfit.Input{}, err
	}
	length, err := strconv.ParseFloat(cell(3), 64)
	if err != nil {
		return snapfit.Input{}, err
	}

	optional := func(i int) (*float64, error) {
		s := cell(i)
		if s == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	thickness, err := optional(4)
	if err != nil {
		return snapfit.Input{}, err
	}
	width, err := optional(5)
	if err != nil {
		return snapfit.Input{}, err
	}
	rootWidth, err := optional(6)
	if err != nil {
		return snapfit.Input{}, err
	}
	outerRadius, err := optional(7)
	if err != nil {
		return snapfit.Input{}, err
	}
	sectionModulus, err := optional(8)
	if err != nil {
		return snapfit.Input{}, err
	}

	friction := 0.3
	if cell(9) != "" {
		if friction, err = strconv.ParseFloat(cell(9), 64); err != nil {
			return snapfit.Input{}, err
		}
	}
	leadAngle := 5.0
	if cell(10) != "" {
		if leadAngle, err = strconv.ParseFloat(cell(10), 64); err != nil {
			return snapfit.Input{}, err
		}
	}

	return snapfit.Input{
		Profile:           snapfit.Profile(cell(0)),
		ModulusPa:         modulus,
		Strain:            strain,
		LengthMM:          length,
		ThicknessMM:       thickness,
		WidthMM:           width,
		RootWidthMM:       rootWidth,
		OuterRadiusMM:     outerRadius,
		SectionModulusMM3: sectionModulus,
		Friction:          friction,
		LeadAngleDeg:      leadAngle,
	}, nil
}
