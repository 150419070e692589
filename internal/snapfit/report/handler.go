package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	snapfit "SnapForge/internal/snapfit"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string        `json:"project"`
	Author  string        `json:"author"`
	Title   string        `json:"title"`
	Notes   string        `json:"notes"`
	Design  snapfit.Input `json:"design"`
}

type Handler struct{}

// Generate evaluates the submitted design and renders a one-page PDF with
// the inputs and the three sizing results.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Snap-Fit Design Report"
	}

	res, err := snapfit.Calculate(input.Design)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Inputs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	writeRow := func(label, value string) {
		pdf.Cell(70, 6, label)
		pdf.Cell(0, 6, value)
		pdf.Ln(6)
	}
	d := input.Design
	writeRow("Profile", string(d.Profile))
	writeRow("Elastic modulus E", fmt.Sprintf("%.4g Pa", d.ModulusPa))
	writeRow("Allowable strain", fmt.Sprintf("%.4g", d.Strain))
	writeRow("Cantilever length L", fmt.Sprintf("%.4g mm", d.LengthMM))
	writeOpt := func(label, unit string, v *float64) {
		if v != nil {
			writeRow(label, fmt.Sprintf("%.4g %s", *v, unit))
		}
	}
	writeOpt("Thickness h", "mm", d.ThicknessMM)
	writeOpt("Width b", "mm", d.WidthMM)
	writeOpt("Root width a", "mm", d.RootWidthMM)
	writeOpt("Outer radius r2", "mm", d.OuterRadiusMM)
	writeOpt("Section modulus Z", "mm3", d.SectionModulusMM3)
	writeRow("Friction coefficient", fmt.Sprintf("%.4g", d.Friction))
	writeRow("Lead-in angle", fmt.Sprintf("%.4g deg", d.LeadAngleDeg))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	writeRow("Permissible deflection y", fmt.Sprintf("%.4f mm", res.DeflectionMM))
	writeRow("Deflection force P", fmt.Sprintf("%.4f N", res.DeflectionForceN))
	writeRow("Mating force W", fmt.Sprintf("%.4f N", res.MatingForceN))

	if input.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"snapfit-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
