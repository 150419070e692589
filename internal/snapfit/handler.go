package snapfit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	auth "SnapForge/internal/auth"
)

// UnitsImperial asks the HTTP layer to read lengths in inches, modulus in
// psi, section modulus in in³ and to report forces in lbf. Anything else
// (including empty) means metric, the engine's native basis.
const UnitsImperial = "imperial"

type CalcRequest struct {
	Input
	Units string `json:"units,omitempty"`
}

type SweepRequest struct {
	SweepSpec
	Units string `json:"units,omitempty"`
}

// Recorder is the slice of the repository the handler needs: it records
// successful evaluations for the history endpoint. Nil disables history.
type Recorder interface {
	SaveCalculation(ctx context.Context, userID int, profile string, input, result []byte) error
}

type Handler struct {
	History Recorder
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	in := req.Input
	if req.Units == UnitsImperial {
		in = inputToMetric(in)
	}

	res, err := Calculate(in)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	if h.History != nil {
		if userID, ok := auth.UserID(r.Context()); ok {
			inJSON, _ := json.Marshal(in)
			resJSON, _ := json.Marshal(res)
			_ = h.History.SaveCalculation(r.Context(), userID, string(in.Profile), inJSON, resJSON)
		}
	}

	if req.Units == UnitsImperial {
		res = resultToImperial(res)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	var req SweepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	spec := req.SweepSpec
	if req.Units == UnitsImperial {
		spec = sweepSpecToMetric(spec)
	}

	rows, err := Sweep(spec)
	if err != nil {
		writeCalcError(w, err)
		return
	}

	if req.Units == UnitsImperial {
		for i := range rows {
			rows[i] = sweepRowToImperial(spec.Param, rows[i])
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}

// calcError is the wire form of an engine failure: kind plus offending
// field, so the front end can highlight the right control.
type calcError struct {
	Kind  string `json:"kind"`
	Field string `json:"field,omitempty"`
	Error string `json:"error"`
}

func writeCalcError(w http.ResponseWriter, err error) {
	var (
		unknown *UnknownProfileError
		missing *MissingParameterError
		inv     *InvalidParameterError
	)
	body := calcError{Kind: "internal", Error: err.Error()}
	switch {
	case errors.As(err, &unknown):
		body.Kind = "unknown_profile"
		body.Field = "profile"
	case errors.As(err, &missing):
		body.Kind = "missing_parameter"
		body.Field = missing.Field
	case errors.As(err, &inv):
		body.Kind = "invalid_parameter"
		body.Field = inv.Field
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(body)
}

func convertPtr(v *float64, f func(float64) float64) *float64 {
	if v == nil {
		return nil
	}
	c := f(*v)
	return &c
}

// inputToMetric reinterprets an imperial-basis request (in, psi, in³) as
// the metric values the engine works in. Strain, friction and lead angle
// are dimensionless either way.
func inputToMetric(in Input) Input {
	in.ModulusPa = PsiToPa(in.ModulusPa)
	in.LengthMM = InToMM(in.LengthMM)
	in.ThicknessMM = convertPtr(in.ThicknessMM, InToMM)
	in.WidthMM = convertPtr(in.WidthMM, InToMM)
	in.RootWidthMM = convertPtr(in.RootWidthMM, InToMM)
	in.OuterRadiusMM = convertPtr(in.OuterRadiusMM, InToMM)
	in.SectionModulusMM3 = convertPtr(in.SectionModulusMM3, In3ToMM3)
	return in
}

func resultToImperial(res Result) Result {
	return Result{
		DeflectionMM:     MMToIn(res.DeflectionMM),
		DeflectionForceN: NToLbf(res.DeflectionForceN),
		MatingForceN:     NToLbf(res.MatingForceN),
	}
}

func sweepSpecToMetric(spec SweepSpec) SweepSpec {
	spec.Baseline = inputToMetric(spec.Baseline)
	if spec.Param != SweepStrain {
		spec.Start = InToMM(spec.Start)
		spec.Stop = InToMM(spec.Stop)
	}
	return spec
}

func sweepRowToImperial(param SweepParam, row SweepRow) SweepRow {
	if param != SweepStrain {
		row.Value = MMToIn(row.Value)
	}
	row.Result = resultToImperial(row.Result)
	return row
}
