package snapfit

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	auth "SnapForge/internal/auth"
)

type recordedCalc struct {
	userID  int
	profile string
}

type fakeRecorder struct {
	calls []recordedCalc
}

func (f *fakeRecorder) SaveCalculation(_ context.Context, userID int, profile string, _, _ []byte) error {
	f.calls = append(f.calls, recordedCalc{userID: userID, profile: profile})
	return nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any, userID int) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(buf))
	if userID != 0 {
		req = req.WithContext(auth.WithUser(req.Context(), userID, "tester"))
	}
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestCalcHandlerMetric(t *testing.T) {
	rec := &fakeRecorder{}
	h := &Handler{History: rec}

	rr := postJSON(t, h.Calc, CalcRequest{Input: referenceRectangle()}, 42)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var res Result
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	approx(t, "y", res.DeflectionMM, 3.40360, 1e-3)
	approx(t, "P", res.DeflectionForceN, 22.2580, 1e-3)

	if len(rec.calls) != 1 || rec.calls[0].userID != 42 || rec.calls[0].profile != string(RectangleConstant) {
		t.Errorf("history calls = %+v", rec.calls)
	}
}

func TestCalcHandlerImperial(t *testing.T) {
	h := &Handler{}

	// Same design as the metric reference case, stated in inches and psi.
	req := CalcRequest{
		Input: Input{
			Profile:      RectangleConstant,
			ModulusPa:    300000, // psi under units=imperial
			Strain:       0.02,
			LengthMM:     1.0, // inches under units=imperial
			ThicknessMM:  fptr(0.10),
			WidthMM:      fptr(0.50),
			Friction:     0.30,
			LeadAngleDeg: 5.0,
		},
		Units: UnitsImperial,
	}
	rr := postJSON(t, h.Calc, req, 0)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var res Result
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// Z = 0.5 * 0.1² / 6 in³, P = Z*E*eps/L: psi·in³/in is lbf directly.
	wantP := 0.5 * 0.01 / 6.0 * 300000 * 0.02
	approx(t, "P (lbf)", res.DeflectionForceN, wantP, 1e-4)
	// y = 0.67 * 0.02 * 1² / 0.1 inches
	approx(t, "y (in)", res.DeflectionMM, 0.134, 1e-9)
}

func TestCalcHandlerErrorBody(t *testing.T) {
	h := &Handler{}

	in := referenceRectangle()
	in.Profile = "dodecagon"
	rr := postJSON(t, h.Calc, CalcRequest{Input: in}, 0)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	var body calcError
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Kind != "unknown_profile" || body.Field != "profile" {
		t.Errorf("body = %+v", body)
	}

	in = referenceRectangle()
	in.WidthMM = nil
	rr = postJSON(t, h.Calc, CalcRequest{Input: in}, 0)
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Kind != "missing_parameter" || body.Field != "width_mm" {
		t.Errorf("body = %+v", body)
	}
}

func TestCalcHandlerRejectsGarbage(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	h.Calc(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rr.Code)
	}
}

func TestSweepHandlerMetric(t *testing.T) {
	h := &Handler{}
	rr := postJSON(t, h.Sweep, SweepRequest{SweepSpec: referenceSweep()}, 0)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var rows []SweepRow
	if err := json.Unmarshal(rr.Body.Bytes(), &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 20 {
		t.Fatalf("len(rows) = %d", len(rows))
	}
	if rows[0].Value != 1.0 || rows[19].Value != 5.0 {
		t.Errorf("endpoints %g..%g", rows[0].Value, rows[19].Value)
	}
}

func TestSweepHandlerImperialConvertsBothWays(t *testing.T) {
	h := &Handler{}
	req := SweepRequest{
		SweepSpec: SweepSpec{
			Param: SweepThickness,
			Start: 0.05,
			Stop:  0.15,
			Steps: 3,
			Baseline: Input{
				Profile:      RectangleConstant,
				ModulusPa:    300000,
				Strain:       0.02,
				LengthMM:     1.0,
				ThicknessMM:  fptr(0.10),
				WidthMM:      fptr(0.50),
				Friction:     0.30,
				LeadAngleDeg: 5.0,
			},
		},
		Units: UnitsImperial,
	}
	rr := postJSON(t, h.Sweep, req, 0)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var rows []SweepRow
	if err := json.Unmarshal(rr.Body.Bytes(), &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d", len(rows))
	}
	// Sweep values come back in the request basis.
	if math.Abs(rows[0].Value-0.05) > 1e-12 || math.Abs(rows[2].Value-0.15) > 1e-12 {
		t.Errorf("endpoints %g..%g, want 0.05..0.15", rows[0].Value, rows[2].Value)
	}
	// Middle row is the imperial reference case.
	approx(t, "middle y (in)", rows[1].DeflectionMM, 0.134, 1e-9)
}
