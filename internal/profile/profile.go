package profile

import (
	"SnapForge/internal/auth"
	"SnapForge/internal/repo"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type ProfileHandler struct {
	Repo repo.Repository
}

type UpdateProfileRequest struct {
	Login       string `json:"login"`
	Description string `json:"description"`
}

func requestUserID(r *http.Request) (int, bool) {
	return auth.UserID(r.Context())
}

// GetProfile returns the requesting user's profile, or another user's when
// the route carries an id.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if idStr, present := mux.Vars(r)["id"]; present {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			http.Error(w, "Invalid user id", http.StatusBadRequest)
			return
		}
		userID = id
	}

	p, err := h.Repo.GetProfile(r.Context(), userID)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Login == "" {
		http.Error(w, "Login required", http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateProfile(r.Context(), userID, req.Login, req.Description); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Profile updated"))
}

// History lists the requesting user's saved calculations, newest first.
// ?limit= caps the page size.
func (h *ProfileHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = v
	}

	calcs, err := h.Repo.ListCalculations(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	if calcs == nil {
		calcs = []repo.Calculation{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calcs)
}
