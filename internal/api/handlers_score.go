package api

import (
	"encoding/json"
	"net/http"

	"github.com/sunnypatell/ats-screener/internal/scoring"
)

// handleScore scores already-extracted resume signals synchronously.
// Useful for clients that parsed the resume themselves or want to
// re-score against a different job description without re-uploading.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var input scoring.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if input.ResumeText == "" {
		jsonError(w, "resumeText is required", http.StatusBadRequest)
		return
	}

	profileName := r.URL.Query().Get("profile")

	w.Header().Set("Content-Type", "application/json")
	if profileName != "" {
		profile, ok := scoring.ProfileByName(profileName)
		if !ok {
			jsonError(w, "unknown profile: "+profileName, http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(scoring.ScoreAgainstProfile(input, profile))
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"scores": scoring.Score(input),
	})
}

// handleProfiles lists the platform profiles and their configuration.
func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"profiles": scoring.AllProfiles(),
	})
}
