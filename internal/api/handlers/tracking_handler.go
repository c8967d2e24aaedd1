package handlers

import (
	"net/http"

	"github.com/roamly/tourguide-backend/internal/application/services"
)

// TrackingHandler exposes the tracking pipeline over HTTP
type TrackingHandler struct {
	tourGuide *services.TourGuideService
	tracking  *services.TrackingService
}

// NewTrackingHandler creates a new tracking handler
func NewTrackingHandler(tourGuide *services.TourGuideService, tracking *services.TrackingService) *TrackingHandler {
	return &TrackingHandler{tourGuide: tourGuide, tracking: tracking}
}

// TrackUser handles POST /api/users/{userName}/track
func (h *TrackingHandler) TrackUser(w http.ResponseWriter, r *http.Request) {
	userName := r.PathValue("userName")
	if userName == "" {
		respondWithError(w, http.StatusBadRequest, "user name is required")
		return
	}

	visited, err := h.tourGuide.TrackUser(r.Context(), userName)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, visited)
}

// TrackAllUsers handles POST /api/tracking/track-all
func (h *TrackingHandler) TrackAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.tourGuide.GetAllUsers(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	h.tracking.TrackAllUsers(r.Context(), users)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"tracked": len(users),
	})
}

// TrackAllUsersAndProcess handles POST /api/tracking/track-all-process
func (h *TrackingHandler) TrackAllUsersAndProcess(w http.ResponseWriter, r *http.Request) {
	users, err := h.tourGuide.GetAllUsers(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	h.tracking.TrackAllUsersAndProcess(r.Context(), users)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"tracked": len(users),
	})
}

// CalculateRewardsBulk handles POST /api/tracking/calculate-rewards
func (h *TrackingHandler) CalculateRewardsBulk(w http.ResponseWriter, r *http.Request) {
	users, err := h.tourGuide.GetAllUsers(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	h.tracking.CalculateRewardsBulk(r.Context(), users)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"processed": len(users),
	})
}
