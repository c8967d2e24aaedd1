package handlers

import (
	"net/http"

	"github.com/roamly/tourguide-backend/internal/application/services"
)

// LocationHandler handles location-related HTTP requests
type LocationHandler struct {
	tourGuide *services.TourGuideService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(tourGuide *services.TourGuideService) *LocationHandler {
	return &LocationHandler{tourGuide: tourGuide}
}

// GetUserLocation handles GET /api/users/{userName}/location
func (h *LocationHandler) GetUserLocation(w http.ResponseWriter, r *http.Request) {
	userName := r.PathValue("userName")
	if userName == "" {
		respondWithError(w, http.StatusBadRequest, "user name is required")
		return
	}

	location, err := h.tourGuide.GetUserLocation(r.Context(), userName)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, location)
}

// GetNearbyAttractions handles GET /api/users/{userName}/nearby-attractions
func (h *LocationHandler) GetNearbyAttractions(w http.ResponseWriter, r *http.Request) {
	userName := r.PathValue("userName")
	if userName == "" {
		respondWithError(w, http.StatusBadRequest, "user name is required")
		return
	}

	location, err := h.tourGuide.GetUserLocation(r.Context(), userName)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	nearby, err := h.tourGuide.GetNearbyAttractions(r.Context(), *location)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"attractions": nearby,
		"count":       len(nearby),
	})
}

// GetAllCurrentLocations handles GET /api/locations
func (h *LocationHandler) GetAllCurrentLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.tourGuide.GetAllCurrentLocations(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"locations": locations,
		"count":     len(locations),
	})
}
