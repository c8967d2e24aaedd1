package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/application/services"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	tourGuide *services.TourGuideService
}

// NewUserHandler creates a new user handler
func NewUserHandler(tourGuide *services.TourGuideService) *UserHandler {
	return &UserHandler{tourGuide: tourGuide}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.tourGuide.GetAllUsers(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"count": len(users),
	})
}

// GetUser handles GET /api/users/{userName}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userName := r.PathValue("userName")
	if userName == "" {
		respondWithError(w, http.StatusBadRequest, "user name is required")
		return
	}

	user, err := h.tourGuide.GetUser(r.Context(), userName)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

type createUserRequest struct {
	UserName     string `json:"user_name"`
	PhoneNumber  string `json:"phone_number"`
	EmailAddress string `json:"email_address"`
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserName == "" {
		respondWithError(w, http.StatusBadRequest, "user name is required")
		return
	}

	user := entities.NewUser(uuid.New(), req.UserName, req.PhoneNumber, req.EmailAddress)
	if err := h.tourGuide.AddUser(r.Context(), user); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, user)
}

// GetUserRewards handles GET /api/users/{userName}/rewards
func (h *UserHandler) GetUserRewards(w http.ResponseWriter, r *http.Request) {
	userName := r.PathValue("userName")
	if userName == "" {
		respondWithError(w, http.StatusBadRequest, "user name is required")
		return
	}

	rewards, err := h.tourGuide.GetUserRewards(r.Context(), userName)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"rewards": rewards,
		"count":   len(rewards),
	})
}

// GetTripDeals handles GET /api/users/{userName}/trip-deals
func (h *UserHandler) GetTripDeals(w http.ResponseWriter, r *http.Request) {
	userName := r.PathValue("userName")
	if userName == "" {
		respondWithError(w, http.StatusBadRequest, "user name is required")
		return
	}

	params := entities.DefaultTripParameters()
	query := r.URL.Query()
	if v := parseIntParam(query.Get("adults")); v > 0 {
		params.NumberOfAdults = v
	}
	if v := parseIntParam(query.Get("children")); v >= 0 {
		params.NumberOfChildren = v
	}
	if v := parseIntParam(query.Get("nights")); v > 0 {
		params.NightsStay = v
	}

	deals, err := h.tourGuide.GetTripDeals(r.Context(), userName, params)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"trip_deals": deals,
		"count":      len(deals),
	})
}
