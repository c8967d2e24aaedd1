package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/adapters/providers/gps"
	"github.com/roamly/tourguide-backend/internal/adapters/providers/pricing"
	"github.com/roamly/tourguide-backend/internal/adapters/providers/rewards"
	"github.com/roamly/tourguide-backend/internal/adapters/store"
	"github.com/roamly/tourguide-backend/internal/api/handlers"
	"github.com/roamly/tourguide-backend/internal/application/services"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	repo      *store.MemoryUserStore
	tourGuide *services.TourGuideService
	tracking  *services.TrackingService
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	repo := store.NewMemoryUserStore()
	gpsProvider := gps.NewSimulatedProvider(0)
	rewardsSvc := services.NewRewardsService(repo, gpsProvider, rewards.NewSimulatedProvider(0), nil)
	pool := services.NewWorkerPool(4)
	t.Cleanup(pool.Shutdown)
	trackingSvc := services.NewTrackingService(repo, gpsProvider, rewardsSvc, nil, pool, nil)
	tourGuide := services.NewTourGuideService(repo, gpsProvider, pricing.NewSimulatedProvider(), trackingSvc, rewardsSvc)
	return &handlerFixture{repo: repo, tourGuide: tourGuide, tracking: trackingSvc}
}

func (f *handlerFixture) addUser(t *testing.T, userName string) *entities.User {
	t.Helper()
	user := entities.NewUser(uuid.New(), userName, "000", userName+"@tourGuide.com")
	require.NoError(t, f.repo.Add(context.Background(), user))
	return user
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	f := newHandlerFixture(t)
	handler := handlers.NewUserHandler(f.tourGuide)

	req := httptest.NewRequest("GET", "/api/users/nobody", nil)
	req.SetPathValue("userName", "nobody")
	w := httptest.NewRecorder()

	handler.GetUser(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.NotEmpty(t, response["error"])
}

func TestUserHandler_CreateUser_Success(t *testing.T) {
	f := newHandlerFixture(t)
	handler := handlers.NewUserHandler(f.tourGuide)

	body := `{"user_name":"alice","phone_number":"555","email_address":"alice@tourGuide.com"}`
	req := httptest.NewRequest("POST", "/api/users", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateUser(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	user, err := f.repo.GetByUserName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "555", user.PhoneNumber)
}

func TestUserHandler_CreateUser_Duplicate(t *testing.T) {
	f := newHandlerFixture(t)
	f.addUser(t, "alice")
	handler := handlers.NewUserHandler(f.tourGuide)

	body := `{"user_name":"alice"}`
	req := httptest.NewRequest("POST", "/api/users", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateUser(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUserHandler_CreateUser_MissingName(t *testing.T) {
	f := newHandlerFixture(t)
	handler := handlers.NewUserHandler(f.tourGuide)

	req := httptest.NewRequest("POST", "/api/users", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.CreateUser(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_ListUsers(t *testing.T) {
	f := newHandlerFixture(t)
	f.addUser(t, "alice")
	f.addUser(t, "bob")
	handler := handlers.NewUserHandler(f.tourGuide)

	req := httptest.NewRequest("GET", "/api/users", nil)
	w := httptest.NewRecorder()

	handler.ListUsers(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 2, response.Count)
}

func TestUserHandler_GetUserRewards_Empty(t *testing.T) {
	f := newHandlerFixture(t)
	f.addUser(t, "alice")
	handler := handlers.NewUserHandler(f.tourGuide)

	req := httptest.NewRequest("GET", "/api/users/alice/rewards", nil)
	req.SetPathValue("userName", "alice")
	w := httptest.NewRecorder()

	handler.GetUserRewards(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 0, response.Count)
}

func TestUserHandler_GetTripDeals(t *testing.T) {
	f := newHandlerFixture(t)
	f.addUser(t, "alice")
	handler := handlers.NewUserHandler(f.tourGuide)

	req := httptest.NewRequest("GET", "/api/users/alice/trip-deals?adults=2&children=1&nights=3", nil)
	req.SetPathValue("userName", "alice")
	w := httptest.NewRecorder()

	handler.GetTripDeals(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Count     int                 `json:"count"`
		TripDeals []entities.TripDeal `json:"trip_deals"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 5, response.Count)
	for _, deal := range response.TripDeals {
		assert.NotEmpty(t, deal.Name)
		assert.GreaterOrEqual(t, deal.Price, 0.0)
	}
}
