package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/request_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/response_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/utils"
)

type stubPlanner struct {
	discoverResp response_models.DiscoverResponse
	fullResp     response_models.FullItineraryResponse
	err          error
}

func (s *stubPlanner) Discover(_ context.Context, _ request_models.TravelRequest) (response_models.DiscoverResponse, error) {
	return s.discoverResp, s.err
}

func (s *stubPlanner) FullItinerary(_ context.Context, _ request_models.TravelRequest) (response_models.FullItineraryResponse, error) {
	return s.fullResp, s.err
}

func newTestRouter(planner *stubPlanner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewPlannerController(planner)

	router := gin.New()
	router.POST("/planner/discover", controller.DiscoverPlaces)
	router.POST("/planner/full-itinerary", controller.FullItinerary)
	return router
}

func validRequestBody() string {
	return `{"home_city": "Mumbai", "destination_city": "Pune", "num_days": 2, "budget": 10000, "interests": ["heritage"]}`
}

func doPost(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFullItinerarySuccess(t *testing.T) {
	planner := &stubPlanner{fullResp: response_models.FullItineraryResponse{
		Itinerary: response_models.Itinerary{Title: "Pune Human-Realistic Route Plan"},
	}}
	router := newTestRouter(planner)

	w := doPost(router, "/planner/full-itinerary", validRequestBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Contains(t, w.Body.String(), "Pune Human-Realistic Route Plan")
}

func TestFullItineraryRejectsInvalidBody(t *testing.T) {
	router := newTestRouter(&stubPlanner{})

	tests := []struct {
		name string
		body string
	}{
		{"missing destination", `{"home_city": "Mumbai", "num_days": 2, "budget": 10000}`},
		{"zero days", `{"home_city": "Mumbai", "destination_city": "Pune", "num_days": 0, "budget": 10000}`},
		{"negative budget", `{"home_city": "Mumbai", "destination_city": "Pune", "num_days": 2, "budget": -5}`},
		{"not json", `plain text`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doPost(router, "/planner/full-itinerary", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDiscoverErrorMapping(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{utils.ErrNoPlacesDiscovered, http.StatusNotFound},
		{utils.ErrUnknownCity, http.StatusNotFound},
		{fmt.Errorf("%w: discovery call: timeout", utils.ErrGenerationFailed), http.StatusBadGateway},
		{utils.ErrInvalidInput, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		router := newTestRouter(&stubPlanner{err: tt.err})
		w := doPost(router, "/planner/discover", validRequestBody())
		assert.Equal(t, tt.wantCode, w.Code, "error %v", tt.err)

		var resp utils.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "error", resp.Status)
	}
}

func TestDiscoverSuccess(t *testing.T) {
	planner := &stubPlanner{discoverResp: response_models.DiscoverResponse{}}
	router := newTestRouter(planner)

	w := doPost(router, "/planner/discover", validRequestBody())
	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, http.StatusOK, resp.Code)
}
