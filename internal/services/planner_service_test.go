package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/request_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/repositories"
)

type failingCacheStore struct {
	getCalls int
	putCalls int
}

func (s *failingCacheStore) Get(_ context.Context, _ string) ([]byte, bool, error) {
	s.getCalls++
	return nil, false, errors.New("cache backend down")
}

func (s *failingCacheStore) Put(_ context.Context, _ string, _ []byte) error {
	s.putCalls++
	return errors.New("cache backend down")
}

func newTestPlanner(store repositories.CacheStore, delay time.Duration) PlannerServiceInterface {
	logger := zap.NewNop()
	catalog := NewCatalogService()

	discovery := NewDiscoveryService(
		&stubCityRepo{dataset: puneSeedDataset()},
		&stubGenerativeClient{response: `{"additional_places": []}`},
		catalog, logger)
	culinary := NewCulinaryService(&stubGenerativeClient{err: errors.New("offline")}, logger)
	architect := NewArchitectService(&stubGenerativeClient{response: "{}"}, logger, 8.0, 15.0, 700, 700)

	return NewPlannerService(
		discovery, culinary, catalog,
		NewClusterService(DefaultEffortRules(), 3.0),
		NewRankingService(),
		NewTransportService(),
		architect, store, logger, 4, delay)
}

func TestCacheKeyNormalization(t *testing.T) {
	base := request_models.TravelRequest{
		HomeCity:        "Mumbai",
		DestinationCity: "Pune",
		NumDays:         2,
		Budget:          10000,
		Interests:       []string{"Food", " Heritage "},
	}

	reordered := base
	reordered.HomeCity = " mumbai"
	reordered.DestinationCity = "PUNE"
	reordered.Interests = []string{"heritage", "food"}

	assert.Equal(t, CacheKey(base), CacheKey(reordered))
	assert.Len(t, CacheKey(base), 64)

	differentBudget := base
	differentBudget.Budget = 12000
	assert.NotEqual(t, CacheKey(base), CacheKey(differentBudget))

	differentInterests := base
	differentInterests.Interests = []string{"food", "nightlife"}
	assert.NotEqual(t, CacheKey(base), CacheKey(differentInterests))

	differentDays := base
	differentDays.NumDays = 3
	assert.NotEqual(t, CacheKey(base), CacheKey(differentDays))
}

func TestFullItineraryMissThenHit(t *testing.T) {
	planner := newTestPlanner(repositories.NewMemoryCacheStore(time.Hour), 0)
	req := punePlannerRequest()

	first, err := planner.FullItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.Metadata.CacheHit)
	assert.Equal(t, 2, first.Metadata.NumPlacesDiscovered)
	assert.Equal(t, 2, first.Metadata.NumClusters)
	require.Len(t, first.Itinerary.Days, 2)
	for _, day := range first.Itinerary.Days {
		assert.NotEmpty(t, day.ScheduleBlocks)
		assert.Len(t, day.FoodHalts, 4)
	}

	second, err := planner.FullItinerary(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.Metadata.CacheHit)
	assert.Equal(t, first.Itinerary, second.Itinerary)
}

func TestFullItineraryNormalizedRequestsShareCacheEntry(t *testing.T) {
	planner := newTestPlanner(repositories.NewMemoryCacheStore(time.Hour), 0)

	req := punePlannerRequest()
	_, err := planner.FullItinerary(context.Background(), req)
	require.NoError(t, err)

	variant := req
	variant.DestinationCity = "pune"
	variant.Interests = []string{" HERITAGE "}

	resp, err := planner.FullItinerary(context.Background(), variant)
	require.NoError(t, err)
	assert.True(t, resp.Metadata.CacheHit)
}

func TestFullItineraryCacheFailureIsInvisible(t *testing.T) {
	store := &failingCacheStore{}
	planner := newTestPlanner(store, 0)

	resp, err := planner.FullItinerary(context.Background(), punePlannerRequest())
	require.NoError(t, err)
	assert.False(t, resp.Metadata.CacheHit)
	require.Len(t, resp.Itinerary.Days, 2)

	// Both the failed read and the failed write were attempted and swallowed.
	assert.Equal(t, 1, store.getCalls)
	assert.Equal(t, 1, store.putCalls)
}

func TestFullItineraryDiscoveryFailurePropagates(t *testing.T) {
	logger := zap.NewNop()
	catalog := NewCatalogService()
	discovery := NewDiscoveryService(
		&stubCityRepo{dataset: puneSeedDataset()},
		&stubGenerativeClient{err: errors.New("upstream timeout")},
		catalog, logger)
	culinary := NewCulinaryService(&stubGenerativeClient{err: errors.New("offline")}, logger)
	architect := NewArchitectService(&stubGenerativeClient{response: "{}"}, logger, 8.0, 15.0, 700, 700)
	planner := NewPlannerService(
		discovery, culinary, catalog,
		NewClusterService(DefaultEffortRules(), 3.0),
		NewRankingService(),
		NewTransportService(),
		architect, repositories.NewMemoryCacheStore(time.Hour), logger, 4, 0)

	_, err := planner.FullItinerary(context.Background(), punePlannerRequest())
	require.Error(t, err)
}

func TestDiscoverEndpointShape(t *testing.T) {
	planner := newTestPlanner(repositories.NewMemoryCacheStore(time.Hour), 0)

	resp, err := planner.Discover(context.Background(), punePlannerRequest())
	require.NoError(t, err)
	require.Len(t, resp.DiscoveredPlaces, 2)
	assert.Equal(t, "Shaniwar Wada", resp.DiscoveredPlaces[0].Name)
}
