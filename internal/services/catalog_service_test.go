package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/domain_models"
)

func TestMergePlacesSeedWinsOverAdditional(t *testing.T) {
	svc := NewCatalogService()

	seed := []domain_models.RawPlace{
		{Name: "Shaniwar Wada", Lat: 18.519, Lng: 73.855, Rating: 4.4, TicketPrice: 25},
	}
	additional := []domain_models.RawPlace{
		{Name: "  shaniwar   wada ", Lat: 0.0, Lng: 0.0, Rating: 1.0},
		{Name: "Aga Khan Palace", Lat: 18.552, Lng: 73.902, Rating: 4.5},
	}

	merged := svc.MergePlaces(seed, additional)
	require.Len(t, merged, 2)
	assert.Equal(t, "Shaniwar Wada", merged[0].Name)
	assert.Equal(t, 4.4, merged[0].Rating)
	assert.Equal(t, 25.0, merged[0].TicketPrice)
	assert.Equal(t, "Aga Khan Palace", merged[1].Name)
}

func TestMergePlacesDropsNonNumericCoordinates(t *testing.T) {
	svc := NewCatalogService()

	merged := svc.MergePlaces(nil, []domain_models.RawPlace{
		{Name: "Broken Pin", Lat: "not-a-number", Lng: 73.9},
		{Name: "Missing Lng", Lat: 18.5},
		{Name: "Good Pin", Lat: 18.5, Lng: 73.9},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, "Good Pin", merged[0].Name)
}

func TestMergePlacesCoercesLooseTypes(t *testing.T) {
	svc := NewCatalogService()

	merged := svc.MergePlaces(nil, []domain_models.RawPlace{
		{Name: "Loose Types", Lat: 18, Lng: float32(73.9), Rating: "4.3", TicketPrice: nil},
	})

	require.Len(t, merged, 1)
	assert.Equal(t, 18.0, merged[0].Lat)
	assert.Equal(t, 4.3, merged[0].Rating)
	assert.Equal(t, 0.0, merged[0].TicketPrice)
}

func TestMergePlacesSkipsEmptyNames(t *testing.T) {
	svc := NewCatalogService()

	merged := svc.MergePlaces(nil, []domain_models.RawPlace{
		{Name: "   ", Lat: 18.5, Lng: 73.9},
	})
	assert.Empty(t, merged)
}

func TestBuildPlaceIndexKeysAreCanonical(t *testing.T) {
	svc := NewCatalogService()

	index := svc.BuildPlaceIndex([]domain_models.Place{
		{Name: "Sinhagad Fort", Lat: 18.366, Lng: 73.756},
	})

	p, ok := index["sinhagad fort"]
	require.True(t, ok)
	assert.Equal(t, "Sinhagad Fort", p.Name)
}

func TestCentroid(t *testing.T) {
	svc := NewCatalogService()

	index := svc.BuildPlaceIndex([]domain_models.Place{
		{Name: "A", Lat: 18.0, Lng: 73.0},
		{Name: "B", Lat: 19.0, Lng: 74.0},
	})

	lat, lng := svc.Centroid(index)
	assert.InDelta(t, 18.5, lat, 1e-9)
	assert.InDelta(t, 73.5, lng, 1e-9)
}

func TestSortedAllowedPlacesIsDeterministic(t *testing.T) {
	svc := NewCatalogService()

	index := svc.BuildPlaceIndex([]domain_models.Place{
		{Name: "C", Lat: 18.6, Lng: 73.9},
		{Name: "A", Lat: 18.5, Lng: 73.8},
		{Name: "B", Lat: 18.5, Lng: 73.9},
	})

	first := svc.SortedAllowedPlaces(index)
	second := svc.SortedAllowedPlaces(index)

	require.Len(t, first, 3)
	assert.Equal(t, first, second)
	assert.Equal(t, "A", first[0].Name)
	assert.Equal(t, "B", first[1].Name)
	assert.Equal(t, "C", first[2].Name)
}
