package services

import (
	"sort"
	"strings"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/domain_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/utils"
)

// CatalogServiceInterface canonicalizes and indexes places. The catalog is
// the single source of truth: nothing referenced by the final itinerary may
// exist outside it.
type CatalogServiceInterface interface {
	MergePlaces(seed, additional []domain_models.RawPlace) []domain_models.Place
	BuildPlaceIndex(places []domain_models.Place) domain_models.PlaceIndex
	Centroid(index domain_models.PlaceIndex) (lat, lng float64)
	SortedAllowedPlaces(index domain_models.PlaceIndex) []domain_models.Place
}

type CatalogService struct{}

func NewCatalogService() CatalogServiceInterface {
	return &CatalogService{}
}

// MergePlaces folds the two ordered sources (seed list first, then the
// generator-augmented list) into one validated slice, keeping the first
// occurrence per canonical name and discarding entries without numeric
// coordinates.
func (s *CatalogService) MergePlaces(seed, additional []domain_models.RawPlace) []domain_models.Place {
	merged := make([]domain_models.Place, 0, len(seed)+len(additional))
	seen := make(map[string]bool)

	for _, source := range [][]domain_models.RawPlace{seed, additional} {
		for _, raw := range source {
			canonical := utils.CanonicalName(raw.Name)
			if canonical == "" || seen[canonical] {
				continue
			}
			lat, okLat := toNumber(raw.Lat)
			lng, okLng := toNumber(raw.Lng)
			if !okLat || !okLng {
				continue
			}

			merged = append(merged, domain_models.Place{
				Name:        strings.TrimSpace(raw.Name),
				Lat:         lat,
				Lng:         lng,
				Category:    raw.Category,
				Rating:      utils.SafeFloat(raw.Rating, 0.0),
				TicketPrice: utils.SafeFloat(raw.TicketPrice, 0.0),
				Speciality:  raw.Speciality,
				LocalNote:   raw.LocalNote,
				BestTime:    raw.BestTime,
				EffortType:  raw.EffortType,
				ImageURL:    strings.TrimSpace(raw.ImageURL),
			})
			seen[canonical] = true
		}
	}

	return merged
}

func (s *CatalogService) BuildPlaceIndex(places []domain_models.Place) domain_models.PlaceIndex {
	index := make(domain_models.PlaceIndex, len(places))
	for _, p := range places {
		canonical := utils.CanonicalName(p.Name)
		if canonical == "" {
			continue
		}
		if _, exists := index[canonical]; exists {
			continue
		}
		index[canonical] = p
	}
	return index
}

// Centroid is the mean lat/lng over the catalog, the reference point for
// effort-isolation distance checks.
func (s *CatalogService) Centroid(index domain_models.PlaceIndex) (float64, float64) {
	return meanLatLng(index)
}

// SortedAllowedPlaces renders the index as a deterministic list for the
// generator context, ordered by coordinates so identical catalogs always
// produce byte-identical context.
func (s *CatalogService) SortedAllowedPlaces(index domain_models.PlaceIndex) []domain_models.Place {
	places := make([]domain_models.Place, 0, len(index))
	for _, p := range index {
		places = append(places, p)
	}
	sort.Slice(places, func(i, j int) bool {
		if places[i].Lat != places[j].Lat {
			return places[i].Lat < places[j].Lat
		}
		return places[i].Lng < places[j].Lng
	})
	return places
}

func toNumber(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}
