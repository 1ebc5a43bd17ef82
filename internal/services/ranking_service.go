package services

import (
	"math"
	"sort"
	"strings"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/domain_models"
)

// RankingServiceInterface scores places and selects the mandatory-coverage
// set the itinerary must include.
type RankingServiceInterface interface {
	RankPlaces(places []domain_models.Place, interests []string, topN int) RankingResult
}

type RankingResult struct {
	RankedPlaces       []domain_models.RankedPlace `json:"ranked_places"`
	MandatoryTopPlaces []domain_models.RankedPlace `json:"mandatory_top_places"`
}

type RankingService struct{}

func NewRankingService() RankingServiceInterface {
	return &RankingService{}
}

// RankPlaces scores each named place as rating*20 plus 8 per interest token
// found in its name+category text. The sort is stable and descending on
// (score, rating) so identical inputs always rank identically.
func (s *RankingService) RankPlaces(places []domain_models.Place, interests []string, topN int) RankingResult {
	tokens := make([]string, 0, len(interests))
	for _, interest := range interests {
		if t := strings.ToLower(strings.TrimSpace(interest)); t != "" {
			tokens = append(tokens, t)
		}
	}

	ranked := make([]domain_models.RankedPlace, 0, len(places))
	for _, place := range places {
		name := strings.TrimSpace(place.Name)
		if name == "" {
			continue
		}

		// Unrated places score as solid-but-not-top; a missing rating is a
		// data gap, not a verdict.
		rating := place.Rating
		if rating == 0 {
			rating = 4.0
		}

		text := strings.ToLower(name + " " + place.Category)
		hits := 0
		for _, token := range tokens {
			if strings.Contains(text, token) {
				hits++
			}
		}

		ranked = append(ranked, domain_models.RankedPlace{
			Name:     name,
			Category: strings.TrimSpace(place.Category),
			Rating:   round2(rating),
			Score:    round2(rating*20 + float64(hits)*8),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Rating > ranked[j].Rating
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(ranked) {
		topN = len(ranked)
	}

	return RankingResult{
		RankedPlaces:       ranked,
		MandatoryTopPlaces: ranked[:topN],
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
