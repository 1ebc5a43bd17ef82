package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/domain_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/request_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/prompts"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/repositories"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/utils"
)

// DiscoveryServiceInterface produces the place catalog for a request: the
// seed dataset merged with generator-suggested additions.
type DiscoveryServiceInterface interface {
	DiscoverPlaces(ctx context.Context, req request_models.TravelRequest) ([]domain_models.Place, error)
}

type DiscoveryService struct {
	cityRepo repositories.CityRepository
	llm      utils.GenerativeClientInterface
	catalog  CatalogServiceInterface
	logger   *zap.Logger
}

func NewDiscoveryService(
	cityRepo repositories.CityRepository,
	llm utils.GenerativeClientInterface,
	catalog CatalogServiceInterface,
	logger *zap.Logger,
) DiscoveryServiceInterface {
	return &DiscoveryService{
		cityRepo: cityRepo,
		llm:      llm,
		catalog:  catalog,
		logger:   logger,
	}
}

// DiscoverPlaces loads the verified seed list and asks the generator for
// additional places it has not seen. A transport failure on the generator
// call is fatal (this is the primary data source for seedless cities); an
// unparseable augmentation payload degrades to seed-only.
func (s *DiscoveryService) DiscoverPlaces(ctx context.Context, req request_models.TravelRequest) ([]domain_models.Place, error) {
	dataset, err := s.cityRepo.LoadCityDataset(req.DestinationCity)
	if err != nil {
		return nil, err
	}

	verifiedNames := make([]string, 0, len(dataset.Places))
	for _, p := range dataset.Places {
		if p.Name != "" {
			verifiedNames = append(verifiedNames, p.Name)
		}
	}

	llmInput, err := json.Marshal(map[string]interface{}{
		"city":                 req.DestinationCity,
		"verified_place_names": verifiedNames,
		"user_interests":       req.Interests,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal discovery context: %w", err)
	}

	raw, err := s.llm.GenerateContent(ctx, prompts.SystemPromptDiscovery, string(llmInput))
	if err != nil {
		return nil, fmt.Errorf("%w: discovery call: %v", utils.ErrGenerationFailed, err)
	}

	var augmentation domain_models.DraftAugmentation
	if err := utils.ExtractJSONObject(raw, &augmentation); err != nil {
		if errors.Is(err, utils.ErrMalformedDraft) {
			s.logger.Warn("discovery augmentation unparseable, continuing with seed places",
				zap.String("city", req.DestinationCity), zap.Error(err))
			augmentation.AdditionalPlaces = nil
		} else {
			return nil, err
		}
	}

	merged := s.catalog.MergePlaces(dataset.Places, augmentation.AdditionalPlaces)
	if len(merged) == 0 {
		return nil, utils.ErrNoPlacesDiscovered
	}

	s.logger.Info("discovery complete",
		zap.String("city", req.DestinationCity),
		zap.Int("seed_places", len(dataset.Places)),
		zap.Int("merged_places", len(merged)))

	return merged, nil
}
