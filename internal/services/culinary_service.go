package services

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/domain_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/prompts"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/utils"
)

// CulinaryServiceInterface produces the food-outlet catalog. It never fails
// the request: any error degrades to the empty-defaults structure, and the
// meal enforcer's generic placeholders take over from there.
type CulinaryServiceInterface interface {
	GatherCulinaryIntelligence(ctx context.Context, city string, interests []string) domain_models.CulinaryIntelligence
	BuildFoodIndex(intel domain_models.CulinaryIntelligence) domain_models.FoodIndex
}

type CulinaryService struct {
	llm    utils.GenerativeClientInterface
	logger *zap.Logger
}

func NewCulinaryService(llm utils.GenerativeClientInterface, logger *zap.Logger) CulinaryServiceInterface {
	return &CulinaryService{llm: llm, logger: logger}
}

func (s *CulinaryService) GatherCulinaryIntelligence(ctx context.Context, city string, interests []string) domain_models.CulinaryIntelligence {
	userPrompt, err := json.Marshal(map[string]interface{}{
		"city":           city,
		"user_interests": interests,
	})
	if err != nil {
		return domain_models.EmptyCulinary(city)
	}

	raw, err := s.llm.GenerateContent(ctx, prompts.SystemPromptCulinary, string(userPrompt))
	if err != nil {
		s.logger.Warn("culinary intelligence generation failed",
			zap.String("city", city), zap.Error(err))
		return domain_models.EmptyCulinary(city)
	}

	var payload domain_models.CulinaryIntelligence
	if err := utils.ExtractJSONObject(raw, &payload); err != nil {
		s.logger.Warn("culinary intelligence unparseable",
			zap.String("city", city), zap.Error(err))
		return domain_models.EmptyCulinary(city)
	}

	return s.sanitize(payload, city)
}

// sanitize dedupes outlets by canonical name and backfills nil slices so the
// payload always serializes with every key present.
func (s *CulinaryService) sanitize(payload domain_models.CulinaryIntelligence, city string) domain_models.CulinaryIntelligence {
	out := domain_models.EmptyCulinary(city)
	out.BreakfastSignatures = nonNil(payload.BreakfastSignatures)
	out.LunchStyle = nonNil(payload.LunchStyle)
	out.SnackSignatures = nonNil(payload.SnackSignatures)
	out.DinnerStyle = nonNil(payload.DinnerStyle)
	out.LegacyEstablishments = nonNil(payload.LegacyEstablishments)
	out.HeritageFoodClusters = nonNil(payload.HeritageFoodClusters)

	seen := make(map[string]bool)
	for _, outlet := range payload.FoodOutlets {
		canonical := utils.CanonicalName(outlet.Name)
		if canonical == "" || seen[canonical] {
			continue
		}
		seen[canonical] = true

		slots := make([]string, 0, len(outlet.MealSlots))
		for _, slot := range outlet.MealSlots {
			if trimmedSlot := utils.SafeString(slot); trimmedSlot != "" {
				slots = append(slots, trimmedSlot)
			}
		}

		out.FoodOutlets = append(out.FoodOutlets, domain_models.FoodOutlet{
			Name:               utils.SafeString(outlet.Name),
			AreaOrNeighborhood: utils.SafeString(outlet.AreaOrNeighborhood),
			SignatureDishes:    nonNil(outlet.SignatureDishes),
			MealSlots:          slots,
			LegacyScore:        outlet.LegacyScore,
			Cuisine:            utils.SafeString(outlet.Cuisine),
		})
	}

	return out
}

func (s *CulinaryService) BuildFoodIndex(intel domain_models.CulinaryIntelligence) domain_models.FoodIndex {
	index := make(domain_models.FoodIndex, len(intel.FoodOutlets))
	for _, outlet := range intel.FoodOutlets {
		canonical := utils.CanonicalName(outlet.Name)
		if canonical == "" {
			continue
		}
		if _, exists := index[canonical]; exists {
			continue
		}
		index[canonical] = outlet
	}
	return index
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
