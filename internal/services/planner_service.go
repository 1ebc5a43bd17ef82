package services

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/domain_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/request_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/response_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/repositories"
)

// PlannerServiceInterface is the request-level orchestrator: discovery and
// culinary intelligence run concurrently, then the deterministic pipeline
// (clustering, ranking, architecture) produces the itinerary.
type PlannerServiceInterface interface {
	Discover(ctx context.Context, req request_models.TravelRequest) (response_models.DiscoverResponse, error)
	FullItinerary(ctx context.Context, req request_models.TravelRequest) (response_models.FullItineraryResponse, error)
}

type PlannerService struct {
	discovery DiscoveryServiceInterface
	culinary  CulinaryServiceInterface
	catalog   CatalogServiceInterface
	cluster   ClusterServiceInterface
	ranking   RankingServiceInterface
	transport TransportServiceInterface
	architect ArchitectServiceInterface
	cache     repositories.CacheStore
	logger    *zap.Logger

	mandatoryTopN int
	cacheHitDelay time.Duration
}

func NewPlannerService(
	discovery DiscoveryServiceInterface,
	culinary CulinaryServiceInterface,
	catalog CatalogServiceInterface,
	cluster ClusterServiceInterface,
	ranking RankingServiceInterface,
	transport TransportServiceInterface,
	architect ArchitectServiceInterface,
	cache repositories.CacheStore,
	logger *zap.Logger,
	mandatoryTopN int,
	cacheHitDelay time.Duration,
) PlannerServiceInterface {
	if mandatoryTopN <= 0 {
		mandatoryTopN = 4
	}
	return &PlannerService{
		discovery:     discovery,
		culinary:      culinary,
		catalog:       catalog,
		cluster:       cluster,
		ranking:       ranking,
		transport:     transport,
		architect:     architect,
		cache:         cache,
		logger:        logger,
		mandatoryTopN: mandatoryTopN,
		cacheHitDelay: cacheHitDelay,
	}
}

func (s *PlannerService) Discover(ctx context.Context, req request_models.TravelRequest) (response_models.DiscoverResponse, error) {
	start := time.Now()

	places, err := s.discovery.DiscoverPlaces(ctx, req)
	if err != nil {
		return response_models.DiscoverResponse{}, err
	}

	return response_models.DiscoverResponse{
		DiscoveredPlaces: places,
		Metadata: response_models.DiscoverMetadata{
			LatencyMs: round2(float64(time.Since(start).Microseconds()) / 1000),
		},
	}, nil
}

func (s *PlannerService) FullItinerary(ctx context.Context, req request_models.TravelRequest) (response_models.FullItineraryResponse, error) {
	start := time.Now()
	key := CacheKey(req)

	if payload, hit := s.cacheLookup(ctx, key); hit {
		// Hits return near-instantly; the fixed delay keeps hit and miss
		// latency in the same ballpark so callers cannot time-probe the cache.
		if s.cacheHitDelay > 0 {
			select {
			case <-time.After(s.cacheHitDelay):
			case <-ctx.Done():
				return response_models.FullItineraryResponse{}, ctx.Err()
			}
		}

		var cached response_models.FullItineraryResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			cached.Metadata.CacheHit = true
			cached.Metadata.TotalLatencyMs = round2(float64(time.Since(start).Microseconds()) / 1000)
			s.logger.Info("itinerary served from cache", zap.String("cache_key", key[:12]))
			return cached, nil
		}
		s.logger.Warn("cached payload undecodable, recomputing", zap.String("cache_key", key[:12]))
	}

	// Discovery and culinary intelligence are independent generator calls;
	// run them concurrently. Discovery failure is fatal, culinary failure
	// already degraded to empty defaults inside its service.
	var (
		wg           sync.WaitGroup
		places       []domain_models.Place
		discoveryErr error
		intel        domain_models.CulinaryIntelligence
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		places, discoveryErr = s.discovery.DiscoverPlaces(ctx, req)
	}()
	go func() {
		defer wg.Done()
		intel = s.culinary.GatherCulinaryIntelligence(ctx, req.DestinationCity, req.Interests)
	}()
	wg.Wait()

	if discoveryErr != nil {
		return response_models.FullItineraryResponse{}, discoveryErr
	}

	clusters := s.cluster.ClusterByProximity(places)

	// Clustering annotated effort tiers on its own copies; rebuild the flat
	// annotated list so the index and ranking see the tiers.
	annotated := make([]domain_models.Place, 0, len(places))
	for _, cluster := range clusters {
		annotated = append(annotated, cluster.Places...)
	}

	index := s.catalog.BuildPlaceIndex(annotated)
	rankResult := s.ranking.RankPlaces(annotated, req.Interests, s.mandatoryTopN)

	mandatoryNames := make([]string, 0, len(rankResult.MandatoryTopPlaces))
	for _, rp := range rankResult.MandatoryTopPlaces {
		mandatoryNames = append(mandatoryNames, rp.Name)
	}

	itinerary, err := s.architect.BuildItinerary(ctx, ArchitectInput{
		Request:            req,
		PlaceIndex:         index,
		AllowedPlaces:      s.catalog.SortedAllowedPlaces(index),
		Culinary:           intel,
		FoodIndex:          s.culinary.BuildFoodIndex(intel),
		MandatoryTopPlaces: mandatoryNames,
		ClusterSummaries:   s.cluster.SummarizeClusters(clusters),
		Transport:          s.transport.EstimateTransportCosts(req.HomeCity, req.DestinationCity, req.NumDays),
	})
	if err != nil {
		return response_models.FullItineraryResponse{}, err
	}

	resp := response_models.FullItineraryResponse{
		Itinerary: itinerary,
		Metadata: response_models.ItineraryMetadata{
			TotalLatencyMs:      round2(float64(time.Since(start).Microseconds()) / 1000),
			NumPlacesDiscovered: len(places),
			NumClusters:         len(clusters),
		},
	}

	s.cacheWrite(ctx, key, resp)
	return resp, nil
}

func (s *PlannerService) cacheLookup(ctx context.Context, key string) ([]byte, bool) {
	payload, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		// Cache trouble is never user-visible; a failing read is a miss.
		s.logger.Warn("cache read failed, treating as miss", zap.Error(err))
		return nil, false
	}
	return payload, ok
}

// cacheWrite is last-writer-wins with no locking: concurrent duplicates both
// compute and both write, which is benign because payloads are deterministic
// per normalized key.
func (s *PlannerService) cacheWrite(ctx context.Context, key string, resp response_models.FullItineraryResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		s.logger.Warn("cache payload marshal failed", zap.Error(err))
		return
	}
	if err := s.cache.Put(ctx, key, payload); err != nil {
		s.logger.Warn("cache write failed", zap.Error(err))
	}
}

// normalizedRequest is the canonical form hashed into the cache key. Field
// order is part of the contract; reordering fields invalidates every key.
type normalizedRequest struct {
	HomeCity        string   `json:"home_city"`
	DestinationCity string   `json:"destination_city"`
	NumDays         int      `json:"num_days"`
	Budget          float64  `json:"budget"`
	Interests       []string `json:"interests"`
}

// CacheKey hashes the normalized request: cities lowercased and trimmed,
// interests lowercased, trimmed and sorted. Requests differing only in
// ordering or case share a key.
func CacheKey(req request_models.TravelRequest) string {
	interests := make([]string, 0, len(req.Interests))
	for _, interest := range req.Interests {
		if t := strings.ToLower(strings.TrimSpace(interest)); t != "" {
			interests = append(interests, t)
		}
	}
	sort.Strings(interests)

	normalized := normalizedRequest{
		HomeCity:        strings.ToLower(strings.TrimSpace(req.HomeCity)),
		DestinationCity: strings.ToLower(strings.TrimSpace(req.DestinationCity)),
		NumDays:         req.NumDays,
		Budget:          req.Budget,
		Interests:       interests,
	}

	payload, _ := json.Marshal(normalized)
	return fmt.Sprintf("%x", sha256.Sum256(payload))
}
