package services

import (
	"sort"
	"strings"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/domain_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/utils"
)

// Effort tiers, in rule-priority order.
const (
	EffortHighOutskirts   = "high_effort_outskirts"
	EffortUrbanWalkable   = "urban_walkable"
	EffortSemiUrban       = "semi_urban"
	EffortModernOutskirts = "modern_outskirts"
)

// EffortRule pairs a tier with the keywords that select it. Rules are
// evaluated in order; the first rule with any matching keyword wins.
type EffortRule struct {
	Tier     string
	Keywords []string
}

// DefaultEffortRules is the ordered classification table. Keyword sets are
// data, not control flow, so city-specific tuning never touches the
// classifier itself.
func DefaultEffortRules() []EffortRule {
	return []EffortRule{
		{Tier: EffortHighOutskirts, Keywords: []string{"fort", "sinhagad", "hill", "parvati", "trek"}},
		{Tier: EffortUrbanWalkable, Keywords: []string{"temple", "ganapati", "devi", "chatushrungi", "dagadusheth", "market", "peth", "baug"}},
		{Tier: EffortSemiUrban, Keywords: []string{"museum", "kelkar", "zoo", "garden"}},
		{Tier: EffortModernOutskirts, Keywords: []string{"marketcity", "phoenix"}},
	}
}

// ClassifyEffort returns the tier of the first rule matching the place's
// name+category text, defaulting to urban_walkable. Pure function.
func ClassifyEffort(rules []EffortRule, name, category string) string {
	text := strings.ToLower(name + " " + category)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Tier
			}
		}
	}
	return EffortUrbanWalkable
}

type ClusterServiceInterface interface {
	ClusterByProximity(places []domain_models.Place) []domain_models.Cluster
	SummarizeClusters(clusters []domain_models.Cluster) []domain_models.ClusterSummary
}

type ClusterService struct {
	rules       []EffortRule
	thresholdKm float64
}

func NewClusterService(rules []EffortRule, thresholdKm float64) ClusterServiceInterface {
	if thresholdKm <= 0 {
		thresholdKm = 3.0
	}
	return &ClusterService{rules: rules, thresholdKm: thresholdKm}
}

// ClusterByProximity computes connected components of the implicit graph in
// which two places are adjacent when their great-circle distance is within
// the threshold. Iterative DFS over an index arena with a visited array, so
// component size never touches the call stack. Each place gets its effort
// tier assigned as it is visited. O(n²) distance checks; catalogs are small.
func (s *ClusterService) ClusterByProximity(places []domain_models.Place) []domain_models.Cluster {
	// Cluster membership mutates EffortType; work on a copy so the caller's
	// slice stays untouched.
	valid := make([]domain_models.Place, len(places))
	copy(valid, places)

	visited := make([]bool, len(valid))
	clusters := make([]domain_models.Cluster, 0)

	for i := range valid {
		if visited[i] {
			continue
		}

		var members []domain_models.Place
		stack := []int{i}

		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[current] {
				continue
			}
			visited[current] = true

			valid[current].EffortType = ClassifyEffort(s.rules, valid[current].Name, valid[current].Category)
			members = append(members, valid[current])

			for j := range valid {
				if visited[j] {
					continue
				}
				d := utils.HaversineKm(valid[current].Lat, valid[current].Lng, valid[j].Lat, valid[j].Lng)
				if d <= s.thresholdKm {
					stack = append(stack, j)
				}
			}
		}

		if len(members) > 0 {
			clusters = append(clusters, domain_models.Cluster{ID: len(clusters), Places: members})
		}
	}

	// Largest first; stable so equal-sized clusters keep encounter order.
	sort.SliceStable(clusters, func(a, b int) bool {
		return len(clusters[a].Places) > len(clusters[b].Places)
	})

	return clusters
}

// SummarizeClusters renders clusters into the slim shape the generator sees.
func (s *ClusterService) SummarizeClusters(clusters []domain_models.Cluster) []domain_models.ClusterSummary {
	summaries := make([]domain_models.ClusterSummary, 0, len(clusters))
	for idx, cluster := range clusters {
		items := make([]domain_models.ClusterSummaryItem, 0, len(cluster.Places))
		for _, p := range cluster.Places {
			items = append(items, domain_models.ClusterSummaryItem{
				Name:       p.Name,
				Category:   p.Category,
				EffortType: p.EffortType,
			})
		}
		summaries = append(summaries, domain_models.ClusterSummary{
			ClusterID:   idx,
			ClusterSize: len(cluster.Places),
			Places:      items,
		})
	}
	return summaries
}
