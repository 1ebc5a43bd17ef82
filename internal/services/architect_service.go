package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/domain_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/request_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/response_models"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/prompts"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/utils"
)

// Canonical meal slots, chronological. Fixed and non-negotiable: every day
// ships exactly these four, whatever the generator proposed.
var mealSlots = []struct {
	MealType string
	Window   string
}{
	{"Breakfast", "08:00-09:00"},
	{"Lunch", "13:00-14:00"},
	{"Snacks", "16:30-17:30"},
	{"Dinner", "20:00-21:00"},
}

// highEffortKeywords marks places that must not share a day with anything
// else once they are far from the catalog centroid.
var highEffortKeywords = []string{"fort", "trek", "hill", "outskirts", "high_effort", "peak", "sanctuary"}

// extendedVisitKeywords selects the 90-minute visit duration.
var extendedVisitKeywords = []string{"hill", "viewpoint", "cityscape", "fort", "trek", "sunset point", "peak"}

// ArchitectInput is the verified context handed to the route architect: the
// outputs of catalog, clustering, ranking and culinary stages.
type ArchitectInput struct {
	Request            request_models.TravelRequest
	PlaceIndex         domain_models.PlaceIndex
	AllowedPlaces      []domain_models.Place
	Culinary           domain_models.CulinaryIntelligence
	FoodIndex          domain_models.FoodIndex
	MandatoryTopPlaces []string
	ClusterSummaries   []domain_models.ClusterSummary
	Transport          domain_models.TransportEstimate
}

// ArchitectServiceInterface turns a verified context plus an untrusted
// generator draft into a structurally valid itinerary. This stage is the
// sole gate ensuring physical plausibility; it must succeed regardless of
// what the generator returns.
type ArchitectServiceInterface interface {
	BuildItinerary(ctx context.Context, in ArchitectInput) (response_models.Itinerary, error)
}

type ArchitectService struct {
	llm                utils.GenerativeClientInterface
	logger             *zap.Logger
	spreadKm           float64
	isolationKm        float64
	foodAllowance      float64
	transportAllowance float64
}

func NewArchitectService(
	llm utils.GenerativeClientInterface,
	logger *zap.Logger,
	spreadKm, isolationKm, foodAllowance, transportAllowance float64,
) ArchitectServiceInterface {
	if spreadKm <= 0 {
		spreadKm = 8.0
	}
	if isolationKm <= 0 {
		isolationKm = 15.0
	}
	return &ArchitectService{
		llm:                llm,
		logger:             logger,
		spreadKm:           spreadKm,
		isolationKm:        isolationKm,
		foodAllowance:      foodAllowance,
		transportAllowance: transportAllowance,
	}
}

func (s *ArchitectService) BuildItinerary(ctx context.Context, in ArchitectInput) (response_models.Itinerary, error) {
	draft := s.requestDraft(ctx, in)
	return s.sanitizeItinerary(draft, in), nil
}

// requestDraft runs the generator call and decodes its response. Any failure
// here, transport or parse, yields an empty draft: the repair pipeline fills
// every day from the catalog, so a generator outage degrades quality but
// never validity.
func (s *ArchitectService) requestDraft(ctx context.Context, in ArchitectInput) domain_models.Draft {
	contextJSON, err := json.Marshal(s.buildGeneratorContext(in))
	if err != nil {
		s.logger.Warn("architect context marshal failed", zap.Error(err))
		return domain_models.Draft{}
	}

	raw, err := s.llm.GenerateContent(ctx, prompts.SystemPromptRouteArchitect, string(contextJSON))
	if err != nil {
		s.logger.Warn("architect generation failed, repairing from catalog",
			zap.String("city", in.Request.DestinationCity), zap.Error(err))
		return domain_models.Draft{}
	}

	var draft domain_models.Draft
	if err := utils.ExtractJSONObject(raw, &draft); err != nil {
		s.logger.Warn("architect draft malformed, repairing from catalog",
			zap.String("city", in.Request.DestinationCity), zap.Error(err))
		return domain_models.Draft{}
	}
	return draft
}

func (s *ArchitectService) buildGeneratorContext(in ArchitectInput) map[string]interface{} {
	slimPlaces := make([]map[string]interface{}, 0, len(in.AllowedPlaces))
	for _, p := range in.AllowedPlaces {
		slimPlaces = append(slimPlaces, map[string]interface{}{
			"name":         p.Name,
			"lat":          p.Lat,
			"lng":          p.Lng,
			"category":     p.Category,
			"ticket_price": p.TicketPrice,
			"effort_type":  p.EffortType,
		})
	}

	return map[string]interface{}{
		"request": map[string]interface{}{
			"destination_city": in.Request.DestinationCity,
			"num_days":         in.Request.NumDays,
			"budget":           in.Request.Budget,
			"interests":        in.Request.Interests,
		},
		"mandatory_top_places": in.MandatoryTopPlaces,
		"allowed_places":       slimPlaces,
		"allowed_food_outlets": in.Culinary.FoodOutlets,
		"culinary_intelligence": map[string]interface{}{
			"breakfast_signatures":   in.Culinary.BreakfastSignatures,
			"lunch_style":            in.Culinary.LunchStyle,
			"snack_signatures":       in.Culinary.SnackSignatures,
			"dinner_style":           in.Culinary.DinnerStyle,
			"legacy_establishments":  in.Culinary.LegacyEstablishments,
			"heritage_food_clusters": in.Culinary.HeritageFoodClusters,
		},
		"cluster_summaries": in.ClusterSummaries,
		"transport_estimate": map[string]interface{}{
			"local_daily_avg": in.Transport.LocalDailyAvg,
			"notes":           in.Transport.Notes,
		},
	}
}

// sanitizeItinerary is the repair pipeline: per-day block sanitation with
// catalog fallback, meal enforcement, mandatory insertion, then timeline and
// cost. Output is valid for any draft, including the zero value.
func (s *ArchitectService) sanitizeItinerary(draft domain_models.Draft, in ArchitectInput) response_models.Itinerary {
	centerLat, centerLng := meanLatLng(in.PlaceIndex)
	fallbacks := fallbackOrder(in.PlaceIndex)

	used := make(map[string]bool)
	days := make([]response_models.Day, 0, in.Request.NumDays)

	for idx := 1; idx <= in.Request.NumDays; idx++ {
		var dayRaw domain_models.DraftDay
		if idx-1 < len(draft.Itinerary.Days) {
			dayRaw = draft.Itinerary.Days[idx-1]
		}

		blocks := s.sanitizeDayBlocks(dayRaw.ScheduleBlocks, in.PlaceIndex, centerLat, centerLng)

		if len(blocks) == 0 {
			if fb, ok := pickFallbackPlace(fallbacks, used); ok {
				blocks = []response_models.ScheduleBlock{{
					Place:               fb.Name,
					ReasonForTimeChoice: "Fallback from verified place index.",
				}}
			}
		}

		for _, b := range blocks {
			used[utils.CanonicalName(b.Place)] = true
		}

		walking := utils.SafeFloat(dayRaw.TotalWalkingKmEstimate, 3.0)
		walking = adjustWalkingEstimate(walking, blocks, in.PlaceIndex)

		flow := strings.TrimSpace(dayRaw.GeographicFlowExplanation)
		if flow == "" {
			flow = "Directional movement with low backtracking and realistic segment durations."
		}

		days = append(days, response_models.Day{
			Day:                       idx,
			DayTimeWindow:             "08:00-20:00",
			GeographicFlowExplanation: flow,
			TotalWalkingKmEstimate:    round2(maxFloat(walking, 0)),
			ScheduleBlocks:            blocks,
			FoodHalts:                 s.enforceFourMeals(dayRaw.FoodHalts, in.Culinary.FoodOutlets, in.FoodIndex),
		})
	}

	s.insertMandatoryPlaces(days, in.MandatoryTopPlaces, in.PlaceIndex)

	total := 0.0
	for i := range days {
		days[i].ScheduleBlocks = s.applyVisitDurations(days[i].ScheduleBlocks, in.PlaceIndex)
		days[i].EstimatedDayCost = s.dayCost(days[i].ScheduleBlocks, in.PlaceIndex)
		total += days[i].EstimatedDayCost
	}
	total = round2(total)

	city := strings.TrimSpace(in.Request.DestinationCity)
	if city == "" {
		city = "City"
	}

	title := strings.TrimSpace(draft.Itinerary.Title)
	if title == "" {
		title = city + " Human-Realistic Route Plan"
	}
	hotelArea := strings.TrimSpace(draft.Itinerary.HotelRecommendation.Area)
	if hotelArea == "" {
		hotelArea = city + " Central"
	}
	hotelReason := strings.TrimSpace(draft.Itinerary.HotelRecommendation.Reason)
	if hotelReason == "" {
		hotelReason = "Central area minimizes average daily commute."
	}

	return response_models.Itinerary{
		Title:               title,
		HotelRecommendation: response_models.HotelRecommendation{Area: hotelArea, Reason: hotelReason},
		Days:                days,
		TotalEstimatedCost:  total,
		WithinBudget:        total <= in.Request.Budget,
	}
}

// sanitizeDayBlocks applies the per-day structural rules, in order: drop
// hallucinated references, cap at 4 blocks, prune half-day geographic
// sprawl, isolate far high-effort sites.
func (s *ArchitectService) sanitizeDayBlocks(
	blocks []domain_models.DraftBlock,
	index domain_models.PlaceIndex,
	centerLat, centerLng float64,
) []response_models.ScheduleBlock {
	valid := make([]response_models.ScheduleBlock, 0, 4)
	for _, block := range blocks {
		place, ok := index[utils.CanonicalName(block.Place)]
		if !ok {
			continue
		}
		if len(valid) == 4 {
			break
		}

		blockTime := strings.TrimSpace(block.Time)
		if blockTime == "" {
			blockTime = "09:00-10:30"
		}
		reason := strings.TrimSpace(block.ReasonForTimeChoice)
		if reason == "" {
			reason = "Aligned with traffic and site rhythm."
		}

		valid = append(valid, response_models.ScheduleBlock{
			Time:                blockTime,
			Place:               place.Name,
			ReasonForTimeChoice: reason,
		})
	}

	if len(valid) == 0 {
		return nil
	}

	// A half-day must stay compact: greedily accept blocks whose place is
	// within the spread limit of everything already accepted that half-day.
	var morning, afternoon []response_models.ScheduleBlock
	for _, block := range valid {
		if parseStartHour(block.Time) < 13 {
			morning = append(morning, block)
		} else {
			afternoon = append(afternoon, block)
		}
	}

	pruned := make([]response_models.ScheduleBlock, 0, len(valid))
	for _, group := range [][]response_models.ScheduleBlock{morning, afternoon} {
		var accepted []response_models.ScheduleBlock
		for _, block := range group {
			candidate := index[utils.CanonicalName(block.Place)]
			within := true
			for _, existing := range accepted {
				prior := index[utils.CanonicalName(existing.Place)]
				if utils.HaversineKm(candidate.Lat, candidate.Lng, prior.Lat, prior.Lng) > s.spreadKm {
					within = false
					break
				}
			}
			if within {
				accepted = append(accepted, block)
			}
		}
		pruned = append(pruned, accepted...)
	}

	// A far high-effort site claims the whole day.
	for _, block := range pruned {
		place := index[utils.CanonicalName(block.Place)]
		if isHighEffort(place) && utils.HaversineKm(place.Lat, place.Lng, centerLat, centerLng) > s.isolationKm {
			return []response_models.ScheduleBlock{block}
		}
	}

	return pruned
}

// enforceFourMeals accepts generator halts only when the meal type is one of
// the four canonical slots and the outlet exists in the food catalog, then
// fills every remaining slot from the catalog or the generic placeholder.
// Output is always exactly 4 halts in canonical order.
func (s *ArchitectService) enforceFourMeals(
	halts []domain_models.DraftHalt,
	outlets []domain_models.FoodOutlet,
	index domain_models.FoodIndex,
) []response_models.FoodHalt {
	byMeal := make(map[string]response_models.FoodHalt, 4)

	for _, halt := range halts {
		mealType, slotWindow, ok := canonicalMealSlot(halt.MealType)
		if !ok {
			continue
		}
		outlet, ok := index[utils.CanonicalName(halt.Outlet)]
		if !ok {
			continue
		}

		dish := strings.TrimSpace(halt.SignatureDish)
		if dish == "" {
			dish = outletDish(outlet)
		}
		area := strings.TrimSpace(halt.Area)
		if area == "" {
			area = outletArea(outlet)
		}
		reason := strings.TrimSpace(halt.ReasonSelected)
		if reason == "" {
			reason = "Chosen for local legacy and route proximity."
		}

		byMeal[mealType] = response_models.FoodHalt{
			Time:           slotWindow,
			MealType:       mealType,
			Outlet:         outlet.Name,
			SignatureDish:  dish,
			Area:           area,
			ReasonSelected: reason,
		}
	}

	final := make([]response_models.FoodHalt, 0, 4)
	for _, slot := range mealSlots {
		if halt, ok := byMeal[slot.MealType]; ok {
			final = append(final, halt)
			continue
		}
		fallback := pickFallbackOutlet(outlets, slot.MealType)
		fallback.Time = slot.Window
		fallback.MealType = slot.MealType
		fallback.ReasonSelected = "Auto-filled to enforce mandatory 4-meal structure."
		final = append(final, fallback)
	}
	return final
}

// insertMandatoryPlaces guarantees every mandatory place appears in exactly
// one schedule block. Round-robin over days with free capacity; when every
// day is full, day 1 is truncated to 3 blocks to make room and the displaced
// block is reported — an explicit policy, not a silent drop.
func (s *ArchitectService) insertMandatoryPlaces(
	days []response_models.Day,
	mandatory []string,
	index domain_models.PlaceIndex,
) {
	if len(days) == 0 {
		return
	}

	var names []string
	seen := make(map[string]bool)
	for _, name := range mandatory {
		canonical := utils.CanonicalName(name)
		if canonical == "" || seen[canonical] {
			continue
		}
		if _, ok := index[canonical]; !ok {
			continue
		}
		names = append(names, canonical)
		seen[canonical] = true
	}

	scheduled := make(map[string]bool)
	for _, day := range days {
		for _, block := range day.ScheduleBlocks {
			scheduled[utils.CanonicalName(block.Place)] = true
		}
	}

	dayIdx := 0
	for _, canonical := range names {
		if scheduled[canonical] {
			continue
		}
		place := index[canonical]
		entry := response_models.ScheduleBlock{
			Place:               place.Name,
			ReasonForTimeChoice: "Mandatory top-ranked place from initial destination ranking.",
		}

		inserted := false
		for range days {
			if len(days[dayIdx].ScheduleBlocks) < 4 {
				days[dayIdx].ScheduleBlocks = append(
					[]response_models.ScheduleBlock{entry}, days[dayIdx].ScheduleBlocks...)
				inserted = true
				dayIdx = (dayIdx + 1) % len(days)
				break
			}
			dayIdx = (dayIdx + 1) % len(days)
		}

		if !inserted {
			displaced := days[0].ScheduleBlocks[3]
			s.logger.Warn("mandatory insertion displaced a scheduled block",
				zap.String("inserted", place.Name),
				zap.String("displaced", displaced.Place))
			days[0].ScheduleBlocks = append(
				[]response_models.ScheduleBlock{entry}, days[0].ScheduleBlocks[:3]...)
		}
		scheduled[canonical] = true
	}
}

// applyVisitDurations maps blocks onto the fixed start-time template for the
// day's block count: 60-minute visits, 90 for extended-visit categories.
// Never drops blocks.
func (s *ArchitectService) applyVisitDurations(
	blocks []response_models.ScheduleBlock,
	index domain_models.PlaceIndex,
) []response_models.ScheduleBlock {
	var starts []int
	switch {
	case len(blocks) >= 4:
		starts = []int{480, 630, 840, 1020} // 08:00, 10:30, 14:00, 17:00
	case len(blocks) == 3:
		starts = []int{510, 750, 990} // 08:30, 12:30, 16:30
	case len(blocks) == 2:
		starts = []int{510, 990} // 08:30, 16:30
	case len(blocks) == 1:
		starts = []int{540} // 09:00
	}

	timed := make([]response_models.ScheduleBlock, 0, len(blocks))
	for i, block := range blocks {
		place := index[utils.CanonicalName(block.Place)]

		duration := 60
		if isExtendedVisit(place) {
			duration = 90
		}

		start := 540
		if i < len(starts) {
			start = starts[i]
		}

		timed = append(timed, response_models.ScheduleBlock{
			Time:                formatSlot(start, duration),
			Place:               block.Place,
			ReasonForTimeChoice: block.ReasonForTimeChoice,
			ImageURL:            place.ImageURL,
		})
	}
	return timed
}

// dayCost sums ticket prices over the day's unique places plus the fixed
// daily food and local-transport allowances.
func (s *ArchitectService) dayCost(blocks []response_models.ScheduleBlock, index domain_models.PlaceIndex) float64 {
	unique := make(map[string]bool)
	tickets := 0.0
	for _, block := range blocks {
		canonical := utils.CanonicalName(block.Place)
		if unique[canonical] {
			continue
		}
		unique[canonical] = true
		if place, ok := index[canonical]; ok {
			tickets += place.TicketPrice
		}
	}
	return round2(tickets + s.foodAllowance + s.transportAllowance)
}

// ---------- helpers ----------

func canonicalMealSlot(raw string) (mealType, window string, ok bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, slot := range mealSlots {
		if normalized == strings.ToLower(slot.MealType) {
			return slot.MealType, slot.Window, true
		}
	}
	return "", "", false
}

func outletDish(outlet domain_models.FoodOutlet) string {
	if len(outlet.SignatureDishes) > 0 && strings.TrimSpace(outlet.SignatureDishes[0]) != "" {
		return outlet.SignatureDishes[0]
	}
	if outlet.Cuisine != "" {
		return outlet.Cuisine
	}
	return "Local specialty"
}

func outletArea(outlet domain_models.FoodOutlet) string {
	if outlet.AreaOrNeighborhood != "" {
		return outlet.AreaOrNeighborhood
	}
	return "City Center"
}

// pickFallbackOutlet walks the ordered outlet list: first an outlet eligible
// for the slot, then any outlet, then the generic placeholder.
func pickFallbackOutlet(outlets []domain_models.FoodOutlet, mealType string) response_models.FoodHalt {
	for _, outlet := range outlets {
		for _, slot := range outlet.MealSlots {
			if strings.EqualFold(strings.TrimSpace(slot), mealType) {
				return response_models.FoodHalt{
					Outlet:        outlet.Name,
					SignatureDish: outletDish(outlet),
					Area:          outletArea(outlet),
				}
			}
		}
	}
	if len(outlets) > 0 {
		return response_models.FoodHalt{
			Outlet:        outlets[0].Name,
			SignatureDish: outletDish(outlets[0]),
			Area:          outletArea(outlets[0]),
		}
	}
	return response_models.FoodHalt{
		Outlet:        "Local iconic eatery",
		SignatureDish: "Regional specialty",
		Area:          "City Center",
	}
}

// fallbackOrder returns catalog places by rating descending, name ascending
// on ties so fallback selection is deterministic.
func fallbackOrder(index domain_models.PlaceIndex) []domain_models.Place {
	places := make([]domain_models.Place, 0, len(index))
	for _, p := range index {
		places = append(places, p)
	}
	sort.Slice(places, func(i, j int) bool {
		if places[i].Rating != places[j].Rating {
			return places[i].Rating > places[j].Rating
		}
		return places[i].Name < places[j].Name
	})
	return places
}

func pickFallbackPlace(ordered []domain_models.Place, used map[string]bool) (domain_models.Place, bool) {
	for _, p := range ordered {
		if !used[utils.CanonicalName(p.Name)] {
			return p, true
		}
	}
	return domain_models.Place{}, false
}

// adjustWalkingEstimate clamps the generator's walking estimate: capped at
// 4.0 km for normal days, raised to at least 4.5 km when the day is a single
// high-effort outing.
func adjustWalkingEstimate(walking float64, blocks []response_models.ScheduleBlock, index domain_models.PlaceIndex) float64 {
	if len(blocks) == 1 {
		if place, ok := index[utils.CanonicalName(blocks[0].Place)]; ok && isHighEffort(place) {
			return maxFloat(walking, 4.5)
		}
	}
	return minFloat(walking, 4.0)
}

func isHighEffort(place domain_models.Place) bool {
	text := strings.ToLower(place.Name + " " + place.Category + " " + place.EffortType)
	for _, keyword := range highEffortKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func isExtendedVisit(place domain_models.Place) bool {
	text := strings.ToLower(place.Name + " " + place.Category)
	for _, keyword := range extendedVisitKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// parseStartHour reads the "HH:MM" prefix of a time range; anything
// unparseable lands in the morning at 09:00.
func parseStartHour(timeRange string) float64 {
	start := strings.TrimSpace(strings.SplitN(timeRange, "-", 2)[0])
	parsed, err := time.Parse("15:04", start)
	if err != nil {
		return 9.0
	}
	return float64(parsed.Hour()) + float64(parsed.Minute())/60
}

func formatSlot(startMinutes, durationMinutes int) string {
	end := startMinutes + durationMinutes
	return fmt.Sprintf("%02d:%02d-%02d:%02d", startMinutes/60, startMinutes%60, end/60, end%60)
}

func meanLatLng(index domain_models.PlaceIndex) (float64, float64) {
	if len(index) == 0 {
		return 0, 0
	}
	var lat, lng float64
	for _, p := range index {
		lat += p.Lat
		lng += p.Lng
	}
	n := float64(len(index))
	return lat / n, lng / n
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
