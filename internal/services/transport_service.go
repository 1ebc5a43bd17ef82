package services

import (
	"strings"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/domain_models"
)

// Transport cost constants, mid-range assumptions (AC train/bus, app cabs).
const (
	defaultRoundTripCost        = 3000
	mumbaiPuneTrainBusRoundTrip = 800
	localPerDayCost             = 600
)

type TransportServiceInterface interface {
	EstimateTransportCosts(home, dest string, numDays int) domain_models.TransportEstimate
}

type TransportService struct{}

func NewTransportService() TransportServiceInterface {
	return &TransportService{}
}

// EstimateTransportCosts is a deterministic coarse estimate; it feeds the
// generator context and the metadata, never the cost invariants.
func (s *TransportService) EstimateTransportCosts(home, dest string, numDays int) domain_models.TransportEstimate {
	roundTrip := float64(defaultRoundTripCost)
	if strings.EqualFold(strings.TrimSpace(home), "mumbai") && strings.EqualFold(strings.TrimSpace(dest), "pune") {
		roundTrip = mumbaiPuneTrainBusRoundTrip
	}

	localTotal := float64(localPerDayCost * numDays)

	return domain_models.TransportEstimate{
		IntercityRoundTrip:  roundTrip,
		LocalDailyAvg:       localPerDayCost,
		LocalTotalEstimate:  localTotal,
		GrandTotalTransport: roundTrip + localTotal,
		Notes:               "Assumes mid-range travel options (AC train/bus, app-based cabs/autos). Costs can vary.",
	}
}
