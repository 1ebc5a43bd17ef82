package services

import (
	"context"

	"github.com/Gitkbc/Gen-Ai-Tourism/internal/models/domain_models"
)

// stubGenerativeClient replays a canned response (or error) and records what
// it was asked.
type stubGenerativeClient struct {
	response   string
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (s *stubGenerativeClient) GenerateContent(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	s.calls++
	s.lastSystem = systemPrompt
	s.lastUser = userPrompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerativeClient) Close() error { return nil }

func testCatalogPlaces() []domain_models.Place {
	return []domain_models.Place{
		{Name: "Shaniwar Wada", Lat: 18.5195, Lng: 73.8553, Category: "Cultural & Heritage Sites", Rating: 4.4, TicketPrice: 25},
		{Name: "Dagadusheth Halwai Ganapati Temple", Lat: 18.5164, Lng: 73.8560, Category: "Religious Sites", Rating: 4.8},
		{Name: "Raja Dinkar Kelkar Museum", Lat: 18.5107, Lng: 73.8547, Category: "Cultural & Heritage Sites", Rating: 4.5, TicketPrice: 100},
		{Name: "Pune-Okayama Friendship Garden", Lat: 18.4924, Lng: 73.8343, Category: "Parks & Gardens", Rating: 4.3, TicketPrice: 5},
		{Name: "Sinhagad Fort", Lat: 18.3663, Lng: 73.7559, Category: "Cultural & Heritage Sites", Rating: 4.6, TicketPrice: 50},
	}
}

func testFoodOutlets() []domain_models.FoodOutlet {
	return []domain_models.FoodOutlet{
		{
			Name:               "Vaidya Uphar Gruha",
			AreaOrNeighborhood: "Sadashiv Peth",
			SignatureDishes:    []string{"Misal"},
			MealSlots:          []string{"Breakfast", "Snacks"},
		},
		{
			Name:               "Durvankur Dining Hall",
			AreaOrNeighborhood: "Tilak Road",
			SignatureDishes:    []string{"Maharashtrian Thali"},
			MealSlots:          []string{"Lunch", "Dinner"},
		},
	}
}
