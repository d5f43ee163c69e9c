package dto

import "latenight/internal/http-api/models"

type GuestResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Occupation string `json:"occupation"`
}

func FromModelToGuestResponse(g *models.Guest) GuestResponse {
	return GuestResponse{
		ID:         g.ID,
		Name:       g.Name,
		Occupation: g.Occupation,
	}
}

func FromModelsToGuestResponses(guests []models.Guest) []GuestResponse {
	out := make([]GuestResponse, 0, len(guests))
	for i := range guests {
		out = append(out, FromModelToGuestResponse(&guests[i]))
	}
	return out
}
