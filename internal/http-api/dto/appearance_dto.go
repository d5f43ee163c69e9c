package dto

import "latenight/internal/http-api/models"

// CreateAppearanceRequest uses pointers so a missing field fails binding
// while an explicit 0 still reaches rating validation.
type CreateAppearanceRequest struct {
	Rating    *int   `json:"rating" binding:"required"`
	EpisodeID *int64 `json:"episode_id" binding:"required"`
	GuestID   *int64 `json:"guest_id" binding:"required"`
}

// AppearanceResponse is the top-level appearance shape with both sides
// expanded. Neither nested object carries appearances.
type AppearanceResponse struct {
	ID        int64            `json:"id"`
	Rating    int              `json:"rating"`
	EpisodeID int64            `json:"episode_id"`
	GuestID   int64            `json:"guest_id"`
	Episode   *EpisodeResponse `json:"episode"`
	Guest     *GuestResponse   `json:"guest"`
}

func FromModelToAppearanceResponse(a *models.Appearance) *AppearanceResponse {
	resp := &AppearanceResponse{
		ID:        a.ID,
		Rating:    a.Rating,
		EpisodeID: a.EpisodeID,
		GuestID:   a.GuestID,
	}
	if a.Episode != nil {
		e := FromModelToEpisodeResponse(a.Episode)
		resp.Episode = &e
	}
	if a.Guest != nil {
		g := FromModelToGuestResponse(a.Guest)
		resp.Guest = &g
	}
	return resp
}

// ErrorResponse is the single-message error body, e.g. {"error":"Episode not found"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body for rejected writes.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
