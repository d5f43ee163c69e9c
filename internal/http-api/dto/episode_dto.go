package dto

import "latenight/internal/http-api/models"

// EpisodeResponse is the list shape: no appearances key at all.
type EpisodeResponse struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"`
	Number int    `json:"number"`
}

// EpisodeDetailResponse always carries appearances, [] when there are none.
// Each appearance includes its guest but not its episode.
type EpisodeDetailResponse struct {
	ID          int64                       `json:"id"`
	Date        string                      `json:"date"`
	Number      int                         `json:"number"`
	Appearances []EpisodeAppearanceResponse `json:"appearances"`
}

type EpisodeAppearanceResponse struct {
	ID        int64          `json:"id"`
	Rating    int            `json:"rating"`
	EpisodeID int64          `json:"episode_id"`
	GuestID   int64          `json:"guest_id"`
	Guest     *GuestResponse `json:"guest,omitempty"`
}

func FromModelToEpisodeResponse(e *models.Episode) EpisodeResponse {
	return EpisodeResponse{
		ID:     e.ID,
		Date:   e.Date,
		Number: e.Number,
	}
}

func FromModelsToEpisodeResponses(episodes []models.Episode) []EpisodeResponse {
	out := make([]EpisodeResponse, 0, len(episodes))
	for i := range episodes {
		out = append(out, FromModelToEpisodeResponse(&episodes[i]))
	}
	return out
}

// FromModelToEpisodeDetailResponse joins an episode with the appearances
// that reference it.
func FromModelToEpisodeDetailResponse(e *models.Episode, appearances []models.Appearance) *EpisodeDetailResponse {
	resp := &EpisodeDetailResponse{
		ID:          e.ID,
		Date:        e.Date,
		Number:      e.Number,
		Appearances: make([]EpisodeAppearanceResponse, 0, len(appearances)),
	}
	for _, a := range appearances {
		item := EpisodeAppearanceResponse{
			ID:        a.ID,
			Rating:    a.Rating,
			EpisodeID: a.EpisodeID,
			GuestID:   a.GuestID,
		}
		if a.Guest != nil {
			g := FromModelToGuestResponse(a.Guest)
			item.Guest = &g
		}
		resp.Appearances = append(resp.Appearances, item)
	}
	return resp
}
