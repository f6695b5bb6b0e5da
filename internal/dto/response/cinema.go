package response

import (
	"github.com/rauanCheb33/oop-final-project/internal/data/entity"
)

type CinemaResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}

func CinemaToResponse(cinema *entity.Cinema) CinemaResponse {
	return CinemaResponse{
		ID:      cinema.ID,
		Name:    cinema.Name,
		City:    cinema.City,
		Address: cinema.Address,
	}
}

func CinemasToResponse(cinemas []*entity.Cinema) []CinemaResponse {
	responses := make([]CinemaResponse, len(cinemas))
	for i, cinema := range cinemas {
		responses[i] = CinemaToResponse(cinema)
	}
	return responses
}
