package response

import (
	"github.com/rauanCheb33/oop-final-project/internal/data/entity"
)

type MovieResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	AgeRestriction  int     `json:"age_restriction"`
	TicketPrice     float64 `json:"ticket_price"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:              movie.ID,
		Title:           movie.Title,
		Description:     movie.Description,
		DurationMinutes: movie.DurationMinutes,
		AgeRestriction:  movie.AgeRestriction,
		TicketPrice:     movie.TicketPrice.InexactFloat64(),
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	responses := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = MovieToResponse(movie)
	}
	return responses
}
