package response

import (
	"github.com/rauanCheb33/oop-final-project/internal/data/entity"
)

type ScheduleItemResponse struct {
	Movie MovieResponse `json:"movie"`
	Seats int           `json:"seats"`
}

func ScheduleItemsToResponse(items []*entity.ScheduleItem) []ScheduleItemResponse {
	responses := make([]ScheduleItemResponse, len(items))
	for i, item := range items {
		responses[i] = ScheduleItemResponse{
			Movie: MovieToResponse(&item.Movie),
			Seats: item.Seats,
		}
	}
	return responses
}
