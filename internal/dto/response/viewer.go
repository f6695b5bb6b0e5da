package response

import (
	"github.com/rauanCheb33/oop-final-project/internal/data/entity"
)

type ViewerResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Age     int     `json:"age"`
	Balance float64 `json:"balance"`
}

func ViewerToResponse(viewer *entity.Viewer) ViewerResponse {
	return ViewerResponse{
		ID:      viewer.ID,
		Name:    viewer.Name,
		Age:     viewer.Age,
		Balance: viewer.Balance.InexactFloat64(),
	}
}

func ViewersToResponse(viewers []*entity.Viewer) []ViewerResponse {
	responses := make([]ViewerResponse, len(viewers))
	for i, viewer := range viewers {
		responses[i] = ViewerToResponse(viewer)
	}
	return responses
}
