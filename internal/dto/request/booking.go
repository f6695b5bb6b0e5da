package request

// BookingRequest is the body of POST /api/cinemas/{cinemaId}/book.
type BookingRequest struct {
	ViewerID int64 `json:"viewer_id" validate:"required,gt=0"`
	MovieID  int64 `json:"movie_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gt=0"`
}
