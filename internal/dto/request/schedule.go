package request

// ScheduleUpsertRequest adds a movie to a cinema schedule or replaces
// its seat count.
type ScheduleUpsertRequest struct {
	MovieID int64 `json:"movie_id" validate:"required,gt=0"`
	Seats   int   `json:"seats" validate:"gte=0"`
}
