package request

type MovieRequest struct {
	Title           string  `json:"title" validate:"required,min=1,max=255"`
	Description     string  `json:"description" validate:"max=2000"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	AgeRestriction  int     `json:"age_restriction" validate:"gte=0"`
	TicketPrice     float64 `json:"ticket_price" validate:"gte=0"`
}
