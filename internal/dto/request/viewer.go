package request

type ViewerRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=255"`
	Age     int     `json:"age" validate:"gte=0"`
	Balance float64 `json:"balance" validate:"gte=0"`
}
