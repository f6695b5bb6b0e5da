package request

type CinemaRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	City    string `json:"city" validate:"max=255"`
	Address string `json:"address" validate:"max=255"`
}
