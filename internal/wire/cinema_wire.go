package wire

import (
	"github.com/rauanCheb33/oop-final-project/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCinema(r chi.Router, cinemaHandler *adaptor.CinemaHandler) {
	r.Route("/api/cinemas", func(r chi.Router) {
		r.Get("/", cinemaHandler.GetCinemas)          // GET /api/cinemas
		r.Post("/", cinemaHandler.CreateCinema)       // POST /api/cinemas
		r.Get("/{id}", cinemaHandler.GetCinemaByID)   // GET /api/cinemas/{id}
		r.Put("/{id}", cinemaHandler.UpdateCinema)    // PUT /api/cinemas/{id}
		r.Delete("/{id}", cinemaHandler.DeleteCinema) // DELETE /api/cinemas/{id}

		// Schedule: which movies a cinema shows and the seats left for each.
		r.Get("/{id}/schedule", cinemaHandler.GetSchedule)
		r.Post("/{id}/schedule", cinemaHandler.UpsertSchedule)
		r.Delete("/{id}/schedule/{movieId}", cinemaHandler.DeleteScheduleEntry)
	})
}
