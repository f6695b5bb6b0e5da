package wire

import (
	"github.com/rauanCheb33/oop-final-project/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireViewer(r chi.Router, viewerHandler *adaptor.ViewerHandler) {
	r.Route("/api/viewers", func(r chi.Router) {
		r.Get("/", viewerHandler.GetViewers)          // GET /api/viewers
		r.Post("/", viewerHandler.CreateViewer)       // POST /api/viewers
		r.Get("/{id}", viewerHandler.GetViewerByID)   // GET /api/viewers/{id}
		r.Put("/{id}", viewerHandler.UpdateViewer)    // PUT /api/viewers/{id}
		r.Delete("/{id}", viewerHandler.DeleteViewer) // DELETE /api/viewers/{id}
	})
}
