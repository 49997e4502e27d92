// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"release-control/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the project workflow API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// Register mounts the API routes behind the identity middleware.
func (h *Handler) Register(app *fiber.App, identity fiber.Handler) {
	api := app.Group("/api/v1", identity)

	api.Post("/projects", h.CreateProject)
	api.Get("/projects", h.ListProjects)
	api.Get("/projects/summary", h.Summary)
	api.Get("/reviews/queue", h.ReviewQueue)
	api.Get("/projects/:id", h.GetProject)
	api.Patch("/projects/:id", h.UpdateProject)
	api.Delete("/projects/:id", h.DeleteProject)
	api.Get("/projects/:id/policy", h.FieldPolicies)
}
