package handlers_fiber

import (
	"net/http"

	"release-control/internal/mapper"
	"release-control/internal/payload"

	"github.com/gofiber/fiber/v2"
)

// ReviewQueue lists projects awaiting the acting reviewer's verdict.
func (h *Handler) ReviewQueue(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	projects, err := h.uc.ReviewQueue(c.Context(), actor)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.Status(http.StatusOK).JSON(payload.ProjectListResponse{
		Projects: mapper.ToPayloadShortList(projects),
	})
}

// Summary reports project counts by stage and team.
func (h *Handler) Summary(c *fiber.Ctx) error {
	if _, err := h.actor(c); err != nil {
		return err
	}

	summary, err := h.uc.Summary(c.Context())
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.Status(http.StatusOK).JSON(summary)
}
