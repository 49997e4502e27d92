package handlers_fiber

import (
	"net/http"

	"release-control/internal/entities"
	"release-control/internal/mapper"
	"release-control/internal/payload"
	"release-control/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) actor(c *fiber.Ctx) (entities.Actor, error) {
	actor, ok := middleware.ActorFromCtx(c)
	if !ok {
		h.log.Errorw("actor missing from request context", "path", c.Path())
		return entities.Actor{}, c.Status(http.StatusUnauthorized).
			JSON(errorResponse(payload.FORBIDDEN, "identity required", nil))
	}
	return actor, nil
}

// CreateProject handles submission of a new project by its owner.
func (h *Handler) CreateProject(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	var body payload.CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(payload.INVALIDARGUMENT, "invalid body", nil))
	}

	project, err := h.uc.CreateProject(c.Context(), actor, mapper.FromCreateRequest(body))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.Status(http.StatusCreated).JSON(payload.ProjectResponse{
		Project: mapper.ToPayloadProject(*project),
	})
}

// GetProject returns a full project snapshot.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	if _, err := h.actor(c); err != nil {
		return err
	}

	project, err := h.uc.Project(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.Status(http.StatusOK).JSON(payload.ProjectResponse{
		Project: mapper.ToPayloadProject(*project),
	})
}

// ListProjects returns compact rows matching search text and approval filter.
func (h *Handler) ListProjects(c *fiber.Ctx) error {
	if _, err := h.actor(c); err != nil {
		return err
	}

	filter := entities.ProjectFilter{
		Search: c.Query("search"),
		Limit:  c.QueryInt("limit"),
	}
	if v := c.Query("approved"); v != "" {
		approved := v == "true" || v == "1"
		filter.Approved = &approved
	}

	projects, err := h.uc.ListProjects(c.Context(), filter)
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.Status(http.StatusOK).JSON(payload.ProjectListResponse{
		Projects: mapper.ToPayloadShortList(projects),
	})
}

// UpdateProject applies a proposed field diff through the workflow engine.
func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	var body payload.UpdateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(payload.INVALIDARGUMENT, "invalid body", nil))
	}

	project, notices, err := h.uc.UpdateProject(c.Context(), actor, c.Params("id"), mapper.FromUpdateRequest(body))
	if err != nil {
		return writeError(c, err, notices)
	}
	return c.Status(http.StatusOK).JSON(payload.ProjectResponse{
		Project: mapper.ToPayloadProject(*project),
		Notices: mapper.ToPayloadNotices(notices),
	})
}

// DeleteProject removes a project prior to final approval.
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProject(c.Context(), actor, c.Params("id")); err != nil {
		return writeError(c, err, nil)
	}
	return c.SendStatus(http.StatusNoContent)
}

// FieldPolicies returns the per-field render decisions for the acting role.
func (h *Handler) FieldPolicies(c *fiber.Ctx) error {
	actor, err := h.actor(c)
	if err != nil {
		return err
	}

	policies, err := h.uc.FieldPolicies(c.Context(), actor, c.Params("id"))
	if err != nil {
		return writeError(c, err, nil)
	}
	return c.Status(http.StatusOK).JSON(payload.PolicyResponse{
		Fields: mapper.ToPayloadPolicies(policies),
	})
}
