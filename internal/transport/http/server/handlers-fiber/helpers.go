package handlers_fiber

import (
	"errors"
	"net/http"

	"release-control/internal/entities"
	"release-control/internal/mapper"
	"release-control/internal/payload"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error, notices []entities.Notice) error {
	status := http.StatusInternalServerError
	code := payload.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = payload.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrProjectNotFound):
		status = http.StatusNotFound
		code = payload.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrProjectExists):
		status = http.StatusConflict
		code = payload.PROJECTEXISTS
		msg = "project id already exists"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = payload.FORBIDDEN
		msg = "access denied"
	case errors.Is(err, entities.ErrStageOutOfOrder):
		status = http.StatusConflict
		code = payload.STAGEOUTOFORDER
		msg = "approval stages must advance in order"
	case errors.Is(err, entities.ErrNotOwner):
		status = http.StatusConflict
		code = payload.NOTOWNER
		msg = "actor is not the owner or assigned reviewer"
	case errors.Is(err, entities.ErrLocked):
		status = http.StatusConflict
		code = payload.LOCKED
		msg = "project is locked after final approval"
	case errors.Is(err, entities.ErrUnknownField):
		// Policy-table/diff mismatch: a defect, never user input.
		msg = "unknown field in diff"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg, notices))
}

func errorResponse(code payload.ErrorCode, msg string, notices []entities.Notice) payload.ErrorResponse {
	return payload.ErrorResponse{
		Error:   payload.ErrorBody{Code: code, Message: msg},
		Notices: mapper.ToPayloadNotices(notices),
	}
}
