// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrStageOutOfOrder signals review2/approve set before its prerequisite review.
	ErrStageOutOfOrder = errors.New("stage out of order")
	// ErrNotOwner signals the actor is not the assignee/owner for the field touched.
	ErrNotOwner = errors.New("not owner")
	// ErrLocked signals a mutation attempt after final approval.
	ErrLocked = errors.New("locked")
	// ErrForbidden signals the actor's role set grants no access to the view.
	ErrForbidden = errors.New("forbidden")
	// ErrUnknownField signals a diff key missing from the policy table. Programming error.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrProjectNotFound signals missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrProjectExists signals duplicate project id.
	ErrProjectExists = errors.New("project exists")
)
