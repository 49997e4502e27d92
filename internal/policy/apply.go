package policy

import (
	"errors"
	"fmt"
	"time"

	"release-control/internal/entities"
)

// Engine is the workflow orchestrator composing the access gate, the field
// policy table and the transition guard into a single entry point. It is
// stateless apart from the clock, which is injectable for tests.
type Engine struct {
	now func() time.Time
}

// New returns an engine stamping audit fields with the wall clock.
func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock returns an engine with a fixed clock source.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Apply validates and merges a proposed field diff. The returned notices are
// the user-facing outcome channel. Business rejections come back as both an
// error notice and a sentinel (StageOutOfOrder, NotOwner, Locked, Forbidden)
// so the boundary can pick a status code with errors.Is; the project is then
// returned untouched. Unknown diff keys indicate a caller defect and abort.
func (e *Engine) Apply(actor entities.Actor, project entities.Project, diff entities.FieldDiff) (entities.Project, []entities.Notice, error) {
	if err := validateDiff(diff); err != nil {
		return project, nil, err
	}

	if !CanEdit(actor.Roles) {
		return project, rejectionNotices(entities.ErrForbidden),
			fmt.Errorf("%w: role set grants no edit access", entities.ErrForbidden)
	}

	if len(diff) == 0 {
		return project, nil, nil
	}

	role := EffectiveRole(actor.Roles)
	base := basePolicies[role]
	for field := range diff {
		pol, known := base[field]
		if !known || !pol.Editable {
			return project, rejectionNotices(entities.ErrForbidden),
				fmt.Errorf("%w: %s is not editable for role %s", entities.ErrForbidden, field, role)
		}
	}

	merged, err := ValidateTransition(actor, project, diff, e.now())
	if err != nil {
		return project, rejectionNotices(err), err
	}

	return merged, successNotices(diff), nil
}

// AuthorizeDelete gates project deletion: only role sets with delete access,
// and only before final approval.
func (e *Engine) AuthorizeDelete(actor entities.Actor, project entities.Project) error {
	if !CanDelete(actor.Roles) {
		return fmt.Errorf("%w: role set grants no delete access", entities.ErrForbidden)
	}
	if project.Approve {
		return fmt.Errorf("%w: approved projects cannot be deleted", entities.ErrLocked)
	}
	return nil
}

func rejectionNotices(err error) []entities.Notice {
	msg := "The change was rejected"
	switch {
	case errors.Is(err, entities.ErrStageOutOfOrder):
		msg = "Approval stages must advance in order"
	case errors.Is(err, entities.ErrNotOwner):
		msg = "You are not the project owner or assigned reviewer"
	case errors.Is(err, entities.ErrLocked):
		msg = "Project is locked after final approval"
	case errors.Is(err, entities.ErrForbidden):
		msg = "You do not have permission to edit this project"
	}
	return []entities.Notice{{Severity: entities.SeverityError, Message: msg}}
}

func successNotices(diff entities.FieldDiff) []entities.Notice {
	switch {
	case diff.Touches(entities.FieldApprove) || diff.Touches(entities.FieldComment3):
		return []entities.Notice{{Severity: entities.SeverityInfo, Message: "Final disposition updated"}}
	case touchesAny(diff, []string{
		entities.FieldReview1, entities.FieldComment1,
		entities.FieldReview2, entities.FieldComment2,
	}):
		return []entities.Notice{{Severity: entities.SeverityInfo, Message: "Review updated"}}
	default:
		return []entities.Notice{{Severity: entities.SeverityInfo, Message: "Project updated"}}
	}
}
