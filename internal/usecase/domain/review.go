// Package domain contains application services composing the workflow engine
// with identity and persistence collaborators.
package domain

import (
	"context"
	"fmt"

	"release-control/internal/entities"
)

// ReviewQueue returns projects awaiting the acting reviewer's sign-off:
// first-stage assignments without a review1 verdict and second-stage
// assignments whose first review already passed.
func (u *Usecase) ReviewQueue(ctx context.Context, actor entities.Actor) ([]entities.ProjectShort, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if actor.DisplayName == "" {
		return nil, fmt.Errorf("%w: actor display name is required", entities.ErrInvalidArgument)
	}
	if !actor.HasRole(entities.RoleReviewer1) && !actor.HasRole(entities.RoleReviewer2) {
		return nil, fmt.Errorf("%w: review queue is reviewer-only", entities.ErrForbidden)
	}

	return u.repo.ReviewQueue(ctx, actor.DisplayName)
}
