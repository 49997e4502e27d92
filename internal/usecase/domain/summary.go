// Package domain contains application services composing the workflow engine
// with identity and persistence collaborators.
package domain

import (
	"context"

	"release-control/internal/entities"
)

// Summary returns project counts grouped by derived stage and by team.
func (u *Usecase) Summary(ctx context.Context) (entities.Summary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Summary(ctx)
}
