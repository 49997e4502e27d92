// Package domain contains application services composing the workflow engine
// with identity and persistence collaborators.
package domain

import (
	"context"
	"fmt"

	"release-control/internal/entities"
	"release-control/internal/policy"

	"github.com/google/uuid"
)

// CreateProject gates creation, claims ownership for the actor and stores the
// submission payload. Owner and team always come from the authenticated
// identity, never from the request.
func (u *Usecase) CreateProject(ctx context.Context, actor entities.Actor, draft entities.Project) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !policy.CanCreate(actor.Roles) {
		u.log.Infow("project create denied", "actor", actor.ID)
		return nil, fmt.Errorf("%w: role set grants no create access", entities.ErrForbidden)
	}
	if draft.ProjectName == "" || draft.Version == "" {
		return nil, fmt.Errorf("%w: project_name and version are required", entities.ErrInvalidArgument)
	}

	draft.ID = uuid.NewString()
	draft.Owner = actor.DisplayName
	draft.Team = actor.Team
	draft.LastEditor = actor.DisplayName
	draft.Review1 = nil
	draft.Review2 = nil
	draft.Approve = false
	draft.Comment1, draft.Comment2, draft.Comment3 = "", "", ""

	res, err := u.repo.CreateProject(ctx, draft)
	if err != nil {
		return nil, err
	}
	u.log.Infow("project created", "project_id", res.ID, "owner", res.Owner, "team", res.Team)
	return res, nil
}

// Project returns a project snapshot by id.
func (u *Usecase) Project(ctx context.Context, projectID string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetProject(ctx, projectID)
}

// ListProjects returns compact projections matching the filter.
func (u *Usecase) ListProjects(ctx context.Context, filter entities.ProjectFilter) ([]entities.ProjectShort, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return u.repo.ListProjects(ctx, filter)
}

// UpdateProject runs a proposed field diff through the workflow engine and
// persists the merged state only when every policy check agrees. The load,
// validation and store happen within one request; concurrent edits of the
// same project are last-writer-wins at the persistence layer.
func (u *Usecase) UpdateProject(ctx context.Context, actor entities.Actor, projectID string, diff entities.FieldDiff) (*entities.Project, []entities.Notice, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}

	current, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}

	merged, notices, err := u.engine.Apply(actor, *current, diff)
	if err != nil {
		u.log.Infow("project update rejected",
			"project_id", projectID, "actor", actor.ID, "reason", err)
		return current, notices, err
	}
	if len(diff) == 0 {
		return current, notices, nil
	}

	stored, err := u.repo.UpdateProject(ctx, merged)
	if err != nil {
		return nil, nil, err
	}
	u.log.Infow("project updated", "project_id", projectID, "actor", actor.ID, "stage", stored.Stage())
	return stored, notices, nil
}

// DeleteProject removes a project, administrators only and never after final
// approval.
func (u *Usecase) DeleteProject(ctx context.Context, actor entities.Actor, projectID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}

	current, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return err
	}
	if err := u.engine.AuthorizeDelete(actor, *current); err != nil {
		u.log.Infow("project delete denied", "project_id", projectID, "actor", actor.ID, "reason", err)
		return err
	}

	if err := u.repo.DeleteProject(ctx, projectID); err != nil {
		return err
	}
	u.log.Infow("project deleted", "project_id", projectID, "actor", actor.ID)
	return nil
}

// FieldPolicies resolves the per-field visibility/editability map the
// rendering collaborator uses to hide or disable inputs.
func (u *Usecase) FieldPolicies(ctx context.Context, actor entities.Actor, projectID string) (map[string]entities.FieldPolicy, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return nil, fmt.Errorf("%w: project_id is required", entities.ErrInvalidArgument)
	}

	current, err := u.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return policy.ResolveFieldPolicy(policy.EffectiveRole(actor.Roles), *current), nil
}
