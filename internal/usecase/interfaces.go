package usecase

import (
	"context"

	"release-control/internal/entities"
)

// ProjectUsecaseInterface abstracts project workflow operations for the
// delivery layer.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, actor entities.Actor, draft entities.Project) (*entities.Project, error)
	Project(ctx context.Context, projectID string) (*entities.Project, error)
	ListProjects(ctx context.Context, filter entities.ProjectFilter) ([]entities.ProjectShort, error)
	UpdateProject(ctx context.Context, actor entities.Actor, projectID string, diff entities.FieldDiff) (*entities.Project, []entities.Notice, error)
	DeleteProject(ctx context.Context, actor entities.Actor, projectID string) error
	FieldPolicies(ctx context.Context, actor entities.Actor, projectID string) (map[string]entities.FieldPolicy, error)
}

// ReviewUsecaseInterface abstracts reviewer-centric operations.
type ReviewUsecaseInterface interface {
	ReviewQueue(ctx context.Context, actor entities.Actor) ([]entities.ProjectShort, error)
}

// SummaryUsecaseInterface abstracts aggregated reporting operations.
type SummaryUsecaseInterface interface {
	Summary(ctx context.Context) (entities.Summary, error)
}
