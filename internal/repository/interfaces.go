// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"release-control/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
	Ping(ctx context.Context) error
}

// ProjectInterface exposes project persistence. The engine never issues
// queries itself: it receives a loaded snapshot and hands back a merged one.
type ProjectInterface interface {
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	GetProject(ctx context.Context, projectID string) (*entities.Project, error)
	ListProjects(ctx context.Context, filter entities.ProjectFilter) ([]entities.ProjectShort, error)
	UpdateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	ReviewQueue(ctx context.Context, reviewerName string) ([]entities.ProjectShort, error)
}

// SummaryInterface exposes aggregated reporting queries.
type SummaryInterface interface {
	Summary(ctx context.Context) (entities.Summary, error)
}
