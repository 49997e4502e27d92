package postgres

import (
	"context"
	"errors"
	"fmt"

	"release-control/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertProjectQuery = `
INSERT INTO projects(id, team, owner, project_name, version, source_location, notes, reviewer1, reviewer2, last_editor)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING submitted_at`

	selectProjectQuery = `
SELECT id, team, owner, project_name, version, source_location, notes,
       reviewer1, review1, comment1, reviewer2, review2, comment2,
       approve, comment3, submitted_at, updated_at, last_editor
FROM projects WHERE id=$1`

	updateProjectQuery = `
UPDATE projects SET
    project_name=$2, version=$3, source_location=$4, notes=$5,
    reviewer1=$6, review1=$7, comment1=$8,
    reviewer2=$9, review2=$10, comment2=$11,
    approve=$12, comment3=$13,
    updated_at=$14, last_editor=$15
WHERE id=$1`

	deleteProjectQuery = `DELETE FROM projects WHERE id=$1`

	listProjectsQuery = `
SELECT id, team, owner, project_name, version, review1, review2, approve, reviewer1
FROM projects
WHERE ($1 = '' OR team ILIKE '%'||$1||'%' OR owner ILIKE '%'||$1||'%'
       OR project_name ILIKE '%'||$1||'%' OR reviewer1 ILIKE '%'||$1||'%' OR reviewer2 ILIKE '%'||$1||'%')
  AND ($2::boolean IS NULL OR approve = $2)
ORDER BY submitted_at DESC
LIMIT $3`

	reviewQueueQuery = `
SELECT id, team, owner, project_name, version, review1, review2, approve, reviewer1
FROM projects
WHERE approve = false
  AND ((reviewer1 = $1 AND review1 IS NULL)
    OR (reviewer2 = $1 AND review1 = true AND review2 IS NULL))
ORDER BY submitted_at`
)

// isUniqueViolation reports a primary-key or unique-index conflict from the
// pgx/v5 driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateProject stores a fresh submission and returns it with the stamped
// submission time.
func (p *Postgres) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	err := p.db.QueryRow(ctx, insertProjectQuery,
		project.ID, project.Team, project.Owner,
		project.ProjectName, project.Version, project.SourceLocation, project.Notes,
		project.Reviewer1, project.Reviewer2, project.LastEditor,
	).Scan(&project.SubmittedAt)
	if err != nil {
		p.log.Errorw("failed to insert project", "error", err, "project_id", project.ID)
		if isUniqueViolation(err) {
			return nil, entities.ErrProjectExists
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	p.log.Infow("project stored", "project_id", project.ID, "team", project.Team)
	return &project, nil
}

// GetProject loads the full project snapshot.
func (p *Postgres) GetProject(ctx context.Context, projectID string) (*entities.Project, error) {
	var pr entities.Project
	err := p.db.QueryRow(ctx, selectProjectQuery, projectID).Scan(
		&pr.ID, &pr.Team, &pr.Owner, &pr.ProjectName, &pr.Version, &pr.SourceLocation, &pr.Notes,
		&pr.Reviewer1, &pr.Review1, &pr.Comment1, &pr.Reviewer2, &pr.Review2, &pr.Comment2,
		&pr.Approve, &pr.Comment3, &pr.SubmittedAt, &pr.UpdatedAt, &pr.LastEditor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		p.log.Errorw("failed to select project", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &pr, nil
}

// UpdateProject stores an engine-merged snapshot. Identity and submission
// audit columns never change after creation.
func (p *Postgres) UpdateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	tag, err := p.db.Exec(ctx, updateProjectQuery,
		project.ID,
		project.ProjectName, project.Version, project.SourceLocation, project.Notes,
		project.Reviewer1, project.Review1, project.Comment1,
		project.Reviewer2, project.Review2, project.Comment2,
		project.Approve, project.Comment3,
		project.UpdatedAt, project.LastEditor,
	)
	if err != nil {
		p.log.Errorw("failed to update project", "error", err, "project_id", project.ID)
		return nil, fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrProjectNotFound
	}

	p.log.Infow("project snapshot stored", "project_id", project.ID)
	return &project, nil
}

// DeleteProject removes a project row.
func (p *Postgres) DeleteProject(ctx context.Context, projectID string) error {
	tag, err := p.db.Exec(ctx, deleteProjectQuery, projectID)
	if err != nil {
		p.log.Errorw("failed to delete project", "error", err, "project_id", projectID)
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectNotFound
	}
	p.log.Infow("project deleted", "project_id", projectID)
	return nil
}

// ListProjects returns compact projections matching the search text and
// approval filter.
func (p *Postgres) ListProjects(ctx context.Context, filter entities.ProjectFilter) ([]entities.ProjectShort, error) {
	rows, err := p.db.Query(ctx, listProjectsQuery, filter.Search, filter.Approved, filter.Limit)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	return p.scanShortRows(rows)
}

// ReviewQueue returns projects awaiting the named reviewer's verdict.
func (p *Postgres) ReviewQueue(ctx context.Context, reviewerName string) ([]entities.ProjectShort, error) {
	rows, err := p.db.Query(ctx, reviewQueueQuery, reviewerName)
	if err != nil {
		return nil, fmt.Errorf("review queue: %w", err)
	}
	defer rows.Close()

	return p.scanShortRows(rows)
}

func (p *Postgres) scanShortRows(rows pgx.Rows) ([]entities.ProjectShort, error) {
	shorts := make([]entities.ProjectShort, 0)
	for rows.Next() {
		var s entities.ProjectShort
		var full entities.Project
		if err := rows.Scan(&s.ID, &s.Team, &s.Owner, &s.ProjectName, &s.Version,
			&full.Review1, &full.Review2, &full.Approve, &full.Reviewer1); err != nil {
			p.log.Errorw("failed to scan project row", "error", err)
			return nil, fmt.Errorf("scan project row: %w", err)
		}
		s.Stage = full.Stage()
		shorts = append(shorts, s)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("error iterating project rows", "error", err)
		return nil, fmt.Errorf("iterate project rows: %w", err)
	}
	return shorts, nil
}
