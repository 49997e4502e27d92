package postgres

import (
	"context"
	"fmt"

	"release-control/internal/entities"
)

const (
	// Stage is derived the same way entities.Project.Stage derives it, so the
	// grouping stays consistent with what single-project endpoints report.
	summaryByStageQuery = `
SELECT CASE
         WHEN approve THEN 'approved'
         WHEN review1 = false OR review2 = false THEN 'rejected'
         WHEN review1 = true THEN 'reviewer2-pending'
         WHEN reviewer1 <> '' THEN 'reviewer1-pending'
         ELSE 'open'
       END AS stage, COUNT(*) AS cnt
FROM projects
GROUP BY stage
ORDER BY cnt DESC`

	summaryByTeamQuery = `
SELECT team, COUNT(*) AS cnt
FROM projects
GROUP BY team
ORDER BY cnt DESC`
)

// Summary aggregates project counts by derived stage and by team.
func (p *Postgres) Summary(ctx context.Context) (entities.Summary, error) {
	var res entities.Summary

	stageRows, err := p.db.Query(ctx, summaryByStageQuery)
	if err != nil {
		return res, fmt.Errorf("summary by stage: %w", err)
	}
	defer stageRows.Close()

	for stageRows.Next() {
		var sc entities.StageCount
		if err := stageRows.Scan(&sc.Stage, &sc.ProjectCount); err != nil {
			p.log.Errorw("failed to scan stage count", "error", err)
			return res, fmt.Errorf("scan stage count: %w", err)
		}
		res.ByStage = append(res.ByStage, sc)
	}
	if err := stageRows.Err(); err != nil {
		return res, fmt.Errorf("iterate stage counts: %w", err)
	}

	teamRows, err := p.db.Query(ctx, summaryByTeamQuery)
	if err != nil {
		return res, fmt.Errorf("summary by team: %w", err)
	}
	defer teamRows.Close()

	for teamRows.Next() {
		var tc entities.TeamCount
		if err := teamRows.Scan(&tc.Team, &tc.ProjectCount); err != nil {
			p.log.Errorw("failed to scan team count", "error", err)
			return res, fmt.Errorf("scan team count: %w", err)
		}
		res.ByTeam = append(res.ByTeam, tc)
	}
	if err := teamRows.Err(); err != nil {
		return res, fmt.Errorf("iterate team counts: %w", err)
	}

	return res, nil
}
