// Package entities contains core business entities.
package entities

// Summary aggregates project counters by stage and team.
type Summary struct {
	ByStage []StageCount `json:"by_stage"`
	ByTeam  []TeamCount  `json:"by_team"`
}

// StageCount describes project counts grouped by derived stage.
type StageCount struct {
	Stage        Stage `json:"stage"`
	ProjectCount int64 `json:"project_count"`
}

// TeamCount describes project counts grouped by team.
type TeamCount struct {
	Team         string `json:"team"`
	ProjectCount int64  `json:"project_count"`
}
