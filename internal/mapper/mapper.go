// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"release-control/internal/entities"
	"release-control/internal/payload"
)

// FromCreateRequest builds a project draft from the transport DTO. Identity
// and audit fields are filled by the usecase, not the request.
func FromCreateRequest(src payload.CreateProjectRequest) entities.Project {
	return entities.Project{
		ProjectName:    src.ProjectName,
		Version:        src.Version,
		SourceLocation: src.SourceLocation,
		Notes:          src.Notes,
		Reviewer1:      src.Reviewer1,
		Reviewer2:      src.Reviewer2,
	}
}

// FromUpdateRequest builds a field diff from the transport DTO.
func FromUpdateRequest(src payload.UpdateProjectRequest) entities.FieldDiff {
	diff := make(entities.FieldDiff, len(src.Fields))
	for field, value := range src.Fields {
		diff[field] = value
	}
	return diff
}

// ToPayloadProject maps entities.Project to transport model.
func ToPayloadProject(p entities.Project) payload.Project {
	return payload.Project{
		ID:             p.ID,
		Team:           p.Team,
		Owner:          p.Owner,
		ProjectName:    p.ProjectName,
		Version:        p.Version,
		SourceLocation: p.SourceLocation,
		Notes:          p.Notes,
		Reviewer1:      p.Reviewer1,
		Review1:        p.Review1,
		Comment1:       p.Comment1,
		Reviewer2:      p.Reviewer2,
		Review2:        p.Review2,
		Comment2:       p.Comment2,
		Approve:        p.Approve,
		Comment3:       p.Comment3,
		Stage:          string(p.Stage()),
		SubmittedAt:    p.SubmittedAt,
		UpdatedAt:      p.UpdatedAt,
		LastEditor:     p.LastEditor,
	}
}

// ToPayloadShort maps entities.ProjectShort to transport model.
func ToPayloadShort(p entities.ProjectShort) payload.ProjectShort {
	return payload.ProjectShort{
		ID:          p.ID,
		Team:        p.Team,
		Owner:       p.Owner,
		ProjectName: p.ProjectName,
		Version:     p.Version,
		Stage:       string(p.Stage),
	}
}

// ToPayloadShortList maps a slice of projections to transport slice.
func ToPayloadShortList(list []entities.ProjectShort) []payload.ProjectShort {
	res := make([]payload.ProjectShort, 0, len(list))
	for _, p := range list {
		res = append(res, ToPayloadShort(p))
	}
	return res
}

// ToPayloadNotices maps engine notices to transport slice.
func ToPayloadNotices(list []entities.Notice) []payload.Notice {
	res := make([]payload.Notice, 0, len(list))
	for _, n := range list {
		res = append(res, payload.Notice{Severity: string(n.Severity), Message: n.Message})
	}
	return res
}

// ToPayloadPolicies maps the engine's field policy map to transport model.
func ToPayloadPolicies(src map[string]entities.FieldPolicy) map[string]payload.FieldPolicy {
	res := make(map[string]payload.FieldPolicy, len(src))
	for field, pol := range src {
		res[field] = payload.FieldPolicy{Visible: pol.Visible, Editable: pol.Editable}
	}
	return res
}
