// Package payload defines transport DTOs and error codes for the HTTP API.
package payload

import "time"

// ErrorCode enumerates machine-readable API error codes.
type ErrorCode string

const (
	// STAGEOUTOFORDER signals review2/approve attempted before its prerequisite.
	STAGEOUTOFORDER ErrorCode = "STAGE_OUT_OF_ORDER"
	// NOTOWNER signals the actor is not the owner/assignee for the touched field.
	NOTOWNER ErrorCode = "NOT_OWNER"
	// LOCKED signals a mutation attempt after final approval.
	LOCKED ErrorCode = "LOCKED"
	// FORBIDDEN signals the role set grants no access.
	FORBIDDEN ErrorCode = "FORBIDDEN"
	// NOTFOUND signals a missing resource.
	NOTFOUND ErrorCode = "NOT_FOUND"
	// INVALIDARGUMENT signals failed input validation.
	INVALIDARGUMENT ErrorCode = "INVALID_ARGUMENT"
	// PROJECTEXISTS signals a duplicate project id.
	PROJECTEXISTS ErrorCode = "PROJECT_EXISTS"
	// INTERNAL signals an unexpected server fault.
	INTERNAL ErrorCode = "INTERNAL"
)

// ErrorBody is the code/message pair nested in ErrorResponse.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse is the uniform error envelope. Business rejections carry the
// engine's notices so the UI can flash them.
type ErrorResponse struct {
	Error   ErrorBody `json:"error"`
	Notices []Notice  `json:"notices,omitempty"`
}

// Notice mirrors the engine's outcome messages.
type Notice struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// CreateProjectRequest carries the submission payload and optional reviewer
// assignments. Owner and team come from the authenticated identity.
type CreateProjectRequest struct {
	ProjectName    string `json:"project_name"`
	Version        string `json:"version"`
	SourceLocation string `json:"source_location"`
	Notes          string `json:"notes"`
	Reviewer1      string `json:"reviewer1"`
	Reviewer2      string `json:"reviewer2"`
}

// UpdateProjectRequest carries a proposed field diff keyed by canonical field
// name.
type UpdateProjectRequest struct {
	Fields map[string]any `json:"fields"`
}

// Project is the full transport representation of a workflow subject.
type Project struct {
	ID             string     `json:"id"`
	Team           string     `json:"team"`
	Owner          string     `json:"owner"`
	ProjectName    string     `json:"project_name"`
	Version        string     `json:"version"`
	SourceLocation string     `json:"source_location"`
	Notes          string     `json:"notes"`
	Reviewer1      string     `json:"reviewer1"`
	Review1        *bool      `json:"review1"`
	Comment1       string     `json:"comment1"`
	Reviewer2      string     `json:"reviewer2"`
	Review2        *bool      `json:"review2"`
	Comment2       string     `json:"comment2"`
	Approve        bool       `json:"approve"`
	Comment3       string     `json:"comment3"`
	Stage          string     `json:"stage"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
	LastEditor     string     `json:"last_editor"`
}

// ProjectShort is the compact listing row.
type ProjectShort struct {
	ID          string `json:"id"`
	Team        string `json:"team"`
	Owner       string `json:"owner"`
	ProjectName string `json:"project_name"`
	Version     string `json:"version"`
	Stage       string `json:"stage"`
}

// ProjectResponse wraps a project with its outcome notices.
type ProjectResponse struct {
	Project Project  `json:"project"`
	Notices []Notice `json:"notices,omitempty"`
}

// ProjectListResponse wraps listing rows.
type ProjectListResponse struct {
	Projects []ProjectShort `json:"projects"`
}

// FieldPolicy is the per-field decision handed to the rendering layer.
type FieldPolicy struct {
	Visible  bool `json:"visible"`
	Editable bool `json:"editable"`
}

// PolicyResponse maps canonical field names to render decisions. Hidden
// fields are absent.
type PolicyResponse struct {
	Fields map[string]FieldPolicy `json:"fields"`
}
