// Package entities contains core business entities.
package entities

// Field names are the canonical keys shared by diffs, the policy table and
// the rendering collaborator.
const (
	FieldTeam           = "team"
	FieldOwner          = "owner"
	FieldProjectName    = "projectName"
	FieldVersion        = "version"
	FieldSourceLocation = "sourceLocation"
	FieldNotes          = "notes"
	FieldReviewer1      = "reviewer1"
	FieldReview1        = "review1"
	FieldComment1       = "comment1"
	FieldReviewer2      = "reviewer2"
	FieldReview2        = "review2"
	FieldComment2       = "comment2"
	FieldApprove        = "approve"
	FieldComment3       = "comment3"
	FieldSubmittedAt    = "submittedAt"
	FieldUpdatedAt      = "updatedAt"
	FieldLastEditor     = "lastEditor"
)

// FieldPolicy is the per-field visibility/editability decision handed to the
// rendering layer. Hidden fields are absent from the policy map entirely.
type FieldPolicy struct {
	Visible  bool `json:"visible"`
	Editable bool `json:"editable"`
}

// FieldDiff is the set of field changes an actor proposes. String fields take
// string values, review1/review2/approve take bool values. Keys outside the
// declared field set are a programming error, not bad input.
type FieldDiff map[string]any

// Touches reports whether the diff proposes a change to the named field.
func (d FieldDiff) Touches(field string) bool {
	_, ok := d[field]
	return ok
}

// NoticeSeverity distinguishes informational outcomes from rejections.
type NoticeSeverity string

const (
	// SeverityInfo marks a successful outcome message.
	SeverityInfo NoticeSeverity = "info"
	// SeverityError marks a rejected-operation message.
	SeverityError NoticeSeverity = "error"
)

// Notice is a human-readable outcome returned alongside an operation result.
// The boundary layer decides how to render it.
type Notice struct {
	Severity NoticeSeverity `json:"severity"`
	Message  string         `json:"message"`
}

// AccessDecision is the coarse view-level authorization for a role set,
// computed fresh per call and never stored.
type AccessDecision struct {
	CanCreate bool
	CanEdit   bool
	CanDelete bool
}
