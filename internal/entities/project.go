// Package entities contains core business entities.
package entities

import "time"

// Stage enumerates derived project lifecycle states.
type Stage string

const (
	// StageOpen marks a project without an assigned first reviewer.
	StageOpen Stage = "open"
	// StageReviewer1Pending marks a project awaiting the first review.
	StageReviewer1Pending Stage = "reviewer1-pending"
	// StageReviewer2Pending marks a project awaiting the second review.
	StageReviewer2Pending Stage = "reviewer2-pending"
	// StageApproved marks a finally approved project.
	StageApproved Stage = "approved"
	// StageRejected marks a project with at least one failed review.
	StageRejected Stage = "rejected"
)

// Project is the workflow subject moving through the two-stage sign-off.
type Project struct {
	ID    string
	Team  string
	Owner string

	ProjectName    string
	Version        string
	SourceLocation string
	Notes          string

	Reviewer1 string
	Review1   *bool
	Comment1  string

	Reviewer2 string
	Review2   *bool
	Comment2  string

	Approve  bool
	Comment3 string

	SubmittedAt *time.Time
	UpdatedAt   *time.Time
	LastEditor  string
}

// Stage derives the lifecycle state. A failed review wins over approval
// prerequisites, an approval flag wins over everything.
func (p Project) Stage() Stage {
	if p.Approve {
		return StageApproved
	}
	if (p.Review1 != nil && !*p.Review1) || (p.Review2 != nil && !*p.Review2) {
		return StageRejected
	}
	if p.Review1 != nil && *p.Review1 {
		return StageReviewer2Pending
	}
	if p.Reviewer1 != "" {
		return StageReviewer1Pending
	}
	return StageOpen
}

// ProjectShort is a compact projection for listings and review queues.
type ProjectShort struct {
	ID          string
	Team        string
	Owner       string
	ProjectName string
	Version     string
	Stage       Stage
}

// ProjectFilter limits project listings.
type ProjectFilter struct {
	// Search matches team, owner, project name and reviewer columns.
	Search string
	// Approved filters by final approval flag when set.
	Approved *bool
	Limit    int
}
