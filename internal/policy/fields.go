package policy

import "release-control/internal/entities"

type fieldKind int

const (
	kindString fieldKind = iota
	kindBool
)

// fieldKinds is the closed registry of diff-addressable fields and their
// value types. A diff key outside this registry is a programming error.
var fieldKinds = map[string]fieldKind{
	entities.FieldTeam:           kindString,
	entities.FieldOwner:          kindString,
	entities.FieldProjectName:    kindString,
	entities.FieldVersion:        kindString,
	entities.FieldSourceLocation: kindString,
	entities.FieldNotes:          kindString,
	entities.FieldReviewer1:      kindString,
	entities.FieldReview1:        kindBool,
	entities.FieldComment1:       kindString,
	entities.FieldReviewer2:      kindString,
	entities.FieldReview2:        kindBool,
	entities.FieldComment2:       kindString,
	entities.FieldApprove:        kindBool,
	entities.FieldComment3:       kindString,
}

// submissionPayload is the developer-owned field group, locked after approval.
var submissionPayload = []string{
	entities.FieldProjectName,
	entities.FieldVersion,
	entities.FieldSourceLocation,
	entities.FieldNotes,
}

// lockedOnApproval is the field group frozen once approve is true.
var lockedOnApproval = []string{
	entities.FieldProjectName,
	entities.FieldVersion,
	entities.FieldSourceLocation,
	entities.FieldNotes,
	entities.FieldComment1,
	entities.FieldComment2,
	entities.FieldComment3,
}

var (
	readOnly  = entities.FieldPolicy{Visible: true}
	writable  = entities.FieldPolicy{Visible: true, Editable: true}
	auditOnly = []string{entities.FieldSubmittedAt, entities.FieldUpdatedAt, entities.FieldLastEditor}
)

// basePolicies is the static role → field table. Ownership and assignee
// conditions are not encoded here: the table answers what a role may edit in
// principle, the transition guard enforces whose identity may do it.
var basePolicies = map[entities.Role]map[string]entities.FieldPolicy{
	entities.RoleDeveloper: {
		entities.FieldTeam:           readOnly,
		entities.FieldOwner:          readOnly,
		entities.FieldProjectName:    writable,
		entities.FieldVersion:        writable,
		entities.FieldSourceLocation: writable,
		entities.FieldNotes:          writable,
		entities.FieldReviewer1:      writable,
		entities.FieldReview1:        readOnly,
		entities.FieldComment1:       readOnly,
		entities.FieldReviewer2:      writable,
		entities.FieldReview2:        readOnly,
		entities.FieldComment2:       readOnly,
	},
	entities.RoleReviewer1: {
		entities.FieldTeam:           readOnly,
		entities.FieldOwner:          readOnly,
		entities.FieldProjectName:    readOnly,
		entities.FieldVersion:        readOnly,
		entities.FieldSourceLocation: readOnly,
		entities.FieldNotes:          readOnly,
		entities.FieldReviewer1:      readOnly,
		entities.FieldReview1:        writable,
		entities.FieldComment1:       writable,
		entities.FieldReviewer2:      readOnly,
		entities.FieldReview2:        readOnly,
		entities.FieldComment2:       readOnly,
	},
	entities.RoleReviewer2: {
		entities.FieldTeam:           readOnly,
		entities.FieldOwner:          readOnly,
		entities.FieldProjectName:    readOnly,
		entities.FieldVersion:        readOnly,
		entities.FieldSourceLocation: readOnly,
		entities.FieldNotes:          readOnly,
		entities.FieldReviewer1:      readOnly,
		entities.FieldReview1:        readOnly,
		entities.FieldComment1:       readOnly,
		entities.FieldReviewer2:      readOnly,
		entities.FieldReview2:        writable,
		entities.FieldComment2:       writable,
	},
	entities.RoleSuperuser: {
		entities.FieldTeam:           readOnly,
		entities.FieldOwner:          readOnly,
		entities.FieldProjectName:    writable,
		entities.FieldVersion:        writable,
		entities.FieldSourceLocation: writable,
		entities.FieldNotes:          writable,
		entities.FieldReviewer1:      writable,
		entities.FieldReview1:        writable,
		entities.FieldComment1:       writable,
		entities.FieldReviewer2:      writable,
		entities.FieldReview2:        writable,
		entities.FieldComment2:       writable,
		entities.FieldApprove:        writable,
		entities.FieldComment3:       writable,
	},
	entities.RoleAdministrator: {
		entities.FieldTeam:           readOnly,
		entities.FieldOwner:          readOnly,
		entities.FieldProjectName:    writable,
		entities.FieldVersion:        writable,
		entities.FieldSourceLocation: writable,
		entities.FieldNotes:          writable,
		entities.FieldReviewer1:      writable,
		entities.FieldReview1:        writable,
		entities.FieldComment1:       writable,
		entities.FieldReviewer2:      writable,
		entities.FieldReview2:        writable,
		entities.FieldComment2:       writable,
		entities.FieldApprove:        writable,
		entities.FieldComment3:       writable,
	},
	entities.RoleVisitor: {
		entities.FieldTeam:           readOnly,
		entities.FieldOwner:          readOnly,
		entities.FieldProjectName:    readOnly,
		entities.FieldVersion:        readOnly,
		entities.FieldSourceLocation: readOnly,
		entities.FieldNotes:          readOnly,
		entities.FieldReviewer1:      readOnly,
		entities.FieldReview1:        readOnly,
		entities.FieldComment1:       readOnly,
		entities.FieldReviewer2:      readOnly,
		entities.FieldReview2:        readOnly,
		entities.FieldComment2:       readOnly,
		entities.FieldApprove:        readOnly,
		entities.FieldComment3:       readOnly,
	},
}

// ResolveFieldPolicy returns the per-field visibility/editability map for a
// role and project state. Hidden fields are absent. Once the project carries
// final approval, the submission payload and comment fields become read-only
// for every role.
func ResolveFieldPolicy(role entities.Role, project entities.Project) map[string]entities.FieldPolicy {
	base, ok := basePolicies[role]
	if !ok {
		base = basePolicies[entities.RoleVisitor]
	}

	out := make(map[string]entities.FieldPolicy, len(base)+len(auditOnly))
	for field, pol := range base {
		out[field] = pol
	}
	for _, field := range auditOnly {
		out[field] = readOnly
	}

	if project.Approve {
		for _, field := range lockedOnApproval {
			if pol, ok := out[field]; ok {
				pol.Editable = false
				out[field] = pol
			}
		}
	}
	return out
}
