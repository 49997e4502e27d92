package policy

import (
	"fmt"
	"time"

	"release-control/internal/entities"
)

// validateDiff checks the programming contract: every key must belong to the
// closed field registry and carry a value of the declared kind.
func validateDiff(diff entities.FieldDiff) error {
	for field, value := range diff {
		kind, ok := fieldKinds[field]
		if !ok {
			return fmt.Errorf("%w: %s", entities.ErrUnknownField, field)
		}
		switch kind {
		case kindString:
			if _, ok := value.(string); !ok {
				return fmt.Errorf("%w: %s expects string", entities.ErrInvalidArgument, field)
			}
		case kindBool:
			if _, ok := value.(bool); !ok {
				return fmt.Errorf("%w: %s expects bool", entities.ErrInvalidArgument, field)
			}
		}
	}
	return nil
}

func touchesAny(diff entities.FieldDiff, fields []string) bool {
	for _, f := range fields {
		if diff.Touches(f) {
			return true
		}
	}
	return false
}

// ValidateTransition enforces, in order: stage ordering (review2 and approve
// require their prerequisites), assignee/owner identity, and the
// post-approval lock. On success it returns the merged state stamped with the
// actor identity and now. Rejections are values, not exceptions: callers turn
// them into user-facing notices.
//
// The diff is validated here even when Engine.Apply already did so: the
// guard is independently callable and the merge below type-asserts every
// value.
func ValidateTransition(actor entities.Actor, project entities.Project, diff entities.FieldDiff, now time.Time) (entities.Project, error) {
	if err := validateDiff(diff); err != nil {
		return project, err
	}

	// Prospective review values after the diff, so an administrator can
	// resolve a review and approve within a single form submission.
	review1 := project.Review1
	if v, ok := diff[entities.FieldReview1]; ok {
		b := v.(bool)
		review1 = &b
	}
	review2 := project.Review2
	if v, ok := diff[entities.FieldReview2]; ok {
		b := v.(bool)
		review2 = &b
	}

	if diff.Touches(entities.FieldReview2) && project.Review1 == nil && !diff.Touches(entities.FieldReview1) {
		return project, fmt.Errorf("%w: review2 requires review1", entities.ErrStageOutOfOrder)
	}
	if v, ok := diff[entities.FieldApprove]; ok && v.(bool) {
		if review1 == nil || review2 == nil {
			return project, fmt.Errorf("%w: approval requires both reviews", entities.ErrStageOutOfOrder)
		}
		if !*review1 || !*review2 {
			return project, fmt.Errorf("%w: failed review blocks approval", entities.ErrStageOutOfOrder)
		}
	}

	switch EffectiveRole(actor.Roles) {
	case entities.RoleDeveloper:
		developerOwned := append(append([]string{}, submissionPayload...),
			entities.FieldReviewer1, entities.FieldReviewer2)
		if touchesAny(diff, developerOwned) && actor.DisplayName != project.Owner {
			return project, fmt.Errorf("%w: project owner is %q", entities.ErrNotOwner, project.Owner)
		}
	case entities.RoleReviewer1:
		if touchesAny(diff, []string{entities.FieldReview1, entities.FieldComment1}) &&
			actor.DisplayName != project.Reviewer1 {
			return project, fmt.Errorf("%w: assigned reviewer1 is %q", entities.ErrNotOwner, project.Reviewer1)
		}
	case entities.RoleReviewer2:
		if touchesAny(diff, []string{entities.FieldReview2, entities.FieldComment2}) &&
			actor.DisplayName != project.Reviewer2 {
			return project, fmt.Errorf("%w: assigned reviewer2 is %q", entities.ErrNotOwner, project.Reviewer2)
		}
	}

	if project.Approve && touchesAny(diff, lockedOnApproval) {
		return project, fmt.Errorf("%w: project carries final approval", entities.ErrLocked)
	}

	merged := project
	for field, value := range diff {
		switch field {
		case entities.FieldTeam:
			merged.Team = value.(string)
		case entities.FieldOwner:
			merged.Owner = value.(string)
		case entities.FieldProjectName:
			merged.ProjectName = value.(string)
		case entities.FieldVersion:
			merged.Version = value.(string)
		case entities.FieldSourceLocation:
			merged.SourceLocation = value.(string)
		case entities.FieldNotes:
			merged.Notes = value.(string)
		case entities.FieldReviewer1:
			merged.Reviewer1 = value.(string)
		case entities.FieldComment1:
			merged.Comment1 = value.(string)
		case entities.FieldReviewer2:
			merged.Reviewer2 = value.(string)
		case entities.FieldComment2:
			merged.Comment2 = value.(string)
		case entities.FieldComment3:
			merged.Comment3 = value.(string)
		case entities.FieldReview1:
			b := value.(bool)
			merged.Review1 = &b
		case entities.FieldReview2:
			b := value.(bool)
			merged.Review2 = &b
		case entities.FieldApprove:
			merged.Approve = value.(bool)
		}
	}
	merged.LastEditor = actor.DisplayName
	stamp := now
	merged.UpdatedAt = &stamp
	return merged, nil
}
