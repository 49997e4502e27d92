package policy

import (
	"testing"

	"release-control/internal/entities"

	"github.com/stretchr/testify/require"
)

var allFieldNames = []string{
	entities.FieldTeam, entities.FieldOwner,
	entities.FieldProjectName, entities.FieldVersion, entities.FieldSourceLocation, entities.FieldNotes,
	entities.FieldReviewer1, entities.FieldReview1, entities.FieldComment1,
	entities.FieldReviewer2, entities.FieldReview2, entities.FieldComment2,
	entities.FieldApprove, entities.FieldComment3,
	entities.FieldSubmittedAt, entities.FieldUpdatedAt, entities.FieldLastEditor,
}

var finalDispositionHiddenFor = map[entities.Role]bool{
	entities.RoleDeveloper: true,
	entities.RoleReviewer1: true,
	entities.RoleReviewer2: true,
}

func TestResolveFieldPolicyTotality(t *testing.T) {
	roles := []entities.Role{
		entities.RoleDeveloper, entities.RoleReviewer1, entities.RoleReviewer2,
		entities.RoleSuperuser, entities.RoleAdministrator, entities.RoleVisitor,
	}

	for _, role := range roles {
		t.Run(string(role), func(t *testing.T) {
			policies := ResolveFieldPolicy(role, entities.Project{})
			for _, field := range allFieldNames {
				hidden := finalDispositionHiddenFor[role] &&
					(field == entities.FieldApprove || field == entities.FieldComment3)
				pol, present := policies[field]
				if hidden {
					require.False(t, present, "field %s must be hidden for %s", field, role)
					continue
				}
				require.True(t, present, "field %s must be present for %s", field, role)
				require.True(t, pol.Visible, "field %s must be visible for %s", field, role)
			}
		})
	}
}

func TestResolveFieldPolicyRoleMatrix(t *testing.T) {
	project := entities.Project{}

	dev := ResolveFieldPolicy(entities.RoleDeveloper, project)
	require.True(t, dev[entities.FieldNotes].Editable)
	require.True(t, dev[entities.FieldReviewer1].Editable)
	require.False(t, dev[entities.FieldReview1].Editable)
	require.False(t, dev[entities.FieldTeam].Editable)

	r1 := ResolveFieldPolicy(entities.RoleReviewer1, project)
	require.True(t, r1[entities.FieldReview1].Editable)
	require.True(t, r1[entities.FieldComment1].Editable)
	require.False(t, r1[entities.FieldReview2].Editable)
	require.False(t, r1[entities.FieldProjectName].Editable)

	r2 := ResolveFieldPolicy(entities.RoleReviewer2, project)
	require.True(t, r2[entities.FieldReview2].Editable)
	require.True(t, r2[entities.FieldComment2].Editable)
	require.False(t, r2[entities.FieldReview1].Editable)

	admin := ResolveFieldPolicy(entities.RoleAdministrator, project)
	require.True(t, admin[entities.FieldApprove].Editable)
	require.True(t, admin[entities.FieldComment3].Editable)
	require.True(t, admin[entities.FieldReview2].Editable)
	require.False(t, admin[entities.FieldOwner].Editable)

	visitor := ResolveFieldPolicy(entities.RoleVisitor, project)
	for field, pol := range visitor {
		require.False(t, pol.Editable, "visitor must not edit %s", field)
	}
}

func TestResolveFieldPolicyApprovalLock(t *testing.T) {
	approved := entities.Project{Approve: true}

	for _, role := range []entities.Role{entities.RoleDeveloper, entities.RoleSuperuser, entities.RoleAdministrator} {
		policies := ResolveFieldPolicy(role, approved)
		for _, field := range []string{
			entities.FieldProjectName, entities.FieldVersion, entities.FieldSourceLocation,
			entities.FieldNotes, entities.FieldComment1, entities.FieldComment2,
		} {
			require.False(t, policies[field].Editable, "field %s must lock for %s once approved", field, role)
		}
	}

	// The approval flag itself stays editable for the final-disposition roles
	// so an administrator can revoke it.
	admin := ResolveFieldPolicy(entities.RoleAdministrator, approved)
	require.True(t, admin[entities.FieldApprove].Editable)
}

func TestResolveFieldPolicyReturnsFreshMap(t *testing.T) {
	first := ResolveFieldPolicy(entities.RoleDeveloper, entities.Project{})
	first[entities.FieldNotes] = entities.FieldPolicy{}

	second := ResolveFieldPolicy(entities.RoleDeveloper, entities.Project{})
	require.True(t, second[entities.FieldNotes].Editable)
}
