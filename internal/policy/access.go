package policy

import "release-control/internal/entities"

// accessTable maps each prioritized role to its view-level authorization.
// Visitors and unknown roles get the zero decision.
var accessTable = map[entities.Role]entities.AccessDecision{
	entities.RoleReviewer1:     {CanEdit: true},
	entities.RoleReviewer2:     {CanEdit: true},
	entities.RoleDeveloper:     {CanCreate: true, CanEdit: true},
	entities.RoleSuperuser:     {CanEdit: true},
	entities.RoleAdministrator: {CanEdit: true, CanDelete: true},
}

// Decide returns the access decision for a role set, resolved through the
// shared priority order.
func Decide(roles []entities.Role) entities.AccessDecision {
	return accessTable[EffectiveRole(roles)]
}

// CanCreate reports whether the role set may create projects.
func CanCreate(roles []entities.Role) bool {
	return Decide(roles).CanCreate
}

// CanEdit reports whether the role set may edit projects.
func CanEdit(roles []entities.Role) bool {
	return Decide(roles).CanEdit
}

// CanDelete reports whether the role set may delete projects.
func CanDelete(roles []entities.Role) bool {
	return Decide(roles).CanDelete
}
