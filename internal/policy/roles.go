// Package policy implements the role-gated workflow engine: the role
// precedence model, the per-field policy table, the coarse access gate and
// the transition guard composed behind Apply. The package is pure: it never
// touches storage, sessions or transport.
package policy

import "release-control/internal/entities"

// rolePriority is the fixed precedence used by every policy decision.
// The first role an actor holds wins; holders of none resolve to visitor.
var rolePriority = []entities.Role{
	entities.RoleReviewer1,
	entities.RoleReviewer2,
	entities.RoleDeveloper,
	entities.RoleSuperuser,
	entities.RoleAdministrator,
}

// EffectiveRole resolves the policy branch for a role set, first match wins
// in declared priority order.
func EffectiveRole(roles []entities.Role) entities.Role {
	for _, candidate := range rolePriority {
		for _, held := range roles {
			if held == candidate {
				return candidate
			}
		}
	}
	return entities.RoleVisitor
}
