// Package entities contains core business entities.
package entities

// Role names are persisted and compared case-sensitively.
type Role string

const (
	// RoleDeveloper submits projects and owns the submission payload.
	RoleDeveloper Role = "developer"
	// RoleReviewer1 performs the first review stage.
	RoleReviewer1 Role = "reviewer1"
	// RoleReviewer2 performs the second review stage.
	RoleReviewer2 Role = "reviewer2"
	// RoleSuperuser edits any field except final disposition ownership limits.
	RoleSuperuser Role = "superuser"
	// RoleAdministrator edits any field and may delete projects.
	RoleAdministrator Role = "administrator"
	// RoleVisitor reads everything and changes nothing.
	RoleVisitor Role = "visitor"
)

// Actor is the authenticated identity performing an operation.
type Actor struct {
	ID          string
	DisplayName string
	Team        string
	Roles       []Role
}

// HasRole reports whether the actor holds the given role.
func (a Actor) HasRole(role Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}
