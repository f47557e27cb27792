package projects_enums

type ProjectRole string

const (
	ProjectRoleOwner  ProjectRole = "OWNER"
	ProjectRoleAdmin  ProjectRole = "ADMIN"
	ProjectRoleMember ProjectRole = "MEMBER"
)

// IsValid validates the ProjectRole
func (r ProjectRole) IsValid() bool {
	switch r {
	case ProjectRoleOwner, ProjectRoleAdmin, ProjectRoleMember:
		return true
	default:
		return false
	}
}

// CanManageProject reports whether the role may change project
// metadata and memberships.
func (r ProjectRole) CanManageProject() bool {
	return r == ProjectRoleOwner || r == ProjectRoleAdmin
}
