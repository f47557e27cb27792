package projects_services

import "errors"

// Missing projects and missing memberships surface identically so the
// API never discloses whether a project exists to non-members.
var (
	ErrProjectNotFound     = errors.New("project not found or access denied")
	ErrMemberNotFound      = errors.New("membership not found")
	ErrMemberAlreadyExists = errors.New("user is already a member of this project")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidRole         = errors.New("invalid project role")
	ErrOwnerRoleRequired   = errors.New("only the project owner can assign or revoke the owner role")
	ErrLastOwner           = errors.New("a project must keep at least one owner")
)
