package projects_services

import (
	"fmt"

	projects_dto "artconf/internal/features/projects/dto"
	projects_enums "artconf/internal/features/projects/enums"
	projects_models "artconf/internal/features/projects/models"
	projects_repositories "artconf/internal/features/projects/repositories"
	users_interfaces "artconf/internal/features/users/interfaces"
	users_models "artconf/internal/features/users/models"
	users_services "artconf/internal/features/users/services"

	"github.com/google/uuid"
)

type MembershipService struct {
	membershipRepository *projects_repositories.MembershipRepository
	userService          *users_services.UserService
	projectService       *ProjectService
	auditLogWriter       users_interfaces.AuditLogWriter
}

func (s *MembershipService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *MembershipService) GetMembers(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.GetMembersResponseDTO, error) {
	canAccess, _, err := s.projectService.CanUserAccessProject(projectID, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, ErrProjectNotFound
	}

	members, err := s.membershipRepository.GetProjectMembers(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}

	membersList := make([]projects_dto.ProjectMemberResponseDTO, len(members))
	for i, member := range members {
		membersList[i] = *member
	}

	return &projects_dto.GetMembersResponseDTO{
		Members: membersList,
	}, nil
}

func (s *MembershipService) AddMember(
	projectID uuid.UUID,
	request *projects_dto.AddMemberRequestDTO,
	addedBy *users_models.User,
) (*projects_dto.ProjectMemberResponseDTO, error) {
	if !request.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	callerRole, err := s.validateCanManageMembers(projectID, addedBy)
	if err != nil {
		return nil, err
	}

	if request.Role == projects_enums.ProjectRoleOwner && *callerRole != projects_enums.ProjectRoleOwner {
		return nil, ErrOwnerRoleRequired
	}

	targetUser, err := s.userService.GetUserByUsername(request.Username)
	if err != nil {
		return nil, err
	}
	if targetUser == nil {
		return nil, ErrUserNotFound
	}

	existingRole, err := s.membershipRepository.GetUserProjectRole(projectID, targetUser.ID)
	if err != nil {
		return nil, err
	}
	if existingRole != nil {
		return nil, ErrMemberAlreadyExists
	}

	membership := &projects_models.ProjectMembership{
		UserID:    targetUser.ID,
		ProjectID: projectID,
		Role:      request.Role,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("User %s added to project as %s", targetUser.Username, request.Role),
		&addedBy.ID,
		&projectID,
	)

	return &projects_dto.ProjectMemberResponseDTO{
		ID:        membership.ID,
		UserID:    targetUser.ID,
		Username:  targetUser.Username,
		Role:      membership.Role,
		CreatedAt: membership.CreatedAt,
	}, nil
}

func (s *MembershipService) UpdateMemberRole(
	projectID, targetUserID uuid.UUID,
	request *projects_dto.UpdateMemberRoleRequestDTO,
	updatedBy *users_models.User,
) error {
	if !request.Role.IsValid() {
		return ErrInvalidRole
	}

	callerRole, err := s.validateCanManageMembers(projectID, updatedBy)
	if err != nil {
		return err
	}

	targetRole, err := s.membershipRepository.GetUserProjectRole(projectID, targetUserID)
	if err != nil {
		return err
	}
	if targetRole == nil {
		return ErrMemberNotFound
	}

	// Granting or revoking OWNER is reserved for owners
	if (request.Role == projects_enums.ProjectRoleOwner || *targetRole == projects_enums.ProjectRoleOwner) &&
		*callerRole != projects_enums.ProjectRoleOwner {
		return ErrOwnerRoleRequired
	}

	if *targetRole == projects_enums.ProjectRoleOwner && request.Role != projects_enums.ProjectRoleOwner {
		if err := s.ensureNotLastOwner(projectID); err != nil {
			return err
		}
	}

	if err := s.membershipRepository.UpdateMemberRole(projectID, targetUserID, request.Role); err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Member role changed to %s", request.Role),
		&updatedBy.ID,
		&projectID,
	)

	return nil
}

func (s *MembershipService) RemoveMember(
	projectID, targetUserID uuid.UUID,
	removedBy *users_models.User,
) error {
	callerRole, err := s.validateCanManageMembers(projectID, removedBy)
	if err != nil {
		return err
	}

	targetRole, err := s.membershipRepository.GetUserProjectRole(projectID, targetUserID)
	if err != nil {
		return err
	}
	if targetRole == nil {
		return ErrMemberNotFound
	}

	if *targetRole == projects_enums.ProjectRoleOwner {
		if *callerRole != projects_enums.ProjectRoleOwner {
			return ErrOwnerRoleRequired
		}

		if err := s.ensureNotLastOwner(projectID); err != nil {
			return err
		}
	}

	if err := s.membershipRepository.RemoveMember(projectID, targetUserID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		"Member removed from project",
		&removedBy.ID,
		&projectID,
	)

	return nil
}

func (s *MembershipService) validateCanManageMembers(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_enums.ProjectRole, error) {
	role, err := s.projectService.GetUserProjectRole(projectID, user.ID)
	if err != nil {
		return nil, err
	}
	if role == nil || !role.CanManageProject() {
		return nil, ErrProjectNotFound
	}

	return role, nil
}

func (s *MembershipService) ensureNotLastOwner(projectID uuid.UUID) error {
	owners, err := s.membershipRepository.CountOwners(projectID)
	if err != nil {
		return err
	}
	if owners <= 1 {
		return ErrLastOwner
	}

	return nil
}
