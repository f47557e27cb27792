package projects_services

import (
	"fmt"
	"time"

	projects_dto "artconf/internal/features/projects/dto"
	projects_enums "artconf/internal/features/projects/enums"
	projects_models "artconf/internal/features/projects/models"
	projects_repositories "artconf/internal/features/projects/repositories"
	users_interfaces "artconf/internal/features/users/interfaces"
	users_models "artconf/internal/features/users/models"
	cache_utils "artconf/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type ProjectService struct {
	projectRepository    *projects_repositories.ProjectRepository
	membershipRepository *projects_repositories.MembershipRepository
	auditLogWriter       users_interfaces.AuditLogWriter

	projectCacheUtil *cache_utils.CacheUtil[projects_models.Project]
	singleflight     singleflight.Group // Collapses concurrent DB lookups per project
}

func (s *ProjectService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	project := &projects_models.Project{
		ID:          uuid.New(),
		Name:        request.Name,
		Description: request.Description,
		CreatedBy:   creator.ID,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	membership := &projects_models.ProjectMembership{
		UserID: creator.ID,
		Role:   projects_enums.ProjectRoleOwner,
	}

	if err := s.projectRepository.CreateProjectWithOwner(project, membership); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	// Pre-warm cache with the new project for immediate availability
	s.projectCacheUtil.Set(project.ID.String(), project)

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Name),
		&creator.ID,
		&project.ID,
	)

	ownerRole := projects_enums.ProjectRoleOwner
	return &projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedBy:   project.CreatedBy,
		IsActive:    project.IsActive,
		CreatedAt:   project.CreatedAt,
		UserRole:    &ownerRole,
	}, nil
}

func (s *ProjectService) GetUserProjects(user *users_models.User) (*projects_dto.ListProjectsResponseDTO, error) {
	projects, err := s.membershipRepository.GetProjectsWithRolesByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user projects: %w", err)
	}

	return &projects_dto.ListProjectsResponseDTO{
		Projects: projects,
	}, nil
}

func (s *ProjectService) GetProject(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	role, err := s.GetUserProjectRole(projectID, user.ID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrProjectNotFound
	}

	project, err := s.GetProjectWithCache(projectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	return &projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedBy:   project.CreatedBy,
		IsActive:    project.IsActive,
		CreatedAt:   project.CreatedAt,
		UserRole:    role,
	}, nil
}

func (s *ProjectService) UpdateProject(
	projectID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
	user *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	role, err := s.GetUserProjectRole(projectID, user.ID)
	if err != nil {
		return nil, err
	}
	if role == nil || !role.CanManageProject() {
		return nil, ErrProjectNotFound
	}

	fields := map[string]any{}
	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.Description != nil {
		fields["description"] = *request.Description
	}
	if request.IsActive != nil {
		fields["is_active"] = *request.IsActive
	}

	if len(fields) > 0 {
		if err := s.projectRepository.UpdateProjectFields(projectID, fields); err != nil {
			return nil, fmt.Errorf("failed to update project: %w", err)
		}

		s.projectCacheUtil.Invalidate(projectID.String())
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Project updated: %s", project.Name),
		&user.ID,
		&projectID,
	)

	return &projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedBy:   project.CreatedBy,
		IsActive:    project.IsActive,
		CreatedAt:   project.CreatedAt,
		UserRole:    role,
	}, nil
}

func (s *ProjectService) DeleteProject(projectID uuid.UUID, user *users_models.User) error {
	role, err := s.GetUserProjectRole(projectID, user.ID)
	if err != nil {
		return err
	}
	if role == nil || *role != projects_enums.ProjectRoleOwner {
		return ErrProjectNotFound
	}

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return ErrProjectNotFound
	}

	if err := s.projectRepository.SoftDeleteProject(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.projectCacheUtil.Invalidate(projectID.String())

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Project deactivated: %s", project.Name),
		&user.ID,
		&projectID,
	)

	return nil
}

func (s *ProjectService) GetUserProjectRole(
	projectID, userID uuid.UUID,
) (*projects_enums.ProjectRole, error) {
	role, err := s.membershipRepository.GetUserProjectRole(projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user role: %w", err)
	}

	return role, nil
}

// CanUserAccessProject reports whether the user holds any membership in
// the project. Used by the settings store as its read-access gate.
func (s *ProjectService) CanUserAccessProject(
	projectID uuid.UUID,
	user *users_models.User,
) (bool, *projects_enums.ProjectRole, error) {
	role, err := s.GetUserProjectRole(projectID, user.ID)
	if err != nil {
		return false, nil, err
	}

	return role != nil, role, nil
}

func (s *ProjectService) GetProjectWithCache(projectID uuid.UUID) (*projects_models.Project, error) {
	projectIDStr := projectID.String()

	if cachedProject := s.projectCacheUtil.Get(projectIDStr); cachedProject != nil {
		if cachedProject.IsNotExists {
			return nil, ErrProjectNotFound
		}

		return cachedProject, nil
	}

	result, err, _ := s.singleflight.Do(projectIDStr, func() (any, error) {
		return s.projectRepository.GetProjectByID(projectID)
	})

	if err != nil {
		// Cache the miss to prevent repeated DB hits
		invalidCachedProject := &projects_models.Project{
			ID:          projectID,
			IsNotExists: true,
		}
		s.projectCacheUtil.Set(projectIDStr, invalidCachedProject)
		return nil, ErrProjectNotFound
	}

	project, ok := result.(*projects_models.Project)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to Project")
	}

	s.projectCacheUtil.Set(projectIDStr, project)

	return project, nil
}
