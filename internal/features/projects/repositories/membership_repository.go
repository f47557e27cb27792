package projects_repositories

import (
	"errors"
	"time"

	projects_dto "artconf/internal/features/projects/dto"
	projects_enums "artconf/internal/features/projects/enums"
	projects_models "artconf/internal/features/projects/models"
	"artconf/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct{}

func (r *MembershipRepository) CreateMembership(membership *projects_models.ProjectMembership) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}
	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(membership).Error
}

func (r *MembershipRepository) GetUserProjectRole(
	projectID, userID uuid.UUID,
) (*projects_enums.ProjectRole, error) {
	var membership projects_models.ProjectMembership

	err := storage.GetDb().
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership.Role, nil
}

func (r *MembershipRepository) GetProjectMembers(
	projectID uuid.UUID,
) ([]*projects_dto.ProjectMemberResponseDTO, error) {
	var members []*projects_dto.ProjectMemberResponseDTO

	err := storage.GetDb().
		Table("project_memberships pm").
		Select("pm.id, pm.user_id, u.username, pm.role, pm.created_at").
		Joins("JOIN users u ON pm.user_id = u.id").
		Where("pm.project_id = ?", projectID).
		Order("pm.created_at ASC").
		Scan(&members).Error

	return members, err
}

// GetProjectsWithRolesByUserID lists active projects the user belongs
// to, together with the user's role in each.
func (r *MembershipRepository) GetProjectsWithRolesByUserID(
	userID uuid.UUID,
) ([]projects_dto.ProjectResponseDTO, error) {
	results := make([]projects_dto.ProjectResponseDTO, 0)

	err := storage.GetDb().
		Table("projects p").
		Select("p.id, p.name, p.description, p.created_by, p.is_active, p.created_at, pm.role as user_role").
		Joins("JOIN project_memberships pm ON p.id = pm.project_id").
		Where("pm.user_id = ? AND p.is_active = ?", userID, true).
		Order("p.name ASC").
		Scan(&results).Error

	return results, err
}

func (r *MembershipRepository) UpdateMemberRole(
	projectID, userID uuid.UUID,
	role projects_enums.ProjectRole,
) error {
	return storage.GetDb().
		Model(&projects_models.ProjectMembership{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Update("role", role).Error
}

func (r *MembershipRepository) RemoveMember(projectID, userID uuid.UUID) error {
	return storage.GetDb().
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&projects_models.ProjectMembership{}).Error
}

func (r *MembershipRepository) CountOwners(projectID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&projects_models.ProjectMembership{}).
		Where("project_id = ? AND role = ?", projectID, projects_enums.ProjectRoleOwner).
		Count(&count).Error

	return count, err
}
