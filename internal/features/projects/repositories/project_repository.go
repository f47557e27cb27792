package projects_repositories

import (
	"time"

	projects_models "artconf/internal/features/projects/models"
	"artconf/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

// CreateProjectWithOwner inserts the project and its initial owner
// membership in one transaction. Either both rows exist afterwards or
// neither does.
func (r *ProjectRepository) CreateProjectWithOwner(
	project *projects_models.Project,
	membership *projects_models.ProjectMembership,
) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}
	membership.ProjectID = project.ID
	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		return tx.Create(membership).Error
	})
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) UpdateProjectFields(projectID uuid.UUID, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()

	return storage.GetDb().Model(&projects_models.Project{}).
		Where("id = ?", projectID).
		Updates(fields).Error
}

// SoftDeleteProject deactivates the project. Settings rows are kept;
// the row itself is never hard-deleted through the API.
func (r *ProjectRepository) SoftDeleteProject(projectID uuid.UUID) error {
	return storage.GetDb().Model(&projects_models.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		}).Error
}
