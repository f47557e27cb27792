package projects_services

import (
	"artconf/internal/cache"
	projects_models "artconf/internal/features/projects/models"
	projects_repositories "artconf/internal/features/projects/repositories"
	users_services "artconf/internal/features/users/services"
	cache_utils "artconf/internal/util/cache"

	"golang.org/x/sync/singleflight"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var membershipRepository = &projects_repositories.MembershipRepository{}

var projectService = &ProjectService{
	projectRepository:    projectRepository,
	membershipRepository: membershipRepository,
	projectCacheUtil:     cache_utils.NewCacheUtil[projects_models.Project](cache.GetCache(), "ac_project:"),
	singleflight:         singleflight.Group{},
}

var membershipService = &MembershipService{
	membershipRepository: membershipRepository,
	userService:          users_services.GetUserService(),
	projectService:       projectService,
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMembershipService() *MembershipService {
	return membershipService
}
