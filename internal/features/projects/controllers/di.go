package projects_controllers

import (
	audit_logs "artconf/internal/features/audit_logs"
	projects_services "artconf/internal/features/projects/services"
)

var projectController = &ProjectController{
	projectService:  projects_services.GetProjectService(),
	auditLogService: audit_logs.GetAuditLogService(),
}

var membershipController = &MembershipController{
	membershipService: projects_services.GetMembershipService(),
}

func GetProjectController() *ProjectController {
	return projectController
}

func GetMembershipController() *MembershipController {
	return membershipController
}
