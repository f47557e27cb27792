package audit_logs

import (
	projects_services "artconf/internal/features/projects/services"
	settings_services "artconf/internal/features/settings/services"
	users_services "artconf/internal/features/users/services"
	logger "artconf/internal/util/logger"
)

var (
	auditLogRepository = &AuditLogRepository{}

	auditLogService = &AuditLogService{
		auditLogRepository: auditLogRepository,
		logger:             logger.GetLogger(),
	}

	auditLogController = &AuditLogController{
		auditLogService: auditLogService,
	}
)

func GetAuditLogService() *AuditLogService {
	return auditLogService
}

func GetAuditLogController() *AuditLogController {
	return auditLogController
}

// SetupDependencies attaches the audit log writer to the services that
// produce audit entries. Called from main after all packages are
// initialized, so the cross-feature cycle stays out of package init.
func SetupDependencies() {
	users_services.GetUserService().SetAuditLogWriter(auditLogService)
	projects_services.GetProjectService().SetAuditLogWriter(auditLogService)
	projects_services.GetMembershipService().SetAuditLogWriter(auditLogService)
	settings_services.GetSettingService().SetAuditLogWriter(auditLogService)
}
