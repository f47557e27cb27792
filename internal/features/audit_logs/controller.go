package audit_logs

import (
	"net/http"

	users_middleware "artconf/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type AuditLogController struct {
	auditLogService *AuditLogService
}

func (c *AuditLogController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/audit-logs", c.GetOwnAuditLogs)
}

// GetOwnAuditLogs
// @Summary Get own audit logs
// @Description Get the audit trail of the authenticated user
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of entries (default 100, max 1000)"
// @Param offset query int false "Number of entries to skip"
// @Param beforeDate query string false "Only entries created before this time (RFC 3339)"
// @Success 200 {object} GetAuditLogsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /audit-logs [get]
func (c *AuditLogController) GetOwnAuditLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request GetAuditLogsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := c.auditLogService.GetUserAuditLogs(user.ID, &request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get audit logs"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
