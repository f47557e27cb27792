package system_healthcheck

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func Test_GetHealth_ReportsDatabaseAndDisk(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	GetHealthcheckController().RegisterRoutes(router.Group("/api/v1"))

	req, _ := http.NewRequest("GET", "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var status HealthStatus
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "ok", status.Database)
	assert.NotNil(t, status.Disk)
	assert.Greater(t, status.Disk.TotalBytes, uint64(0))
}
