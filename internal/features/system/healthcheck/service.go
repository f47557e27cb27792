package system_healthcheck

import (
	"fmt"

	"artconf/internal/storage"

	"github.com/shirou/gopsutil/v4/disk"
)

type HealthcheckService struct {
	diskPath string
}

type HealthStatus struct {
	Status   string      `json:"status"`
	Database string      `json:"database"`
	Disk     *DiskStatus `json:"disk,omitempty"`
}

type DiskStatus struct {
	Path        string  `json:"path"`
	TotalBytes  uint64  `json:"totalBytes"`
	FreeBytes   uint64  `json:"freeBytes"`
	UsedPercent float64 `json:"usedPercent"`
}

// CheckHealth pings the database and reads disk usage. A failing
// database marks the whole check unhealthy; a failing disk probe only
// drops the disk section.
func (s *HealthcheckService) CheckHealth() (*HealthStatus, error) {
	status := &HealthStatus{
		Status:   "ok",
		Database: "ok",
	}

	if err := s.checkDatabase(); err != nil {
		status.Status = "unhealthy"
		status.Database = "unreachable"

		return status, err
	}

	if usage, err := disk.Usage(s.diskPath); err == nil {
		status.Disk = &DiskStatus{
			Path:        s.diskPath,
			TotalBytes:  usage.Total,
			FreeBytes:   usage.Free,
			UsedPercent: usage.UsedPercent,
		}
	}

	return status, nil
}

func (s *HealthcheckService) checkDatabase() error {
	db, err := storage.GetDb().DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	return db.Ping()
}
