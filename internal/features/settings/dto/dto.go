package settings_dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSettingRequestDTO struct {
	ProjectID   uuid.UUID `json:"projectId"   binding:"required"`
	Category    string    `json:"category"    binding:"required,min=1,max=100"`
	Key         string    `json:"key"         binding:"required,min=1,max=100"`
	Value       string    `json:"value"       binding:"required"`
	Description string    `json:"description"`
}

type UpdateSettingRequestDTO struct {
	Value       *string `json:"value"`
	Description *string `json:"description"`
}

type SettingResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	ProjectID   uuid.UUID `json:"projectId"`
	Category    string    `json:"category"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ListSettingsResponseDTO struct {
	Settings []SettingResponseDTO `json:"settings"`
}
