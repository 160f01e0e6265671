package model

type SystemSetting struct {
	DTO
	Key         string `gorm:"unique;not null;size:50" json:"key"`
	Value       string `gorm:"not null" json:"value"`
	Description string `json:"description"`
}

type UpsertSettingInput struct {
	Key         string `json:"key" validate:"required,max=50"`
	Value       string `json:"value" validate:"required"`
	Description string `json:"description"`
}
