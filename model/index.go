package model

import (
	"time"

	"gorm.io/gorm"
)

type TokenClaim struct {
	AccountId uint   `json:"accountId"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenId   string `json:"tokenId"`
}

type DTO struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

type Pagination struct {
	Limit *int `json:"limit"`
	Page  *int `json:"page"`
}

type ArrayId struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}

type ActiveInput struct {
	IsActive *bool `json:"isActive" validate:"required"`
}
