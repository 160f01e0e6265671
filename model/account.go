package model

type Account struct {
	DTO
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Role     string `gorm:"not null;default:staff" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateAccountInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin staff"`
}

type EditAccountInput struct {
	Name     *string `json:"name"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin staff"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}
