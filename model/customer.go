package model

type Customer struct {
	DTO
	Code         string `gorm:"unique;not null;size:20" json:"code"`
	CustomerType string `gorm:"not null;default:external" json:"customerType"` // internal | external
	Name         string `gorm:"not null" json:"name"`
	Email        string `json:"email"`
	Phone        string `gorm:"not null" json:"phone"`
	Address      string `json:"address"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`
}

type CreateCustomerInput struct {
	CustomerType string `json:"customerType" validate:"required,oneof=internal external"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address"`
}

type EditCustomerInput struct {
	CustomerType *string `json:"customerType" validate:"omitempty,oneof=internal external"`
	Name         *string `json:"name"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
}

type FilterCustomer struct {
	Pagination
	SearchKey    string `json:"searchKey"`
	CustomerType string `json:"customerType"`
	Active       *bool  `json:"active"`
}
