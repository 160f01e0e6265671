package database

import (
	"log"
	"strconv"

	"hall_manager/constants"
	"hall_manager/model"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123456"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	accounts := []model.Account{
		{Email: "admin@hallbooking.local", Password: hashPassword, Name: "Administrator", Role: constants.ROLE_ADMIN, IsActive: true},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Email: account.Email}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Email, "error:", err)
		}
	}

	settings := []model.SystemSetting{
		{Key: constants.SETTING_DEFAULT_TAX_PERCENTAGE, Value: "6", Description: "Tax percentage applied when a booking does not set one"},
		{Key: constants.SETTING_DEFAULT_DEPOSIT_PERCENTAGE, Value: "30", Description: "Suggested deposit as a percentage of the booking total"},
		{Key: constants.SETTING_MINIMUM_DINNER_TABLES, Value: strconv.Itoa(constants.DEFAULT_MINIMUM_TABLES), Description: "Fallback minimum table count for dinner packages"},
	}
	for _, setting := range settings {
		if err := db.Where(model.SystemSetting{Key: setting.Key}).FirstOrCreate(&setting).Error; err != nil {
			log.Println("failed to seed setting:", setting.Key, "error:", err)
		}
	}

	halls := []model.Hall{
		{
			Code:          "HALL-A",
			Name:          "Main Hall",
			Capacity:      800,
			InternalPrice: decimal.NewFromInt(1500),
			ExternalPrice: decimal.NewFromInt(2500),
		},
		{
			Code:          "HALL-B",
			Name:          "Annex Hall",
			Capacity:      300,
			InternalPrice: decimal.NewFromInt(800),
			ExternalPrice: decimal.NewFromInt(1200),
		},
	}
	for _, hall := range halls {
		if err := db.Where(model.Hall{Code: hall.Code}).FirstOrCreate(&hall).Error; err != nil {
			log.Println("failed to seed hall:", hall.Code, "error:", err)
		}
	}
}
