package helper

import (
	"fmt"
	"time"

	"hall_manager/model"

	"gorm.io/gorm"
)

// Public codes are sequential and human-readable. Monthly sequences restart
// each month, flat sequences count all rows including soft-deleted ones so a
// code is never reissued.

func FormatCustomerCode(seq int64) string {
	return fmt.Sprintf("CUST-%05d", seq)
}

func FormatBookingCode(t time.Time, seq int64) string {
	return fmt.Sprintf("BK-%s-%04d", t.Format("200601"), seq)
}

func FormatQuotationCode(t time.Time, seq int64) string {
	return fmt.Sprintf("QT-%s-%04d", t.Format("200601"), seq)
}

func FormatPaymentCode(seq int64) string {
	return fmt.Sprintf("PAY-%06d", seq)
}

func NextCustomerCode(db *gorm.DB) (string, error) {
	var count int64
	if err := db.Unscoped().Model(&model.Customer{}).Count(&count).Error; err != nil {
		return "", err
	}
	return FormatCustomerCode(count + 1), nil
}

func NextBookingCode(db *gorm.DB, now time.Time) (string, error) {
	seq, err := monthlyCount(db, &model.Booking{}, now)
	if err != nil {
		return "", err
	}
	return FormatBookingCode(now, seq+1), nil
}

func NextQuotationCode(db *gorm.DB, now time.Time) (string, error) {
	seq, err := monthlyCount(db, &model.Quotation{}, now)
	if err != nil {
		return "", err
	}
	return FormatQuotationCode(now, seq+1), nil
}

func NextPaymentCode(db *gorm.DB) (string, error) {
	var count int64
	if err := db.Unscoped().Model(&model.Payment{}).Count(&count).Error; err != nil {
		return "", err
	}
	return FormatPaymentCode(count + 1), nil
}

func monthlyCount(db *gorm.DB, entity any, now time.Time) (int64, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var count int64
	err := db.Unscoped().Model(entity).
		Where("created_at >= ?", monthStart).
		Count(&count).Error
	return count, err
}
