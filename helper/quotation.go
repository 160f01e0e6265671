package helper

import (
	"log"
	"time"

	"hall_manager/constants"
	"hall_manager/database"
	"hall_manager/model"
	"hall_manager/utils"

	"github.com/go-co-op/gocron/v2"
)

var quotationScheduler gocron.Scheduler

// IsQuotationExpired reports whether a quotation should no longer be
// acceptable on the given day. Terminal states are never "expired", they
// already resolved.
func IsQuotationExpired(quotation model.Quotation, today utils.DateOnly) bool {
	switch quotation.Status {
	case constants.QUOTATION_ACCEPTED, constants.QUOTATION_REJECTED, constants.QUOTATION_EXPIRED:
		return false
	}
	return quotation.ValidUntil.Before(today)
}

// ExpireQuotations transitions sent quotations past valid_until to expired.
// Expiry is stored, not derived at read time, so every list and filter sees
// the same status.
func ExpireQuotations() {
	db := database.DB
	now := time.Now()
	today := utils.NewDateOnly(now.Year(), now.Month(), now.Day())

	result := db.Model(&model.Quotation{}).
		Where("status = ? AND valid_until < ?", constants.QUOTATION_SENT, today).
		Update("status", constants.QUOTATION_EXPIRED)
	if result.Error != nil {
		log.Printf("[CRON] quotation expiry sweep failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[CRON] expired %d quotation(s)", result.RowsAffected)
	}
}

func StartQuotationExpiryScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	quotationScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 10, 0),
			),
		),
		gocron.NewTask(ExpireQuotations),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("quotation expiry scheduler started (00:10)")
}

func StopQuotationExpiryScheduler() {
	if quotationScheduler != nil {
		if err := quotationScheduler.Shutdown(); err != nil {
			log.Printf("quotation scheduler shutdown: %v", err)
		}
	}
}
