package services

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"vrzone-backend/models"
	"vrzone-backend/utils"
)

// nowFunc is swapped out in tests
var nowFunc = time.Now

// StartDigestScheduler pushes a summary of the previous day's bookings to
// the operator channel every morning at 9 AM, through the same dispatcher
// the booking flow uses.
func StartDigestScheduler(db *gorm.DB, dispatcher *Dispatcher, log zerolog.Logger) *cron.Cron {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		SendDailyDigest(db, dispatcher, log)
	})

	c.Start()
	log.Info().Msg("digest scheduler started")
	return c
}

// SendDailyDigest counts yesterday's bookings and queues the summary.
// A query failure is logged and skipped; the next run starts fresh.
func SendDailyDigest(db *gorm.DB, dispatcher *Dispatcher, log zerolog.Logger) {
	end := utils.BeginningOfDay(nowFunc())
	start := end.AddDate(0, 0, -1)

	var count int64
	if err := db.Model(&models.Booking{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error; err != nil {
		log.Error().Err(err).Msg("daily digest query failed")
		return
	}

	text := fmt.Sprintf(
		"📊 <b>VR ZONE daily summary</b>\n\n📅 %s\n🎮 Bookings: %d",
		start.Format("02.01.2006"), count,
	)
	dispatcher.Send(text)
}
