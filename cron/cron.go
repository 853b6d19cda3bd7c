package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/docdash/docdash-server/db"
	"github.com/docdash/docdash-server/models"
	"github.com/docdash/docdash-server/notify"
	"github.com/docdash/docdash-server/utils"
)

// StartCronJobs schedules the day-before appointment reminders.
func StartCronJobs(notifier *notify.Notifier) {
	c := cron.New()
	// Every evening at 18:00, remind patients booked for tomorrow.
	_, err := c.AddFunc("0 18 * * *", func() { sendAppointmentReminders(notifier) })
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders emails every patient with a live appointment on
// tomorrow's date key.
func sendAppointmentReminders(notifier *notify.Notifier) {
	tomorrow := utils.FormatDateKey(time.Now().AddDate(0, 0, 1))

	var appointments []models.Appointment
	err := db.DB.
		Where("slot_date = ? AND cancelled = ? AND is_completed = ?", tomorrow, false, false).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	log.Printf("Found %d appointments for reminders on %s", len(appointments), tomorrow)
	for i := range appointments {
		notifier.ReminderDue(&appointments[i])
	}
}
