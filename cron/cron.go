package cron

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/programmermistery-hub/BarberCRM/db"
	"github.com/programmermistery-hub/BarberCRM/store"
	"github.com/programmermistery-hub/BarberCRM/timerout"
)

const defaultThresholdDays = 30

// StartCronJobs starts the daily overdue-clients report. It only
// logs — the shop calls people itself, nothing is sent automatically.
func StartCronJobs() {
	c := cron.New()
	// Every morning before opening.
	_, err := c.AddFunc("0 8 * * *", logOverdueClients)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for the timer-out report")
}

func thresholdDays() int {
	if v := os.Getenv("TIMER_OUT_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultThresholdDays
}

// logOverdueClients runs the timer-out aggregation over the full
// history and logs everyone past the threshold.
func logOverdueClients() {
	visits, err := store.New(db.DB).Visits("")
	if err != nil {
		log.Printf("Error fetching visits for timer-out report: %v", err)
		return
	}

	threshold := thresholdDays()
	overdue := 0
	for _, entry := range timerout.Aggregate(visits, time.Now()) {
		if entry.Days < threshold {
			break // sorted descending, the rest are below threshold
		}
		overdue++
		log.Printf("Timer-out: %s (%s) last visit %s, %d days ago",
			entry.Name, entry.Phone, entry.LastVisit, entry.Days)
	}
	log.Printf("Timer-out report: %d client(s) over %d days", overdue, threshold)
}
