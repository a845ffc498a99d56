// Package timerout builds the report of clients overdue for a return
// visit: for each (name, phone) pair seen in the appointment history,
// how many days have passed since the most recent one.
package timerout

import (
	"sort"
	"time"
)

// Visit is one appointment row as the report consumes it. Date is ISO
// "2006-01-02" text, so lexicographic order equals chronological order.
type Visit struct {
	Name  string
	Phone string
	Date  string
}

// Entry is one report line.
type Entry struct {
	Name      string `json:"nome"`
	Phone     string `json:"numero"`
	LastVisit string `json:"ultimo_agendamento"`
	Days      int    `json:"dias_timer_out"`
}

// Aggregate groups visits by (name, phone-or-empty), keeps the latest
// date per group and computes whole days elapsed until today, counted
// midnight to midnight on the local calendar. The result is sorted by
// days descending; ties keep encounter order.
func Aggregate(visits []Visit, today time.Time) []Entry {
	latest := make(map[string]Visit, len(visits))
	var order []string
	for _, v := range visits {
		key := v.Name + "|" + v.Phone
		seen, ok := latest[key]
		if !ok {
			order = append(order, key)
		}
		if !ok || v.Date > seen.Date {
			latest[key] = v
		}
	}

	entries := make([]Entry, 0, len(order))
	for _, key := range order {
		v := latest[key]
		entries = append(entries, Entry{
			Name:      v.Name,
			Phone:     v.Phone,
			LastVisit: v.Date,
			Days:      daysSince(v.Date, today),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Days > entries[j].Days
	})
	return entries
}

// daysSince counts calendar-day boundaries between the visit date and
// today. Both endpoints are pinned to UTC midnight so the division is
// exact regardless of DST in the local zone.
func daysSince(date string, today time.Time) int {
	last, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0
	}
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(start.Sub(last).Hours() / 24)
}
