package schedule

import (
	"fmt"

	"github.com/programmermistery-hub/BarberCRM/models"
)

// TimeSlots returns the bookable half-hour grid for a working day,
// 09:30 through 19:00 inclusive. The grid is fixed; slots are derived
// values, never persisted.
func TimeSlots() []string {
	slots := make([]string, 0, 20)
	hour, minute := 9, 30
	for hour < 19 || (hour == 19 && minute == 0) {
		slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		minute += 30
		if minute >= 60 {
			hour++
			minute = 0
		}
	}
	return slots
}

// Slot is one grid position of a day's schedule.
type Slot struct {
	Time        string              `json:"horario"`
	Free        bool                `json:"livre"`
	Appointment *models.Appointment `json:"agendamento,omitempty"`
}

// Resolve indexes a single day's appointments by their slot label.
// Only the HH:MM prefix of the stored time participates; a time stored
// with seconds ("09:30:00") still lands on the 09:30 slot. If the data
// holds two appointments for one slot the last one seen wins.
func Resolve(appointments []models.Appointment) map[string]models.Appointment {
	bySlot := make(map[string]models.Appointment, len(appointments))
	for _, a := range appointments {
		bySlot[slotKey(a.Time)] = a
	}
	return bySlot
}

// Grid merges a day's appointments onto the fixed grid. The result
// always has exactly one entry per grid slot, in grid order.
func Grid(appointments []models.Appointment) []Slot {
	bySlot := Resolve(appointments)
	labels := TimeSlots()
	grid := make([]Slot, 0, len(labels))
	for _, label := range labels {
		slot := Slot{Time: label, Free: true}
		if a, ok := bySlot[label]; ok {
			a := a
			slot.Free = false
			slot.Appointment = &a
		}
		grid = append(grid, slot)
	}
	return grid
}

func slotKey(horario string) string {
	if len(horario) > 5 {
		return horario[:5]
	}
	return horario
}
