package services

import (
	"MerakiHMS/models"
	"sort"
	"time"
)

// AppointmentBuckets is the temporal partition of a doctor's appointments.
//
// Upcoming holds appointments whose slot opens strictly after now, sorted
// ascending by start instant. Virtual is the subset of Upcoming with type
// virtual. History holds appointments whose slot closed at or before now,
// irrespective of status: a cancelled appointment whose slot has elapsed is
// history too.
//
// An appointment whose slot is in progress (start <= now < end) belongs to
// neither Upcoming nor History. InProgress makes that gap visible instead of
// silently dropping such rows; the Upcoming/History semantics are unchanged.
// Appointments with unparseable date/slot fields land in none of the buckets.
type AppointmentBuckets struct {
	Upcoming   []models.Appointment `json:"upcoming"`
	Virtual    []models.Appointment `json:"virtual"`
	History    []models.Appointment `json:"history"`
	InProgress []models.Appointment `json:"inProgress"`
}

// PartitionAppointments splits appointments into temporal buckets relative
// to now. Every appointment ends up in exactly one of Upcoming, History or
// InProgress, never more than one.
func PartitionAppointments(appointments []models.Appointment, now time.Time) AppointmentBuckets {
	var buckets AppointmentBuckets

	for _, a := range appointments {
		start, okStart := a.StartsAt()
		end, okEnd := a.EndsAt()
		if !okStart || !okEnd {
			continue
		}

		switch {
		case start.After(now):
			buckets.Upcoming = append(buckets.Upcoming, a)
			if a.Type == models.TypeVirtual {
				buckets.Virtual = append(buckets.Virtual, a)
			}
		case !end.After(now):
			buckets.History = append(buckets.History, a)
		default:
			buckets.InProgress = append(buckets.InProgress, a)
		}
	}

	sortByStart := func(list []models.Appointment) {
		sort.SliceStable(list, func(i, j int) bool {
			si, _ := list[i].StartsAt()
			sj, _ := list[j].StartsAt()
			return si.Before(sj)
		})
	}
	sortByStart(buckets.Upcoming)
	sortByStart(buckets.Virtual)

	return buckets
}
