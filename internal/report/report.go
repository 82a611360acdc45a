// Package report derives reporting views from the ticket collection. Every
// function is a pure function of the tickets and the reference time.
package report

import (
	"time"

	"github.com/spec-kit/intervention-desk/internal/domain"
)

// weekCount is the number of week buckets in the weekly series.
const weekCount = 8

// WeekBucket is one fixed-width time window of the weekly series.
type WeekBucket struct {
	Week  string    `json:"week"`
	Start time.Time `json:"start"`
	Count int       `json:"count"`
}

// Overview bundles the aggregate views a reporting dashboard needs.
type Overview struct {
	Total    int                           `json:"total"`
	Status   map[domain.TicketStatus]int   `json:"status"`
	Priority map[domain.TicketPriority]int `json:"priority"`
	Weekly   []WeekBucket                  `json:"weekly"`
}

// Weekly partitions the last eight weeks (Monday-aligned, ending in the
// week containing now) into buckets and counts tickets by creation time.
// Buckets come back oldest first. A ticket on a bucket boundary lands in
// exactly one bucket; tickets outside the window are not counted here.
func Weekly(tickets []domain.Ticket, now time.Time) []WeekBucket {
	first := startOfWeek(now.AddDate(0, 0, -7*(weekCount-1)))

	buckets := make([]WeekBucket, weekCount)
	for i := range buckets {
		start := first.AddDate(0, 0, 7*i)
		buckets[i] = WeekBucket{
			Week:  start.Format("02/01"),
			Start: start,
		}
	}

	end := first.AddDate(0, 0, 7*weekCount)
	for _, t := range tickets {
		created := t.CreatedAt.In(now.Location())
		if created.Before(first) || !created.Before(end) {
			continue
		}
		for i := weekCount - 1; i >= 0; i-- {
			if !created.Before(buckets[i].Start) {
				buckets[i].Count++
				break
			}
		}
	}
	return buckets
}

// StatusDistribution counts tickets per status, zero counts included.
func StatusDistribution(tickets []domain.Ticket) map[domain.TicketStatus]int {
	dist := make(map[domain.TicketStatus]int, len(domain.TicketStatuses))
	for _, status := range domain.TicketStatuses {
		dist[status] = 0
	}
	for _, t := range tickets {
		if _, ok := dist[t.Status]; ok {
			dist[t.Status]++
		}
	}
	return dist
}

// PriorityDistribution counts tickets per priority, zero counts included.
func PriorityDistribution(tickets []domain.Ticket) map[domain.TicketPriority]int {
	dist := make(map[domain.TicketPriority]int, len(domain.TicketPriorities))
	for _, priority := range domain.TicketPriorities {
		dist[priority] = 0
	}
	for _, t := range tickets {
		if _, ok := dist[t.Priority]; ok {
			dist[t.Priority]++
		}
	}
	return dist
}

// BuildOverview computes the full reporting view. The total covers every
// ticket, including those outside the weekly window.
func BuildOverview(tickets []domain.Ticket, now time.Time) Overview {
	return Overview{
		Total:    len(tickets),
		Status:   StatusDistribution(tickets),
		Priority: PriorityDistribution(tickets),
		Weekly:   Weekly(tickets, now),
	}
}

// startOfWeek returns midnight on the Monday of t's week, in t's location.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -offset)
}
