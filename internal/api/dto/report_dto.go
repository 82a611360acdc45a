package dto

import (
	"github.com/spec-kit/intervention-desk/internal/domain"
	"github.com/spec-kit/intervention-desk/internal/report"
)

// LabeledCount pairs a vocabulary value with its display label and count.
type LabeledCount struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// OverviewResponse is the reports/overview payload.
type OverviewResponse struct {
	Total    int                 `json:"total"`
	Status   []LabeledCount      `json:"status"`
	Priority []LabeledCount      `json:"priority"`
	Weekly   []report.WeekBucket `json:"weekly"`
}

// NewOverviewResponse flattens an Overview into stable, labeled series.
func NewOverviewResponse(overview report.Overview) OverviewResponse {
	status := make([]LabeledCount, 0, len(domain.TicketStatuses))
	for _, s := range domain.TicketStatuses {
		status = append(status, LabeledCount{
			Value: string(s),
			Label: s.Label(),
			Count: overview.Status[s],
		})
	}
	priority := make([]LabeledCount, 0, len(domain.TicketPriorities))
	for _, p := range domain.TicketPriorities {
		priority = append(priority, LabeledCount{
			Value: string(p),
			Label: p.Label(),
			Count: overview.Priority[p],
		})
	}
	return OverviewResponse{
		Total:    overview.Total,
		Status:   status,
		Priority: priority,
		Weekly:   overview.Weekly,
	}
}
