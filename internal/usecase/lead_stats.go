package usecase

import (
	"context"
	"time"
)

const statsWindowDays = 10

// LeadStatsUseCase builds the daily lead counts for the dashboard
// chart: one entry per calendar day, oldest first, zero-filled.
type LeadStatsUseCase struct {
	Leads LeadRepositoryInterface

	now func() time.Time
}

func NewLeadStatsUseCase(leads LeadRepositoryInterface) *LeadStatsUseCase {
	return &LeadStatsUseCase{
		Leads: leads,
		now:   time.Now,
	}
}

func (uc *LeadStatsUseCase) Execute(ctx context.Context) ([]DailyLeadCount, error) {
	today := uc.now()
	start := startOfDay(today.AddDate(0, 0, -(statsWindowDays - 1)))

	counts, err := uc.Leads.CountByDaySince(ctx, start)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to aggregate leads by day: " + err.Error(),
		}
	}

	// Always exactly 10 entries, ascending, missing days at 0.
	result := make([]DailyLeadCount, 0, statsWindowDays)
	for i := statsWindowDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		result = append(result, DailyLeadCount{
			Date:  date,
			Count: counts[date],
		})
	}

	return result, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
