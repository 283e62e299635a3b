package dashboard

import (
	"context"
	"fmt"
	"time"

	"approvaldash/internal/approval/models"
)

// Efficiency reports system-wide throughput: this month's volume and its
// change against last month, the all-time approval rate and the mean
// completion time in whole hours.
func (s *Service) Efficiency(ctx context.Context) (result *EfficiencyMetrics, err error) {
	ctx, done := s.observe(ctx, "efficiency")
	defer func() { done(err) }()

	now := s.now(ctx)
	curStart, curEnd := monthBounds(now, 0)
	prevStart, prevEnd := monthBounds(now, -1)

	monthly, err := s.records.CountRecords(ctx, models.RecordFilter{CreatedFrom: curStart, CreatedTo: curEnd})
	if err != nil {
		return nil, fmt.Errorf("count current month records: %w", err)
	}
	previous, err := s.records.CountRecords(ctx, models.RecordFilter{CreatedFrom: prevStart, CreatedTo: prevEnd})
	if err != nil {
		return nil, fmt.Errorf("count previous month records: %w", err)
	}
	approved, err := s.records.CountRecords(ctx, models.RecordFilter{Statuses: []models.Status{models.StatusApproved}})
	if err != nil {
		return nil, fmt.Errorf("count approved records: %w", err)
	}
	decided, err := s.records.CountRecords(ctx, models.RecordFilter{Statuses: models.DecidedStatuses})
	if err != nil {
		return nil, fmt.Errorf("count decided records: %w", err)
	}
	completed, err := s.records.QueryRecords(ctx, models.RecordFilter{Statuses: models.DecidedStatuses})
	if err != nil {
		return nil, fmt.Errorf("query decided records: %w", err)
	}

	return &EfficiencyMetrics{
		AvgProcessTime: roundHalfUp(meanWholeHours(completed), 1),
		MonthlyCount:   monthly,
		ApprovalRate:   roundHalfUp(percentage(approved, decided), 1),
		MonthlyChange:  roundHalfUp(monthlyChange(monthly, previous), 1),
	}, nil
}

// monthlyChange is the percent change from previous to current, 0 when
// there is no previous volume to compare against.
func monthlyChange(current, previous int) float64 {
	if previous <= 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

func percentage(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// meanWholeHours averages completion durations truncated to whole hours.
// Records without both timestamps are ignored.
func meanWholeHours(records []models.ApprovalRecord) float64 {
	var total, n int64
	for _, r := range records {
		d, ok := r.ProcessDuration()
		if !ok {
			continue
		}
		total += int64(d / time.Hour)
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}
