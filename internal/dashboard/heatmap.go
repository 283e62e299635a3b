package dashboard

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"approvaldash/internal/approval/models"
	id "approvaldash/pkg/domain"
)

// Heatmap buckets the initiator's submissions over the past year by calendar
// day. Each day's level compares its count against the busiest day: up to a
// quarter of the maximum is 1, up to half 2, up to three quarters 3, above 4.
// Only days with submissions are returned unless the service was built with
// WithDenseHeatmap. Entries are ordered by date.
func (s *Service) Heatmap(ctx context.Context, initiator id.UserID) (result []DailySubmission, err error) {
	ctx, done := s.observe(ctx, "heatmap", attribute.Int64("user_id", int64(initiator)))
	defer func() { done(err) }()

	today := startOfDay(s.now(ctx))
	windowStart := today.AddDate(-1, 0, 0)

	// The zero user owns no records; dense output still yields empty days.
	var records []models.ApprovalRecord
	if !initiator.IsNil() {
		records, err = s.records.QueryRecords(ctx, models.RecordFilter{
			InitiatorID: initiator,
			CreatedFrom: windowStart,
		})
		if err != nil {
			return nil, fmt.Errorf("query heatmap records: %w", err)
		}
	}

	counts := make(map[string]int)
	for _, r := range records {
		counts[dateKey(r.CreatedAt, s.location)]++
	}

	maxCount := 1
	if len(counts) > 0 {
		maxCount = 0
		for _, c := range counts {
			maxCount = max(maxCount, c)
		}
	}

	if s.denseHeatmap {
		for d := windowStart; !d.After(today); d = d.AddDate(0, 0, 1) {
			key := d.Format(isoDate)
			if _, ok := counts[key]; !ok {
				counts[key] = 0
			}
		}
	}

	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	cells := make([]DailySubmission, 0, len(dates))
	for _, date := range dates {
		c := counts[date]
		cells = append(cells, DailySubmission{
			Date:  date,
			Count: c,
			Level: heatLevel(c, maxCount),
		})
	}
	return cells, nil
}

// heatLevel grades count against maxCount on a 0-4 scale.
func heatLevel(count, maxCount int) int {
	c, m := float64(count), float64(maxCount)
	switch {
	case count == 0:
		return 0
	case c <= m*0.25:
		return 1
	case c <= m*0.5:
		return 2
	case c <= m*0.75:
		return 3
	default:
		return 4
	}
}
