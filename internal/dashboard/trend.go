package dashboard

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"approvaldash/internal/approval/models"
)

const (
	minTrendDays = 7
	maxTrendDays = 90
)

// Trend returns one point per calendar day for the last days days, ending
// today, counting submissions from every user. days is clamped to [7, 90].
func (s *Service) Trend(ctx context.Context, days int) (result []TrendPoint, err error) {
	days = clamp(days, minTrendDays, maxTrendDays)
	ctx, done := s.observe(ctx, "trend", attribute.Int("days", days))
	defer func() { done(err) }()

	windowStart := startOfDay(s.now(ctx)).AddDate(0, 0, -(days - 1))

	points := make([]TrendPoint, days)
	index := make(map[string]int, days)
	for i := range points {
		key := windowStart.AddDate(0, 0, i).Format(isoDate)
		points[i] = TrendPoint{Date: key}
		index[key] = i
	}

	records, err := s.records.QueryRecords(ctx, models.RecordFilter{
		CreatedFrom: windowStart,
		Order:       models.OrderCreatedAsc,
	})
	if err != nil {
		return nil, fmt.Errorf("query trend records: %w", err)
	}

	for _, r := range records {
		i, ok := index[dateKey(r.CreatedAt, s.location)]
		if !ok {
			continue
		}
		points[i].Count++
		switch r.Status {
		case models.StatusApproved:
			points[i].Approved++
		case models.StatusRejected:
			points[i].Rejected++
		}
	}
	return points, nil
}
