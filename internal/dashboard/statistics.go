package dashboard

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"approvaldash/internal/approval/models"
	id "approvaldash/pkg/domain"
)

// Statistics counts the initiator's open records and this month's approved,
// rejected and total submissions. The four counts are independent reads.
// The zero user owns no records, so every count is zero.
func (s *Service) Statistics(ctx context.Context, initiator id.UserID) (result *Statistics, err error) {
	ctx, done := s.observe(ctx, "statistics", attribute.Int64("user_id", int64(initiator)))
	defer func() { done(err) }()

	if initiator.IsNil() {
		return &Statistics{}, nil
	}

	monthStart, monthEnd := monthBounds(s.now(ctx), 0)
	inMonth := func(statuses ...models.Status) models.RecordFilter {
		return models.RecordFilter{
			InitiatorID: initiator,
			Statuses:    statuses,
			CreatedFrom: monthStart,
			CreatedTo:   monthEnd,
		}
	}

	stats := &Statistics{}
	counts := []struct {
		label  string
		filter models.RecordFilter
		dst    *int
	}{
		{"pending", models.RecordFilter{InitiatorID: initiator, Statuses: models.OpenStatuses}, &stats.Pending},
		{"approved", inMonth(models.StatusApproved), &stats.Approved},
		{"rejected", inMonth(models.StatusRejected), &stats.Rejected},
		{"total", inMonth(), &stats.Total},
	}

	for _, c := range counts {
		n, err := s.records.CountRecords(ctx, c.filter)
		if err != nil {
			return nil, fmt.Errorf("count %s records: %w", c.label, err)
		}
		*c.dst = n
	}

	s.logger.InfoContext(ctx, "dashboard statistics computed",
		"user_id", initiator,
		"pending", stats.Pending,
		"approved", stats.Approved,
		"rejected", stats.Rejected,
		"total", stats.Total,
	)
	return stats, nil
}
