package dashboard

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"approvaldash/internal/approval/models"
	id "approvaldash/pkg/domain"
)

// TypeEfficiency averages the initiator's decided records per approval type,
// slowest type first. Durations are measured in whole seconds.
func (s *Service) TypeEfficiency(ctx context.Context, initiator id.UserID) (result []TypeEfficiency, err error) {
	ctx, done := s.observe(ctx, "type_efficiency", attribute.Int64("user_id", int64(initiator)))
	defer func() { done(err) }()

	if initiator.IsNil() {
		return []TypeEfficiency{}, nil
	}

	records, err := s.records.QueryRecords(ctx, models.RecordFilter{
		InitiatorID:      initiator,
		Statuses:         models.DecidedStatuses,
		RequireCompleted: true,
	})
	if err != nil {
		return nil, fmt.Errorf("query completed records: %w", err)
	}

	seconds := make(map[string][]int64)
	for _, r := range records {
		d, ok := r.ProcessDuration()
		if !ok {
			continue
		}
		seconds[r.TypeCode] = append(seconds[r.TypeCode], int64(d/time.Second))
	}

	index, err := typeIndex(ctx, s.types)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(seconds))
	for code := range seconds {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]TypeEfficiency, 0, len(codes))
	for _, code := range codes {
		var sum int64
		for _, v := range seconds[code] {
			sum += v
		}
		avgHours := float64(sum) / float64(len(seconds[code])) / 3600
		name := code
		if t, ok := index[code]; ok {
			name = t.Name
		}
		out = append(out, TypeEfficiency{
			TypeName:       name,
			AvgProcessTime: roundHalfUp(avgHours, 2),
		})
	}

	slices.SortStableFunc(out, func(a, b TypeEfficiency) int {
		switch {
		case a.AvgProcessTime > b.AvgProcessTime:
			return -1
		case a.AvgProcessTime < b.AvgProcessTime:
			return 1
		default:
			return 0
		}
	})
	return out, nil
}
