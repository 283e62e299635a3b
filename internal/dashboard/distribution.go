package dashboard

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"approvaldash/internal/approval/models"
)

// chartPalette colours types that have no configured colour.
var chartPalette = []string{
	"hsl(var(--chart-1))",
	"hsl(var(--chart-2))",
	"hsl(var(--chart-3))",
	"hsl(var(--chart-4))",
	"hsl(var(--chart-5))",
}

// TypeDistribution counts every record by approval type, largest share first.
// Palette colours are assigned in type-code order, so the same data always
// yields the same colours; equal counts keep type-code order.
func (s *Service) TypeDistribution(ctx context.Context) (result []TypeShare, err error) {
	ctx, done := s.observe(ctx, "type_distribution")
	defer func() { done(err) }()

	records, err := s.records.QueryRecords(ctx, models.RecordFilter{})
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.TypeCode]++
	}

	index, err := typeIndex(ctx, s.types)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	shares := make([]TypeShare, 0, len(codes))
	for i, code := range codes {
		share := TypeShare{
			Name:  code,
			Value: counts[code],
			Color: chartPalette[i%len(chartPalette)],
		}
		if t, ok := index[code]; ok {
			share.Name = t.Name
			if t.Color != "" {
				share.Color = t.Color
			}
		}
		shares = append(shares, share)
	}

	slices.SortStableFunc(shares, func(a, b TypeShare) int {
		return b.Value - a.Value
	})
	return shares, nil
}
