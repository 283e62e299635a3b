package dashboard

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"approvaldash/internal/approval/models"
	id "approvaldash/pkg/domain"
)

const (
	minActivityLimit = 1
	maxActivityLimit = 100
)

// RecentActivities lists the initiator's most recently created records as feed
// entries, newest activity first. limit is clamped to [1, 100].
func (s *Service) RecentActivities(ctx context.Context, initiator id.UserID, limit int) (result []Activity, err error) {
	limit = clamp(limit, minActivityLimit, maxActivityLimit)
	ctx, done := s.observe(ctx, "recent_activities",
		attribute.Int64("user_id", int64(initiator)),
		attribute.Int("limit", limit),
	)
	defer func() { done(err) }()

	if initiator.IsNil() {
		return []Activity{}, nil
	}

	records, err := s.records.QueryRecords(ctx, models.RecordFilter{
		InitiatorID: initiator,
		Order:       models.OrderCreatedDesc,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("query recent records: %w", err)
	}

	now := s.now(ctx)
	types := newTypeLookup(s.types)
	activities := make([]Activity, 0, len(records))
	for _, r := range records {
		t, err := types.find(ctx, r.TypeCode)
		if err != nil {
			return nil, err
		}
		kind, at := classifyActivity(r)
		a := Activity{
			ApprovalID:   r.ID,
			ActivityType: kind,
			Title:        r.Title,
			TypeName:     r.TypeCode,
			ActivityTime: at,
			Status:       r.Status,
			RelativeTime: FormatRelative(&at, now),
		}
		if t != nil {
			a.TypeName = t.Name
			a.TypeIcon = t.Icon
			a.TypeColor = t.Color
		}
		activities = append(activities, a)
	}

	slices.SortStableFunc(activities, func(a, b Activity) int {
		return b.ActivityTime.Compare(a.ActivityTime)
	})
	return activities, nil
}

// classifyActivity picks the feed kind and the instant it happened.
func classifyActivity(r models.ApprovalRecord) (ActivityKind, time.Time) {
	switch r.Status {
	case models.StatusApproved, models.StatusRejected:
		kind := ActivityApproved
		if r.Status == models.StatusRejected {
			kind = ActivityRejected
		}
		if r.CompletedAt != nil {
			return kind, *r.CompletedAt
		}
		return kind, r.UpdatedAt
	case models.StatusWithdrawn:
		return ActivityWithdrawn, r.UpdatedAt
	default:
		return ActivityCreated, r.CreatedAt
	}
}
