package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"approvaldash/internal/approval/models"
	id "approvaldash/pkg/domain"
	"approvaldash/pkg/platform/sentinel"
)

const (
	minTodoLimit = 1
	maxTodoLimit = 20
)

// UnknownApplicant names the initiator of a record whose profile is missing.
const UnknownApplicant = "unknown user"

// todoPriorities maps record priority onto the display scale. Anything not
// listed is medium.
var todoPriorities = map[models.Priority]TodoPriority{
	models.PriorityCritical: TodoPriorityHigh,
	models.PriorityUrgent:   TodoPriorityHigh,
	models.PriorityNormal:   TodoPriorityMedium,
}

func todoPriority(p models.Priority) TodoPriority {
	if mapped, ok := todoPriorities[p]; ok {
		return mapped
	}
	return TodoPriorityMedium
}

// Todos lists records awaiting the approver's decision, most recently
// assigned first. Nodes whose record is gone or already resolved are skipped.
// limit is clamped to [1, 20] and bounds the nodes fetched, so fewer items
// may be returned.
func (s *Service) Todos(ctx context.Context, approver id.UserID, limit int) (result []TodoItem, err error) {
	limit = clamp(limit, minTodoLimit, maxTodoLimit)
	ctx, done := s.observe(ctx, "todos",
		attribute.Int64("user_id", int64(approver)),
		attribute.Int("limit", limit),
	)
	defer func() { done(err) }()

	if approver.IsNil() {
		return []TodoItem{}, nil
	}

	nodes, err := s.nodes.QueryNodes(ctx, models.NodeFilter{
		ApproverID: approver,
		Statuses:   []models.NodeStatus{models.NodeAwaitingAction},
		Order:      models.OrderCreatedDesc,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("query pending nodes: %w", err)
	}

	now := s.now(ctx)
	types := newTypeLookup(s.types)
	items := make([]TodoItem, 0, len(nodes))
	for _, node := range nodes {
		rec, err := s.records.FindRecord(ctx, node.ApprovalID)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				s.skipTodo(ctx, node, "record_missing")
				continue
			}
			return nil, fmt.Errorf("find record %s: %w", node.ApprovalID, err)
		}
		if rec.Status > models.StatusInProgress {
			s.skipTodo(ctx, node, "record_resolved")
			continue
		}

		applicant, err := s.applicantName(ctx, rec.InitiatorID)
		if err != nil {
			return nil, err
		}
		typeName, err := types.name(ctx, rec.TypeCode)
		if err != nil {
			return nil, err
		}
		created := rec.CreatedAt
		items = append(items, TodoItem{
			ID:            rec.ID,
			Title:         rec.Title,
			ApplicantName: applicant,
			Priority:      todoPriority(rec.Priority),
			WaitingTime:   FormatRelative(&created, now),
			TypeName:      typeName,
		})
	}
	return items, nil
}

func (s *Service) applicantName(ctx context.Context, userID id.UserID) (string, error) {
	u, err := s.users.FindUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return UnknownApplicant, nil
		}
		return "", fmt.Errorf("find user %s: %w", userID, err)
	}
	if name := u.DisplayName(); strings.TrimSpace(name) != "" {
		return name, nil
	}
	return UnknownApplicant, nil
}

func (s *Service) skipTodo(ctx context.Context, node models.ApprovalNode, reason string) {
	s.metrics.IncrementTodoSkipped(reason)
	s.logger.DebugContext(ctx, "todo node skipped",
		"node_id", node.ID,
		"approval_id", node.ApprovalID,
		"reason", reason,
	)
}
