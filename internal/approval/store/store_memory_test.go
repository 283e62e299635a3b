package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"approvaldash/internal/approval/models"
	"approvaldash/internal/approval/store"
	id "approvaldash/pkg/domain"
	"approvaldash/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *store.InMemoryStore
	base  time.Time
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = store.NewInMemory()
	s.base = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
}

func (s *InMemoryStoreSuite) record(initiator int64, status models.Status, offset time.Duration) models.ApprovalRecord {
	r := models.ApprovalRecord{
		ID:          uuid.New(),
		InitiatorID: id.UserID(initiator),
		TypeCode:    "LEAVE",
		Title:       "t",
		Status:      status,
		CreatedAt:   s.base.Add(offset),
		UpdatedAt:   s.base.Add(offset),
	}
	if status.IsTerminal() {
		done := r.CreatedAt.Add(time.Hour)
		r.CompletedAt = &done
	}
	return r
}

// =============================================================================
// Records
// =============================================================================

func (s *InMemoryStoreSuite) TestQueryRecords() {
	ctx := context.Background()
	older := s.record(1, models.StatusPending, 0)
	newer := s.record(1, models.StatusApproved, time.Hour)
	other := s.record(2, models.StatusRejected, 2*time.Hour)
	s.store.AddRecords(older, newer, other)

	s.Run("filters by initiator and orders newest first", func() {
		got, err := s.store.QueryRecords(ctx, models.RecordFilter{
			InitiatorID: 1,
			Order:       models.OrderCreatedDesc,
		})
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal(newer.ID, got[0].ID)
		s.Equal(older.ID, got[1].ID)
	})

	s.Run("applies limit after ordering", func() {
		got, err := s.store.QueryRecords(ctx, models.RecordFilter{
			Order: models.OrderCreatedAsc,
			Limit: 1,
		})
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal(older.ID, got[0].ID)
	})

	s.Run("inclusive creation range", func() {
		got, err := s.store.QueryRecords(ctx, models.RecordFilter{
			CreatedFrom: s.base.Add(time.Hour),
			CreatedTo:   s.base.Add(2 * time.Hour),
		})
		s.Require().NoError(err)
		s.Len(got, 2)
	})

	s.Run("require completed drops open records", func() {
		got, err := s.store.QueryRecords(ctx, models.RecordFilter{RequireCompleted: true})
		s.Require().NoError(err)
		s.Len(got, 2)
		for _, r := range got {
			s.NotNil(r.CompletedAt)
		}
	})
}

func (s *InMemoryStoreSuite) TestCountRecords() {
	ctx := context.Background()
	s.store.AddRecords(
		s.record(1, models.StatusPending, 0),
		s.record(1, models.StatusInProgress, time.Minute),
		s.record(1, models.StatusApproved, 2*time.Minute),
	)

	count, err := s.store.CountRecords(ctx, models.RecordFilter{
		InitiatorID: 1,
		Statuses:    models.OpenStatuses,
	})
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *InMemoryStoreSuite) TestFindRecord() {
	ctx := context.Background()
	r := s.record(1, models.StatusPending, 0)
	s.store.AddRecords(r)

	s.Run("found", func() {
		got, err := s.store.FindRecord(ctx, r.ID)
		s.Require().NoError(err)
		s.Equal(r.Title, got.Title)
	})

	s.Run("removed record is not found", func() {
		s.store.RemoveRecord(r.ID)
		_, err := s.store.FindRecord(ctx, r.ID)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

// =============================================================================
// Reference data
// =============================================================================

func (s *InMemoryStoreSuite) TestTypesAndUsers() {
	ctx := context.Background()
	s.store.AddTypes(
		models.ApprovalType{Code: "TRAVEL", Name: "Travel"},
		models.ApprovalType{Code: "EXPENSE", Name: "Expense"},
	)
	s.store.AddUsers(models.UserProfile{ID: 7, Username: "dana"})

	s.Run("list types is ordered by code", func() {
		types, err := s.store.ListTypes(ctx)
		s.Require().NoError(err)
		s.Require().Len(types, 2)
		s.Equal("EXPENSE", types[0].Code)
		s.Equal("TRAVEL", types[1].Code)
	})

	s.Run("unknown type is not found", func() {
		_, err := s.store.FindType(ctx, "NOPE")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("user lookup", func() {
		u, err := s.store.FindUser(ctx, 7)
		s.Require().NoError(err)
		s.Equal("dana", u.DisplayName())

		_, err = s.store.FindUser(ctx, 8)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestQueryNodes() {
	ctx := context.Background()
	s.store.AddNodes(
		models.ApprovalNode{ID: 1, ApprovalID: uuid.New(), ApproverID: 5, Status: models.NodeAwaitingAction, CreatedAt: s.base},
		models.ApprovalNode{ID: 2, ApprovalID: uuid.New(), ApproverID: 5, Status: models.NodeAwaitingAction, CreatedAt: s.base.Add(time.Hour)},
		models.ApprovalNode{ID: 3, ApprovalID: uuid.New(), ApproverID: 5, Status: 1, CreatedAt: s.base.Add(2 * time.Hour)},
		models.ApprovalNode{ID: 4, ApprovalID: uuid.New(), ApproverID: 6, Status: models.NodeAwaitingAction, CreatedAt: s.base},
	)

	nodes, err := s.store.QueryNodes(ctx, models.NodeFilter{
		ApproverID: 5,
		Statuses:   []models.NodeStatus{models.NodeAwaitingAction},
		Order:      models.OrderCreatedDesc,
	})
	s.Require().NoError(err)
	s.Require().Len(nodes, 2)
	s.Equal(int64(2), nodes[0].ID)
	s.Equal(int64(1), nodes[1].ID)
}

// =============================================================================
// Demo seed
// =============================================================================

func (s *InMemoryStoreSuite) TestSeedDemo() {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	store.SeedDemo(s.store, now)

	all, err := s.store.QueryRecords(ctx, models.RecordFilter{})
	s.Require().NoError(err)
	s.NotEmpty(all)
	for _, r := range all {
		s.False(r.CreatedAt.After(now), "seeded record created in the future")
		if r.Status.IsOpen() {
			s.Nil(r.CompletedAt)
		} else {
			s.Require().NotNil(r.CompletedAt)
			s.False(r.CompletedAt.Before(r.CreatedAt))
		}
	}

	todos, err := s.store.QueryNodes(ctx, models.NodeFilter{ApproverID: 1})
	s.Require().NoError(err)
	s.NotEmpty(todos)
}
