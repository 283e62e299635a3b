package store

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"approvaldash/internal/approval/models"
	id "approvaldash/pkg/domain"
)

// DemoTypes is the reference data loaded by SeedDemo.
var DemoTypes = []models.ApprovalType{
	{Code: "LEAVE", Name: "Leave", Icon: "calendar", Color: "#3b82f6"},
	{Code: "EXPENSE", Name: "Expense", Icon: "wallet", Color: "#10b981"},
	{Code: "PURCHASE", Name: "Purchase", Icon: "cart", Color: "#f59e0b"},
	{Code: "TRAVEL", Name: "Travel", Icon: "plane", Color: "#8b5cf6"},
	{Code: "OVERTIME", Name: "Overtime", Icon: "clock"},
}

// DemoUsers are the profiles loaded by SeedDemo. User 1 is the usual caller.
var DemoUsers = []models.UserProfile{
	{ID: 1, Username: "admin", Nickname: "Administrator"},
	{ID: 2, Username: "alice", Nickname: "Alice"},
	{ID: 3, Username: "bob"},
	{ID: 4, Username: "carol", Nickname: "Carol"},
}

// SeedDemo fills s with a deterministic year of approval traffic ending at now.
// Records are spread across the demo users and types; user 1 approves an open
// node for each pending record so the to-do list is never empty.
func SeedDemo(s *InMemoryStore, now time.Time) {
	rng := rand.New(rand.NewPCG(42, 7))
	s.AddTypes(DemoTypes...)
	s.AddUsers(DemoUsers...)

	var nodeID int64
	for i := 0; i < 600; i++ {
		createdAt := now.Add(-time.Duration(rng.IntN(365*24)) * time.Hour).
			Add(-time.Duration(rng.IntN(60)) * time.Minute)
		initiator := DemoUsers[rng.IntN(len(DemoUsers))].ID
		typ := DemoTypes[rng.IntN(len(DemoTypes))]

		rec := models.ApprovalRecord{
			ID:          uuid.New(),
			InitiatorID: initiator,
			TypeCode:    typ.Code,
			Title:       typ.Name + " request",
			Priority:    models.Priority(rng.IntN(3)),
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		}

		switch roll := rng.IntN(10); {
		case roll < 2:
			rec.Status = models.StatusPending
		case roll < 3:
			rec.Status = models.StatusInProgress
		case roll < 7:
			rec.Status = models.StatusApproved
		case roll < 9:
			rec.Status = models.StatusRejected
		default:
			rec.Status = models.StatusWithdrawn
		}
		if rec.Status.IsTerminal() {
			done := createdAt.Add(time.Duration(1+rng.IntN(72)) * time.Hour)
			if done.After(now) {
				done = now
			}
			rec.CompletedAt = &done
			rec.UpdatedAt = done
		}
		s.AddRecords(rec)

		if rec.Status.IsOpen() {
			nodeID++
			s.AddNodes(models.ApprovalNode{
				ID:         nodeID,
				ApprovalID: rec.ID,
				ApproverID: approverFor(initiator),
				Status:     models.NodeAwaitingAction,
				CreatedAt:  createdAt.Add(time.Minute),
			})
		}
	}
}

func approverFor(initiator id.UserID) id.UserID {
	if initiator == 1 {
		return 2
	}
	return 1
}
