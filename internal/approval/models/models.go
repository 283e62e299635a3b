// Package models holds read-only snapshots of the approval entities owned by
// the persistence layer.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	id "approvaldash/pkg/domain"
)

// Status is the lifecycle state of an approval record.
type Status int

const (
	StatusPending    Status = 1
	StatusInProgress Status = 2
	StatusApproved   Status = 3
	StatusRejected   Status = 4
	StatusWithdrawn  Status = 5
)

// OpenStatuses are the states in which a record still awaits a decision.
var OpenStatuses = []Status{StatusPending, StatusInProgress}

// DecidedStatuses are the terminal states reached through an approver decision.
var DecidedStatuses = []Status{StatusApproved, StatusRejected}

// IsOpen reports whether the record still awaits a decision.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusInProgress
}

// IsTerminal reports whether the completion time is fixed.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusWithdrawn
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInProgress:
		return "in_progress"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	case StatusWithdrawn:
		return "withdrawn"
	default:
		return "unknown"
	}
}

// Priority is the urgency the initiator attached to a record.
type Priority int

const (
	PriorityNormal   Priority = 0
	PriorityUrgent   Priority = 1
	PriorityCritical Priority = 2
)

// ApprovalRecord is one submitted request moving through a workflow.
//
// Invariants (maintained by the persistence layer):
//   - CompletedAt is nil while Status is Pending or InProgress
//   - once set, CompletedAt is not before CreatedAt
type ApprovalRecord struct {
	ID          uuid.UUID
	InitiatorID id.UserID
	TypeCode    string
	Title       string
	Status      Status
	Priority    Priority
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// ProcessDuration returns completion minus creation. ok is false when either
// timestamp is missing.
func (r ApprovalRecord) ProcessDuration() (d time.Duration, ok bool) {
	if r.CompletedAt == nil || r.CreatedAt.IsZero() {
		return 0, false
	}
	return r.CompletedAt.Sub(r.CreatedAt), true
}

// ApprovalType is reference data looked up by code. Icon and Color are empty
// when not configured.
type ApprovalType struct {
	Code  string
	Name  string
	Icon  string
	Color string
}

// NodeStatus is the state of a single workflow step.
type NodeStatus int

// NodeAwaitingAction marks a node that still needs its approver's decision.
// Every other value means the node was resolved.
const NodeAwaitingAction NodeStatus = 0

// ApprovalNode is one workflow step of a record, assigned to one approver.
type ApprovalNode struct {
	ID         int64
	ApprovalID uuid.UUID
	ApproverID id.UserID
	Status     NodeStatus
	CreatedAt  time.Time
}

// UserProfile is the display identity of a user.
type UserProfile struct {
	ID       id.UserID
	Username string
	Nickname string
}

// DisplayName returns the nickname, or the username when the nickname is blank.
func (u UserProfile) DisplayName() string {
	if strings.TrimSpace(u.Nickname) != "" {
		return u.Nickname
	}
	return u.Username
}
