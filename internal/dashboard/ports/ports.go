// Package ports declares the read-only data access the dashboard engine
// consumes. Implementations live in internal/approval/store.
package ports

import (
	"context"

	"github.com/google/uuid"

	"approvaldash/internal/approval/models"
	id "approvaldash/pkg/domain"
)

// RecordStore queries approval records with typed filter predicates.
type RecordStore interface {
	QueryRecords(ctx context.Context, filter models.RecordFilter) ([]models.ApprovalRecord, error)
	CountRecords(ctx context.Context, filter models.RecordFilter) (int, error)
	// FindRecord returns sentinel.ErrNotFound when no record has the id.
	FindRecord(ctx context.Context, recordID uuid.UUID) (*models.ApprovalRecord, error)
}

// TypeStore exposes approval type reference data.
type TypeStore interface {
	// FindType returns sentinel.ErrNotFound for unknown codes.
	FindType(ctx context.Context, code string) (*models.ApprovalType, error)
	ListTypes(ctx context.Context) ([]models.ApprovalType, error)
}

// NodeStore queries workflow nodes.
type NodeStore interface {
	QueryNodes(ctx context.Context, filter models.NodeFilter) ([]models.ApprovalNode, error)
}

// UserStore resolves user profiles.
type UserStore interface {
	// FindUser returns sentinel.ErrNotFound for unknown users.
	FindUser(ctx context.Context, userID id.UserID) (*models.UserProfile, error)
}

// Store is the full data access surface, satisfied by every store implementation.
type Store interface {
	RecordStore
	TypeStore
	NodeStore
	UserStore
}
