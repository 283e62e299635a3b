package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"approvaldash/internal/approval/models"
	id "approvaldash/pkg/domain"
	"approvaldash/pkg/platform/sentinel"
)

// InMemoryStore keeps approval entities in process memory. It backs the demo
// server and the engine tests; the Add* methods stand in for the persistence
// layer that owns writes in production.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]models.ApprovalRecord
	types   map[string]models.ApprovalType
	nodes   []models.ApprovalNode
	users   map[id.UserID]models.UserProfile
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[uuid.UUID]models.ApprovalRecord),
		types:   make(map[string]models.ApprovalType),
		users:   make(map[id.UserID]models.UserProfile),
	}
}

func (s *InMemoryStore) AddRecords(records ...models.ApprovalRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.records[r.ID] = r
	}
}

func (s *InMemoryStore) AddTypes(types ...models.ApprovalType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range types {
		s.types[t.Code] = t
	}
}

func (s *InMemoryStore) AddNodes(nodes ...models.ApprovalNode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes = append(s.nodes, nodes...)
}

func (s *InMemoryStore) AddUsers(users ...models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.ID] = u
	}
}

// RemoveRecord deletes a record, leaving any nodes that reference it orphaned.
func (s *InMemoryStore) RemoveRecord(recordID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, recordID)
}

func (s *InMemoryStore) snapshotRecords() []models.ApprovalRecord {
	out := make([]models.ApprovalRecord, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	return out
}

func (s *InMemoryStore) QueryRecords(_ context.Context, filter models.RecordFilter) ([]models.ApprovalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.ApplyRecordFilter(s.snapshotRecords(), filter), nil
}

func (s *InMemoryStore) CountRecords(_ context.Context, filter models.RecordFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, r := range s.records {
		if filter.Matches(r) {
			count++
		}
	}
	return count, nil
}

func (s *InMemoryStore) FindRecord(_ context.Context, recordID uuid.UUID) (*models.ApprovalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if r, ok := s.records[recordID]; ok {
		return &r, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindType(_ context.Context, code string) (*models.ApprovalType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.types[code]; ok {
		return &t, nil
	}
	return nil, sentinel.ErrNotFound
}

// ListTypes returns every approval type ordered by code.
func (s *InMemoryStore) ListTypes(_ context.Context) ([]models.ApprovalType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ApprovalType, 0, len(s.types))
	for _, t := range s.types {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b models.ApprovalType) int {
		return cmp.Compare(a.Code, b.Code)
	})
	return out, nil
}

func (s *InMemoryStore) QueryNodes(_ context.Context, filter models.NodeFilter) ([]models.ApprovalNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.ApplyNodeFilter(s.nodes, filter), nil
}

func (s *InMemoryStore) FindUser(_ context.Context, userID id.UserID) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[userID]; ok {
		return &u, nil
	}
	return nil, sentinel.ErrNotFound
}
