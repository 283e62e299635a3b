package dashboard

import (
	"context"
	"errors"
	"fmt"

	"approvaldash/internal/approval/models"
	"approvaldash/internal/dashboard/ports"
	"approvaldash/pkg/platform/sentinel"
)

// typeLookup memoises type lookups for the duration of one builder call.
// A nil entry records a known miss.
type typeLookup struct {
	store ports.TypeStore
	seen  map[string]*models.ApprovalType
}

func newTypeLookup(store ports.TypeStore) *typeLookup {
	return &typeLookup{store: store, seen: make(map[string]*models.ApprovalType)}
}

// find returns nil without error when the code is unknown.
func (l *typeLookup) find(ctx context.Context, code string) (*models.ApprovalType, error) {
	if t, ok := l.seen[code]; ok {
		return t, nil
	}
	t, err := l.store.FindType(ctx, code)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, fmt.Errorf("find approval type %q: %w", code, err)
		}
		t = nil
	}
	l.seen[code] = t
	return t, nil
}

// name returns the display name, or the code itself when the type is unknown.
func (l *typeLookup) name(ctx context.Context, code string) (string, error) {
	t, err := l.find(ctx, code)
	if err != nil {
		return "", err
	}
	if t == nil {
		return code, nil
	}
	return t.Name, nil
}

// typeIndex loads every type keyed by code.
func typeIndex(ctx context.Context, store ports.TypeStore) (map[string]models.ApprovalType, error) {
	types, err := store.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list approval types: %w", err)
	}
	index := make(map[string]models.ApprovalType, len(types))
	for _, t := range types {
		index[t.Code] = t
	}
	return index, nil
}
