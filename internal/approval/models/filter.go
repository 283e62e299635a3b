package models

import (
	"cmp"
	"slices"
	"time"

	id "approvaldash/pkg/domain"
)

// Order selects the result ordering of a query.
type Order int

const (
	OrderNone Order = iota
	OrderCreatedAsc
	OrderCreatedDesc
)

// RecordFilter is the typed predicate accepted by record queries and counts.
// Zero-valued fields do not constrain the result, so a zero InitiatorID spans
// every user. Per-user callers must reject the zero id before querying.
type RecordFilter struct {
	InitiatorID id.UserID
	Statuses    []Status
	TypeCode    string
	// CreatedFrom and CreatedTo bound the creation time, both inclusive.
	CreatedFrom      time.Time
	CreatedTo        time.Time
	RequireCompleted bool
	Order            Order
	Limit            int
}

// Matches reports whether r satisfies every constraint of the filter.
// Order and Limit are applied by the caller.
func (f RecordFilter) Matches(r ApprovalRecord) bool {
	if !f.InitiatorID.IsNil() && r.InitiatorID != f.InitiatorID {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, r.Status) {
		return false
	}
	if f.TypeCode != "" && r.TypeCode != f.TypeCode {
		return false
	}
	if !f.CreatedFrom.IsZero() && r.CreatedAt.Before(f.CreatedFrom) {
		return false
	}
	if !f.CreatedTo.IsZero() && r.CreatedAt.After(f.CreatedTo) {
		return false
	}
	if f.RequireCompleted {
		if _, ok := r.ProcessDuration(); !ok {
			return false
		}
	}
	return true
}

// NodeFilter is the typed predicate accepted by node queries. A zero
// ApproverID spans every approver.
type NodeFilter struct {
	ApproverID id.UserID
	Statuses   []NodeStatus
	Order      Order
	Limit      int
}

func (f NodeFilter) Matches(n ApprovalNode) bool {
	if !f.ApproverID.IsNil() && n.ApproverID != f.ApproverID {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, n.Status) {
		return false
	}
	return true
}

// ApplyRecordFilter filters, orders and limits records in memory. Ties on
// creation time are broken by id so results are deterministic.
func ApplyRecordFilter(records []ApprovalRecord, f RecordFilter) []ApprovalRecord {
	out := make([]ApprovalRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	switch f.Order {
	case OrderCreatedAsc:
		slices.SortFunc(out, func(a, b ApprovalRecord) int {
			if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
				return c
			}
			return cmp.Compare(a.ID.String(), b.ID.String())
		})
	case OrderCreatedDesc:
		slices.SortFunc(out, func(a, b ApprovalRecord) int {
			if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
				return c
			}
			return cmp.Compare(a.ID.String(), b.ID.String())
		})
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// ApplyNodeFilter is the node counterpart of ApplyRecordFilter.
func ApplyNodeFilter(nodes []ApprovalNode, f NodeFilter) []ApprovalNode {
	out := make([]ApprovalNode, 0, len(nodes))
	for _, n := range nodes {
		if f.Matches(n) {
			out = append(out, n)
		}
	}
	switch f.Order {
	case OrderCreatedAsc:
		slices.SortFunc(out, func(a, b ApprovalNode) int {
			if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
	case OrderCreatedDesc:
		slices.SortFunc(out, func(a, b ApprovalNode) int {
			if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}
