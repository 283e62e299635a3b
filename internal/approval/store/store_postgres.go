package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"approvaldash/internal/approval/models"
	id "approvaldash/pkg/domain"
	"approvaldash/pkg/platform/sentinel"
)

//go:embed schema.sql
var schema string

const recordColumns = `id, initiator_id, type_code, title, status, priority, created_at, updated_at, completed_at`

// PostgresStore reads approval entities from PostgreSQL. It never writes;
// Migrate exists for local development and integration tests.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Open connects to databaseURL with the lib/pq driver and verifies the connection.
func Open(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping postgres: %v", sentinel.ErrUnavailable, err)
	}
	return db, nil
}

// Migrate applies the embedded schema. Statements are idempotent.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// whereBuilder accumulates AND-ed predicates with positional placeholders.
type whereBuilder struct {
	clauses []string
	args    []any
}

func (b *whereBuilder) add(clause string, arg any) {
	b.args = append(b.args, arg)
	b.clauses = append(b.clauses, fmt.Sprintf(clause, len(b.args)))
}

func (b *whereBuilder) addRaw(clause string) {
	b.clauses = append(b.clauses, clause)
}

func (b *whereBuilder) String() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

func (b *whereBuilder) limit(n int) string {
	if n <= 0 {
		return ""
	}
	b.args = append(b.args, n)
	return fmt.Sprintf(" LIMIT $%d", len(b.args))
}

func recordWhere(f models.RecordFilter) *whereBuilder {
	b := &whereBuilder{}
	if !f.InitiatorID.IsNil() {
		b.add("initiator_id = $%d", int64(f.InitiatorID))
	}
	if len(f.Statuses) > 0 {
		statuses := make([]int64, len(f.Statuses))
		for i, st := range f.Statuses {
			statuses[i] = int64(st)
		}
		b.add("status = ANY($%d)", pq.Array(statuses))
	}
	if f.TypeCode != "" {
		b.add("type_code = $%d", f.TypeCode)
	}
	if !f.CreatedFrom.IsZero() {
		b.add("created_at >= $%d", f.CreatedFrom)
	}
	if !f.CreatedTo.IsZero() {
		b.add("created_at <= $%d", f.CreatedTo)
	}
	if f.RequireCompleted {
		b.addRaw("completed_at IS NOT NULL")
	}
	return b
}

func orderClause(o models.Order, tieBreaker string) string {
	switch o {
	case models.OrderCreatedAsc:
		return " ORDER BY created_at ASC, " + tieBreaker
	case models.OrderCreatedDesc:
		return " ORDER BY created_at DESC, " + tieBreaker
	default:
		return ""
	}
}

func (s *PostgresStore) QueryRecords(ctx context.Context, filter models.RecordFilter) ([]models.ApprovalRecord, error) {
	b := recordWhere(filter)
	query := "SELECT " + recordColumns + " FROM approval_record" + b.String() +
		orderClause(filter.Order, "id")
	query += b.limit(filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("query approval records: %w", err)
	}
	defer rows.Close()

	var out []models.ApprovalRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate approval records: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CountRecords(ctx context.Context, filter models.RecordFilter) (int, error) {
	b := recordWhere(filter)
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM approval_record"+b.String(), b.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count approval records: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) FindRecord(ctx context.Context, recordID uuid.UUID) (*models.ApprovalRecord, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM approval_record WHERE id = $1", recordID)
	r, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *PostgresStore) FindType(ctx context.Context, code string) (*models.ApprovalType, error) {
	row := s.db.QueryRowContext(ctx, `SELECT code, name, icon, color FROM approval_type WHERE code = $1`, code)
	t, err := scanType(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *PostgresStore) ListTypes(ctx context.Context) ([]models.ApprovalType, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT code, name, icon, color FROM approval_type ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list approval types: %w", err)
	}
	defer rows.Close()

	var out []models.ApprovalType
	for rows.Next() {
		t, err := scanType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate approval types: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) QueryNodes(ctx context.Context, filter models.NodeFilter) ([]models.ApprovalNode, error) {
	b := &whereBuilder{}
	if !filter.ApproverID.IsNil() {
		b.add("approver_id = $%d", int64(filter.ApproverID))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]int64, len(filter.Statuses))
		for i, st := range filter.Statuses {
			statuses[i] = int64(st)
		}
		b.add("status = ANY($%d)", pq.Array(statuses))
	}
	query := "SELECT id, approval_id, approver_id, status, created_at FROM approval_node" + b.String() +
		orderClause(filter.Order, "id")
	query += b.limit(filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("query approval nodes: %w", err)
	}
	defer rows.Close()

	var out []models.ApprovalNode
	for rows.Next() {
		var (
			n          models.ApprovalNode
			approverID int64
			status     int64
		)
		if err := rows.Scan(&n.ID, &n.ApprovalID, &approverID, &status, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan approval node: %w", err)
		}
		n.ApproverID = id.UserID(approverID)
		n.Status = models.NodeStatus(status)
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate approval nodes: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) FindUser(ctx context.Context, userID id.UserID) (*models.UserProfile, error) {
	var (
		u        models.UserProfile
		rawID    int64
		nickname sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `SELECT id, username, nickname FROM sys_user WHERE id = $1`, int64(userID)).
		Scan(&rawID, &u.Username, &nickname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u.ID = id.UserID(rawID)
	u.Nickname = nickname.String
	return &u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.ApprovalRecord, error) {
	var (
		r           models.ApprovalRecord
		initiatorID int64
		status      int64
		priority    int64
		completedAt sql.NullTime
	)
	err := row.Scan(&r.ID, &initiatorID, &r.TypeCode, &r.Title, &status, &priority,
		&r.CreatedAt, &r.UpdatedAt, &completedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan approval record: %w", err)
	}
	r.InitiatorID = id.UserID(initiatorID)
	r.Status = models.Status(status)
	r.Priority = models.Priority(priority)
	if completedAt.Valid {
		t := completedAt.Time
		r.CompletedAt = &t
	}
	return &r, nil
}

func scanType(row rowScanner) (*models.ApprovalType, error) {
	var (
		t     models.ApprovalType
		icon  sql.NullString
		color sql.NullString
	)
	if err := row.Scan(&t.Code, &t.Name, &icon, &color); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan approval type: %w", err)
	}
	t.Icon = icon.String
	t.Color = color.String
	return &t, nil
}
