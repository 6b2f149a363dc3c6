package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AnshRaj112/life-reset-backend/internal/apperrors"
	"github.com/AnshRaj112/life-reset-backend/internal/database"
)

const (
	// storeTimeout bounds every store call on top of the request context.
	storeTimeout = 5 * time.Second
	// DailyLogListLimit caps daily log listings to roughly a month.
	DailyLogListLimit = 30

	dateLayout = "2006-01-02"
)

// RecordStore persists every record kind in one relational database.
// It is safe for concurrent use; the *sql.DB pool is its only state.
type RecordStore struct {
	db     *sql.DB
	driver string
	now    func() time.Time
	newID  func() string
}

// NewRecordStore wraps an opened database. driver selects the placeholder
// style (database.DriverPostgres or database.DriverSQLite).
func NewRecordStore(db *sql.DB, driver string) *RecordStore {
	return &RecordStore{
		db:     db,
		driver: driver,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Ping reports whether the store is reachable.
func (s *RecordStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *RecordStore) timestamp() time.Time {
	// Postgres keeps microseconds; truncating keeps returned and stored values equal.
	return s.now().UTC().Truncate(time.Microsecond)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
}

// scanTime reads a timestamp column whether the driver returns time.Time
// (lib/pq) or its text form (sqlite).
type scanTime struct{ t *time.Time }

func (s scanTime) Scan(src interface{}) error {
	var text string
	switch v := src.(type) {
	case time.Time:
		*s.t = v.UTC()
		return nil
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return fmt.Errorf("scan timestamp: unsupported type %T", src)
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			*s.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("scan timestamp: unrecognized format %q", text)
}

// assignments collects the columns an update will overwrite.
type assignments struct {
	cols []string
	args []interface{}
}

func (a *assignments) set(col string, v interface{}) {
	a.cols = append(a.cols, col+" = ?")
	a.args = append(a.args, v)
}

func storeError(op string, err error) error {
	return apperrors.Upstream("Internal server error", fmt.Errorf("%s: %w", op, err))
}

func requireUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.Validation("User ID is required")
	}
	return nil
}

// normalizeDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the
// calendar day.
func normalizeDate(label, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperrors.Validation(label + " is required")
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t.Format(dateLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Format(dateLayout), nil
	}
	return "", apperrors.Validation(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", label))
}

func (s *RecordStore) exec(ctx context.Context, op, query string, args ...interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if _, err := s.db.ExecContext(ctx, database.Rebind(s.driver, query), args...); err != nil {
		return storeError(op, err)
	}
	return nil
}

func queryAll[T any](ctx context.Context, s *RecordStore, op string, scan func(rowScanner) (T, error), query string, args ...interface{}) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, database.Rebind(s.driver, query), args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, storeError(op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(op, err)
	}
	return out, nil
}

func queryOne[T any](ctx context.Context, s *RecordStore, op, notFound string, scan func(rowScanner) (T, error), query string, args ...interface{}) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	v, err := scan(s.db.QueryRowContext(ctx, database.Rebind(s.driver, query), args...))
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, apperrors.NotFound(notFound)
		}
		return zero, storeError(op, err)
	}
	return v, nil
}

// updateOne applies set to the row with id and returns the row as stored.
// With nothing to set it only reads the row, so a missing id still reports
// not found.
func updateOne[T any](ctx context.Context, s *RecordStore, op, table, columns, id string, set assignments, notFound string, scan func(rowScanner) (T, error)) (T, error) {
	if strings.TrimSpace(id) == "" {
		var zero T
		return zero, apperrors.Validation("ID is required")
	}

	if len(set.cols) == 0 {
		return queryOne(ctx, s, op, notFound, scan,
			`SELECT `+columns+` FROM `+table+` WHERE id = ?`, id)
	}

	args := append(set.args, id)
	return queryOne(ctx, s, op, notFound, scan,
		`UPDATE `+table+` SET `+strings.Join(set.cols, ", ")+` WHERE id = ? RETURNING `+columns, args...)
}
