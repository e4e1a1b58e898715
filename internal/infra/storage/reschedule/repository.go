package reschedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/pkg/psqlbuilder"
)

const table = "reschedule_attempts"

var columns = []string{
	"id",
	"booking_id",
	"booking_title",
	"event_type_id",
	"old_start",
	"new_date",
	"new_time",
	"new_booking_id",
	"state",
	"failure_reason",
	"created_at",
	"updated_at",
}

// Repository журнал попыток переноса встреч в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую попытку
func (r *Repository) Create(ctx context.Context, attempt *domain.RescheduleAttempt) error {
	query, args, err := buildInsert(attempt)
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// UpdateState сохраняет текущее состояние попытки
func (r *Repository) UpdateState(ctx context.Context, attempt *domain.RescheduleAttempt) error {
	query, args, err := buildUpdate(attempt)
	if err != nil {
		return fmt.Errorf("%w: UpdateState - build update query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateState - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateState - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAttemptNotFound
	}

	return nil
}

// ListByBooking возвращает все попытки переноса встречи, от старых к новым
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.RescheduleAttempt, error) {
	query, args, err := buildSelectByBooking(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	attempts := make([]domain.RescheduleAttempt, 0)
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBooking: %v", ErrScanRow, err)
		}
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - rows iteration: %v", ErrScanRow, err)
	}

	return attempts, nil
}

func buildInsert(a *domain.RescheduleAttempt) (string, []interface{}, error) {
	return psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			a.ID,
			a.BookingID,
			a.BookingTitle,
			a.EventTypeID,
			a.OldStart,
			a.NewDate,
			a.NewTime.Clock(),
			a.NewBookingID,
			string(a.State),
			a.FailureReason,
			a.CreatedAt,
			a.UpdatedAt,
		).
		ToSql()
}

func buildUpdate(a *domain.RescheduleAttempt) (string, []interface{}, error) {
	return psqlbuilder.Update(table).
		Set("state", string(a.State)).
		Set("new_booking_id", a.NewBookingID).
		Set("failure_reason", a.FailureReason).
		Set("updated_at", a.UpdatedAt).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
}

func buildSelectByBooking(bookingID int64) (string, []interface{}, error) {
	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at ASC").
		ToSql()
}

func scanAttempt(rows *sql.Rows) (domain.RescheduleAttempt, error) {
	var (
		a            domain.RescheduleAttempt
		id           uuid.UUID
		newTime      string
		state        string
		newBookingID sql.NullInt64
	)

	err := rows.Scan(
		&id,
		&a.BookingID,
		&a.BookingTitle,
		&a.EventTypeID,
		&a.OldStart,
		&a.NewDate,
		&newTime,
		&newBookingID,
		&state,
		&a.FailureReason,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return a, err
	}

	a.ID = id
	a.State = domain.RescheduleState(state)
	if newBookingID.Valid {
		a.NewBookingID = &newBookingID.Int64
	}

	var hour, minute int
	if _, err := fmt.Sscanf(newTime, "%d:%d", &hour, &minute); err != nil {
		return a, fmt.Errorf("new_time %q: %v", newTime, err)
	}
	a.NewTime = domain.CanonicalTime{Hour: hour, Minute: minute}

	return a, nil
}
