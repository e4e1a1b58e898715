package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor общий интерфейс для *sql.DB и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// QueryObserver получатель метрик запросов
type QueryObserver interface {
	ObserveDBQuery(operation, status string, duration time.Duration)
}

// DB обертка над *sql.DB, замеряющая длительность каждого запроса
type DB struct {
	db       DBExecutor
	observer QueryObserver
}

// Wrap оборачивает соединение
func Wrap(db DBExecutor, observer QueryObserver) *DB {
	return &DB{db: db, observer: observer}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", err, start)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", err, start)
	return rows, err
}

func (d *DB) observe(operation string, err error, start time.Time) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.observer.ObserveDBQuery(operation, status, time.Since(start))
}
