package dbmetrics

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	err   error
	query string
	args  []interface{}
}

func (f *fakeExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.query = query
	f.args = args
	return nil, f.err
}

func (f *fakeExecutor) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	f.query = query
	return nil, f.err
}

type observed struct {
	operation string
	status    string
}

type fakeObserver struct {
	calls []observed
}

func (f *fakeObserver) ObserveDBQuery(operation, status string, _ time.Duration) {
	f.calls = append(f.calls, observed{operation, status})
}

func TestDB_ObservesEveryQuery(t *testing.T) {
	exec := &fakeExecutor{}
	obs := &fakeObserver{}
	db := Wrap(exec, obs)

	_, err := db.ExecContext(context.Background(), "UPDATE t SET a = $1", 1)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE t SET a = $1", exec.query)
	assert.Equal(t, []interface{}{1}, exec.args)

	exec.err = errors.New("boom")
	_, err = db.QueryContext(context.Background(), "SELECT 1")
	require.Error(t, err)

	assert.Equal(t, []observed{{"exec", "ok"}, {"query", "error"}}, obs.calls)
}
