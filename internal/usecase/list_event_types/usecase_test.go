package list_event_types

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
	"github.com/m04kA/SMC-SchedulingAssistant/pkg/logger"
)

type fakeCalendar struct {
	types []domain.EventType
	err   error
}

func (f fakeCalendar) ListEventTypes(context.Context) ([]domain.EventType, error) {
	return f.types, f.err
}

func TestExecute(t *testing.T) {
	types := []domain.EventType{
		{ID: 2886675, Title: "15 min meeting", LengthMinutes: 15},
		{ID: 2886676, Title: "30 min meeting", LengthMinutes: 30},
	}
	uc := NewUseCase(fakeCalendar{types: types}, logger.NewNop())

	got, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, types, got)
}

func TestExecute_Error(t *testing.T) {
	uc := NewUseCase(fakeCalendar{err: errors.New("boom")}, logger.NewNop())

	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrCalendar)
}
