package timeexpr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingAssistant/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want domain.CanonicalTime
	}{
		{"2:30 pm", domain.CanonicalTime{Hour: 14, Minute: 30}},
		{"2:30PM", domain.CanonicalTime{Hour: 14, Minute: 30}},
		{"  11:15 am ", domain.CanonicalTime{Hour: 11, Minute: 15}},
		{"12:00 AM", domain.CanonicalTime{Hour: 0, Minute: 0}},
		{"12:45 pm", domain.CanonicalTime{Hour: 12, Minute: 45}},
		{"3pm", domain.CanonicalTime{Hour: 15}},
		{"3 PM", domain.CanonicalTime{Hour: 15}},
		{"12am", domain.CanonicalTime{Hour: 0}},
		{"14:00", domain.CanonicalTime{Hour: 14}},
		{"23:59", domain.CanonicalTime{Hour: 23, Minute: 59}},
		{"9:30", domain.CanonicalTime{Hour: 9, Minute: 30}},
		{"4:30", domain.CanonicalTime{Hour: 16, Minute: 30}},
		{"2:30", domain.CanonicalTime{Hour: 14, Minute: 30}},
		{"00:15", domain.CanonicalTime{Hour: 0, Minute: 15}},
		{"9", domain.CanonicalTime{Hour: 9}},
		{"3", domain.CanonicalTime{Hour: 15}},
		{"12", domain.CanonicalTime{Hour: 12}},
		{"0", domain.CanonicalTime{Hour: 0}},
		{"7", domain.CanonicalTime{Hour: 7}},
		{"6", domain.CanonicalTime{Hour: 18}},
		{"18", domain.CanonicalTime{Hour: 18}},
		{"3pm tomorrow", domain.CanonicalTime{Hour: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Failures(t *testing.T) {
	inputs := []string{"", "   ", "noon", "at 3pm", "25:00", "24", "10:75", "13pm", "0am"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnrecognized))

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, in, pe.Passthrough())
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 15, 59} {
			ct := domain.CanonicalTime{Hour: hour, Minute: minute}

			fromHuman, err := Parse(ct.String())
			require.NoError(t, err, ct.String())
			assert.Equal(t, ct, fromHuman)

			fromClock, err := Parse(ct.Clock())
			require.NoError(t, err, ct.Clock())
			if hour > 12 || hour == 0 || hour == 12 || (hour >= 7 && hour <= 11) {
				assert.Equal(t, ct, fromClock, ct.Clock())
			}
		}
	}
}

func TestParser_Method(t *testing.T) {
	got, err := NewParser().Parse("10am")
	require.NoError(t, err)
	assert.Equal(t, "10:00 AM", got.String())
}
