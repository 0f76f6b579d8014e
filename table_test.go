package trafficlight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable_ReferenceConfiguration(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t, uint64(3000), table.DurationOf(Red))
	assert.Equal(t, uint64(3000), table.DurationOf(Green))
	assert.Equal(t, uint64(1000), table.DurationOf(Yellow))

	assert.Equal(t, Green, table.SuccessorOf(Red))
	assert.Equal(t, Yellow, table.SuccessorOf(Green))
	assert.Equal(t, Red, table.SuccessorOf(Yellow))

	assert.Equal(t, 3*time.Second, table.Duration(Red))
	assert.Equal(t, uint64(7000), table.CycleDurationMS())
	assert.NoError(t, table.Validate())
}

func TestDefaultTable_WithinBounds(t *testing.T) {
	table := DefaultTable()
	for _, p := range Phases() {
		d := table.DurationOf(p)
		assert.GreaterOrEqual(t, d, MinDurationMS, p.String())
		assert.LessOrEqual(t, d, MaxDurationMS, p.String())
	}
	assert.Less(t, MinDurationMS, MaxDurationMS)
}

func TestTable_SuccessorIsNeverSelf(t *testing.T) {
	table := DefaultTable()
	for _, p := range Phases() {
		assert.NotEqual(t, p, table.SuccessorOf(p))
	}
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Table)
		code   ErrorCode
	}{
		{
			name:   "zero duration",
			mutate: func(tb *Table) { tb[Yellow].DurationMS = 0 },
			code:   ErrCodeInvalidDuration,
		},
		{
			name:   "below minimum",
			mutate: func(tb *Table) { tb[Red].DurationMS = MinDurationMS - 1 },
			code:   ErrCodeInvalidDuration,
		},
		{
			name:   "above maximum",
			mutate: func(tb *Table) { tb[Green].DurationMS = MaxDurationMS + 1 },
			code:   ErrCodeInvalidDuration,
		},
		{
			name:   "successor out of range",
			mutate: func(tb *Table) { tb[Green].Next = Phase(7) },
			code:   ErrCodeInvalidPhase,
		},
		{
			name:   "self transition",
			mutate: func(tb *Table) { tb[Yellow].Next = Yellow },
			code:   ErrCodeSelfTransition,
		},
		{
			name: "two-phase sub-cycle",
			mutate: func(tb *Table) {
				tb[Green].Next = Red
			},
			code: ErrCodeBrokenCycle,
		},
		{
			name: "cycle not through Red",
			mutate: func(tb *Table) {
				tb[Yellow].Next = Green
			},
			code: ErrCodeBrokenCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := DefaultTable()
			tt.mutate(&table)

			err := table.Validate()
			require.Error(t, err)
			assert.True(t, IsConfigurationError(err))
			assert.Equal(t, tt.code, GetErrorCode(err))
		})
	}
}

func TestTable_ReversedCycleIsValid(t *testing.T) {
	table := Table{
		Red:    {DurationMS: 2000, Next: Yellow},
		Yellow: {DurationMS: 500, Next: Green},
		Green:  {DurationMS: 2000, Next: Red},
	}
	assert.NoError(t, table.Validate())
}
