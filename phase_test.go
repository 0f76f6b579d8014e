package trafficlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "Red", Red.String())
	assert.Equal(t, "Yellow", Yellow.String())
	assert.Equal(t, "Green", Green.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
}

func TestPhase_Valid(t *testing.T) {
	for _, p := range Phases() {
		assert.True(t, p.Valid(), p.String())
	}
	assert.False(t, Phase(3).Valid())
}

func TestPhases_ReferenceOrder(t *testing.T) {
	assert.Equal(t, []Phase{Red, Green, Yellow}, Phases())
}

func TestParsePhase(t *testing.T) {
	tests := []struct {
		input string
		want  Phase
	}{
		{"red", Red},
		{"YELLOW", Yellow},
		{" Green ", Green},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePhase(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}

	_, err := ParsePhase("blue")
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidPhase, GetErrorCode(err))
}
