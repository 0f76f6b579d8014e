package trafficlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, On, LevelOf(true))
	assert.Equal(t, Off, LevelOf(false))
	assert.True(t, On.Bool())
	assert.False(t, Off.Bool())
	assert.Equal(t, Off, On.Invert())
	assert.Equal(t, On, Off.Invert().Invert().Invert())
	assert.Equal(t, "On", On.String())
	assert.Equal(t, "Off", Off.String())
}

func TestLevelFor(t *testing.T) {
	for _, current := range Phases() {
		for _, target := range Phases() {
			assert.Equal(t, current == target, LevelFor(current, target).Bool(),
				"current %s target %s", current, target)
		}
	}
}
