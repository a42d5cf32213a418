package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSavingsAccumulates(t *testing.T) {
	g := Goal{TargetAmount: 1000}
	g.AddSavings(200)
	g.AddSavings(300)
	assert.Equal(t, 500.0, g.SavedAmount)
	assert.False(t, g.IsCompleted)
}

func TestAddSavingsCompletesAtTarget(t *testing.T) {
	g := Goal{TargetAmount: 500, SavedAmount: 450}
	g.AddSavings(50)
	assert.True(t, g.IsCompleted)
}

func TestCompletionIsOneWay(t *testing.T) {
	g := Goal{TargetAmount: 500, SavedAmount: 600, IsCompleted: true}
	// A later decrease below the target must not clear the flag.
	g.SavedAmount = 100
	g.AddSavings(50)
	assert.True(t, g.IsCompleted)
	assert.Equal(t, 150.0, g.SavedAmount)
}
