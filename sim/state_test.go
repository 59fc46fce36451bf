package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwingMomentumClamps(t *testing.T) {
	s := newSimulationState(testTeam("CAP", 70), testTeam("GAL", 70))

	for i := 0; i < 10; i++ {
		s.swingMomentum(SideHome, 20)
	}
	assert.Equal(t, 100, s.momentum)

	for i := 0; i < 20; i++ {
		s.swingMomentum(SideAway, 20)
	}
	assert.Equal(t, -100, s.momentum)
}

func TestBoostIntensityClamps(t *testing.T) {
	s := newSimulationState(testTeam("CAP", 70), testTeam("GAL", 70))

	s.boostIntensity(100)
	assert.Equal(t, 100, s.intensity)

	s.boostIntensity(-200)
	assert.Equal(t, 20, s.intensity)
}

func TestUpdateIntensityStaysInBounds(t *testing.T) {
	rng := NewPRNG("intensity-bounds")
	s := newSimulationState(testTeam("CAP", 70), testTeam("GAL", 70))

	for minute := 0; minute < 500; minute++ {
		s.minute = minute
		s.updateIntensity(rng)
		assert.GreaterOrEqual(t, s.intensity, 20)
		assert.LessOrEqual(t, s.intensity, 100)
	}
}

func TestDrainPlayerStaminaFloorsAtZero(t *testing.T) {
	home := testTeam("CAP", 70)
	s := newSimulationState(home, testTeam("GAL", 70))

	id := home.Players[0].ID
	s.drainPlayerStamina(id, 5)
	assert.Equal(t, home.Players[0].Stamina-5, s.stamina[id])

	s.drainPlayerStamina(id, 10000)
	assert.Zero(t, s.stamina[id])
}

func TestRunningPassAccuracyFirstTick(t *testing.T) {
	// First contributing tick: total equals this tick's attempts, so the
	// prior average carries zero weight.
	got := runningPassAccuracy(0, 2, 2, 1.6)
	assert.InDelta(t, 80.0, got, 1e-9)

	// Second tick folds into the running average by attempt weight.
	got = runningPassAccuracy(80, 4, 2, 1.2)
	assert.InDelta(t, 70.0, got, 1e-9)
}
