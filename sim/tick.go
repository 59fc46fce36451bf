package sim

const (
	ticksPerMinute  = 4
	regulationTicks = 90 * ticksPerMinute

	baseEventProbability = 0.15
	maxEventProbability  = 0.4

	possessionRerollChance = 0.10
)

// simulateMinute runs the four 15-second ticks of one minute and then applies
// the per-minute intensity update.
func (m *match) simulateMinute(minute int) {
	m.state.minute = minute
	for tick := 0; tick < ticksPerMinute; tick++ {
		m.simulateTick()
	}
	m.state.updateIntensity(m.rng)
}

// simulateTick is one 15-second slice of play. The order of the draws below
// is fixed; reordering them changes every seeded result.
func (m *match) simulateTick() {
	if m.rng.Next() < m.eventProbability() {
		m.generateEvent()
	}

	if m.rng.Next() < possessionRerollChance {
		m.state.possession = m.rollPossession()
	}

	m.accrueTickStats()
	m.drainStamina()
}

// eventProbability scales the base chance by how lively the game is.
func (m *match) eventProbability() float64 {
	probability := baseEventProbability
	probability *= 0.5 + float64(m.state.intensity)/100

	if m.state.minute > 80 {
		probability *= 1.3
	}
	if m.state.minute < 10 {
		probability *= 1.1
	}

	momentum := m.state.momentum
	if momentum < 0 {
		momentum = -momentum
	}
	probability *= 1 + float64(momentum)/200

	if m.weather != WeatherClear {
		probability *= 1.1
	}

	if probability > maxEventProbability {
		probability = maxEventProbability
	}
	return probability
}

// rollPossession re-decides who has the ball from the teams' possession
// tendencies, with a small bias toward whichever side carries the momentum.
func (m *match) rollPossession() Side {
	homeShare := m.homeTendency / (m.homeTendency + m.awayTendency)
	homeShare += float64(m.state.momentum) * 0.0005

	if m.rng.Next() < homeShare {
		return SideHome
	}
	return SideAway
}

// accrueTickStats credits possession time and passing to the side on the ball.
func (m *match) accrueTickStats() {
	possessionSlice := 100.0 / float64(regulationTicks)
	if m.state.possession == SideHome {
		m.state.stats.HomePossession += possessionSlice
	} else {
		m.state.stats.AwayPossession += possessionSlice
	}

	attempts := m.rng.intn(0, 3)
	if attempts == 0 {
		return
	}

	accuracy := 0.8 * m.weatherFx.PassingAccuracy
	successful := float64(attempts) * accuracy

	stats := &m.state.stats
	if m.state.possession == SideHome {
		stats.HomePasses += attempts
		stats.HomePassAccuracy = runningPassAccuracy(
			stats.HomePassAccuracy, stats.HomePasses, attempts, successful)
	} else {
		stats.AwayPasses += attempts
		stats.AwayPassAccuracy = runningPassAccuracy(
			stats.AwayPassAccuracy, stats.AwayPasses, attempts, successful)
	}
}

// runningPassAccuracy folds one tick's passing into the running average.
// total already includes this tick's attempts, so on the first contributing
// tick the prior average carries zero weight and no division by zero occurs.
func runningPassAccuracy(prior float64, total, attempts int, successful float64) float64 {
	tickAccuracy := successful / float64(attempts) * 100
	priorWeight := float64(total - attempts)
	return (prior*priorWeight + tickAccuracy*float64(attempts)) / float64(total)
}

// drainStamina charges every player on both rosters once per tick, in roster
// order so the draw sequence is stable.
func (m *match) drainStamina() {
	homeDrain := CalculateStaminaDrain(m.home, m.state.minute, m.state.intensity)
	for _, p := range m.home.Players {
		m.state.drainPlayerStamina(p.ID, homeDrain*(0.8+m.rng.Next()*0.4))
	}

	awayDrain := CalculateStaminaDrain(m.away, m.state.minute, m.state.intensity)
	for _, p := range m.away.Players {
		m.state.drainPlayerStamina(p.ID, awayDrain*(0.8+m.rng.Next()*0.4))
	}
}
