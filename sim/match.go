// Package sim implements a deterministic football match simulation engine.
// Given a seed, two team snapshots and a weather condition it produces a
// reproducible event log, aggregate statistics and a final score: the same
// inputs yield a byte-identical MatchResult on every call, on any platform.
package sim

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// HomeAdvantage is the fixed xG boost the home side enjoys.
const HomeAdvantage = 0.10

const (
	halfTimeMinute  = 45
	fullTimeMinute  = 90
	minStoppageTime = 1
	maxStoppageTime = 8
)

// Engine runs match simulations. A single Engine may be shared freely: each
// Simulate call owns all of its mutable state, so concurrent calls need no
// synchronization as long as callers do not mutate the team snapshots they
// pass in. The engine itself never writes to them.
type Engine struct {
	logger *log.Logger
}

// NewEngine creates a simulation engine. A nil logger discards the warnings
// emitted when an event is skipped over a missing roster.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{logger: logger}
}

// match carries everything one Simulate call needs: the immutable context and
// the single-owner mutable state.
type match struct {
	home    Team
	away    Team
	weather Weather

	homeAdvantage float64
	rng           *PRNG
	logger        *log.Logger

	// ratings are fixed for the whole match, so compute them once
	homeAttack   float64
	homeDefense  float64
	awayAttack   float64
	awayDefense  float64
	homeTendency float64
	awayTendency float64
	weatherFx    WeatherEffects

	state *simulationState
}

// Simulate plays a full match and returns its result. Weather defaults to
// clear. Identical (seed, home, away, weather) inputs produce identical
// results across calls and across processes.
func (e *Engine) Simulate(seed string, home, away Team, weather Weather) MatchResult {
	if weather == "" {
		weather = WeatherClear
	}

	m := &match{
		home:          home,
		away:          away,
		weather:       weather,
		homeAdvantage: HomeAdvantage,
		rng:           NewPRNG(StreamKey("match", seed, home.ID, away.ID)),
		logger:        e.logger,
		homeAttack:    CalculateAttackRating(home),
		homeDefense:   CalculateDefenseRating(home),
		awayAttack:    CalculateAttackRating(away),
		awayDefense:   CalculateDefenseRating(away),
		homeTendency:  CalculatePossessionTendency(home),
		awayTendency:  CalculatePossessionTendency(away),
		weatherFx:     GetWeatherEffects(weather),
		state:         newSimulationState(home, away),
	}

	for minute := 0; minute < halfTimeMinute; minute++ {
		m.simulateMinute(minute)
	}

	// Away side kicks off the second half
	m.state.possession = SideAway
	for minute := halfTimeMinute; minute < fullTimeMinute; minute++ {
		m.simulateMinute(minute)
	}

	stoppage := m.stoppageTime()
	m.state.boostIntensity(20)
	for tick := 0; tick < stoppage*ticksPerMinute; tick++ {
		m.state.minute = fullTimeMinute + tick/ticksPerMinute
		m.simulateTick()
	}

	return m.finalize(stoppage)
}

// stoppageTime adds minutes for goals, cards and injuries plus roughly a
// minute of referee discretion, clamped to [1, 8].
func (m *match) stoppageTime() int {
	added := 2.0
	added += 0.5 * float64(m.state.goals())
	added += 0.3 * float64(m.state.cards)
	added += float64(m.state.injuries)
	added += m.rng.Next()*2 - 1

	return clampInt(int(math.Round(added)), minStoppageTime, maxStoppageTime)
}

// finalize snapshots the state into an immutable result. Possession is
// normalized so both sides total 100 even after stoppage-time ticks accrued
// beyond the regulation allotment.
func (m *match) finalize(stoppage int) MatchResult {
	stats := m.state.stats

	total := stats.HomePossession + stats.AwayPossession
	if total > 0 {
		stats.HomePossession = stats.HomePossession / total * 100
		stats.AwayPossession = 100 - stats.HomePossession
	}

	return MatchResult{
		HomeScore: m.state.homeScore,
		AwayScore: m.state.awayScore,
		Stats:     stats,
		Events:    m.state.events,
		Duration:  fullTimeMinute + stoppage,
	}
}

func (m *match) team(side Side) Team {
	if side == SideHome {
		return m.home
	}
	return m.away
}

// facingRatings returns the attacking side's attack rating and the defending
// side's defense rating.
func (m *match) facingRatings(attacking Side) (attack, defense float64) {
	if attacking == SideHome {
		return m.homeAttack, m.awayDefense
	}
	return m.awayAttack, m.homeDefense
}
