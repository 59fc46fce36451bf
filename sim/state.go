package sim

// simulationState is the mutable per-match record. It is created fresh for
// every Simulate call, owned exclusively by that call, and discarded once the
// MatchResult is built.
type simulationState struct {
	minute     int
	homeScore  int
	awayScore  int
	possession Side
	intensity  int // 20-100
	momentum   int // -100 (away) to 100 (home)
	stamina    map[string]float64
	events     []MatchEvent
	stats      MatchStats

	// stoppage-time inputs
	cards    int
	injuries int
}

func newSimulationState(home, away Team) *simulationState {
	stamina := make(map[string]float64, len(home.Players)+len(away.Players))
	for _, p := range home.Players {
		stamina[p.ID] = p.Stamina
	}
	for _, p := range away.Players {
		stamina[p.ID] = p.Stamina
	}

	return &simulationState{
		possession: SideHome,
		intensity:  50,
		momentum:   0,
		stamina:    stamina,
		events:     []MatchEvent{},
	}
}

func (s *simulationState) goals() int {
	return s.homeScore + s.awayScore
}

func (s *simulationState) addEvent(eventType EventType, team Side, player, description string, xg float64) {
	s.events = append(s.events, MatchEvent{
		Minute:      s.minute,
		Type:        eventType,
		Team:        team,
		Player:      player,
		Description: description,
		XG:          xg,
	})
}

// swingMomentum moves momentum toward a side. Positive momentum favours the
// home team.
func (s *simulationState) swingMomentum(toward Side, amount int) {
	if toward == SideHome {
		s.momentum += amount
	} else {
		s.momentum -= amount
	}
	s.momentum = clampInt(s.momentum, -100, 100)
}

func (s *simulationState) boostIntensity(amount int) {
	s.intensity = clampInt(s.intensity+amount, 20, 100)
}

// updateIntensity runs once per simulated minute.
func (s *simulationState) updateIntensity(rng *PRNG) {
	if s.minute > 60 {
		s.intensity++
	}

	scoreDiff := s.homeScore - s.awayScore
	if scoreDiff < 0 {
		scoreDiff = -scoreDiff
	}
	if scoreDiff <= 1 {
		s.intensity += 2
	}
	if scoreDiff >= 3 {
		// One-sided games go flat
		s.intensity--
		if s.intensity < 30 {
			s.intensity = 30
		}
	}

	s.intensity += rng.intn(-2, 3)
	s.intensity = clampInt(s.intensity, 20, 100)
}

// drainPlayerStamina reduces a player's tracked stamina, floored at zero.
func (s *simulationState) drainPlayerStamina(playerID string, amount float64) {
	remaining := s.stamina[playerID] - amount
	if remaining < 0 {
		remaining = 0
	}
	s.stamina[playerID] = remaining
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
