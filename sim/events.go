package sim

import "fmt"

type eventKind int

const (
	eventShot eventKind = iota
	eventChance
	eventFoul
	eventInjury
	eventCorner
	eventNothing
	eventKindCount
)

// eventOrder is the fixed enumeration used by weighted selection. The order
// decides which category wins when a roll lands on a weight boundary, so it
// is part of the engine's determinism contract.
var eventOrder = [eventKindCount]eventKind{
	eventShot, eventChance, eventFoul, eventInjury, eventCorner, eventNothing,
}

var eventHandlers = map[eventKind]func(*match){
	eventShot:    func(m *match) { m.resolveShot(ShotOpenPlay) },
	eventChance:  (*match).handleChance,
	eventFoul:    (*match).handleFoul,
	eventInjury:  (*match).handleInjury,
	eventCorner:  (*match).handleCorner,
	eventNothing: func(m *match) {},
}

// eventWeights computes the per-category weights for the current tick.
func (m *match) eventWeights() [eventKindCount]float64 {
	weights := [eventKindCount]float64{
		eventShot:    20,
		eventChance:  15,
		eventFoul:    10,
		eventInjury:  1,
		eventCorner:  8,
		eventNothing: 46,
	}

	attack, defense := m.facingRatings(m.state.possession)
	advantage := attack - defense
	if advantage > 20 {
		weights[eventShot] += 10
		weights[eventChance] += 5
	} else if advantage < -20 {
		weights[eventShot] -= 5
		weights[eventFoul] += 5
	}

	if m.state.minute > 80 {
		weights[eventShot] += 5
		weights[eventFoul] += 3
	}

	if m.weather == WeatherRain || m.weather == WeatherSnow {
		weights[eventFoul] += 3
		weights[eventShot] -= 2
	}

	return weights
}

// pickEventKind walks the fixed enumeration order subtracting weights until
// the roll is used up.
func pickEventKind(roll float64, weights [eventKindCount]float64) eventKind {
	remaining := roll
	for _, kind := range eventOrder {
		remaining -= weights[kind]
		if remaining <= 0 {
			return kind
		}
	}
	return eventNothing
}

func (m *match) generateEvent() {
	weights := m.eventWeights()

	total := 0.0
	for _, kind := range eventOrder {
		total += weights[kind]
	}

	kind := pickEventKind(m.rng.Next()*total, weights)
	eventHandlers[kind](m)
}

// resolveShot plays out a shot for the side in possession. Possession always
// switches to the defending side afterwards, whatever the outcome.
func (m *match) resolveShot(shotType string) {
	attacking := m.state.possession
	team := m.team(attacking)

	shooter, ok := m.pickShooter(team)
	if !ok {
		m.logger.Warn("skipping shot, team has no players", "team", team.Name)
		return
	}

	xg := m.expectedGoals(attacking, shotType)
	if attacking == SideHome {
		m.state.stats.HomeShots++
		m.state.stats.HomeXG += xg
	} else {
		m.state.stats.AwayShots++
		m.state.stats.AwayXG += xg
	}

	// Both rolls are always consumed so the stream stays aligned across
	// outcome branches.
	goalRoll := m.rng.Next()
	targetRoll := m.rng.Next()

	switch {
	case goalRoll < xg:
		if attacking == SideHome {
			m.state.homeScore++
			m.state.stats.HomeShotsOnTarget++
		} else {
			m.state.awayScore++
			m.state.stats.AwayShotsOnTarget++
		}
		m.state.addEvent(EventGoal, attacking, shooter.Name,
			fmt.Sprintf("GOAL! %s finds the back of the net!", shooter.Name), xg)
		m.state.swingMomentum(attacking, 20)
		m.state.boostIntensity(15)

	case targetRoll < 0.4*(1+xg):
		if attacking == SideHome {
			m.state.stats.HomeShotsOnTarget++
		} else {
			m.state.stats.AwayShotsOnTarget++
		}
		m.state.addEvent(EventShot, attacking, shooter.Name,
			fmt.Sprintf("%s forces a save from the keeper", shooter.Name), xg)

	default:
		m.state.addEvent(EventShot, attacking, shooter.Name,
			fmt.Sprintf("%s drags the shot wide of the target", shooter.Name), xg)
	}

	m.state.possession = attacking.opponent()
}

// handleChance is a half-opening that never becomes a shot. It nudges
// momentum toward the attacking side but leaves possession alone.
func (m *match) handleChance() {
	attacking := m.state.possession
	team := m.team(attacking)

	player, ok := m.pickAny(team)
	if !ok {
		m.logger.Warn("skipping chance, team has no players", "team", team.Name)
		return
	}

	m.state.addEvent(EventChance, attacking, player.Name,
		fmt.Sprintf("Big chance! %s gets in behind the defence", player.Name), 0)
	m.state.swingMomentum(attacking, 5)
}

// handleFoul charges the side out of possession: defenders foul attackers.
func (m *match) handleFoul() {
	fouling := m.state.possession.opponent()
	team := m.team(fouling)

	player, ok := m.pickAny(team)
	if !ok {
		m.logger.Warn("skipping foul, team has no players", "team", team.Name)
		return
	}

	if fouling == SideHome {
		m.state.stats.HomeFouls++
	} else {
		m.state.stats.AwayFouls++
	}
	m.state.addEvent(EventFoul, fouling, player.Name,
		fmt.Sprintf("%s commits a foul", player.Name), 0)

	cardChance := m.rng.Next()
	if cardChance < 0.15 {
		if fouling == SideHome {
			m.state.stats.HomeYellowCards++
		} else {
			m.state.stats.AwayYellowCards++
		}
		m.state.cards++
		m.state.addEvent(EventYellowCard, fouling, player.Name,
			fmt.Sprintf("Yellow card shown to %s", player.Name), 0)
	} else if cardChance < 0.02 {
		// Never reached: the yellow branch above already covers this range.
		// Kept as-is; straight reds would shift the card balance.
		if fouling == SideHome {
			m.state.stats.HomeRedCards++
		} else {
			m.state.stats.AwayRedCards++
		}
		m.state.cards++
		m.state.addEvent(EventRedCard, fouling, player.Name,
			fmt.Sprintf("RED CARD! %s is sent off!", player.Name), 0)
	}

	// Free kick to the fouled side
	m.state.possession = fouling.opponent()
}

// handleInjury knocks 20 off a random player's tracked stamina. Score and
// possession are unaffected.
func (m *match) handleInjury() {
	side := SideAway
	if m.rng.Next() < 0.5 {
		side = SideHome
	}
	team := m.team(side)

	player, ok := m.pickAny(team)
	if !ok {
		m.logger.Warn("skipping injury, team has no players", "team", team.Name)
		return
	}

	m.state.addEvent(EventInjury, side, player.Name,
		fmt.Sprintf("%s is down and needs treatment", player.Name), 0)
	m.state.drainPlayerStamina(player.ID, 20)
	m.state.injuries++
}

// handleCorner awards a corner to the attacking side and sometimes cascades
// into a shot on the same tick.
func (m *match) handleCorner() {
	attacking := m.state.possession
	team := m.team(attacking)

	if attacking == SideHome {
		m.state.stats.HomeCorners++
	} else {
		m.state.stats.AwayCorners++
	}
	m.state.addEvent(EventCorner, attacking, "",
		fmt.Sprintf("Corner kick for %s", team.Name), 0)

	if m.rng.Next() < 0.30 {
		m.resolveShot(ShotCorner)
	}
}

// pickShooter prefers players in attacking positions, falling back to anyone
// on the roster.
func (m *match) pickShooter(team Team) (Player, bool) {
	var attackers []Player
	for _, p := range team.Players {
		switch p.Position {
		case PosST, PosAM, PosLM, PosRM:
			attackers = append(attackers, p)
		}
	}
	if len(attackers) > 0 {
		return attackers[m.rng.intn(0, len(attackers))], true
	}
	if len(team.Players) > 0 {
		return team.Players[m.rng.intn(0, len(team.Players))], true
	}
	return Player{}, false
}

func (m *match) pickAny(team Team) (Player, bool) {
	if len(team.Players) == 0 {
		return Player{}, false
	}
	return team.Players[m.rng.intn(0, len(team.Players))], true
}

// expectedGoals estimates the probability that a shot taken now goes in.
func (m *match) expectedGoals(attacking Side, shotType string) float64 {
	team := m.team(attacking)
	attack, defense := m.facingRatings(attacking)

	xg := 0.10
	xg += (attack - defense) / 100 * 0.05
	xg *= GetTacticalXGModifier(team, shotType)
	xg *= 0.8 + m.rng.Next()*0.4

	sign := 1.0
	if attacking == SideAway {
		sign = -1.0
	}
	xg += float64(m.state.momentum) * sign * 0.001

	xg *= m.weatherFx.ShotAccuracy
	if attacking == SideHome {
		xg *= 1 + m.homeAdvantage
	}

	return clampFloat(xg, 0.01, 0.8)
}
