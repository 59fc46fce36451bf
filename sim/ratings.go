package sim

import "math"

// Pure rating and modifier functions consumed by the engine. All of them are
// deterministic and side-effect free: identical inputs always produce
// identical outputs, which the determinism contract of Simulate relies on.

// WeatherEffects holds the multipliers a weather condition applies to play.
type WeatherEffects struct {
	ShotAccuracy    float64 `json:"shot_accuracy"`
	PassingAccuracy float64 `json:"passing_accuracy"`
	StaminaDrain    float64 `json:"stamina_drain"`
}

// GetWeatherEffects returns the play modifiers for a weather condition.
// Unknown conditions behave like clear weather.
func GetWeatherEffects(weather Weather) WeatherEffects {
	switch weather {
	case WeatherCloudy:
		return WeatherEffects{ShotAccuracy: 0.98, PassingAccuracy: 0.99, StaminaDrain: 1.0}
	case WeatherRain:
		return WeatherEffects{ShotAccuracy: 0.90, PassingAccuracy: 0.92, StaminaDrain: 1.08}
	case WeatherSnow:
		return WeatherEffects{ShotAccuracy: 0.85, PassingAccuracy: 0.88, StaminaDrain: 1.15}
	case WeatherWindy:
		return WeatherEffects{ShotAccuracy: 0.93, PassingAccuracy: 0.96, StaminaDrain: 1.02}
	default:
		return WeatherEffects{ShotAccuracy: 1.0, PassingAccuracy: 1.0, StaminaDrain: 1.0}
	}
}

// CalculateAttackRating scores a team's attacking quality on a 0-100 scale.
func CalculateAttackRating(team Team) float64 {
	if len(team.Players) == 0 {
		return 0
	}

	sum := 0.0
	for _, p := range team.Players {
		contribution := 0.5*float64(p.Attributes.Shooting) +
			0.3*float64(p.Attributes.Speed) +
			0.2*float64(p.Attributes.Passing)

		// Forwards and attacking midfielders carry the attack
		switch p.Position {
		case PosST:
			contribution *= 1.25
		case PosAM, PosLM, PosRM:
			contribution *= 1.15
		case PosGK:
			contribution *= 0.4
		}

		sum += contribution * conditionFactor(p)
	}

	rating := sum / float64(len(team.Players))

	switch team.Tactics.Mentality {
	case MentalityAttacking:
		rating += 8
	case MentalityDefensive:
		rating -= 8
	}
	if team.Tactics.Tempo == TempoFast {
		rating += 3
	}

	return clampFloat(rating, 0, 100)
}

// CalculateDefenseRating scores a team's defensive quality on a 0-100 scale.
func CalculateDefenseRating(team Team) float64 {
	if len(team.Players) == 0 {
		return 0
	}

	sum := 0.0
	for _, p := range team.Players {
		contribution := 0.55*float64(p.Attributes.Defending) +
			0.25*float64(p.Attributes.Physicality) +
			0.2*float64(p.Attributes.Speed)

		switch p.Position {
		case PosCB, PosGK:
			contribution *= 1.25
		case PosLB, PosRB, PosCDM:
			contribution *= 1.15
		case PosST:
			contribution *= 0.5
		}

		sum += contribution * conditionFactor(p)
	}

	rating := sum / float64(len(team.Players))

	switch team.Tactics.Mentality {
	case MentalityDefensive:
		rating += 8
	case MentalityAttacking:
		rating -= 8
	}
	if team.Tactics.Pressing == PressingHigh {
		rating += 3
	}

	return clampFloat(rating, 0, 100)
}

// CalculateMidfieldRating scores a team's midfield control on a 0-100 scale.
func CalculateMidfieldRating(team Team) float64 {
	if len(team.Players) == 0 {
		return 0
	}

	sum := 0.0
	for _, p := range team.Players {
		contribution := 0.55*float64(p.Attributes.Passing) +
			0.25*float64(p.Attributes.Physicality) +
			0.2*float64(p.Attributes.Mentality)

		switch p.Position {
		case PosCM, PosCDM, PosAM:
			contribution *= 1.25
		case PosLM, PosRM:
			contribution *= 1.1
		case PosGK:
			contribution *= 0.5
		}

		sum += contribution * conditionFactor(p)
	}

	return clampFloat(sum/float64(len(team.Players)), 0, 100)
}

// CalculateStaminaDrain returns the per-tick stamina cost for a team's
// players at the given minute and intensity.
func CalculateStaminaDrain(team Team, minute, intensity int) float64 {
	drain := 0.09 + float64(intensity)/100*0.06

	switch team.Tactics.Tempo {
	case TempoFast:
		drain *= 1.15
	case TempoSlow:
		drain *= 0.9
	}
	if team.Tactics.Pressing == PressingHigh {
		drain *= 1.1
	}

	// Legs get heavy late on
	if minute > 75 {
		drain *= 1.1
	}

	return drain
}

// CalculatePossessionTendency scores how strongly a team attracts the ball.
func CalculatePossessionTendency(team Team) float64 {
	tendency := CalculateMidfieldRating(team)
	if tendency == 0 {
		// A team with no roster still takes its turns with the ball
		tendency = 1
	}

	if team.Tactics.Tempo == TempoSlow {
		tendency *= 1.05
	}
	if team.Tactics.Width == WidthNarrow {
		tendency *= 1.02
	}
	if team.Tactics.Mentality == MentalityDefensive {
		tendency *= 0.96
	}

	return tendency
}

// GetTacticalXGModifier returns the multiplier a team's setup applies to the
// expected-goals value of a shot.
func GetTacticalXGModifier(team Team, shotType string) float64 {
	modifier := 1.0

	switch team.Tactics.Mentality {
	case MentalityAttacking:
		modifier = 1.1
	case MentalityDefensive:
		modifier = 0.9
	}

	if team.Tactics.Tempo == TempoFast {
		modifier += 0.03
	}
	if team.Tactics.Width == WidthWide && shotType == ShotCorner {
		// Wide teams work better deliveries into the box
		modifier += 0.05
	}

	return modifier
}

func conditionFactor(p Player) float64 {
	// Morale and condition default to neutral when unset
	factor := 1.0
	if p.Morale > 0 {
		factor *= 0.9 + p.Morale/100*0.2
	}
	if p.Condition > 0 {
		factor *= 0.9 + p.Condition/100*0.2
	}
	return factor
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
