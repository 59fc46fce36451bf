package sim

// Side identifies one of the two teams in a match.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

func (s Side) opponent() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

// Positions
const (
	PosGK  = "GK"
	PosCB  = "CB"
	PosLB  = "LB"
	PosRB  = "RB"
	PosCDM = "CDM"
	PosCM  = "CM"
	PosAM  = "AM"
	PosLM  = "LM"
	PosRM  = "RM"
	PosST  = "ST"
)

// Weather conditions
type Weather string

const (
	WeatherClear  Weather = "clear"
	WeatherCloudy Weather = "cloudy"
	WeatherRain   Weather = "rain"
	WeatherSnow   Weather = "snow"
	WeatherWindy  Weather = "windy"
)

// Mentalities
const (
	MentalityDefensive = "DEFENSIVE"
	MentalityBalanced  = "BALANCED"
	MentalityAttacking = "ATTACKING"
)

// Pressing intensities
const (
	PressingLow    = "LOW"
	PressingMedium = "MEDIUM"
	PressingHigh   = "HIGH"
)

// Tempos
const (
	TempoSlow   = "SLOW"
	TempoNormal = "NORMAL"
	TempoFast   = "FAST"
)

// Widths
const (
	WidthNarrow = "NARROW"
	WidthNormal = "NORMAL"
	WidthWide   = "WIDE"
)

// Formations
const (
	Formation442  = "4-4-2"
	Formation433  = "4-3-3"
	Formation352  = "3-5-2"
	Formation4231 = "4-2-3-1"
	Formation532  = "5-3-2"
)

// Event types
type EventType string

const (
	EventGoal       EventType = "goal"
	EventShot       EventType = "shot"
	EventChance     EventType = "chance"
	EventFoul       EventType = "foul"
	EventYellowCard EventType = "yellow_card"
	EventRedCard    EventType = "red_card"
	EventInjury     EventType = "injury"
	EventCorner     EventType = "corner"
)

// Shot origins, fed to the tactical xG modifier.
const (
	ShotOpenPlay = "OPEN_PLAY"
	ShotCorner   = "CORNER"
)

// PlayerAttributes rates a player's abilities on a 1-100 scale.
type PlayerAttributes struct {
	Speed       int `json:"speed"`
	Shooting    int `json:"shooting"`
	Passing     int `json:"passing"`
	Defending   int `json:"defending"`
	Physicality int `json:"physicality"`
	Mentality   int `json:"mentality"`
}

// Player is a read-only roster entry. The engine never writes to it; in-match
// stamina is tracked in a side map owned by the simulation.
type Player struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Position   string           `json:"position"`
	Attributes PlayerAttributes `json:"attributes"`
	Stamina    float64          `json:"stamina"` // base stamina at kickoff
	Morale     float64          `json:"morale"`
	Condition  float64          `json:"condition"`
}

// Tactics describes how a team sets up.
type Tactics struct {
	Formation string `json:"formation"`
	Mentality string `json:"mentality"`
	Pressing  string `json:"pressing"`
	Tempo     string `json:"tempo"`
	Width     string `json:"width"`
}

// Team is a caller-owned snapshot. The engine only reads it.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
	Tactics Tactics  `json:"tactics"`
	Rating  float64  `json:"rating"`
}

// MatchEvent is one entry in the append-only event log. Ordering is emission
// order, and minutes are non-decreasing within a half.
type MatchEvent struct {
	Minute      int       `json:"minute"`
	Type        EventType `json:"type"`
	Team        Side      `json:"team"`
	Player      string    `json:"player,omitempty"`
	Description string    `json:"description"`
	XG          float64   `json:"xg,omitempty"`
}

// MatchStats holds the per-team running counters for a match.
type MatchStats struct {
	HomePossession    float64 `json:"home_possession"`
	AwayPossession    float64 `json:"away_possession"`
	HomeShots         int     `json:"home_shots"`
	AwayShots         int     `json:"away_shots"`
	HomeShotsOnTarget int     `json:"home_shots_on_target"`
	AwayShotsOnTarget int     `json:"away_shots_on_target"`
	HomeXG            float64 `json:"home_xg"`
	AwayXG            float64 `json:"away_xg"`
	HomePasses        int     `json:"home_passes"`
	AwayPasses        int     `json:"away_passes"`
	HomePassAccuracy  float64 `json:"home_pass_accuracy"`
	AwayPassAccuracy  float64 `json:"away_pass_accuracy"`
	HomeFouls         int     `json:"home_fouls"`
	AwayFouls         int     `json:"away_fouls"`
	HomeCorners       int     `json:"home_corners"`
	AwayCorners       int     `json:"away_corners"`
	HomeYellowCards   int     `json:"home_yellow_cards"`
	AwayYellowCards   int     `json:"away_yellow_cards"`
	HomeRedCards      int     `json:"home_red_cards"`
	AwayRedCards      int     `json:"away_red_cards"`
}

// MatchResult is the immutable outcome of one simulation.
type MatchResult struct {
	HomeScore int          `json:"home_score"`
	AwayScore int          `json:"away_score"`
	Stats     MatchStats   `json:"stats"`
	Events    []MatchEvent `json:"events"`
	Duration  int          `json:"duration"` // total minutes including stoppage
}
