package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	cache "github.com/patrickmn/go-cache"
	"github.com/rs/cors"
	"github.com/spf13/viper"

	"github.com/tobimadehin/matchpulse-engine/sim"
)

const (
	// League configuration
	LeaguePremier  = "Premier League"
	TeamsPerLeague = 10

	// Result cache: simulations are deterministic, so entries never go
	// stale; the TTL only bounds memory.
	resultCacheTTL     = 1 * time.Hour
	resultCacheCleanup = 10 * time.Minute
)

var weatherConditions = map[string]sim.Weather{
	"clear":  sim.WeatherClear,
	"cloudy": sim.WeatherCloudy,
	"rain":   sim.WeatherRain,
	"snow":   sim.WeatherSnow,
	"windy":  sim.WeatherWindy,
}

// Team and player data
var teamData = []struct {
	ID      string
	Name    string
	Stadium string
	League  string
	Manager string
}{
	{"CAP", "Capricon FC", "Stellar Stadium", LeaguePremier, "Viktor Cosmos"},
	{"GAL", "The Galacticons", "Nebula Arena", LeaguePremier, "Zara Starfield"},
	{"AXT", "Axton Brothers", "Quantum Park", LeaguePremier, "Rex Axiom"},
	{"DEU", "Deuteron United", "Fusion Field", LeaguePremier, "Nova Nucleus"},
	{"SAT", "Saturn Rovers", "Ring Stadium", LeaguePremier, "Luna Orbit"},
	{"MET", "Meteor City", "Impact Zone", LeaguePremier, "Comet Trail"},
	{"COS", "Cosmic Wanderers", "Infinity Ground", LeaguePremier, "Astro Nova"},
	{"PUL", "Pulsar Athletic", "Photon Arena", LeaguePremier, "Ray Beacon"},
	{"NEB", "Nebula FC", "Star Dust Stadium", LeaguePremier, "Cloud Walker"},
	{"ECL", "Eclipse United", "Shadow Grounds", LeaguePremier, "Dark Matter"},
}

var playerNames = []string{
	"Marcus Johnson", "Davido Silva", "Antonio López", "James Wilson",
	"Carlos Hernández", "Marco Rossi", "Alex Thompson", "Diego Martínez",
	"Francesco Romano", "Luke Roberts", "Pablo García", "Andrea Colombo",
	"Ryan Davis", "Miguel Rodríguez", "Luca Ferrari", "Jordan Smith",
	"Alejandro Pérez", "Matteo Conti", "Oliver Brown", "Francisco Ruiz",
	"Davide Ricci", "Connor Wilson", "Sergio González", "Lorenzo Greco",
	"Mason Taylor", "Alberto Moreno", "Alessandro Bruno", "Tyler Anderson",
	"Rafael Jiménez", "Simone Gallo", "Harry Clarke", "Fernando Torres",
	"Giovanni De Luca", "Charlie Evans", "Adrián Vázquez", "Emilio Mancini",
}

// startingPositions is the XI every generated team fields.
var startingPositions = []string{
	sim.PosGK, sim.PosCB, sim.PosCB, sim.PosLB, sim.PosRB,
	sim.PosCDM, sim.PosCM, sim.PosAM, sim.PosLM, sim.PosRM, sim.PosST,
}

// TeamInfo is the API-facing team record: the engine snapshot plus
// presentation fields the engine does not care about.
type TeamInfo struct {
	sim.Team
	Stadium string `json:"stadium"`
	League  string `json:"league"`
	Manager string `json:"manager"`
}

// world is the in-memory universe of teams the API simulates matches
// between. Generation uses the global random source on purpose: one-off
// world-building randomness stays outside the deterministic engine.
type world struct {
	teams map[string]TeamInfo
	order []string
}

func buildWorld() *world {
	w := &world{teams: make(map[string]TeamInfo, len(teamData))}

	for _, entry := range teamData {
		players := make([]sim.Player, 0, len(startingPositions))
		for i, position := range startingPositions {
			players = append(players, sim.Player{
				ID:         fmt.Sprintf("%s-%d", strings.ToLower(entry.ID), i+1),
				Name:       playerNames[rand.IntN(len(playerNames))],
				Position:   position,
				Attributes: generatePlayerAttributes(position),
				Stamina:    float64(80 + rand.IntN(21)),
				Morale:     float64(40 + rand.IntN(41)),
				Condition:  float64(60 + rand.IntN(41)),
			})
		}

		team := sim.Team{
			ID:      entry.ID,
			Name:    entry.Name,
			Players: players,
			Tactics: randomTactics(),
		}
		team.Rating = teamOverallRating(team)

		w.teams[entry.ID] = TeamInfo{
			Team:    team,
			Stadium: entry.Stadium,
			League:  entry.League,
			Manager: entry.Manager,
		}
		w.order = append(w.order, entry.ID)
	}

	sort.Strings(w.order)
	return w
}

func generatePlayerAttributes(position string) sim.PlayerAttributes {
	// Base stats vary by position
	var speed, shooting, passing, defending, physicality, mentality int

	switch position {
	case sim.PosGK:
		speed = 20 + rand.IntN(30)
		shooting = 10 + rand.IntN(20)
		passing = 40 + rand.IntN(40)
		defending = 60 + rand.IntN(40)
		physicality = 60 + rand.IntN(40)
		mentality = 70 + rand.IntN(30)
	case sim.PosCB:
		speed = 30 + rand.IntN(40)
		shooting = 20 + rand.IntN(30)
		passing = 50 + rand.IntN(40)
		defending = 70 + rand.IntN(30)
		physicality = 70 + rand.IntN(30)
		mentality = 60 + rand.IntN(40)
	case sim.PosLB, sim.PosRB:
		speed = 60 + rand.IntN(40)
		shooting = 30 + rand.IntN(40)
		passing = 60 + rand.IntN(40)
		defending = 60 + rand.IntN(40)
		physicality = 50 + rand.IntN(40)
		mentality = 50 + rand.IntN(40)
	case sim.PosCDM:
		speed = 40 + rand.IntN(40)
		shooting = 40 + rand.IntN(40)
		passing = 70 + rand.IntN(30)
		defending = 70 + rand.IntN(30)
		physicality = 60 + rand.IntN(40)
		mentality = 60 + rand.IntN(40)
	case sim.PosCM:
		speed = 50 + rand.IntN(40)
		shooting = 50 + rand.IntN(40)
		passing = 70 + rand.IntN(30)
		defending = 50 + rand.IntN(40)
		physicality = 50 + rand.IntN(40)
		mentality = 60 + rand.IntN(40)
	case sim.PosAM:
		speed = 60 + rand.IntN(40)
		shooting = 70 + rand.IntN(30)
		passing = 70 + rand.IntN(30)
		defending = 30 + rand.IntN(40)
		physicality = 40 + rand.IntN(40)
		mentality = 70 + rand.IntN(30)
	case sim.PosLM, sim.PosRM:
		speed = 70 + rand.IntN(30)
		shooting = 60 + rand.IntN(40)
		passing = 60 + rand.IntN(40)
		defending = 30 + rand.IntN(40)
		physicality = 40 + rand.IntN(40)
		mentality = 60 + rand.IntN(40)
	case sim.PosST:
		speed = 60 + rand.IntN(40)
		shooting = 80 + rand.IntN(20)
		passing = 50 + rand.IntN(40)
		defending = 20 + rand.IntN(30)
		physicality = 60 + rand.IntN(40)
		mentality = 70 + rand.IntN(30)
	default:
		speed = 50 + rand.IntN(40)
		shooting = 50 + rand.IntN(40)
		passing = 50 + rand.IntN(40)
		defending = 50 + rand.IntN(40)
		physicality = 50 + rand.IntN(40)
		mentality = 50 + rand.IntN(40)
	}

	return sim.PlayerAttributes{
		Speed:       speed,
		Shooting:    shooting,
		Passing:     passing,
		Defending:   defending,
		Physicality: physicality,
		Mentality:   mentality,
	}
}

func randomTactics() sim.Tactics {
	formations := []string{sim.Formation442, sim.Formation433, sim.Formation352, sim.Formation4231, sim.Formation532}
	mentalities := []string{sim.MentalityDefensive, sim.MentalityBalanced, sim.MentalityAttacking}
	pressings := []string{sim.PressingLow, sim.PressingMedium, sim.PressingHigh}
	tempos := []string{sim.TempoSlow, sim.TempoNormal, sim.TempoFast}
	widths := []string{sim.WidthNarrow, sim.WidthNormal, sim.WidthWide}

	return sim.Tactics{
		Formation: formations[rand.IntN(len(formations))],
		Mentality: mentalities[rand.IntN(len(mentalities))],
		Pressing:  pressings[rand.IntN(len(pressings))],
		Tempo:     tempos[rand.IntN(len(tempos))],
		Width:     widths[rand.IntN(len(widths))],
	}
}

func teamOverallRating(team sim.Team) float64 {
	if len(team.Players) == 0 {
		return 0
	}
	sum := 0
	for _, p := range team.Players {
		a := p.Attributes
		sum += (a.Speed + a.Shooting + a.Passing + a.Defending + a.Physicality + a.Mentality) / 6
	}
	return float64(sum) / float64(len(team.Players))
}

type server struct {
	logger  *log.Logger
	engine  *sim.Engine
	world   *world
	results *cache.Cache
	version string
	started time.Time
}

func newServer(logger *log.Logger) *server {
	return &server{
		logger:  logger,
		engine:  sim.NewEngine(logger),
		world:   buildWorld(),
		results: cache.New(resultCacheTTL, resultCacheCleanup),
		version: loadVersion(),
		started: time.Now(),
	}
}

func loadVersion() string {
	if data, err := os.ReadFile("version.txt"); err == nil {
		return strings.TrimSpace(string(data))
	}
	return "1.0.0"
}

func (s *server) routes() *mux.Router {
	router := mux.NewRouter()

	// Home page route
	router.HandleFunc("/", s.serveHomepage).Methods("GET")

	// API routes - RESTful structure
	apiRouter := router.PathPrefix("/api/v1").Subrouter()

	// System endpoints
	apiRouter.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Simulation endpoint
	apiRouter.HandleFunc("/simulate", s.handleSimulate).Methods("GET")

	// Team endpoints
	apiRouter.HandleFunc("/teams", s.handleTeams).Methods("GET")
	apiRouter.HandleFunc("/teams/{id:[A-Z]+}", s.handleTeam).Methods("GET")

	// Player endpoints
	apiRouter.HandleFunc("/players", s.handlePlayers).Methods("GET")
	apiRouter.HandleFunc("/players/{id}", s.handlePlayer).Methods("GET")

	return router
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	playerCount := 0
	for _, team := range s.world.teams {
		playerCount += len(team.Players)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	healthData := map[string]interface{}{
		"status":         "healthy",
		"name":           "MatchPulse Engine API",
		"version":        s.version,
		"uptime":         time.Since(s.started).Round(time.Second).String(),
		"total_teams":    len(s.world.teams),
		"total_players":  playerCount,
		"cached_results": s.results.ItemCount(),
		"goroutines":     runtime.NumGoroutine(),
		"memory": map[string]interface{}{
			"alloc":       memStats.Alloc,
			"total_alloc": memStats.TotalAlloc,
			"sys":         memStats.Sys,
			"num_gc":      memStats.NumGC,
		},
		"timestamp": time.Now(),
	}

	s.writeJSON(w, http.StatusOK, healthData)
}

// handleSimulate runs a deterministic match between two world teams.
// Identical query parameters always produce the identical result, which
// is why repeats can be served straight from the cache.
func (s *server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	seed := query.Get("seed")
	if seed == "" {
		s.writeError(w, http.StatusBadRequest, "missing required parameter: seed")
		return
	}

	homeID := query.Get("home")
	awayID := query.Get("away")
	home, ok := s.world.teams[homeID]
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown home team: %q", homeID))
		return
	}
	away, ok := s.world.teams[awayID]
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown away team: %q", awayID))
		return
	}
	if homeID == awayID {
		s.writeError(w, http.StatusBadRequest, "home and away must differ")
		return
	}

	weatherParam := query.Get("weather")
	if weatherParam == "" {
		weatherParam = "clear"
	}
	weather, ok := weatherConditions[weatherParam]
	if !ok {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown weather condition: %q", weatherParam))
		return
	}

	cacheKey := fmt.Sprintf("%s|%s|%s|%s", seed, homeID, awayID, weather)
	if cached, found := s.results.Get(cacheKey); found {
		w.Header().Set("X-Cache", "HIT")
		s.writeJSON(w, http.StatusOK, cached)
		return
	}

	result := s.engine.Simulate(seed, home.Team, away.Team, weather)
	s.results.Set(cacheKey, result, cache.DefaultExpiration)

	s.logger.Info("⚽ simulated match",
		"seed", seed, "home", homeID, "away", awayID, "weather", weather,
		"score", fmt.Sprintf("%d-%d", result.HomeScore, result.AwayScore),
		"events", len(result.Events), "duration", result.Duration)

	w.Header().Set("X-Cache", "MISS")
	s.writeJSON(w, http.StatusOK, result)
}

func (s *server) handleTeams(w http.ResponseWriter, r *http.Request) {
	teams := make([]TeamInfo, 0, len(s.world.order))
	for _, id := range s.world.order {
		teams = append(teams, s.world.teams[id])
	}
	s.writeJSON(w, http.StatusOK, teams)
}

func (s *server) handleTeam(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	team, ok := s.world.teams[id]
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown team: %q", id))
		return
	}
	s.writeJSON(w, http.StatusOK, team)
}

func (s *server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	players := make([]sim.Player, 0, len(s.world.order)*len(startingPositions))
	for _, id := range s.world.order {
		players = append(players, s.world.teams[id].Players...)
	}
	s.writeJSON(w, http.StatusOK, players)
}

func (s *server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	for _, teamID := range s.world.order {
		for _, player := range s.world.teams[teamID].Players {
			if player.ID == id {
				s.writeJSON(w, http.StatusOK, player)
				return
			}
		}
	}
	s.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown player: %q", id))
}

func (s *server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func main() {
	config := viper.New()
	config.AutomaticEnv()

	if err := godotenv.Load(); err != nil {
		log.Warn("could not load .env file", "err", err)
	}

	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: true,
	})

	if err := run(logger, config); err != nil {
		logger.Fatal(err)
	}
}

func run(logger *log.Logger, config *viper.Viper) error {
	config.SetDefault("PORT", 8080)
	port := config.GetInt("PORT")

	s := newServer(logger)

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler(s.routes())

	logger.Info("🚀 MatchPulse engine API starting",
		"version", s.version, "port", port, "teams", len(s.world.teams))
	logger.Info("🎲 deterministic simulation ready",
		"example", fmt.Sprintf("http://0.0.0.0:%d/api/v1/simulate?seed=42&home=CAP&away=GAL", port))

	return http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), handler)
}
