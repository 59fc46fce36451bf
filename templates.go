package main

import (
	"net/http"
	"text/template"
	"time"
)

var homepageTemplate = template.Must(template.New("homepage").Parse(htmlTemplate))

type homepageData struct {
	Version     string
	TotalTeams  int
	TotalPlayer int
	Uptime      string
}

func (s *server) serveHomepage(w http.ResponseWriter, r *http.Request) {
	playerCount := 0
	for _, team := range s.world.teams {
		playerCount += len(team.Players)
	}

	data := homepageData{
		Version:     s.version,
		TotalTeams:  len(s.world.teams),
		TotalPlayer: playerCount,
		Uptime:      time.Since(s.started).Round(time.Second).String(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homepageTemplate.Execute(w, data); err != nil {
		s.logger.Error("render homepage", "err", err)
	}
}

// HTML template for the API documentation homepage
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>MatchPulse Engine API</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            line-height: 1.6;
            color: #2d3748;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 2rem;
        }

        .header {
            text-align: center;
            color: white;
            margin-bottom: 3rem;
        }

        .header h1 {
            font-size: 3rem;
            font-weight: 800;
            margin-bottom: 0.5rem;
            text-shadow: 0 2px 4px rgba(0,0,0,0.3);
        }

        .header p {
            font-size: 1.2rem;
            opacity: 0.9;
            margin-bottom: 2rem;
        }

        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 1rem;
            margin-bottom: 3rem;
        }

        .stat-card {
            background: rgba(255, 255, 255, 0.1);
            border-radius: 12px;
            padding: 1.5rem;
            text-align: center;
            backdrop-filter: blur(10px);
            border: 1px solid rgba(255, 255, 255, 0.2);
        }

        .stat-card h3 {
            color: white;
            font-size: 2rem;
            font-weight: 700;
            margin-bottom: 0.5rem;
        }

        .stat-card p {
            color: rgba(255, 255, 255, 0.8);
            font-size: 0.9rem;
        }

        .main-content {
            background: white;
            border-radius: 16px;
            padding: 2rem;
            box-shadow: 0 20px 40px rgba(0,0,0,0.1);
        }

        .section h2 {
            color: #2d3748;
            font-size: 1.5rem;
            font-weight: 600;
            margin-bottom: 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid #e2e8f0;
        }

        .endpoints-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(320px, 1fr));
            gap: 1.5rem;
        }

        .endpoint {
            background: #f7fafc;
            border: 1px solid #e2e8f0;
            border-radius: 12px;
            padding: 1.5rem;
        }

        .endpoint h3 {
            color: #2d3748;
            font-size: 1rem;
            font-weight: 600;
            margin-bottom: 0.5rem;
            font-family: 'SF Mono', Monaco, 'Cascadia Code', monospace;
        }

        .endpoint p {
            color: #718096;
            font-size: 0.9rem;
            margin-bottom: 1rem;
        }

        .endpoint a {
            color: #667eea;
            text-decoration: none;
            font-weight: 500;
            font-size: 0.9rem;
        }

        .footer {
            text-align: center;
            padding: 2rem 0;
            color: #718096;
            font-size: 0.9rem;
            border-top: 1px solid #e2e8f0;
            margin-top: 2rem;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>⚽ MatchPulse Engine</h1>
            <p>Deterministic football match simulation — same seed, same match, every time</p>

            <div class="stats-grid">
                <div class="stat-card">
                    <h3>{{.TotalTeams}}</h3>
                    <p>Teams</p>
                </div>
                <div class="stat-card">
                    <h3>{{.TotalPlayer}}</h3>
                    <p>Players</p>
                </div>
                <div class="stat-card">
                    <h3>{{.Uptime}}</h3>
                    <p>Uptime</p>
                </div>
                <div class="stat-card">
                    <h3>∞</h3>
                    <p>Rate Limit</p>
                </div>
            </div>
        </div>

        <div class="main-content">
            <div class="section">
                <h2>API Endpoints</h2>
                <div class="endpoints-grid">
                    <div class="endpoint">
                        <h3>GET /api/v1/health</h3>
                        <p>API health check and system status</p>
                        <a href="/api/v1/health" target="_blank">Try it →</a>
                    </div>

                    <div class="endpoint">
                        <h3>GET /api/v1/simulate</h3>
                        <p>Simulate a full match: seed, home, away, optional weather</p>
                        <a href="/api/v1/simulate?seed=42&home=CAP&away=GAL" target="_blank">Try it →</a>
                    </div>

                    <div class="endpoint">
                        <h3>GET /api/v1/teams</h3>
                        <p>All teams with squads, ratings, and tactics</p>
                        <a href="/api/v1/teams" target="_blank">Try it →</a>
                    </div>

                    <div class="endpoint">
                        <h3>GET /api/v1/teams/{id}</h3>
                        <p>A single team by its three-letter code</p>
                        <a href="/api/v1/teams/CAP" target="_blank">Try it →</a>
                    </div>

                    <div class="endpoint">
                        <h3>GET /api/v1/players</h3>
                        <p>Every player in the league</p>
                        <a href="/api/v1/players" target="_blank">Try it →</a>
                    </div>

                    <div class="endpoint">
                        <h3>GET /api/v1/players/{id}</h3>
                        <p>A single player with full attributes</p>
                        <a href="/api/v1/players/cap-1" target="_blank">Try it →</a>
                    </div>
                </div>
            </div>

            <div class="footer">
                <p>
                    Identical parameters always return the identical match: event log,
                    statistics, and final score are fully reproducible from the seed.
                </p>
                <p>Version {{.Version}}</p>
            </div>
        </div>
    </div>
</body>
</html>`
