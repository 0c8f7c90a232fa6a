package services

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/revolutionrp/community/internal/config"
	"github.com/revolutionrp/community/pkg/logger"
)

// ServerStats is the public game-server status payload.
type ServerStats struct {
	Players    int    `json:"players"`
	MaxPlayers int    `json:"max_players"`
	Hostname   string `json:"hostname"`
	Gametype   string `json:"gametype"`
}

// fivemDynamic mirrors the relevant parts of FiveM's dynamic.json.
// sv_maxclients arrives as either a number or a string depending on the
// server build.
type fivemDynamic struct {
	Clients      int             `json:"clients"`
	SvMaxClients json.RawMessage `json:"sv_maxclients"`
	Hostname     string          `json:"hostname"`
	Gametype     string          `json:"gametype"`
}

type StatsService struct {
	cfg    *config.FiveMConfig
	client *http.Client
}

func NewStatsService(cfg *config.FiveMConfig) *StatsService {
	return &StatsService{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// Fetch proxies the game server's status endpoint. Any failure falls back
// to the configured static payload; this endpoint never errors out.
func (s *StatsService) Fetch() *ServerStats {
	fallback := &ServerStats{
		Players:    0,
		MaxPlayers: s.cfg.FallbackMaxPlayers,
		Hostname:   s.cfg.FallbackHostname,
		Gametype:   s.cfg.FallbackGametype,
	}

	if s.cfg.StatsURL == "" {
		return fallback
	}

	resp, err := s.client.Get(s.cfg.StatsURL)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to fetch server stats")
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warnf("server stats endpoint returned status %d", resp.StatusCode)
		return fallback
	}

	var data fivemDynamic
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		logger.Warn().Err(err).Msg("failed to decode server stats")
		return fallback
	}

	stats := &ServerStats{
		Players:    data.Clients,
		MaxPlayers: parseMaxClients(data.SvMaxClients, s.cfg.FallbackMaxPlayers),
		Hostname:   data.Hostname,
		Gametype:   data.Gametype,
	}
	if stats.Hostname == "" {
		stats.Hostname = s.cfg.FallbackHostname
	}
	if stats.Gametype == "" {
		stats.Gametype = s.cfg.FallbackGametype
	}
	return stats
}

func parseMaxClients(raw json.RawMessage, fallback int) int {
	if len(raw) == 0 {
		return fallback
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}

	return fallback
}
