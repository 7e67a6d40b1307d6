package nhl

import (
	"strconv"
	"strings"
	"time"

	"github.com/pickemlab/daily-pickem/internal/domain/game"
)

type scheduleEnvelope struct {
	GameWeek []scheduleDay `json:"gameWeek"`
}

type scheduleDay struct {
	Date  string        `json:"date"`
	Games []gamePayload `json:"games"`
}

type scoreEnvelope struct {
	Games []gamePayload `json:"games"`
}

type gamePayload struct {
	ID           int64       `json:"id"`
	StartTimeUTC string      `json:"startTimeUTC"`
	GameState    string      `json:"gameState"`
	HomeTeam     teamPayload `json:"homeTeam"`
	AwayTeam     teamPayload `json:"awayTeam"`
}

type teamPayload struct {
	Abbrev     string    `json:"abbrev"`
	Score      *int      `json:"score"`
	PlaceName  nameField `json:"placeName"`
	CommonName nameField `json:"commonName"`
}

type nameField struct {
	Default string `json:"default"`
}

func mapGamePayload(item gamePayload) (game.Game, bool) {
	if item.ID <= 0 {
		return game.Game{}, false
	}
	start, err := time.Parse(time.RFC3339, strings.TrimSpace(item.StartTimeUTC))
	if err != nil {
		return game.Game{}, false
	}

	return game.Game{
		ID:           strconv.FormatInt(item.ID, 10),
		StartTimeUTC: start.UTC(),
		HomeTeam:     mapTeamPayload(item.HomeTeam),
		AwayTeam:     mapTeamPayload(item.AwayTeam),
		HomeScore:    cloneScore(item.HomeTeam.Score),
		AwayScore:    cloneScore(item.AwayTeam.Score),
		Status:       game.NormalizeStatus(item.GameState),
	}, true
}

func mapTeamPayload(item teamPayload) game.Team {
	name := strings.TrimSpace(strings.TrimSpace(item.PlaceName.Default) + " " + strings.TrimSpace(item.CommonName.Default))
	return game.Team{
		Abbrev: strings.ToUpper(strings.TrimSpace(item.Abbrev)),
		Name:   name,
	}
}

func cloneScore(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
