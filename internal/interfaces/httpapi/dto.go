package httpapi

import (
	"time"

	"github.com/pickemlab/daily-pickem/internal/domain/contest"
	"github.com/pickemlab/daily-pickem/internal/domain/game"
	"github.com/pickemlab/daily-pickem/internal/domain/submission"
	"github.com/pickemlab/daily-pickem/internal/usecase"
)

type teamDTO struct {
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
}

type gameDTO struct {
	ID           string    `json:"id"`
	StartTimeUTC time.Time `json:"startTimeUtc"`
	HomeTeam     teamDTO   `json:"homeTeam"`
	AwayTeam     teamDTO   `json:"awayTeam"`
	HomeScore    *int      `json:"homeScore,omitempty"`
	AwayScore    *int      `json:"awayScore,omitempty"`
	Status       string    `json:"status"`
}

type contestDTO struct {
	ID             string     `json:"id"`
	Status         string     `json:"status"`
	WindowStart    time.Time  `json:"windowStart"`
	WindowEnd      time.Time  `json:"windowEnd"`
	LockTime       *time.Time `json:"lockTime,omitempty"`
	ResetTime      time.Time  `json:"resetTime"`
	GameIDs        []string   `json:"gameIds"`
	FinalizedAt    *time.Time `json:"finalizedAt,omitempty"`
	FinalizeReason string     `json:"finalizeReason,omitempty"`
}

type contestSnapshotDTO struct {
	Contest contestDTO `json:"contest"`
	Games   []gameDTO  `json:"games"`
}

type submissionDTO struct {
	ContestID    string            `json:"contestId"`
	EntrantID    string            `json:"entrantId"`
	Picks        map[string]string `json:"picks"`
	Tiebreaker   *int              `json:"tiebreaker,omitempty"`
	SubmittedAt  time.Time         `json:"submittedAt"`
	CorrectCount *int              `json:"correctCount,omitempty"`
	TieDiff      *int              `json:"tieDiff,omitempty"`
	IsWinner     bool              `json:"isWinner"`
}

type submissionListDTO struct {
	ContestID string          `json:"contestId"`
	Count     int             `json:"count"`
	PotCents  int64           `json:"potCents"`
	Items     []submissionDTO `json:"items"`
}

type leaderboardEntryDTO struct {
	EntrantID    string `json:"entrantId"`
	CorrectCount int    `json:"correctCount"`
	Tiebreaker   *int   `json:"tiebreaker,omitempty"`
	TieDiff      *int   `json:"tieDiff,omitempty"`
	IsWinner     bool   `json:"isWinner"`
}

type contestResultsDTO struct {
	ContestID        string                `json:"contestId"`
	FinalizedAt      *time.Time            `json:"finalizedAt,omitempty"`
	FinalizeReason   string                `json:"finalizeReason"`
	ResultsByGame    map[string]string     `json:"resultsByGame"`
	ActualTiebreaker *int                  `json:"actualTiebreaker,omitempty"`
	WinnerEntrantIDs []string              `json:"winnerEntrantIds"`
	PotCents         int64                 `json:"potCents"`
	Leaderboard      []leaderboardEntryDTO `json:"leaderboard"`
}

func teamToDTO(t game.Team) teamDTO {
	return teamDTO{Abbrev: t.Abbrev, Name: t.Name}
}

func gameToDTO(g game.Game) gameDTO {
	return gameDTO{
		ID:           g.ID,
		StartTimeUTC: g.StartTimeUTC,
		HomeTeam:     teamToDTO(g.HomeTeam),
		AwayTeam:     teamToDTO(g.AwayTeam),
		HomeScore:    g.HomeScore,
		AwayScore:    g.AwayScore,
		Status:       g.Status,
	}
}

func contestToDTO(item contest.Contest, status string) contestDTO {
	gameIDs := item.GameIDs
	if gameIDs == nil {
		gameIDs = []string{}
	}

	return contestDTO{
		ID:             item.ID,
		Status:         status,
		WindowStart:    item.WindowStart,
		WindowEnd:      item.WindowEnd,
		LockTime:       item.LockTime,
		ResetTime:      item.ResetTime,
		GameIDs:        gameIDs,
		FinalizedAt:    item.FinalizedAt,
		FinalizeReason: item.FinalizeReason,
	}
}

func snapshotToDTO(snapshot usecase.ContestSnapshot) contestSnapshotDTO {
	games := make([]gameDTO, 0, len(snapshot.Games))
	for _, g := range snapshot.Games {
		games = append(games, gameToDTO(g))
	}

	return contestSnapshotDTO{
		Contest: contestToDTO(snapshot.Contest, snapshot.Status),
		Games:   games,
	}
}

func submissionToDTO(item submission.Submission) submissionDTO {
	return submissionDTO{
		ContestID:    item.ContestID,
		EntrantID:    item.EntrantID,
		Picks:        item.Picks,
		Tiebreaker:   item.Tiebreaker,
		SubmittedAt:  item.SubmittedAt,
		CorrectCount: item.CorrectCount,
		TieDiff:      item.TieDiff,
		IsWinner:     item.IsWinner,
	}
}

func resultsToDTO(results usecase.ContestResults, entryFeeCents int64) contestResultsDTO {
	leaderboard := make([]leaderboardEntryDTO, 0, len(results.Scored))
	for _, row := range results.Scored {
		leaderboard = append(leaderboard, leaderboardEntryDTO{
			EntrantID:    row.Submission.EntrantID,
			CorrectCount: row.CorrectCount,
			Tiebreaker:   row.Submission.Tiebreaker,
			TieDiff:      row.TieDiff,
			IsWinner:     row.IsWinner,
		})
	}

	resultsByGame := results.ResultsByGame
	if resultsByGame == nil {
		resultsByGame = map[string]string{}
	}
	winners := results.WinnerEntrantIDs
	if winners == nil {
		winners = []string{}
	}

	return contestResultsDTO{
		ContestID:        results.Contest.ID,
		FinalizedAt:      results.Contest.FinalizedAt,
		FinalizeReason:   results.FinalizeReason,
		ResultsByGame:    resultsByGame,
		ActualTiebreaker: results.ActualTiebreaker,
		WinnerEntrantIDs: winners,
		PotCents:         entryFeeCents * int64(len(results.Scored)),
		Leaderboard:      leaderboard,
	}
}
