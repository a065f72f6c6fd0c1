package model

import (
	"context"
	"time"

	"euchre-server/pkg/db"
)

const gameResultColumns = `
game_results.id,
game_results.player_id,
game_results.game_uuid,
game_results.player_team_score,
game_results.opponent_team_score,
game_results.player_team_won,
game_results.hands_played,
game_results.created`

// GameResult is a record in the `game_results` table. One row is written per
// player when their game finishes.
type GameResult struct {
	ID                int64     `json:"id"`
	PlayerID          int64     `json:"playerId"`
	GameUUID          string    `json:"gameUuid"`
	PlayerTeamScore   int       `json:"playerTeamScore"`
	OpponentTeamScore int       `json:"opponentTeamScore"`
	PlayerTeamWon     bool      `json:"playerTeamWon"`
	HandsPlayed       int       `json:"handsPlayed"`
	Created           time.Time `json:"created"`
}

func getGameResultByRow(row db.Scanner) (*GameResult, error) {
	var gr GameResult
	if err := row.Scan(&gr.ID, &gr.PlayerID, &gr.GameUUID, &gr.PlayerTeamScore, &gr.OpponentTeamScore, &gr.PlayerTeamWon, &gr.HandsPlayed, &gr.Created); err != nil {
		return nil, err
	}

	return &gr, nil
}

// CreateGameResult records the outcome of a finished game for the player
func CreateGameResult(ctx context.Context, playerID int64, gameUUID string, playerScore, opponentScore, handsPlayed int) (*GameResult, error) {
	const query = `
INSERT INTO game_results (player_id, game_uuid, player_team_score, opponent_team_score, player_team_won, hands_played)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + gameResultColumns

	row := db.Instance().QueryRowContext(ctx, query, playerID, gameUUID, playerScore, opponentScore, playerScore > opponentScore, handsPlayed)
	return getGameResultByRow(row)
}

// GetGameResultsByPlayerID returns the player's game history, newest first
func GetGameResultsByPlayerID(ctx context.Context, playerID int64, start int64, rows int) ([]*GameResult, error) {
	const query = `
SELECT ` + gameResultColumns + `
FROM game_results
WHERE player_id = $1
ORDER BY created DESC, id DESC
OFFSET $2 LIMIT $3`

	res, err := db.Instance().QueryContext(ctx, query, playerID, start, rows)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	results := make([]*GameResult, 0)
	for res.Next() {
		gr, err := getGameResultByRow(res)
		if err != nil {
			return nil, err
		}

		results = append(results, gr)
	}

	return results, res.Err()
}
