package ewansgame

// DrawResult is reported in place of a name when the scores are tied
const DrawResult = "Draw!!"

// PlayerScore is a player's final score
type PlayerScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Result contains the results from a completed game
type Result struct {
	GameID  string         `json:"gameId"`
	Players []*PlayerScore `json:"players"`
	// Winner is empty on a draw
	Winner string `json:"winner"`
	IsDraw bool   `json:"isDraw"`
}

func newResult(gameID string, scores *ScoreKeeper) *Result {
	players := make([]*PlayerScore, 0, 2)
	for _, player := range scores.Players() {
		players = append(players, &PlayerScore{
			Name:  player.Name(),
			Score: player.Score(),
		})
	}

	res := &Result{
		GameID:  gameID,
		Players: players,
	}

	if leader := scores.Leader(); leader != nil {
		res.Winner = leader.Name()
	} else {
		res.IsDraw = true
	}

	return res
}

// Leader returns the winner's name, or DrawResult if the game was a draw
func (r *Result) Leader() string {
	if r.IsDraw {
		return DrawResult
	}

	return r.Winner
}
