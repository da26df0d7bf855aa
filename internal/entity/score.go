package entity

// Score holds the counters shared by both players for the whole session.
type Score struct {
	Draws  int
	Rounds int
}

type PlayerScore struct {
	Name   string `json:"name"`
	Mark   string `json:"mark"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Scoreboard is a point-in-time copy of the session scores, taken after each round.
type Scoreboard struct {
	SessionID string         `json:"session_id"`
	Players   [2]PlayerScore `json:"players"`
	Draws     int            `json:"draws"`
	Rounds    int            `json:"rounds"`
}

func NewScoreboard(sessionID string, first, second *Player, score Score) Scoreboard {
	return Scoreboard{
		SessionID: sessionID,
		Players:   [2]PlayerScore{playerScore(first), playerScore(second)},
		Draws:     score.Draws,
		Rounds:    score.Rounds,
	}
}

func playerScore(player *Player) PlayerScore {
	return PlayerScore{
		Name:   player.Name,
		Mark:   string(player.Mark),
		Wins:   player.Wins,
		Losses: player.Losses,
	}
}
