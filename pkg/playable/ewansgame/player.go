package ewansgame

import "fmt"

// bonus is awarded on top of the bid when a player makes their bid exactly
const bonus = 10

// Player is a named player and their running score
type Player struct {
	name  string
	score int
}

// NewPlayer returns a new player with a score of zero
func NewPlayer(name string) *Player {
	return &Player{name: name}
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.name
}

// Score returns the player's cumulative score
func (p *Player) Score() int {
	return p.score
}

func (p *Player) String() string {
	return fmt.Sprintf("%s: %d", p.name, p.score)
}

// HandScore returns the points earned for a hand
func HandScore(bid, tricks int) int {
	if bid != tricks {
		return 0
	}

	return bonus + bid
}

// ApplyHandResult adds the points for the hand and returns them
func (p *Player) ApplyHandResult(bid, tricks int) int {
	points := HandScore(bid, tricks)
	p.score += points
	return points
}

// ScoreKeeper keeps the scores for both players
type ScoreKeeper struct {
	players [2]*Player
}

// NewScoreKeeper returns a score keeper for the two players
func NewScoreKeeper(playerOne, playerTwo *Player) *ScoreKeeper {
	return &ScoreKeeper{
		players: [2]*Player{playerOne, playerTwo},
	}
}

// Players returns the players in seating order
func (s *ScoreKeeper) Players() []*Player {
	return []*Player{s.players[0], s.players[1]}
}

// ApplyHand scores a finished hand for both players
func (s *ScoreKeeper) ApplyHand(bids, tricks [2]int) (points [2]int) {
	for i, player := range s.players {
		points[i] = player.ApplyHandResult(bids[i], tricks[i])
	}

	return points
}

// Leader returns the player with the strictly higher score, or nil on a draw
func (s *ScoreKeeper) Leader() *Player {
	one, two := s.players[0], s.players[1]
	switch {
	case one.score > two.score:
		return one
	case one.score < two.score:
		return two
	}

	return nil
}
