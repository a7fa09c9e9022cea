package ewansgame

import (
	"context"
	"ewansgame/pkg/playable"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Game is a single game of thirteen hands between two players
type Game struct {
	id        string
	options   Options
	prompter  playable.Prompter
	sequencer *Sequencer
	scores    *ScoreKeeper
	logger    logrus.FieldLogger

	state State

	// hand data, reset at the start of every hand
	hand   HandSpec
	bids   [2]int
	tricks [2]int

	result *Result // only populated once the game is over
}

// NewGame returns a new game for the two named players
func NewGame(logger logrus.FieldLogger, prompter playable.Prompter, playerOne, playerTwo string, options Options) (*Game, error) {
	if playerOne == "" || playerTwo == "" {
		return nil, ErrEmptyPlayerName
	}

	if playerOne == playerTwo {
		return nil, ErrDuplicatePlayerName
	}

	id := uuid.New().String()
	return &Game{
		id:        id,
		options:   options,
		prompter:  prompter,
		sequencer: NewSequencer(),
		scores:    NewScoreKeeper(NewPlayer(playerOne), NewPlayer(playerTwo)),
		logger:    logger.WithField("gameID", id),
		state:     StateAwaitingHand,
	}, nil
}

// ID returns the unique ID of the game
func (g *Game) ID() string {
	return g.id
}

// State returns the current state of the game
func (g *Game) State() State {
	return g.state
}

// Players returns both players in seating order
func (g *Game) Players() []*Player {
	return g.scores.Players()
}

// Play runs the game until every hand has been played
// An aborted game returns an error wrapping playable.ErrUserAbort and no result
func (g *Game) Play(ctx context.Context) (*Result, error) {
	g.logger.Debug("game started")
	for g.state != StateGameOver {
		if err := g.step(ctx); err != nil {
			g.logger.WithError(err).WithField("state", g.state).Debug("game stopped")
			return nil, err
		}
	}

	return g.result, nil
}

// step performs a single state transition
// A rejected bid or trick count leaves the state unchanged
func (g *Game) step(ctx context.Context) error {
	from := g.state

	switch g.state {
	case StateAwaitingHand:
		hand, ok := g.sequencer.Next()
		if !ok {
			g.endGame()
			g.state = StateGameOver
			break
		}

		g.startHand(hand)
		g.state = StateAwaitingBidOne

	case StateAwaitingBidOne:
		bid, err := g.readNumber(ctx, g.prompt(0, "bid"))
		if err != nil {
			return err
		}

		g.bids[0] = bid
		g.state = StateAwaitingBidTwo

	case StateAwaitingBidTwo:
		bid, err := g.readNumber(ctx, g.prompt(1, "bid"))
		if err != nil {
			return err
		}

		if err := checkBids(g.bids[0], bid, g.hand.CardCount); err != nil {
			g.reject(err, logrus.Fields{"bidOne": g.bids[0], "bidTwo": bid})
			return nil
		}

		g.bids[1] = bid
		g.state = StateAwaitingTricks

	case StateAwaitingTricks:
		tricksOne, err := g.readNumber(ctx, g.prompt(0, "tricks"))
		if err != nil {
			return err
		}

		tricksTwo, err := g.readNumber(ctx, g.prompt(1, "tricks"))
		if err != nil {
			return err
		}

		if err := checkTricks(tricksOne, tricksTwo, g.hand.CardCount); err != nil {
			g.reject(err, logrus.Fields{"tricksOne": tricksOne, "tricksTwo": tricksTwo})
			return nil
		}

		g.tricks = [2]int{tricksOne, tricksTwo}
		g.state = StateScored

	case StateScored:
		g.scoreHand()
		g.state = StateAwaitingHand

	case StateGameOver:
		return ErrGameIsOver

	default:
		panic(fmt.Sprintf("unknown state: %d", g.state))
	}

	g.logger.WithFields(logrus.Fields{
		"from": from,
		"to":   g.state,
	}).Debug("state transition")

	return nil
}

func (g *Game) startHand(hand HandSpec) {
	g.hand = hand
	g.bids = [2]int{}
	g.tricks = [2]int{}

	g.logger.WithFields(logrus.Fields{
		"hand":      hand.Number,
		"cardCount": hand.CardCount,
		"trump":     hand.Trump,
		"remaining": g.sequencer.Remaining(),
	}).Debug("new hand")

	playable.WriteStyled(g.prompter, playable.StyleHeading, "Deal %d cards", hand.CardCount)
	if hand.Trump.IsTrump() {
		playable.WriteStyled(g.prompter, playable.StylePlain, "Trumps: %s %s", hand.Trump, hand.Trump.Symbol())
	} else {
		playable.WriteStyled(g.prompter, playable.StylePlain, "Trumps: %s", hand.Trump)
	}
}

func (g *Game) scoreHand() {
	points := g.scores.ApplyHand(g.bids, g.tricks)

	log := g.logger.WithField("hand", g.hand.Number)
	for i, player := range g.scores.Players() {
		log.WithFields(logrus.Fields{
			"player": player.Name(),
			"bid":    g.bids[i],
			"tricks": g.tricks[i],
			"points": points[i],
			"score":  player.Score(),
		}).Debug("hand scored")
	}

	if g.options.ShowRunningScores {
		for _, player := range g.scores.Players() {
			playable.WriteStyled(g.prompter, playable.StylePlain, "%s", player)
		}
	}

	playable.WriteStyled(g.prompter, playable.StylePlain, "---")
}

func (g *Game) endGame() {
	g.result = newResult(g.id, g.scores)

	playable.WriteStyled(g.prompter, playable.StyleHeading, "Final scores:")
	playable.WriteStyled(g.prompter, playable.StyleHeading, "============")
	for _, player := range g.result.Players {
		playable.WriteStyled(g.prompter, playable.StylePlain, "%s: %d", player.Name, player.Score)
	}

	playable.WriteStyled(g.prompter, playable.StyleSuccess, "The winner is %s", g.result.Leader())

	g.logger.WithFields(logrus.Fields{
		"winner": g.result.Winner,
		"isDraw": g.result.IsDraw,
	}).Debug("game over")
}

// reject reports an input that broke a hand rule
func (g *Game) reject(err ruleError, fields logrus.Fields) {
	g.logger.WithError(err).WithFields(fields).WithField("hand", g.hand.Number).Debug("input rejected")
	playable.WriteStyled(g.prompter, playable.StyleWarning, "%s", err.Message())
}

func (g *Game) prompt(seat int, field string) string {
	return fmt.Sprintf("%s's %s: ", g.scores.players[seat].Name(), field)
}

// readNumber prompts until a non-negative whole number is entered
func (g *Game) readNumber(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := g.prompter.ReadLine(ctx, prompt)
		if err != nil {
			return 0, fmt.Errorf("hand %d: %w", g.hand.Number, err)
		}

		n, err := parseNumber(line)
		if err != nil {
			g.logger.WithError(err).WithField("input", line).Debug("invalid number")
			playable.WriteStyled(g.prompter, playable.StyleWarning, "%s", err)
			continue
		}

		return n, nil
	}
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidInteger
	}

	if n < 0 {
		return 0, ErrNegativeNumber
	}

	return n, nil
}
