package ewansgame

import (
	"context"
	"ewansgame/pkg/playable"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// scriptedPrompter replays canned input and records everything written
// It aborts once the script runs out
type scriptedPrompter struct {
	input   []string
	prompts []string
	output  []string
}

func newScriptedPrompter(input ...string) *scriptedPrompter {
	return &scriptedPrompter{input: input}
}

func (s *scriptedPrompter) ReadNonEmptyLine(ctx context.Context, prompt string) (string, error) {
	for {
		line, err := s.ReadLine(ctx, prompt)
		if err != nil {
			return "", err
		}

		if line != "" {
			return line, nil
		}
	}
}

func (s *scriptedPrompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", playable.ErrUserAbort
	}

	s.prompts = append(s.prompts, prompt)
	if len(s.input) == 0 {
		return "", playable.ErrUserAbort
	}

	line := s.input[0]
	s.input = s.input[1:]
	return line, nil
}

func (s *scriptedPrompter) WriteLine(text string) {
	s.output = append(s.output, text)
}

func (s *scriptedPrompter) push(input ...interface{}) {
	for _, in := range input {
		switch v := in.(type) {
		case int:
			s.input = append(s.input, strconv.Itoa(v))
		case string:
			s.input = append(s.input, v)
		default:
			panic("unsupported input")
		}
	}
}

func (s *scriptedPrompter) outputContains(text string) int {
	count := 0
	for _, line := range s.output {
		if strings.Contains(line, text) {
			count++
		}
	}

	return count
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func setupGame(t *testing.T, input ...string) (*Game, *scriptedPrompter) {
	t.Helper()

	prompter := newScriptedPrompter(input...)
	g, err := NewGame(discardLogger(), prompter, "Ewan", "Mairi", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	return g, prompter
}

// skipToHand positions the sequencer so the next hand drawn is the given 1-based hand
func skipToHand(g *Game, number int) {
	g.sequencer.index = number - 1
}

// playHand steps through one full hand, from drawing it to scoring it
func playHand(t *testing.T, g *Game) {
	t.Helper()

	ctx := context.Background()
	if g.state != StateAwaitingHand {
		t.Fatalf("expected %s, got %s", StateAwaitingHand, g.state)
	}

	for i := 0; ; i++ {
		if err := g.step(ctx); err != nil {
			t.Fatal(err)
		}

		if g.state == StateAwaitingHand || g.state == StateGameOver {
			return
		}

		if i > 100 {
			t.Fatal("hand did not finish")
		}
	}
}
