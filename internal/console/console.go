package console

import (
	"bufio"
	"context"
	"errors"
	"ewansgame/pkg/playable"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// palette
var (
	clrTitle = lipgloss.Color("#58a6ff")
	clrRed   = lipgloss.Color("#f85149")
	clrGreen = lipgloss.Color("#3fb950")
)

type readResult struct {
	line string
	err  error
}

// Console is a playable.Prompter on top of a reader and a writer
type Console struct {
	in  io.Reader
	out io.Writer

	// lines is fed by a single reader goroutine
	lines     chan readResult
	startOnce sync.Once

	// styles is nil if colours are disabled
	styles map[playable.Style]lipgloss.Style
}

var _ playable.Prompter = (*Console)(nil)
var _ playable.Styler = (*Console)(nil)

// New returns a new console
func New(in io.Reader, out io.Writer, color bool) *Console {
	c := &Console{
		in:    in,
		out:   out,
		lines: make(chan readResult),
	}

	if color {
		renderer := lipgloss.NewRenderer(out)
		renderer.SetColorProfile(termenv.ANSI256)

		c.styles = map[playable.Style]lipgloss.Style{
			playable.StyleHeading: renderer.NewStyle().Foreground(clrTitle).Bold(true),
			playable.StyleWarning: renderer.NewStyle().Foreground(clrRed),
			playable.StyleSuccess: renderer.NewStyle().Foreground(clrGreen).Bold(true),
		}
	}

	return c
}

func (c *Console) start() {
	go func() {
		defer close(c.lines)

		reader := bufio.NewReader(c.in)
		for {
			str, err := reader.ReadString('\n')
			if str != "" {
				c.lines <- readResult{line: strings.TrimRight(str, "\r\n")}
			}

			if err != nil {
				if !errors.Is(err, io.EOF) {
					c.lines <- readResult{err: err}
				}

				return
			}
		}
	}()
}

// ReadLine prints the prompt and waits for a line
// playable.ErrUserAbort is returned if the context is done or the input is closed
// Any other read error is returned wrapped
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", playable.ErrUserAbort
	}

	c.startOnce.Do(c.start)
	_, _ = fmt.Fprint(c.out, prompt)

	select {
	case <-ctx.Done():
		return "", playable.ErrUserAbort
	case res, ok := <-c.lines:
		if !ok {
			return "", playable.ErrUserAbort
		}

		if res.err != nil {
			return "", fmt.Errorf("could not read input: %w", res.err)
		}

		return res.line, nil
	}
}

// ReadNonEmptyLine prints the prompt until a line with something other than whitespace is entered
// The returned line is trimmed
func (c *Console) ReadNonEmptyLine(ctx context.Context, prompt string) (string, error) {
	for {
		line, err := c.ReadLine(ctx, prompt)
		if err != nil {
			return "", err
		}

		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
}

// WriteLine writes the text followed by a newline
func (c *Console) WriteLine(text string) {
	_, _ = fmt.Fprintln(c.out, text)
}

// Style renders the text in the given style
// Text is returned unchanged when colours are disabled
func (c *Console) Style(style playable.Style, text string) string {
	s, ok := c.styles[style]
	if !ok {
		return text
	}

	return s.Render(text)
}
