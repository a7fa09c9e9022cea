package playable

import (
	"context"
	"errors"
	"fmt"
)

// ErrUserAbort is returned by a Prompter when the player aborts the game,
// either by an interrupt or by closing the input
var ErrUserAbort = errors.New("user aborted the game")

// Prompter is the line input/output collaborator a game talks to its players through
type Prompter interface {
	// ReadNonEmptyLine blocks until a non-empty line is entered
	// Empty lines cause the prompt to be shown again
	ReadNonEmptyLine(ctx context.Context, prompt string) (string, error)

	// ReadLine blocks until a line is entered, which may be empty
	ReadLine(ctx context.Context, prompt string) (string, error)

	// WriteLine emits a single line of output
	WriteLine(text string)
}

// Style is a presentation hint for a line of output
type Style int

// style constants
const (
	StylePlain Style = iota
	StyleHeading
	StyleWarning
	StyleSuccess
)

func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleHeading:
		return "heading"
	case StyleWarning:
		return "warning"
	case StyleSuccess:
		return "success"
	}

	return ""
}

// Styler is an optional capability of a Prompter
// A Prompter that doesn't implement it gets plain text
type Styler interface {
	Style(style Style, text string) string
}

// WriteStyled formats the text, styles it if the prompter supports it, and writes it
func WriteStyled(p Prompter, style Style, format string, a ...interface{}) {
	text := fmt.Sprintf(format, a...)
	if styler, ok := p.(Styler); ok {
		text = styler.Style(style, text)
	}

	p.WriteLine(text)
}
