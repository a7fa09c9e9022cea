package ewansgame

import (
	"context"
	"ewansgame/pkg/playable"
	"fmt"
)

// PromptPlayerNames asks for both player names
// The second name is asked for again until it differs from the first
func PromptPlayerNames(ctx context.Context, prompter playable.Prompter) (playerOne string, playerTwo string, err error) {
	playerOne, err = prompter.ReadNonEmptyLine(ctx, namePrompt(1))
	if err != nil {
		return "", "", err
	}

	for {
		playerTwo, err = prompter.ReadNonEmptyLine(ctx, namePrompt(2))
		if err != nil {
			return "", "", err
		}

		if playerTwo != playerOne {
			return playerOne, playerTwo, nil
		}

		playable.WriteStyled(prompter, playable.StyleWarning, "%s", ErrDuplicatePlayerName)
	}
}

func namePrompt(seat int) string {
	return fmt.Sprintf("Enter name of player %d: ", seat)
}
