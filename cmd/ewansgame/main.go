package main

import (
	"context"
	"errors"
	"ewansgame/internal/config"
	"ewansgame/internal/console"
	"ewansgame/pkg/playable"
	"ewansgame/pkg/playable/ewansgame"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Version is the score keeper version
var Version = "v0.0.0-dev"

var showVersion = flag.Bool("version", false, "print the version and exit")

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println(Version)
		return
	}

	setupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Instance()
	con := console.New(os.Stdin, os.Stdout, useColor(cfg.Color))

	if err := run(ctx, con, cfg); err != nil {
		if errors.Is(err, playable.ErrUserAbort) {
			con.WriteLine("")
			con.WriteLine("Exiting...")
			return
		}

		logrus.WithError(err).Fatal("could not play the game")
	}
}

func run(ctx context.Context, prompter playable.Prompter, cfg config.Config) error {
	playerOne, playerTwo, err := ewansgame.PromptPlayerNames(ctx, prompter)
	if err != nil {
		return err
	}

	options := ewansgame.DefaultOptions()
	options.ShowRunningScores = cfg.ShowRunningScores

	game, err := ewansgame.NewGame(logrus.StandardLogger(), prompter, playerOne, playerTwo, options)
	if err != nil {
		return err
	}

	_, err = game.Play(ctx)
	return err
}

func useColor(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
