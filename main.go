package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"tictactoe/communication"
	"tictactoe/communication/client"
	"tictactoe/communication/process"
	"tictactoe/experiments"
	"tictactoe/game"
	"tictactoe/searcher/agent"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	board         string
	difficulty    string
	mark          string
	seed          uint64
	classifierCmd string
	classifierURL string
	experiment    string
	games         int
	out           string
	logLevel      string
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("tictactoe", flag.ContinueOnError)
	fs.StringVar(&cfg.board, "board", "", `Board to move on, rows separated by ";" and cells by "," (e.g. "X,_,_;_,O,_;_,_,_")`)
	fs.StringVar(&cfg.difficulty, "difficulty", "hard", "Difficulty: external, easy, medium or hard")
	fs.StringVar(&cfg.mark, "mark", "", "Mark of the automated player (default: the player to move)")
	fs.Uint64Var(&cfg.seed, "seed", 0, "Seed for random choices (default: time based)")
	fs.StringVar(&cfg.classifierCmd, "classifier-cmd", "", "Command run with the encoded board at the external difficulty")
	fs.StringVar(&cfg.classifierURL, "classifier-url", "", "URL posted the encoded board at the external difficulty")
	fs.StringVar(&cfg.experiment, "experiment", "", "Run the tier experiment under this name instead of suggesting a move")
	fs.IntVar(&cfg.games, "games", experiments.NumGames, "Games per matchup in an experiment")
	fs.StringVar(&cfg.out, "out", "results", "Directory experiment results are written to")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if _, err := zerolog.ParseLevel(cfg.logLevel); err != nil {
		return cfg, fmt.Errorf("invalid -log-level %q: %w", cfg.logLevel, err)
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := zerolog.ParseLevel(cfg.logLevel)
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("tictactoe failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, out io.Writer) error {
	if cfg.experiment != "" {
		summary, err := experiments.Run(ctx, cfg.experiment, cfg.out, cfg.games, cfg.seed)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d games: X won %d, O won %d, %d draws\nresults in %s\n",
			summary.Games, summary.XWins, summary.OWins, summary.Draws, summary.Dir)
		return nil
	}

	if cfg.board == "" {
		return errors.New("either -board or -experiment is required")
	}
	board, err := game.ParseBoard(cfg.board)
	if err != nil {
		return err
	}
	difficulty, err := game.ParseDifficulty(cfg.difficulty)
	if err != nil {
		return err
	}
	mark := board.Turn()
	if cfg.mark != "" {
		if mark, err = game.ParseCell(cfg.mark); err != nil {
			return err
		}
	}

	options := []agent.Option{}
	if cfg.seed != 0 {
		options = append(options, agent.WithSeed(cfg.seed))
	}
	if difficulty == game.External {
		classifier, err := newClassifier(cfg)
		if err != nil {
			return err
		}
		options = append(options, agent.WithClassifier(classifier))
	}

	move, err := agent.SelectMove(ctx, board, agent.Config{Difficulty: difficulty, Mark: mark}, options...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d %d\n", move.Row, move.Col)
	return nil
}

func newClassifier(cfg config) (communication.Classifier, error) {
	switch {
	case cfg.classifierCmd != "" && cfg.classifierURL != "":
		return nil, errors.New("-classifier-cmd and -classifier-url are exclusive")
	case strings.TrimSpace(cfg.classifierCmd) != "":
		fields := strings.Fields(cfg.classifierCmd)
		return process.New(fields[0], fields[1:]...), nil
	case cfg.classifierURL != "":
		return client.NewClassifier(cfg.classifierURL, &http.Client{Timeout: 10 * time.Second}), nil
	default:
		return nil, errors.New("the external difficulty needs -classifier-cmd or -classifier-url")
	}
}
