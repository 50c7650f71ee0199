package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/term"
)

var (
	log = logrus.New()

	logFile string
)

// gameFlags are decoded into a [config.Game] by name, so they must match its
// schema tags.
var gameFlags = []struct{ name, usage string }{
	{"preset", "board preset: beginner, intermediate or expert"},
	{"rows", "number of rows"},
	{"cols", "number of columns"},
	{"mines", "number of mines"},
	{"seed", "seed for the mine layout"},
	{"theme", "colour theme"},
}

func init() {
	for _, f := range gameFlags {
		flag.String(f.name, "", f.usage)
	}
	flag.StringVar(&logFile, "log-file", config.LogFile(), "write JSON logs to this file as well")
}

// flagGame decodes only the game flags given on the command line, so unset
// ones do not shadow the environment.
func flagGame() (config.Game, error) {
	src := make(map[string][]string)
	flag.Visit(func(f *flag.Flag) {
		src[f.Name] = []string{f.Value.String()}
	})
	return config.DecodeGame(src)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	logging := config.Logging{Development: config.Development(), File: logFile}
	if err := logging.Setup(log, mines.Log); err != nil {
		log.Fatal(err)
	}
	log.WithFields(logging.Fields()).Debug("logging")

	envGame, err := config.GameFromEnv()
	if err != nil {
		log.Fatal("unable to read environment: ", err)
	}
	argGame, err := flagGame()
	if err != nil {
		log.Fatal("unable to parse flags: ", err)
	}
	game := envGame.Merge(argGame)

	session, err := term.NewSession(game, log, os.Stdout)
	if err != nil {
		log.Fatal("unable to start game: ", err)
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return session.Run(gCtx, os.Stdin, os.Stdout)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("exit reason: %s\n", err)
	}
}
