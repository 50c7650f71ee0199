package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/gui"
	"github.com/vancomm/minesweeper/internal/gui/desktop"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	log = logrus.New()

	logFile string
)

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

func flagGame() (config.Game, error) {
	src := make(map[string][]string)
	flag.Visit(func(f *flag.Flag) {
		src[f.Name] = []string{f.Value.String()}
	})
	return config.DecodeGame(src)
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	logging := config.Logging{Development: config.Development(), File: logFile}
	if err := logging.Setup(log, mines.Log); err != nil {
		log.Fatal(err)
	}

	envGame, err := config.GameFromEnv()
	if err != nil {
		log.Fatal("unable to read environment: ", err)
	}
	argGame, err := flagGame()
	if err != nil {
		log.Fatal("unable to parse flags: ", err)
	}
	game := envGame.Merge(argGame)

	// fail before opening a window if the board cannot be built
	if _, err := game.Params(); err != nil {
		log.Fatal(err)
	}

	log.Info("starting up")
	if err := desktop.Run(ctx, gui.NewController(game, log)); err != nil {
		log.Fatal(err)
	}
}
