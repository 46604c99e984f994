package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"gridsnake/game"
	"gridsnake/ui"
	"gridsnake/ui/terminal"
	"gridsnake/ui/window"
)

const (
	frontendWindow   = "window"
	frontendTerminal = "terminal"
)

func main() {
	app := cli.NewApp()
	app.Name = "gridsnake"
	app.Usage = "grid snake with a burst-input speed boost"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "frontend", Value: frontendWindow, Usage: "window or terminal"},
		cli.IntFlag{Name: "speed", Value: int(game.DefaultConfig().BaseInterval / time.Millisecond), Usage: "Base tick interval in milliseconds (lower = faster)"},
		cli.Uint64Flag{Name: "seed", Usage: "Food placement seed, 0 derives one from the clock"},
		cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error"},
		cli.StringFlag{Name: "log-file", Usage: "Append logs to this file instead of stderr"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		level.Error(log.NewLogfmtLogger(os.Stderr)).Log("err", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, errors.Errorf("unknown log level %q", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, opt), nil
}

func run(c *cli.Context) error {
	frontend := c.String("frontend")
	if frontend != frontendWindow && frontend != frontendTerminal {
		return errors.Errorf("unknown frontend %q", frontend)
	}

	// The terminal screen owns stderr, so logs go to a file or nowhere
	var out io.Writer = os.Stderr
	if path := c.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return errors.Wrap(err, "open log file")
		}
		defer f.Close()
		out = f
	} else if frontend == frontendTerminal {
		out = io.Discard
	}

	logger, err := newLogger(out, c.String("log-level"))
	if err != nil {
		return err
	}

	cfg := game.DefaultConfig()
	cfg.BaseInterval = time.Duration(c.Int("speed")) * time.Millisecond
	cfg.Seed = c.Uint64("seed")
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	surface := ui.NewSurface()
	renderer := ui.NewRenderer(surface, surface, surface)
	g, err := game.NewGame(cfg, game.WithLogger(logger), game.WithView(renderer))
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	level.Info(logger).Log("msg", "starting", "frontend", frontend, "period", cfg.BaseInterval, "seed", cfg.Seed)

	switch frontend {
	case frontendWindow:
		width, height := ui.CanvasSize(cfg.Grid)
		w, err := window.Open("Snake", width, height, surface, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		w.Run(g)

	case frontendTerminal:
		screen, err := terminal.Open()
		if err != nil {
			return err
		}
		defer screen.Fini()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := terminal.New(screen, surface, logger).Run(ctx, g); err != nil {
			return errors.Wrap(err, "terminal")
		}
	}

	level.Info(logger).Log(
		"msg", "session summary",
		"games", g.Stats.GamesPlayed(),
		"best", g.Stats.BestScore,
		"average", g.Stats.AverageScore(),
	)
	return nil
}
