package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/planetonomy/internal/application/game"
	"github.com/younwookim/planetonomy/internal/application/replay"
	"github.com/younwookim/planetonomy/internal/application/scene/playing"
	"github.com/younwookim/planetonomy/internal/application/session"
	"github.com/younwookim/planetonomy/internal/infrastructure/config"
	"github.com/younwookim/planetonomy/internal/infrastructure/logging"
	"github.com/younwookim/planetonomy/internal/infrastructure/render"
)

// options holds the command line flags
type options struct {
	stage      string
	configDir  string
	recordPath string
	replayPath string
	headless   bool
	logPath    string
	debug      bool
	atlasPath  string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.stage, "stage", "demo", "Stage id to play (configs/stages/<id>.json)")
	flag.StringVar(&o.configDir, "configs", "", "Read configs from this directory instead of the embedded ones")
	flag.StringVar(&o.recordPath, "record", "", "Record input to file (e.g., -record replay.json, or -record auto for a timestamped name)")
	flag.StringVar(&o.replayPath, "replay", "", "Play back a recording instead of reading the keyboard")
	flag.BoolVar(&o.headless, "headless", false, "With -replay, simulate without a window and print the outcome")
	flag.StringVar(&o.logPath, "log", "", "Write logs to this file with rotation instead of stderr")
	flag.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	flag.StringVar(&o.atlasPath, "atlas", "", "PNG sprite atlas inside the config filesystem; rectangles are drawn without it")
	flag.Parse()
	return o
}

func main() {
	opts := parseFlags()

	logger, closeLog := logging.New(logging.Options{FilePath: opts.logPath, Debug: opts.debug})
	if err := run(opts, logger); err != nil {
		logger.Error("game failed", zap.Error(err))
		closeLog()
		os.Exit(1)
	}
	closeLog()
}

// configSource returns the config filesystem and a label for it
func configSource(dir string) (fs.FS, string, error) {
	if dir != "" {
		return os.DirFS(dir), dir, nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get config subfs: %w", err)
	}
	return fsys, "configs", nil
}

func run(opts options, logger *zap.Logger) error {
	if opts.headless && opts.replayPath == "" {
		return errors.New("-headless requires -replay")
	}

	fsys, base, err := configSource(opts.configDir)
	if err != nil {
		return err
	}
	loader := config.NewFSLoader(fsys, base)

	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	stage := opts.stage
	var replayer *replay.Replayer
	if opts.replayPath != "" {
		replayer, stage, err = loadReplay(opts.replayPath, stage)
		if err != nil {
			return err
		}
	}

	level, stageCfg, err := session.LoadStage(loader, stage, logger)
	if err != nil {
		return fmt.Errorf("failed to load stage: %w", err)
	}

	sess, err := session.New(level, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	if opts.headless {
		outcome := runHeadless(sess, replayer, logger)
		fmt.Printf("%s after %d ticks at (%.2f, %.2f)\n", outcome, sess.Tick(), sess.Player().X, sess.Player().Y)
		return nil
	}

	var atlas *ebiten.Image
	if opts.atlasPath != "" {
		if atlas, err = render.LoadAtlas(fsys, opts.atlasPath); err != nil {
			return err
		}
	}

	display := cfg.Physics.Display
	painter := render.NewPainter(atlas, display.ScreenWidth, display.ScreenHeight)
	scene := playing.New(sess, cfg, stageCfg, painter, playing.Options{
		RecordPath: recordPath(opts.recordPath),
		Replayer:   replayer,
		Logger:     logger,
	})
	g := game.New(scene, cfg.Physics.TickDuration())

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Planetonomy - " + stageCfg.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(display.Framerate)

	return ebiten.RunGame(g)
}
