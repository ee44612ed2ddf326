package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/keygate/internal/application/game"
	"github.com/younwookim/keygate/internal/application/scene"
	"github.com/younwookim/keygate/internal/application/scene/playing"
	"github.com/younwookim/keygate/internal/application/scene/title"
	"github.com/younwookim/keygate/internal/infrastructure/config"
)

// options are the command line settings
type options struct {
	configDir  string
	watch      bool
	record     string
	replay     string
	seed       int64
	background string
	verbose    bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fset := flag.NewFlagSet("game", flag.ContinueOnError)
	fset.SetOutput(output)
	fset.StringVar(&opts.configDir, "config", "", "Load configs from this directory instead of the embedded defaults")
	fset.BoolVar(&opts.watch, "watch", false, "Reload levels and questions when files under -config change")
	fset.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&opts.replay, "replay", "", "Replay a recording headlessly and print the final state")
	fset.Int64Var(&opts.seed, "seed", 0, "RNG seed for question selection (0 = time based)")
	fset.StringVar(&opts.background, "background", "", "Background image drawn behind every level")
	fset.BoolVar(&opts.verbose, "v", false, "Verbose (debug) logging")
	if err := fset.Parse(args); err != nil {
		return options{}, err
	}

	if opts.watch && opts.configDir == "" {
		return options{}, fmt.Errorf("-watch needs -config")
	}
	if opts.watch && opts.record != "" {
		return options{}, fmt.Errorf("-watch cannot be combined with -record: reloaded content is not recorded")
	}
	return opts, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newLoader returns a loader for -config, or for the embedded defaults
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadBackground returns nil when path cannot be read or decoded, so the
// level colours are drawn instead
func loadBackground(path string, logger *slog.Logger) *ebiten.Image {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		logger.Warn("background unavailable", "file", path, "error", err)
		return nil
	}
	return img
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	logger := newLogger(os.Stderr, opts.verbose)

	if err := run(opts, logger); err != nil {
		logger.Error("exiting", "error", err)
		os.Exit(1)
	}
}

func run(opts options, logger *slog.Logger) error {
	loader, err := newLoader(opts.configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Info("config loaded", "source", loader.BasePath(), "levels", len(cfg.Levels), "questions", len(cfg.Questions.Questions))

	if opts.replay != "" {
		snap, err := runReplay(cfg, opts.replay, logger)
		if err != nil {
			return err
		}
		logSnapshot(logger, snap)
		return nil
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	popts := playing.Options{
		Seed:       seed,
		RecordPath: opts.record,
		Logger:     logger,
	}

	if opts.background != "" {
		popts.Background = loadBackground(opts.background, logger)
	}

	if opts.watch {
		w, err := config.NewWatcher(opts.configDir, filepath.Join(opts.configDir, "levels"))
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", opts.configDir, err)
		}
		defer func() { _ = w.Close() }()
		popts.Loader = loader
		popts.Watcher = w
		logger.Info("watching config", "dir", opts.configDir)
	}

	display := cfg.Settings.Display
	start := title.New(display.Title, display.ScreenWidth, display.ScreenHeight, func() (scene.Scene, error) {
		return playing.New(cfg, popts)
	})
	g := game.New(start, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	return ebiten.RunGame(g)
}
