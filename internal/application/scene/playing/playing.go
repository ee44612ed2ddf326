// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/keygate/internal/application/replay"
	"github.com/younwookim/keygate/internal/application/scene"
	"github.com/younwookim/keygate/internal/application/sim"
	"github.com/younwookim/keygate/internal/application/state"
	"github.com/younwookim/keygate/internal/application/system"
	"github.com/younwookim/keygate/internal/infrastructure/config"
)

// Options configures the optional parts of the scene
type Options struct {
	Seed int64

	// Loader and Watcher enable hot reload of levels and questions.
	// Both must be set.
	Loader  *config.Loader
	Watcher *config.Watcher

	// RecordPath enables input recording; the file is written on exit,
	// on game over and on F5.
	RecordPath string

	// Background is drawn under the playfield instead of the level color
	Background *ebiten.Image

	Logger *slog.Logger
}

// Playing is the main gameplay scene
type Playing struct {
	settings    *config.GameSettings
	driver      *sim.Driver
	inputSystem *system.InputSystem
	quiz        *quizDialog
	face        ebtext.Face

	backgrounds []color.RGBA
	bgImage     *ebiten.Image

	shake  *screenShake
	banner banner

	loader  *config.Loader
	watcher *config.Watcher
	log     *slog.Logger

	screenW int
	screenH int

	seed           int64
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene on the first level.
// The session starts when the scene is entered.
func New(cfg *config.GameConfig, opts Options) (*Playing, error) {
	levels, err := system.LoadLevels(cfg.Levels)
	if err != nil {
		return nil, err
	}
	pool, err := system.LoadQuestions(cfg.Questions)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	display := cfg.Settings.Display
	p := &Playing{
		settings:       cfg.Settings,
		inputSystem:    system.NewInputSystem(display.ScreenWidth, display.ScreenHeight),
		face:           ebtext.NewGoXFace(basicfont.Face7x13),
		bgImage:        opts.Background,
		shake:          newScreenShake(cfg.Settings.Feedback.ScreenShake),
		loader:         opts.Loader,
		watcher:        opts.Watcher,
		log:            logger,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		seed:           opts.Seed,
		recordFilename: opts.RecordPath,
	}
	p.backgrounds = p.levelBackgrounds(cfg.Levels)
	p.quiz = newQuizDialog(p.face, display.ScreenWidth, p.answerQuiz, p.cancelQuiz)

	p.driver, err = sim.New(cfg.Settings, levels, pool, sim.Collaborators{
		Quiz:     p.quiz,
		Notifier: p,
		Logger:   logger,
		Rand:     rand.New(rand.NewSource(opts.Seed)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(p.seed, p.driver.Session().LevelIndex)
		logger.Info("recording enabled", "file", p.recordFilename, "seed", p.seed)
	}
	return p, nil
}

// Driver returns the simulation driver behind the scene
func (p *Playing) Driver() *sim.Driver {
	return p.driver
}

// Notify implements sim.Notifier
func (p *Playing) Notify(ev sim.Event) {
	p.log.Debug("event", "kind", ev.Kind, "level", ev.Level)
	if ev.Kind == sim.EventPlayerHurt {
		p.shake.Kick()
	}
	p.banner.Show(messageFor(ev))
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.reload()

	session := p.driver.Session()
	switch session.Phase {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
			p.driver.TogglePause()
			p.record(replay.Command{Op: replay.OpPause})
		}
		if session.UserPaused && inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return nil, scene.ErrQuit
		}
	case state.StateQuizPending:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.quiz.Cancel()
		} else {
			p.quiz.Update()
		}
	case state.StateLevelComplete:
		if confirmPressed() {
			if err := p.driver.Advance(); err == nil {
				p.record(replay.Command{Op: replay.OpAdvance})
			}
		}
	case state.StateGameOver:
		if confirmPressed() {
			p.driver.Restart()
			p.record(replay.Command{Op: replay.OpRestart})
		}
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	input := p.inputSystem.GetInput()
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	p.driver.Tick(input)

	if p.driver.Session().Phase == state.StateGameOver && session.Phase != state.StateGameOver {
		// Auto-save recording on game over
		p.saveRecording()
	}

	p.shake.Update()
	p.banner.Update()
	return nil, nil // nil = stay on this scene
}

func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeyZ) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (p *Playing) answerQuiz(id uint64, answer string) {
	correct, err := p.driver.AnswerQuiz(id, answer)
	if err != nil {
		p.log.Warn("quiz answer dropped", "id", id, "error", err)
		return
	}
	p.record(replay.Command{Op: replay.OpAnswer, Answer: answer})
	p.log.Debug("quiz answered", "id", id, "correct", correct)
}

func (p *Playing) cancelQuiz(id uint64) {
	if err := p.driver.CancelQuiz(id); err != nil {
		p.log.Warn("quiz cancel dropped", "id", id, "error", err)
		return
	}
	p.record(replay.Command{Op: replay.OpCancel})
}

func (p *Playing) record(cmd replay.Command) {
	if p.recorder != nil {
		p.recorder.RecordCommand(cmd)
	}
}

// reload swaps in edited levels and questions when the watcher saw a change.
// A broken edit is logged and the running content is kept.
func (p *Playing) reload() {
	if p.watcher == nil || p.loader == nil {
		return
	}
	for _, err := range p.watcher.DrainErrors() {
		p.log.Warn("config watch error", "error", err)
	}
	if !p.watcher.Drain() {
		return
	}

	levelCfgs, questionsCfg, err := p.loader.LoadContent(p.settings)
	if err != nil {
		p.log.Warn("reload failed", "error", err)
		return
	}
	levels, err := system.LoadLevels(levelCfgs)
	if err != nil {
		p.log.Warn("reload failed", "error", err)
		return
	}
	pool, err := system.LoadQuestions(questionsCfg)
	if err != nil {
		p.log.Warn("reload failed", "error", err)
		return
	}
	if err := p.driver.ReplaceContent(levels, pool); err != nil {
		p.log.Warn("reload failed", "error", err)
		return
	}
	p.backgrounds = p.levelBackgrounds(levelCfgs)
	p.banner.Show("Content reloaded")
}

func (p *Playing) levelBackgrounds(cfgs []*config.LevelConfig) []color.RGBA {
	bgs := make([]color.RGBA, len(cfgs))
	for i, c := range cfgs {
		bg, err := parseColor(c.Background.Color)
		if err != nil {
			p.log.Warn("bad background color", "level", c.ID, "error", err)
		}
		bgs[i] = bg
	}
	return bgs
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Error("failed to save recording", "error", err)
	} else {
		p.log.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
	}
}

// OnEnter starts the session
func (p *Playing) OnEnter() {
	if p.driver.Session().Started {
		return
	}
	p.driver.Start()
	p.record(replay.Command{Op: replay.OpStart})
	p.banner.Show(fmt.Sprintf("Level %d", p.driver.Session().LevelIndex+1))
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
