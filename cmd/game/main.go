// cmd/game/main.go
package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"garden-guardians/internal/audio"
	"garden-guardians/internal/config"
	"garden-guardians/internal/defs"
	"garden-guardians/internal/input"
	"garden-guardians/internal/state"
	"garden-guardians/internal/ui"
	"garden-guardians/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func newRootCmd() *cobra.Command {
	settings, err := config.LoadSettings()
	if err != nil {
		settings = config.DefaultSettings()
		log.Warn().Err(err).Msg("Falling back to default settings")
	}

	cmd := &cobra.Command{
		Use:          "garden-guardians",
		Short:        "Top-down garden survival shooter",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(settings)
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&settings.Mute, "mute", settings.Mute, "start with sound disabled")
	flags.BoolVar(&settings.Fullscreen, "fullscreen", settings.Fullscreen, "run fullscreen")
	flags.Int64Var(&settings.Seed, "seed", settings.Seed, "random seed for every run, 0 picks a fresh one from the clock each run")
	flags.StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "zerolog level")
	flags.StringVar(&settings.DefsDir, "defs-dir", settings.DefsDir, "directory with weapons.json and enemies.json")
	flags.StringVar(&settings.PprofAddr, "pprof", settings.PprofAddr, "serve pprof on this address")
	return cmd
}

func setupLogger(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return eris.Wrapf(err, "bad log level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	return nil
}

func loadLibrary(dir string) (*defs.Library, error) {
	if dir == "" {
		return defs.LoadDefault()
	}
	return defs.LoadDir(dir)
}

func run(settings config.Settings) error {
	if err := setupLogger(settings.LogLevel); err != nil {
		return err
	}

	if settings.PprofAddr != "" {
		go func() {
			log.Info().Str("addr", settings.PprofAddr).Msg("pprof listening")
			if err := http.ListenAndServe(settings.PprofAddr, nil); err != nil {
				log.Error().Err(err).Msg("pprof stopped")
			}
		}()
	}

	lib, err := loadLibrary(settings.DefsDir)
	if err != nil {
		return eris.Wrap(err, "failed to load definitions")
	}

	fonts, err := ui.NewFontCache()
	if err != nil {
		return err
	}
	defer fonts.Close()

	sound := audio.NewPlayer(!settings.Mute, log.Logger)
	if err := sound.StartMusic(); err != nil {
		log.Warn().Err(err).Msg("Music disabled")
	}

	deps := &state.Deps{
		Library: lib,
		Sound:   sound,
		Input:   input.Ebiten{},
		Canvas:  render.NewEbitenCanvas(fonts),
		Arena: render.NewArenaRenderer(config.ScreenWidth, config.ScreenHeight, config.GridSpacing, render.ArenaColors{
			BackgroundColor: config.BackgroundColor,
			GridColor:       config.GridColor,
			GridWidth:       1,
		}),
		HUD:    ui.NewHUD(),
		Logger: log.Logger,
		Seed:   settings.Seed, // 0: каждый забег со своим сидом
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewMenuState(sm, deps))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	log.Info().Int64("seed", settings.Seed).Strs("weapons", lib.WeaponNames()).Msg("Starting")
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Garden Guardians")
	ebiten.SetFullscreen(settings.Fullscreen)
	if err := ebiten.RunGame(app); err != nil {
		return eris.Wrap(err, "game loop failed")
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, eris.ToString(err, true))
		os.Exit(1)
	}
}
