// cmd/game/main.go
package main

import (
	"flag"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	game "go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/level"
	"go-survivors/internal/state"
	"go-survivors/pkg/logger"
)

const startFromGame = true // true — начинать с игры, false — с меню

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
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "JSON file overriding the default tuning")
	levelPath := flag.String("level", "", "JSON level file (default: built-in arena)")
	enemiesPath := flag.String("enemies", "", "JSON enemy definitions")
	weaponsPath := flag.String("weapons", "", "JSON weapon definitions")
	flag.Parse()

	logger.Init()
	log := logger.WithSystem("main")

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.WithError(err).Fatal("load config")
		}
	}
	lib := defs.DefaultLibrary()
	if *enemiesPath != "" {
		if err := lib.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.WithError(err).Fatal("load enemy definitions")
		}
	}
	if *weaponsPath != "" {
		if err := lib.LoadWeaponDefinitions(*weaponsPath); err != nil {
			log.WithError(err).Fatal("load weapon definitions")
		}
	}
	lvl := level.Default()
	if *levelPath != "" {
		var err error
		if lvl, err = level.Load(*levelPath); err != nil {
			log.WithError(err).Fatal("load level")
		}
	}

	start := func() (*game.Game, error) {
		return game.NewGame(cfg, lib, lvl)
	}
	face := basicfont.Face7x13

	sm := state.NewStateMachine() // Создаём машину состояний
	if startFromGame {
		g, err := start()
		if err != nil {
			log.WithError(err).Fatal("start game")
		}
		sm.SetState(state.NewGameState(sm, g, start, face)) // Устанавливаем состояние игры
	} else {
		sm.SetState(state.NewMenuState(sm, start, face, nil)) // Устанавливаем состояние меню
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Go Survivors")
	if err := ebiten.RunGame(app); err != nil {
		log.WithError(err).Fatal("run game")
	}

	if gs, ok := sm.Current().(state.GameInterface); ok {
		if g := gs.GetGame(); g != nil {
			g.Close()
		}
	}
	sm.Shutdown()
}
