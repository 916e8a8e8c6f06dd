// cmd/headless/main.go
//
// headless runs the simulation without a window at a fixed 60 Hz step and
// prints a summary. The player walks a square so the run exercises steering,
// spawning and combat.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	game "go-survivors/internal/app"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/level"
	"go-survivors/pkg/logger"
)

func main() {
	seconds := flag.Float64("seconds", 60, "simulated seconds to run")
	seed := flag.Int64("seed", 1, "PRNG seed (0 = time based)")
	configPath := flag.String("config", "", "JSON file overriding the default tuning")
	levelPath := flag.String("level", "", "JSON level file (default: built-in arena)")
	snapshotPath := flag.String("snapshot", "", "write a msgpack snapshot of the final state here")
	flag.Parse()

	logger.Init()
	log := logger.WithSystem("headless")

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.WithError(err).Fatal("load config")
		}
	}
	cfg.Seed = *seed

	lvl := level.Default()
	if *levelPath != "" {
		var err error
		if lvl, err = level.Load(*levelPath); err != nil {
			log.WithError(err).Fatal("load level")
		}
	}

	g, err := game.NewGame(cfg, defs.DefaultLibrary(), lvl)
	if err != nil {
		log.WithError(err).Fatal("start game")
	}
	defer g.Close()

	const dt = 1.0 / config.TickRate
	route := []component.MoveIntent{{Right: true}, {Down: true}, {Left: true}, {Up: true}}
	ticks := int(*seconds * config.TickRate)
	for i := 0; i < ticks && !g.IsOver(); i++ {
		g.SetIntent(route[(i/(2*config.TickRate))%len(route)])
		g.Update(dt)
		if g.AwaitingUpgrade() {
			g.ChooseUpgrade(g.Rng.Intn(game.UpgradeChoices))
		}
	}

	s := g.Stats()
	log.WithFields(logrus.Fields{
		"time":   fmt.Sprintf("%.1fs", s.Time),
		"level":  s.Level,
		"killed": s.Killed,
		"died":   g.IsOver(),
	}).Info("run finished")
	fmt.Fprintf(os.Stdout, "time=%.1f level=%d xp=%d hp=%d/%d killed=%d spawned=%d shots=%d hits=%d alive_enemies=%d\n",
		s.Time, s.Level, s.XP, s.HP, s.MaxHP, s.Killed, s.Spawned, s.Shots, s.Hits, s.Enemies)

	if *snapshotPath != "" {
		if err := game.SaveSnapshot(*snapshotPath, g.BuildSnapshot()); err != nil {
			g.Close()
			log.WithError(err).Fatal("save snapshot")
		}
	}
}
