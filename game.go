package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/windowhop/config"
	"github.com/milk9111/windowhop/ecs"
	"github.com/milk9111/windowhop/ecs/entity"
	"github.com/milk9111/windowhop/ecs/system"
	"github.com/milk9111/windowhop/input"
	"github.com/milk9111/windowhop/levels"
	"github.com/milk9111/windowhop/prefabs"
	"go.uber.org/zap"
)

type Game struct {
	cfg       *config.Config
	world     *ecs.World
	movement  *system.MovementSystem
	collision *system.CollisionSystem
	watcher   *prefabs.Watcher
	log       *zap.Logger
}

func NewGame(cfg *config.Config, startLevel int, debug bool, cues system.CuePlayer, log *zap.Logger) (*Game, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	goalSpec, err := prefabs.LoadGoalSpec()
	if err != nil {
		return nil, err
	}

	var lvls []levels.Level
	if cfg.World.LevelsFile != "" {
		lvls, err = levels.LoadFile(cfg.World.LevelsFile)
	} else {
		lvls, err = levels.Load()
	}
	if err != nil {
		return nil, err
	}
	if startLevel < 0 || startLevel >= len(lvls) {
		return nil, fmt.Errorf("start level %d: %w", startLevel, system.ErrLevelOutOfRange)
	}

	world := ecs.NewWorld(cfg.World.Capacity, log)
	start := lvls[startLevel]
	if _, err := entity.NewPlayer(world, spec, start.PlayerStart.Vector()); err != nil {
		return nil, err
	}
	if _, err := entity.NewGoal(world, goalSpec, start.Goal.Vector()); err != nil {
		return nil, err
	}

	levelSys := system.NewLevelSystem(lvls, startLevel)
	movement := system.NewMovementSystem(spec, float64(cfg.Window.Height))
	collision := system.NewCollisionSystem(spec)

	world.AddSystem(system.NewInputSystem(input.NewKeyboard()))
	world.AddSystem(movement)
	world.AddSystem(collision)
	world.AddSystem(levelSys)
	world.AddSystem(system.NewLifetimeSystem())
	world.AddSystem(system.NewAudioSystem(cues))
	world.AddSystem(system.NewRenderSystem(levelSys, debug))

	g := &Game{
		cfg:       cfg,
		world:     world,
		movement:  movement,
		collision: collision,
		log:       log,
	}

	if cfg.Prefabs.Watch {
		watcher, err := prefabs.NewWatcher(cfg.Prefabs.Dir)
		if err != nil {
			log.Warn("prefab hot reload disabled", zap.String("dir", cfg.Prefabs.Dir), zap.Error(err))
		} else {
			g.watcher = watcher
		}
	}

	log.Info("game ready",
		zap.Int("levels", len(lvls)),
		zap.Int("start_level", startLevel),
		zap.Int("capacity", cfg.World.Capacity),
	)
	return g, nil
}

// Update returns the world's error, which stops ebiten and ends the process.
func (g *Game) Update() error {
	g.reloadPrefabs()
	return g.world.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		g.log.Warn("prefab watcher", zap.Error(err))
	default:
	}

	for _, name := range g.watcher.Changed() {
		switch name {
		case prefabs.PlayerFile:
			spec, err := prefabs.LoadPlayerSpec()
			if err != nil {
				g.log.Warn("prefab reload failed", zap.String("file", name), zap.Error(err))
				continue
			}
			g.movement.SetSpec(spec)
			g.collision.SetSpec(spec)
			entity.ApplyPlayerSpec(g.world, g.world.Player(), spec)
		case prefabs.GoalFile:
			spec, err := prefabs.LoadGoalSpec()
			if err != nil {
				g.log.Warn("prefab reload failed", zap.String("file", name), zap.Error(err))
				continue
			}
			entity.ApplyGoalSpec(g.world, g.world.Goal(), spec)
		default:
			continue
		}
		g.log.Info("prefab reloaded", zap.String("file", name))
	}
}
