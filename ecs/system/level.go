package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/windowhop/audio"
	"github.com/milk9111/windowhop/ecs"
	"github.com/milk9111/windowhop/ecs/entity"
	"github.com/milk9111/windowhop/levels"
	"go.uber.org/zap"
)

var ErrLevelOutOfRange = errors.New("level index out of range")

// LevelSystem owns the level set and the current index. Touching the goal
// advances to the next level, wrapping after the last one. A trigger latches
// until the player stops overlapping the goal so one touch advances once.
type LevelSystem struct {
	levels  []levels.Level
	index   int
	loaded  bool
	latched bool
}

// NewLevelSystem starts at level start, loaded on the first Update unless
// LoadLevel is called earlier.
func NewLevelSystem(lvls []levels.Level, start int) *LevelSystem {
	return &LevelSystem{levels: lvls, index: start}
}

func (s *LevelSystem) Index() int {
	return s.index
}

func (s *LevelSystem) Count() int {
	return len(s.levels)
}

// Current returns the loaded level, or nil before the first load.
func (s *LevelSystem) Current() *levels.Level {
	if !s.loaded {
		return nil
	}
	return &s.levels[s.index]
}

// LoadLevel replaces every platform with the given level's set, moves the
// goal and respawns the player at the new start.
func (s *LevelSystem) LoadLevel(w *ecs.World, index int) error {
	if index < 0 || index >= len(s.levels) {
		return fmt.Errorf("%w: %d of %d", ErrLevelOutOfRange, index, len(s.levels))
	}
	lvl := &s.levels[index]

	for _, e := range w.Registry().View(ecs.TagPlatform) {
		w.DestroyEntity(e)
	}
	w.Registry().Reconcile()

	if err := entity.LoadLevelToWorld(w, lvl); err != nil {
		return err
	}

	if goal := w.Goal(); goal.Valid() {
		if t, ok := w.Store().Transform(goal); ok {
			t.Teleport(lvl.Goal.Vector())
		}
	}

	w.SetSpawnPoint(lvl.PlayerStart.Vector())
	if player := w.Player(); player.Valid() {
		Respawn(w, player)
	}

	s.index = index
	s.loaded = true
	w.Events().Push(ecs.Event{Type: ecs.EventLevelLoaded, Data: index})
	w.Logger().Info("level loaded",
		zap.Int("index", index),
		zap.String("name", lvl.Name),
		zap.Int("platforms", len(lvl.Platforms)),
	)
	return nil
}

func (s *LevelSystem) Update(w *ecs.World) error {
	if w == nil || len(s.levels) == 0 {
		return nil
	}
	if !s.loaded {
		return s.LoadLevel(w, s.index)
	}

	player, goal := w.Player(), w.Goal()
	if !player.Valid() || !goal.Valid() {
		return nil
	}
	store := w.Store()
	pt, ok := store.Transform(player)
	if !ok {
		return nil
	}
	gt, ok := store.Transform(goal)
	if !ok {
		return nil
	}

	overlap := Overlap(pt.Position, pt.HalfSize, gt.Position, gt.HalfSize)
	if overlap.X <= 0 || overlap.Y <= 0 {
		s.latched = false
		return nil
	}
	if s.latched {
		return nil
	}
	s.latched = true

	if err := s.LoadLevel(w, (s.index+1)%len(s.levels)); err != nil {
		return err
	}
	emitCue(w, audio.CueLevelComplete)
	return nil
}
