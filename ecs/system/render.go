package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/windowhop/common"
	"github.com/milk9111/windowhop/ecs"
	"github.com/milk9111/windowhop/ecs/component"
	"golang.org/x/image/colornames"
)

// RenderSystem draws every entity as a filled rectangle. With debug on it
// also prints the player's timers.
type RenderSystem struct {
	Debug  bool
	levels *LevelSystem
}

func NewRenderSystem(levels *LevelSystem, debug bool) *RenderSystem {
	return &RenderSystem{levels: levels, Debug: debug}
}

// Update is a no-op; drawing happens in Draw.
func (r *RenderSystem) Update(*ecs.World) error {
	return nil
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	screen.Fill(colornames.Slategray)

	ecs.EachTransform(w, ecs.TagPlatform, func(_ ecs.Entity, t *component.Transform) {
		fillBox(screen, t, colornames.Black)
	})
	ecs.EachTransform(w, ecs.TagGoal, func(_ ecs.Entity, t *component.Transform) {
		fillBox(screen, t, colornames.Green)
	})

	store := w.Store()
	ecs.EachTransform(w, ecs.TagNone, func(e ecs.Entity, t *component.Transform) {
		l, ok := store.Lifetime(e)
		if !ok {
			return
		}
		a := uint8(common.Lerp(255, 0, l.PercentElapsed()))
		fillBox(screen, t, color.NRGBA{R: 255, A: a})
	})

	ecs.EachTransform(w, ecs.TagPlayer, func(_ ecs.Entity, t *component.Transform) {
		fillBox(screen, t, colornames.White)
	})

	if r.Debug {
		r.drawDebug(w, screen)
	}
}

func (r *RenderSystem) drawDebug(w *ecs.World, screen *ebiten.Image) {
	msg := fmt.Sprintf("TPS %.0f  frame %d  entities %d", ebiten.ActualTPS(), w.Frame(), len(w.Registry().Entities()))
	if r.levels != nil {
		msg += fmt.Sprintf("  level %d/%d", r.levels.Index()+1, r.levels.Count())
	}
	if p := w.Player(); p.Valid() {
		if m, ok := w.Store().Movement(p); ok {
			msg += fmt.Sprintf("\njump %d  grounded %d  wall %d  walljump %t",
				m.JumpInputTimer, m.GroundedTimer, m.WallContactTimer, m.WallJumpPhysics)
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}

func fillBox(screen *ebiten.Image, t *component.Transform, clr color.Color) {
	x := t.Position.X - t.HalfSize.X
	y := t.Position.Y - t.HalfSize.Y
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(t.Size.X), float32(t.Size.Y), clr, false)
}
