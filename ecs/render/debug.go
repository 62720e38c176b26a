package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/shelsoloa/OverYonder--2016/ecs"
	"github.com/shelsoloa/OverYonder--2016/ecs/component"
)

// DrawBodies draws every live body in the camera view as a filled box.
// Inactive bodies get an outline only.
func DrawBodies(w *ecs.World, screen *ebiten.Image, cam *Camera) {
	if w == nil || screen == nil || cam == nil {
		return
	}
	view := cam.View()
	ecs.ForEach(w, component.BodyComponent.Kind(), func(e ecs.Entity, b *component.Body) {
		if !view.Overlaps(b.Rect()) {
			return
		}
		x, y := cam.ToScreen(b.X, b.Y)
		clr := ColorOf(b.Group)
		if !b.Active {
			vector.StrokeRect(screen, float32(x), float32(y), float32(b.W), float32(b.H), 1, clr, false)
			return
		}
		if !b.Solid && b.Group != component.GroupPlayer {
			clr.A = 120
		}
		if s, ok := ecs.Get(w, e, component.SlopeComponent.Kind()); ok && b.W > 0 {
			drawSlope(screen, cam, b, s, clr)
			return
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(b.W), float32(b.H), clr, false)
	})
}

func drawSlope(screen *ebiten.Image, cam *Camera, b *component.Body, s *component.Slope, clr color.RGBA) {
	// One column per unit of width.
	for dx := 0.0; dx < b.W; dx++ {
		top := s.HeightAt(b, b.X+dx)
		x, y := cam.ToScreen(b.X+dx, top)
		vector.DrawFilledRect(screen, float32(x), float32(y), 1, float32(b.Bottom()-top), clr, false)
	}
}

// DrawPlatformPaths outlines the segment each moving platform travels.
func DrawPlatformPaths(w *ecs.World, screen *ebiten.Image, cam *Camera) {
	ecs.ForEach2(w, component.BodyComponent.Kind(), component.MovingPlatformComponent.Kind(), func(e ecs.Entity, b *component.Body, mp *component.MovingPlatform) {
		x1, y1 := cam.ToScreen(mp.Start.X+b.W/2, mp.Start.Y)
		x2, y2 := cam.ToScreen(mp.End.X+b.W/2, mp.End.Y)
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, color.RGBA{R: 255, G: 165, A: 96}, false)
	})
}

// DrawStats prints the tick counter and the player's kinematic state.
func DrawStats(w *ecs.World, screen *ebiten.Image) {
	text := fmt.Sprintf("Tick: %d    Entities: %d    FPS: %.2f", w.Tick(), w.Len(), ebiten.ActualFPS())
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		b, _ := w.Body(player)
		if k, ok := ecs.Get(w, player, component.KinematicComponent.Kind()); ok && b != nil {
			text += fmt.Sprintf("\nPos: %.1f, %.1f\nVel: %.2f, %.2f\nMode: %s\nCollided: %v", b.X, b.Y, b.VX, b.VY, k.Mode, k.Collided)
		}
	}
	ebitenutil.DebugPrint(screen, text)
}
