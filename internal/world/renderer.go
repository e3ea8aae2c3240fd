package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"walker3d/internal/components"
	"walker3d/internal/engine"
)

// Draw renders every collider as a shaded cube. Call between BeginMode3D
// and EndMode3D.
func (w *World) Draw() {
	rl.DrawGrid(40, 1)

	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](g)
		if box == nil {
			continue
		}
		color := objectColor(g)
		rl.DrawCubeV(box.GetCenter(), box.Size, color)
		rl.DrawCubeWiresV(box.GetCenter(), box.Size, rl.DarkGray)
	}
}

func objectColor(g *engine.GameObject) rl.Color {
	switch {
	case g.HasTag("ui"):
		return rl.Gold
	case g.HasTag("ground"):
		return rl.LightGray
	default:
		return rl.Brown
	}
}
