package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders the map shaded by the current field of vision.
func (g *Game) Draw(screen *ebiten.Image) {
	radius := g.fov.Radius()
	visCount := 0
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			dx := x - g.px
			dy := y - g.py
			inField := dx >= -radius && dx <= radius && dy >= -radius && dy <= radius
			visible := inField && g.fov.At(dx, dy).visible
			var r, gr, b byte
			switch {
			case !visible:
				r, gr, b = 12, 16, 52
			case g.isBlock(x, y):
				r, gr, b = 150, 40, 160
			default:
				visCount++
				r, gr, b = 230, 208, 90
			}
			base := (y*g.size + x) * 4
			g.pixels[base] = r
			g.pixels[base+1] = gr
			g.pixels[base+2] = b
			g.pixels[base+3] = 255
		}
	}
	screen.WritePixels(g.pixels)
	screen.Set(g.px, g.py, color.RGBA{255, 255, 255, 255})

	if *debugFlag {
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nVisible cells: %d\nPlayer: (%d, %d)",
			ebiten.ActualFPS(), ebiten.ActualTPS(), visCount, g.px, g.py)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.size, g.size }
