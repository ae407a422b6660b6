package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Ticks between grid steps while a movement key is held.
const stepDelay = 6

// movementStep selects either manual or automatic movement for this tick.
func (g *Game) movementStep() (int, int) {
	if g.autoWalk {
		return g.autoWalkStep()
	}
	return g.manualStep()
}

// manualStep returns a WASD/hjkl movement step, rate limited so that a held
// key walks cell by cell.
func (g *Game) manualStep() (int, int) {
	dx, dy := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyK) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyJ) {
		dy++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyH) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyL) {
		dx++
	}
	if dx == 0 && dy == 0 {
		g.stepTimer = stepDelay
		return 0, 0
	}
	g.stepTimer++
	if g.stepTimer < stepDelay {
		return 0, 0
	}
	g.stepTimer = 0
	return dx, dy
}

// enableAutoWalk schedules scripted movement for a limited duration.
func (g *Game) enableAutoWalk(duration time.Duration) {
	g.autoWalk = true
	g.autoWalkDeadline = time.Now().Add(duration)
	g.autoWalkFrameCount = 0
}

// autoWalkStep returns a pseudo-random, collision-aware movement step.
func (g *Game) autoWalkStep() (int, int) {
	for attempts := 0; attempts < 5; attempts++ {
		if g.autoWalkFrameCount <= 0 {
			g.randomizeAutoWalkDirection()
		}
		nx := g.px + g.autoWalkDirX
		ny := g.py + g.autoWalkDirY
		if nx > 0 && nx < g.size-1 && ny > 0 && ny < g.size-1 && !g.isBlock(nx, ny) {
			g.autoWalkFrameCount--
			return g.autoWalkDirX, g.autoWalkDirY
		}
		g.autoWalkFrameCount = 0
	}
	return 0, 0
}

// randomizeAutoWalkDirection chooses a new heading for automatic walking.
func (g *Game) randomizeAutoWalkDirection() {
	dirs := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	d := dirs[g.autoWalkRand.Intn(len(dirs))]
	g.autoWalkDirX, g.autoWalkDirY = d[0], d[1]
	g.autoWalkFrameCount = 10 + g.autoWalkRand.Intn(30)
}
