package main

// Spacing kept clear around the player when placing blocks.
const blockExclusionRadius = 2

// generateMap scatters random block cells and carves a few wall segments
// into the grid.
func (g *Game) generateMap() {
	if len(g.blocks) != g.size*g.size {
		g.blocks = make([]bool, g.size*g.size)
	} else {
		for i := range g.blocks {
			g.blocks[i] = false
		}
	}
	for i := 0; i < g.cfg.Map.Blocks; i++ {
		g.trySetBlock(g.levelRand.Intn(g.size), g.levelRand.Intn(g.size))
	}
	for s := 0; s < g.cfg.Map.WallSegments; s++ {
		g.carveWallSegment()
	}
}

// carveWallSegment lays one straight wall of random length, thickness, and
// orientation.
func (g *Game) carveWallSegment() {
	lengthRange := g.cfg.Map.WallMaxLen - g.cfg.Map.WallMinLen + 1
	if lengthRange <= 0 {
		lengthRange = 1
	}
	length := g.cfg.Map.WallMinLen + g.levelRand.Intn(lengthRange)
	thickness := 0
	if g.cfg.Map.WallThicknessVariance > 0 {
		thickness = g.levelRand.Intn(g.cfg.Map.WallThicknessVariance + 1)
	}
	horizontal := g.levelRand.Intn(2) == 0
	cx := g.levelRand.Intn(g.size-4) + 2
	cy := g.levelRand.Intn(g.size-4) + 2
	dx, dy := 0, 1
	if horizontal {
		dx, dy = 1, 0
	}
	perpX, perpY := dy, dx
	for l := 0; l < length; l++ {
		if cx <= 1 || cx >= g.size-1 || cy <= 1 || cy >= g.size-1 {
			break
		}
		for t := -thickness; t <= thickness; t++ {
			g.trySetBlock(cx+perpX*t, cy+perpY*t)
		}
		cx += dx
		cy += dy
	}
}

// trySetBlock marks a grid cell as blocking while keeping the border and the
// player's immediate surroundings clear.
func (g *Game) trySetBlock(x, y int) {
	if x <= 0 || x >= g.size-1 || y <= 0 || y >= g.size-1 {
		return
	}
	dx := x - g.px
	dy := y - g.py
	if dx*dx+dy*dy <= blockExclusionRadius*blockExclusionRadius {
		return
	}
	g.blocks[y*g.size+x] = true
}

// isBlock reports whether the coordinates reference a sight-blocking cell.
// Out-of-map coordinates block.
func (g *Game) isBlock(x, y int) bool {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return true
	}
	return g.blocks[y*g.size+x]
}

// findFloor picks a random non-blocking cell for the player spawn.
func (g *Game) findFloor() (int, int) {
	for attempts := 0; attempts < 1000; attempts++ {
		x := g.levelRand.Intn(g.size)
		y := g.levelRand.Intn(g.size)
		if !g.isBlock(x, y) {
			return x, y
		}
	}
	return g.size / 2, g.size / 2
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
