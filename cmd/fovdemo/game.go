package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	fluxfov "github.com/mjhanninen/flux-fov"
)

// visibility is the per-cell value carried through the field of vision. A
// cell is visible when enough ray flux reaches it; rayOutput is the flux it
// passes on downstream, zeroed by blocking cells.
type visibility struct {
	visible   bool
	rayOutput float32
}

// Game holds the demo state: the map, the player, and the field of vision
// recomputed around the player every tick.
type Game struct {
	cfg *config

	field *fluxfov.FluxField
	fov   *fluxfov.Fov[visibility]

	size   int
	blocks []bool
	px, py int

	levelRand *rand.Rand
	stepTimer int

	autoWalk           bool
	autoWalkDeadline   time.Time
	autoWalkRand       *rand.Rand
	autoWalkDirX       int
	autoWalkDirY       int
	autoWalkFrameCount int

	stopProfile func()
	stepStream  *stepTickStream
	audioPlayer *audio.Player

	pixels []byte
}

// newGame constructs a fully initialized Game instance.
func newGame(cfg *config) *Game {
	start := time.Now()
	field := fluxfov.New(cfg.Fov.Radius)
	log.Printf("flux LUT ready for radius %d in %s", cfg.Fov.Radius, time.Since(start).Round(time.Millisecond))

	seed := cfg.Map.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:          cfg,
		field:        field,
		fov:          fluxfov.NewFov(field, cfg.Fov.Radius, visibility{}),
		size:         cfg.Window.Size,
		px:           cfg.Window.Size / 2,
		py:           cfg.Window.Size / 2,
		levelRand:    rand.New(rand.NewSource(seed)),
		autoWalkRand: rand.New(rand.NewSource(seed + 1)),
		pixels:       make([]byte, cfg.Window.Size*cfg.Window.Size*4),
	}
	g.generateMap()
	g.px, g.py = g.findFloor()

	if *enableAudioFlag {
		stream, player, err := newStepAudio()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			g.stepStream = stream
			g.audioPlayer = player
		}
	}
	return g
}

// Update advances the player and recomputes the field of vision.
func (g *Game) Update() error {
	if g.autoWalk && time.Now().After(g.autoWalkDeadline) {
		g.autoWalk = false
		if g.stopProfile != nil {
			g.stopProfile()
			g.stopProfile = nil
			log.Printf("profile capture finished")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.generateMap()
	}

	dx, dy := g.movementStep()
	if dx != 0 || dy != 0 {
		nx := clampCoord(g.px+dx, 0, g.size-1)
		ny := clampCoord(g.py+dy, 0, g.size-1)
		if !g.isBlock(nx, ny) {
			g.px, g.py = nx, ny
			if g.stepStream != nil {
				g.stepStream.Trigger()
			}
		}
	}

	g.refreshFov()
	return nil
}

// refreshFov runs one propagation pass centered on the player. The update
// function mirrors ray flux outwards: each cell receives the weighted flux
// of its upstream neighbors, passes it on unless the cell blocks sight, and
// counts as visible when the incoming flux clears the threshold.
func (g *Game) refreshFov() {
	threshold := float32(g.cfg.Fov.VisibleThreshold)
	maxRangeSq := g.cfg.Fov.MaxRange * g.cfg.Fov.MaxRange
	g.fov.Update(func(dx, dy int, influxes []fluxfov.Influx[visibility]) visibility {
		distSq := dx*dx + dy*dy
		if distSq == 0 {
			return visibility{visible: true, rayOutput: 1}
		}
		if distSq >= maxRangeSq {
			return visibility{}
		}
		mx := g.px + dx
		my := g.py + dy
		if mx < 0 || mx >= g.size || my < 0 || my >= g.size {
			return visibility{}
		}
		var rayInput float32
		for _, in := range influxes {
			rayInput += in.Weight * in.Value.rayOutput
		}
		out := rayInput
		if g.isBlock(mx, my) {
			out = 0
		}
		return visibility{visible: rayInput > threshold, rayOutput: out}
	})
}
