// Package fluxfov computes radial fields of vision on a square grid by
// propagating caller-defined cell values outwards from an origin cell. The
// propagation weights come from a lookup table built once per radius by
// marching sample rays across one octant, so no trigonometry runs during
// field updates.
package fluxfov

import (
	"math"
	"runtime"
	"sync"
)

// Sampling parameters for the LUT construction. The ray radius scales with
// the field radius so that every interior lattice point sits well inside the
// sampled fan; the count keeps the jump/total ratios stable down to the
// third decimal.
const (
	rayRadiusFactor = 100
	lutRayCount     = 10_000
)

// FluxField is a pre-computed table of blend weights describing how rays
// emanating from a single grid cell flow outwards to the surrounding cells.
//
// A FluxField is immutable after construction and may be shared freely
// between any number of Fov instances with an equal or smaller radius.
type FluxField struct {
	radius int
	lut    []float32
}

// New constructs a flux field covering the area within radius. It panics
// when radius is zero.
func New(radius int) *FluxField {
	return &FluxField{
		radius: radius,
		lut:    calcFluxLUT(radius, rayRadiusFactor*radius, lutRayCount),
	}
}

// Radius reports the largest field-of-vision radius this field supports.
func (f *FluxField) Radius() int {
	return f.radius
}

// lutSize is the number of interior lattice points of the canonical octant
// for the given field radius.
func lutSize(radius int) int {
	return (radius - 1) * radius / 2
}

// The construction of the look-up table is somewhat tricky. Keep the
// following diagram in mind:
//
//	y 5...../
//	  4..../j
//	  3.../fi
//	  2../ceh
//	  1./abdg
//	  0@-----
//	   012345 x
//
// The horizontal and diagonal edges flanking the octant are special cases
// handled without a table, so they are ignored here. For the interior we
// build a table of flux weights of the form
//
//	abcdefghij
//	0123456789
//
// which is the same order in which Update visits the interior cells.

// rayHits accumulates, for one interior lattice point, how many sample rays
// crossed it and how many of those arrived by jumping up a row.
type rayHits struct {
	jump  int32
	total int32
}

func calcFluxLUT(fieldRadius, rayRadius, rayCount int) []float32 {
	if rayCount <= 1 {
		panic("fluxfov: ray count must exceed 1")
	}
	if fieldRadius <= 0 {
		panic("fluxfov: field radius must be positive")
	}
	if float64(rayRadius)/float64(fieldRadius) < math.Sqrt2 {
		panic("fluxfov: ray radius must cover the field diagonal")
	}

	countsWd := fieldRadius - 1
	counts := countRaysParallel(fieldRadius, countsWd, rayRadius, rayCount)

	lut := make([]float32, 0, lutSize(fieldRadius))
	for x := 0; x < countsWd; x++ {
		for y := 0; y <= x; y++ {
			c := counts[y*countsWd+x]
			lut = append(lut, float32(c.jump)/float32(c.total))
		}
	}
	return lut
}

// countRaysParallel fans the ray sweep out over the available CPUs. Each
// goroutine marches a contiguous range of ray indices into a private table;
// the tables are merged by integer addition afterwards, so the result is
// identical to a sequential sweep no matter how the work is scheduled.
func countRaysParallel(fieldRadius, countsWd, rayRadius, rayCount int) []rayHits {
	workers := runtime.NumCPU()
	if workers > rayCount {
		workers = rayCount
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (rayCount + workers - 1) / workers

	tables := make([][]rayHits, 0, workers)
	var wg sync.WaitGroup
	for lo := 0; lo < rayCount; lo += chunk {
		hi := lo + chunk
		if hi > rayCount {
			hi = rayCount
		}
		table := make([]rayHits, countsWd*countsWd)
		tables = append(tables, table)
		wg.Add(1)
		go func(table []rayHits, lo, hi int) {
			defer wg.Done()
			countRays(table, fieldRadius, countsWd, rayRadius, rayCount, lo, hi)
		}(table, lo, hi)
	}
	wg.Wait()

	merged := tables[0]
	for _, table := range tables[1:] {
		for i := range merged {
			merged[i].jump += table[i].jump
			merged[i].total += table[i].total
		}
	}
	return merged
}

// countRays marches the rays with index in [lo, hi) and accumulates their
// interior lattice hits into counts.
func countRays(counts []rayHits, fieldRadius, countsWd, rayRadius, rayCount, lo, hi int) {
	rr := float64(rayRadius)
	for rayIx := lo; rayIx < hi; rayIx++ {
		// Sweep the angle evenly over one octant, both ends inclusive.
		angle := float64(rayIx) / float64(rayCount-1) * (math.Pi / 4)
		targetX := int(math.Round(math.Cos(angle) * rr))
		targetY := int(math.Round(math.Sin(angle) * rr))
		lastY := 0
		marchRay(fieldRadius, targetX, targetY, func(x, y int) {
			if 1 < x && 0 < y && y < x {
				c := &counts[(y-1)*countsWd+x-2]
				c.total++
				if lastY != y {
					c.jump++
				}
			}
			lastY = y
		})
	}
}
