package fluxfov

// marchRay walks a ray from the origin towards the point (targetX, targetY),
// calling fn at every lattice point along the way. The march stops once the
// x coordinate reaches limitX. The target must lie inside the canonical
// octant, i.e. targetY <= targetX.
//
// The x coordinate advances by one per step while y is bumped whenever the
// accumulated error term overflows, so the visited path is monotonic with
// y <= x throughout.
func marchRay(limitX, targetX, targetY int, fn func(x, y int)) {
	if targetY > targetX {
		panic("fluxfov: ray target outside the canonical octant")
	}
	switch {
	case targetY == 0:
		for x := 0; x <= limitX; x++ {
			fn(x, 0)
		}
	case targetY == targetX:
		for x := 0; x <= limitX; x++ {
			fn(x, x)
		}
	default:
		fn(0, 0)
		r := targetX / 2
		y := 0
		for x := 1; x <= limitX; x++ {
			r += targetY
			if r >= targetX {
				y++
				r -= targetX
			}
			fn(x, y)
		}
	}
}
