package fluxfov

// Influx describes one inflow into a grid cell during an update pass: the
// blend weight, the direction the flow came from, and the neighbor's value
// as it was computed earlier in the same pass.
type Influx[T any] struct {
	Weight float32
	Dx, Dy int
	Value  T
}

// UpdateFunc computes the new value of the cell at offset (dx, dy) from the
// origin. The influx slice is backed by scratch storage reused between
// cells; callers must not retain it past the call.
type UpdateFunc[T any] func(dx, dy int, influxes []Influx[T]) T

// Fov is a field of vision: a square grid of caller-defined values centered
// on an origin cell, recomputed in dependency order by Update.
//
// A Fov owns its backing grid exclusively. Update must not run concurrently
// with another Update or with At on the same instance.
type Fov[T any] struct {
	field    *FluxField
	radius   int
	width    int
	originIx int
	data     []T
}

// NewFov creates a field of vision of the given radius backed by field,
// with every cell set to init. It panics when the radius exceeds the flux
// field's radius.
func NewFov[T any](field *FluxField, radius int, init T) *Fov[T] {
	if radius > field.radius {
		panic("fluxfov: field of vision radius exceeds flux field radius")
	}
	width := 2*radius + 1
	data := make([]T, width*width)
	for i := range data {
		data[i] = init
	}
	return &Fov[T]{
		field:    field,
		radius:   radius,
		width:    width,
		originIx: radius * (width + 1),
		data:     data,
	}
}

// Radius reports the field's radius.
func (f *Fov[T]) Radius() int {
	return f.radius
}

// At returns the value at offset (x, y) from the origin. Valid only for
// |x|, |y| <= Radius().
func (f *Fov[T]) At(x, y int) T {
	return f.data[f.originIx+y*f.width+x]
}

// Values exposes the backing grid in row-major order, top row first. Its
// length is (2*Radius()+1) squared.
func (f *Fov[T]) Values() []T {
	return f.data
}

// Update recomputes every cell of the grid for one pass by calling fn once
// per cell: first the origin, then the eight axis and diagonal rays, then
// the eight octant interiors. Each cell is computed only after the cells it
// draws from, and is written exactly once.
func (f *Fov[T]) Update(fn UpdateFunc[T]) {
	// The grid is laid out in memory in the following manner:
	//
	//	    <----W---->
	//	    <-R-> <-R->
	//
	//	^ ^ \6666|7777/
	//	| | 5\666|777/8            -y
	//	| R 55\66|77/88
	//	| | 555\6|7/888            |
	//	| v 5555\|/8888            |
	//	W   -----@-----       -x --@-- +x
	//	| ^ 4444/|\1111            |
	//	| | 444/3|2\111            |
	//	| R 44/33|22\11
	//	| | 4/333|222\1            +y
	//	v v /3333|2222\
	//
	// Here R is the radius of the field of vision and W the width of a
	// single row (W = 2*R + 1).
	p := updatePass[T]{
		fn:       fn,
		data:     f.data,
		originIx: f.originIx,
		radius:   f.radius,
		width:    f.width,
		lut:      f.field.lut,
	}
	w := f.width
	p.calcOrigin()
	if f.radius > 0 {
		p.calcEdge(1, 0, 1)
		p.calcEdge(1, 1, w+1)
		p.calcEdge(0, 1, w)
		p.calcEdge(-1, 1, w-1)
		p.calcEdge(-1, 0, -1)
		p.calcEdge(-1, -1, -w-1)
		p.calcEdge(0, -1, -w)
		p.calcEdge(1, -1, -w+1)
		if f.radius > 1 {
			p.calcInterior(1, 0, 0, 1, 1, w)
			p.calcInterior(0, 1, 1, 0, w, 1)
			p.calcInterior(0, -1, 1, 0, w, -1)
			p.calcInterior(-1, 0, 0, 1, -1, w)
			p.calcInterior(-1, 0, 0, -1, -1, -w)
			p.calcInterior(0, -1, -1, 0, -w, -1)
			p.calcInterior(0, 1, -1, 0, -w, 1)
			p.calcInterior(1, 0, 0, -1, 1, -w)
		}
	}
}

// updatePass carries the per-pass state of a single Update call. All cell
// addressing is index arithmetic against the flat backing slice; neighbor
// values are copied out before the current cell is written, so nothing is
// read after being overwritten within the pass.
type updatePass[T any] struct {
	fn       UpdateFunc[T]
	data     []T
	originIx int
	radius   int
	width    int
	lut      []float32
	scratch  [2]Influx[T]
}

func (p *updatePass[T]) calcOrigin() {
	p.data[p.originIx] = p.fn(0, 0, p.scratch[:0])
}

// calcEdge walks one of the eight axis or diagonal rays outwards, feeding
// each step the previous cell at full weight.
func (p *updatePass[T]) calcEdge(dx, dy, stride int) {
	x, y := 0, 0
	curr := p.originIx
	for i := 0; i < p.radius; i++ {
		x += dx
		y += dy
		prev := p.data[curr]
		curr += stride
		p.scratch[0] = Influx[T]{Weight: 1, Dx: dx, Dy: dy, Value: prev}
		p.data[curr] = p.fn(x, y, p.scratch[:1])
	}
}

// calcInterior sweeps one octant interior column by column. The matrix
// (mxu mxv; myu myv) rotates or reflects the canonical octant's (u, v)
// coordinates into world offsets, and the strides address the same cells in
// the flat grid.
func (p *updatePass[T]) calcInterior(mxu, mxv, myu, myv, uStride, vStride int) {
	dxStay := -mxu
	dyStay := -myu
	dxJump := -(mxu + mxv)
	dyJump := -(myu + myv)
	colIx := p.originIx + uStride
	lutIx := 0
	for u := 2; u <= p.radius; u++ {
		influxIx := colIx
		stay := p.data[influxIx]
		colIx += uStride
		curr := colIx
		for v := 1; v < u; v++ {
			curr += vStride
			influxIx += vStride
			jump := p.data[influxIx]
			x := mxu*u + mxv*v
			y := myu*u + myv*v
			w := p.lut[lutIx]
			// XXX: arguably the weights should be the other way around,
			// w on the second influx and 1-w on the first. This
			// orientation is the one that produces the expected fields;
			// keep it until the discrepancy is understood.
			p.scratch[0] = Influx[T]{Weight: w, Dx: dxStay, Dy: dyStay, Value: stay}
			p.scratch[1] = Influx[T]{Weight: 1 - w, Dx: dxJump, Dy: dyJump, Value: jump}
			p.data[curr] = p.fn(x, y, p.scratch[:2])
			stay = jump
			lutIx++
		}
	}
}
