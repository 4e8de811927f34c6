package model

import "sync"

// GridPool recycles equally sized grids between simulations
type GridPool struct {
	width  int
	height int
	pool   sync.Pool
}

// NewGridPool creates a pool handing out width x height grids
func NewGridPool(width, height int) *GridPool {
	p := &GridPool{width: width, height: height}
	p.pool.New = func() any {
		return NewGrid(width, height)
	}
	return p
}

// Get retrieves an empty grid from the pool
func (p *GridPool) Get() *Grid {
	return p.pool.Get().(*Grid)
}

// Put returns a grid to the pool, clearing its state. Grids of another size
// are dropped.
func (p *GridPool) Put(g *Grid) {
	if g == nil || g.width != p.width || g.height != p.height {
		return
	}
	g.Clear()
	p.pool.Put(g)
}

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil {
		return
	}

	pool.Put(grid)
}
