package engine

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// historySize is how many past generations are kept for cycle detection
const historySize = 5

// Controller owns the two grids of a simulation. One is current, the other is
// scratch space for the next generation; they swap roles after every step.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	grids      [2]*model.Grid
	current    int
	generation int
	history    []string // hashes of recent generations, oldest first
}

// NewController creates a controller with two empty width x height grids
func NewController(width, height int) *Controller {
	return &Controller{
		grids: [2]*model.Grid{model.NewGrid(width, height), model.NewGrid(width, height)},
	}
}

// NewControllerFromPool creates a controller whose grids come from pool
func NewControllerFromPool(pool *model.GridPool) *Controller {
	return &Controller{
		grids: [2]*model.Grid{pool.Get(), pool.Get()},
	}
}

// Current returns the grid to display and edit. It is replaced by the other
// grid on the next Step, so callers must not hold on to it.
func (c *Controller) Current() *model.Grid {
	return c.grids[c.current]
}

func (c *Controller) scratch() *model.Grid {
	return c.grids[c.current^1]
}

// Generation returns the number of steps since the last clear or load
func (c *Controller) Generation() int {
	return c.generation
}

// Population returns the number of live cells in the current grid
func (c *Controller) Population() int {
	return c.Current().CountLivingCells()
}

// Step computes the next generation into the scratch grid and makes it current
func (c *Controller) Step() error {
	hash := c.Current().GetGridHash()
	if err := rules.Apply(c.Current(), c.scratch()); err != nil {
		return errors.Wrapf(err, "[Step] generation %d", c.generation)
	}
	c.recordHistory(hash)
	c.current ^= 1
	c.generation++
	return nil
}

// Set makes a cell of the current grid live
func (c *Controller) Set(cell model.Cell) {
	c.Current().Set(cell)
	c.history = nil
}

// Unset makes a cell of the current grid dead
func (c *Controller) Unset(cell model.Cell) {
	c.Current().Unset(cell)
	c.history = nil
}

// Clear kills every cell and restarts the generation count
func (c *Controller) Clear() {
	c.Current().Clear()
	c.reset()
}

// Load replaces the current grid with the given live cells
func (c *Controller) Load(cells []model.Cell) {
	c.Current().Deserialize(cells)
	c.reset()
}

// Save serializes the current grid
func (c *Controller) Save() string {
	return c.Current().Serialize()
}

func (c *Controller) reset() {
	c.generation = 0
	c.history = nil
}

// recordHistory adds a generation's hash to history and maintains size
func (c *Controller) recordHistory(hash string) {
	c.history = append(c.history, hash)

	if len(c.history) > historySize {
		c.history = c.history[1:]
	}
}

// IsStagnant reports whether the current grid repeats one of the last three
// generations, i.e. the pattern is static or cycles with period 1 to 3
func (c *Controller) IsStagnant() bool {
	if len(c.history) == 0 {
		return false
	}

	currentHash := c.Current().GetGridHash()
	for i := len(c.history) - 1; i >= 0 && i >= len(c.history)-3; i-- {
		if c.history[i] == currentHash {
			return true
		}
	}
	return false
}

// Release hands both grids back to pool. The controller must not be used
// afterwards.
func (c *Controller) Release(pool *model.GridPool) {
	for i, g := range c.grids {
		model.GridToPool(g, pool)
		c.grids[i] = nil
	}
}
