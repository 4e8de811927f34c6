package engine

import (
	"slices"
	"testing"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

var (
	horizontalBlinker = []model.Cell{model.At(9, 10), model.At(10, 10), model.At(11, 10)}
	verticalBlinker   = []model.Cell{model.At(10, 9), model.At(10, 10), model.At(10, 11)}
	block             = []model.Cell{model.At(20, 20), model.At(21, 20), model.At(20, 21), model.At(21, 21)}
	glider            = []model.Cell{model.At(1, 0), model.At(2, 1), model.At(0, 2), model.At(1, 2), model.At(2, 2)}
)

func newTestController(cells ...model.Cell) *Controller {
	c := NewController(model.DefaultWidth, model.DefaultHeight)
	c.Load(cells)
	return c
}

func mustStep(t *testing.T, c *Controller) {
	t.Helper()
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
}

func sameCells(g *model.Grid, want []model.Cell) bool {
	got := slices.Collect(g.LiveCells())
	want = slices.Clone(want)
	cmp := func(a, b model.Cell) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	}
	slices.SortFunc(got, cmp)
	slices.SortFunc(want, cmp)
	return slices.Equal(got, want)
}

func TestControllerStepSwapsBuffers(t *testing.T) {
	c := newTestController(horizontalBlinker...)
	first := c.Current()

	mustStep(t, c)
	second := c.Current()
	if second == first {
		t.Fatal("Step did not swap the current grid")
	}
	if !sameCells(second, verticalBlinker) {
		t.Fatalf("after one step live = %v", slices.Collect(second.LiveCells()))
	}

	mustStep(t, c)
	if c.Current() != first {
		t.Fatal("second Step did not swap back")
	}
	if !sameCells(c.Current(), horizontalBlinker) {
		t.Fatalf("after two steps live = %v", slices.Collect(c.Current().LiveCells()))
	}
	if c.Generation() != 2 {
		t.Fatalf("Generation = %d, want 2", c.Generation())
	}
}

func TestControllerStepReadsPreviousGeneration(t *testing.T) {
	c := newTestController(glider...)
	mustStep(t, c)

	// compute generation 2 independently from a frozen copy of generation 1
	gen1 := model.NewDefaultGrid()
	gen1.Deserialize(slices.Collect(c.Current().LiveCells()))
	want := model.NewDefaultGrid()
	if err := rules.Apply(gen1, want); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	mustStep(t, c)
	if !c.Current().Equal(want) {
		t.Fatalf("generation 2 = %v, want %v", c.Save(), want.Serialize())
	}
}

func TestControllerEdits(t *testing.T) {
	c := NewController(model.DefaultWidth, model.DefaultHeight)
	c.Set(model.At(3, 4))
	c.Set(model.At(1, 0))
	if got := c.Save(); got != "1,0|3,4" {
		t.Fatalf("Save = %q", got)
	}

	c.Unset(model.At(1, 0))
	if got := c.Population(); got != 1 {
		t.Fatalf("Population = %d, want 1", got)
	}

	mustStep(t, c)
	c.Clear()
	if c.Population() != 0 || c.Generation() != 0 {
		t.Fatalf("after Clear population=%d generation=%d", c.Population(), c.Generation())
	}
	if c.Save() != "" {
		t.Fatal("empty grid did not save as empty string")
	}
}

func TestControllerLoadResets(t *testing.T) {
	c := newTestController(block...)
	mustStep(t, c)
	c.Load(glider)
	if c.Generation() != 0 {
		t.Fatalf("Generation after Load = %d", c.Generation())
	}
	if !sameCells(c.Current(), glider) {
		t.Fatalf("Load produced %v", c.Save())
	}
}

func TestControllerStagnation(t *testing.T) {
	t.Run("still life", func(t *testing.T) {
		c := newTestController(block...)
		if c.IsStagnant() {
			t.Fatal("stagnant before any step")
		}
		mustStep(t, c)
		if !c.IsStagnant() {
			t.Fatal("block not reported stagnant")
		}
	})

	t.Run("oscillator", func(t *testing.T) {
		c := newTestController(horizontalBlinker...)
		mustStep(t, c)
		if c.IsStagnant() {
			t.Fatal("blinker stagnant after one step")
		}
		mustStep(t, c)
		if !c.IsStagnant() {
			t.Fatal("blinker not reported stagnant after a full period")
		}
	})

	t.Run("glider", func(t *testing.T) {
		c := newTestController(glider...)
		for range 10 {
			mustStep(t, c)
			if c.IsStagnant() {
				t.Fatalf("glider stagnant at generation %d", c.Generation())
			}
		}
	})

	t.Run("edit clears history", func(t *testing.T) {
		c := newTestController(block...)
		mustStep(t, c)
		c.Set(model.At(40, 40))
		c.Unset(model.At(40, 40))
		if c.IsStagnant() {
			t.Fatal("history survived an edit")
		}
	})
}

func TestControllerFailedStepKeepsState(t *testing.T) {
	c := &Controller{
		grids: [2]*model.Grid{model.NewDefaultGrid(), model.NewGrid(10, 10)},
	}
	c.Set(model.At(1, 1))
	first := c.Current()

	if err := c.Step(); err == nil {
		t.Fatal("Step across mismatched grids succeeded")
	}
	if c.Current() != first || c.Generation() != 0 {
		t.Fatalf("failed step advanced: generation %d", c.Generation())
	}
	if len(c.history) != 0 {
		t.Fatalf("failed step recorded %d history entries", len(c.history))
	}
}

func TestControllerFromPool(t *testing.T) {
	pool := model.NewGridPool(model.DefaultWidth, model.DefaultHeight)
	c := NewControllerFromPool(pool)
	c.Load(horizontalBlinker)
	mustStep(t, c)
	if !sameCells(c.Current(), verticalBlinker) {
		t.Fatalf("pooled controller stepped to %v", c.Save())
	}
	c.Release(pool)

	g := pool.Get()
	if g.CountLivingCells() != 0 {
		t.Fatal("released grid was not cleared")
	}
}
