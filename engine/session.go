package engine

import (
	"log"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// DefaultCellSize is the edge length of one cell in pixels
const DefaultCellSize = 6

// Mode is the interaction state of a session
type Mode int

const (
	Idle Mode = iota
	Running
	Editing
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Editing:
		return "editing"
	}
	return "unknown"
}

// Command is a discrete instruction from the host's input handling
type Command int

const (
	StartStop Command = iota
	ClearGrid
	EditToggle
	SavePattern
	Quit
	// Cancel leaves Running or Editing, like Esc
	Cancel
)

// MenuItem is one entry of the on-screen legend
type MenuItem struct {
	Label   string
	Command Command
	Enabled bool
}

var menu = []MenuItem{
	{Label: "F1 Start/Stop", Command: StartStop},
	{Label: "F2 Clear", Command: ClearGrid},
	{Label: "F3 Edit", Command: EditToggle},
	{Label: "F4 Save", Command: SavePattern},
	{Label: "F5 Quit", Command: Quit},
}

// Session connects a Controller to a host loop: it interprets commands,
// gates editing by mode, paces steps and persists the pattern
type Session struct {
	controller *Controller
	config     utils.Config
	file       *utils.ConfigFile
	logger     *log.Logger
	stats      *utils.Stats

	mode     Mode
	cellSize int
	lastStep time.Time
}

// NewSession creates an idle session. A pattern in config is loaded into
// the controller's current grid.
func NewSession(controller *Controller, config utils.Config, file *utils.ConfigFile, logger *log.Logger) *Session {
	if config.Pattern != nil {
		controller.Load(config.Pattern)
	}
	return &Session{
		controller: controller,
		config:     config,
		file:       file,
		logger:     logger,
		stats:      utils.NewStats(),
		cellSize:   DefaultCellSize,
	}
}

// SetCellSize changes the pixel size used to map screen positions to cells
func (s *Session) SetCellSize(px int) {
	if px > 0 {
		s.cellSize = px
	}
}

// CellSize returns the pixel size of one cell
func (s *Session) CellSize() int {
	return s.cellSize
}

// Mode returns the current interaction state
func (s *Session) Mode() Mode {
	return s.mode
}

// Config returns the settings the session runs with
func (s *Session) Config() utils.Config {
	return s.config
}

// Stats returns the running statistics
func (s *Session) Stats() *utils.Stats {
	return s.stats
}

// Grid returns the grid to render. See Controller.Current.
func (s *Session) Grid() *model.Grid {
	return s.controller.Current()
}

// Controller returns the underlying controller
func (s *Session) Controller() *Controller {
	return s.controller
}

// Enabled reports whether cmd has any effect in the current mode
func (s *Session) Enabled(cmd Command) bool {
	switch cmd {
	case StartStop:
		return s.mode != Editing
	case ClearGrid, SavePattern:
		return s.mode == Idle
	case EditToggle:
		return s.mode != Running
	case Cancel:
		return s.mode != Idle
	case Quit:
		return true
	}
	return false
}

// MenuItems returns the legend entries with their current availability
func (s *Session) MenuItems() []MenuItem {
	items := make([]MenuItem, len(menu))
	for i, item := range menu {
		item.Enabled = s.Enabled(item.Command)
		items[i] = item
	}
	return items
}

// Handle applies cmd and reports whether the host should quit. Commands not
// enabled in the current mode are ignored.
func (s *Session) Handle(cmd Command) (quit bool) {
	if !s.Enabled(cmd) {
		return false
	}

	switch cmd {
	case StartStop:
		if s.mode == Running {
			s.mode = Idle
		} else {
			s.mode = Running
			s.lastStep = time.Time{}
		}
	case ClearGrid:
		s.controller.Clear()
	case EditToggle:
		if s.mode == Editing {
			s.mode = Idle
		} else {
			s.mode = Editing
		}
	case SavePattern:
		s.save()
	case Cancel:
		s.mode = Idle
	case Quit:
		return true
	}
	return false
}

func (s *Session) save() {
	pattern := s.controller.Save()
	if pattern == "" {
		s.logger.Printf("save: grid is empty, nothing written")
		return
	}
	if s.file == nil {
		s.logger.Printf("save: no config file")
		return
	}
	if err := s.file.SavePattern(pattern); err != nil {
		s.logger.Printf("save: %v", err)
		return
	}
	s.logger.Printf("save: wrote pattern to %s", s.file.Path())
}

// CellAt maps a screen position in pixels to a grid cell
func (s *Session) CellAt(x, y int) (model.Cell, bool) {
	if x < 0 || y < 0 {
		return model.Cell{}, false
	}
	c := model.At(x/s.cellSize, y/s.cellSize)
	return c, s.controller.Current().Contains(c)
}

// SetCellAt makes the cell under a screen position live while editing
func (s *Session) SetCellAt(x, y int) bool {
	return s.editAt(x, y, s.controller.Set)
}

// UnsetCellAt makes the cell under a screen position dead while editing
func (s *Session) UnsetCellAt(x, y int) bool {
	return s.editAt(x, y, s.controller.Unset)
}

func (s *Session) editAt(x, y int, edit func(model.Cell)) bool {
	if s.mode != Editing {
		return false
	}
	c, ok := s.CellAt(x, y)
	if !ok {
		return false
	}
	edit(c)
	return true
}

// Tick advances the simulation by one generation when running and at least
// one interval has passed since the previous step. It reports whether a step
// happened. The first tick after starting always steps.
func (s *Session) Tick(now time.Time) bool {
	if s.mode != Running {
		return false
	}
	if !s.lastStep.IsZero() && now.Sub(s.lastStep) < s.config.Interval {
		return false
	}

	if err := s.controller.Step(); err != nil {
		s.logger.Printf("step: %v", err)
		s.mode = Idle
		return false
	}

	var elapsed time.Duration
	if !s.lastStep.IsZero() {
		elapsed = now.Sub(s.lastStep)
	}
	s.lastStep = now
	s.stats.Update(s.controller.Generation(), s.controller.Population(), elapsed)
	return true
}
