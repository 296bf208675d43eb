package universe

// Status represents the status of the Universe at concrete moment
type Status struct {
	Tick        int
	Speed       int
	Population  int
	RunningMode RunningState
}

// The universe running status at the concrete moment
type RunningState int

const (
	RunningStatePaused   RunningState = 0x0
	RunningStateRun      RunningState = 0x1
	RunningStateUncapped RunningState = 0x2
)

func (s RunningState) String() string {
	switch s {
	case RunningStatePaused:
		return "paused"
	case RunningStateRun:
		return "running"
	case RunningStateUncapped:
		return "uncapped"
	}
	return "unknown"
}

// Game owns the grid and the speed and tick counters
// implements Universe interface
// it is not safe for concurrent use, the main loop is the only owner
type Game struct {
	options   Options
	grid      *Grid
	rng       RandomSource
	speed     int
	tick      int
	history   *History
	templates map[string]Template
}

// NewGame creates the game and populates the grid with the configured pattern
func NewGame(o *Options, rng RandomSource) *Game {
	if o == nil {
		o = &DefaultOptions
	}
	if rng == nil {
		rng = NewRNG(o.Seed)
	}
	g := &Game{
		options:   *o,
		grid:      NewGrid(o.Width, o.Height),
		rng:       rng,
		history:   NewHistory(DefHistorySize),
		templates: map[string]Template{},
	}
	g.setSpeed(o.Speed)
	g.AddTemplate(GliderTemplate)

	switch o.Pattern {
	case PatternNoise:
		g.SpawnNoise()
	case PatternGlider:
		g.SpawnGlider()
	}
	g.history.Record(g.grid.Population())
	return g
}

// AddTemplate adds the seeding template to the internal storage
// the universe can be populated with this template by call SettleTemplate
func (g *Game) AddTemplate(tmpl Template) {
	g.templates[tmpl.Name] = tmpl
}

// SettleTemplate clears the box covered by the template at the origin and settles the template
func (g *Game) SettleTemplate(name string) {
	tmpl, ok := g.templates[name]
	if !ok {
		return
	}
	w, h := tmpl.bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.grid.SetDead(x, y)
		}
	}
	g.grid.Settle(tmpl.Coordinates)
}

// NextTick advances the grid one generation unless the game is paused
func (g *Game) NextTick() {
	if g.speed == SpeedMin {
		return
	}
	g.grid.Tick()
	g.tick++
	g.history.Record(g.grid.Population())
}

// Faster increases the speed, clamped at MaxSpeed
func (g *Game) Faster() {
	g.setSpeed(g.speed + 1)
}

// Slower decreases the speed, clamped at zero
func (g *Game) Slower() {
	g.setSpeed(g.speed - 1)
}

func (g *Game) setSpeed(s int) {
	switch {
	case s < SpeedMin:
		s = SpeedMin
	case s > MaxSpeed:
		s = MaxSpeed
	}
	g.speed = s
}

// SpawnNoise overwrites every cell with a random state
func (g *Game) SpawnNoise() {
	for y := 0; y < g.grid.Height(); y++ {
		for x := 0; x < g.grid.Width(); x++ {
			if g.rng.Bool() {
				g.grid.SetAlive(x, y)
			} else {
				g.grid.SetDead(x, y)
			}
		}
	}
}

// SpawnGlider places the canonical glider at the origin
func (g *Game) SpawnGlider() {
	g.SettleTemplate(GliderTemplate.Name)
}

// KillEverything kills all cells, the population history starts over from the empty grid
func (g *Game) KillEverything() {
	g.grid.Clear()
	g.history.Reset()
	g.history.Record(0)
}

// Speed returns the current speed level
func (g *Game) Speed() int {
	return g.speed
}

// Tick returns the number of generations done
func (g *Game) Tick() int {
	return g.tick
}

// Status returns current game status represented by Status struct
func (g *Game) Status() Status {
	rm := RunningStateRun
	switch g.speed {
	case SpeedMin:
		rm = RunningStatePaused
	case MaxSpeed:
		rm = RunningStateUncapped
	}
	return Status{
		Tick:        g.tick,
		Speed:       g.speed,
		Population:  g.grid.Population(),
		RunningMode: rm,
	}
}

// Options returns the game configuration represented by Options struct
func (g *Game) Options() Options {
	return g.options
}

// Grid returns the field where cells are living
func (g *Game) Grid() *Grid {
	return g.grid
}

// History returns the population history
func (g *Game) History() *History {
	return g.history
}
