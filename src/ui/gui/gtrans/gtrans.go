// Package gtrans slides the body between routed pages. The host loop feeds
// route changes and frame deltas; the controller says which pages are mounted
// and where to draw them.
package gtrans

import (
	"math"
	"strings"
	"time"
)

type Route int

const (
	NotFound Route = iota
	Home
	Gob
	Crab
)

var routeNames = map[Route]string{
	NotFound: "404",
	Home:     "/",
	Gob:      "/gob",
	Crab:     "/crab",
}

func (r Route) String() string {
	if s, ok := routeNames[r]; ok {
		return s
	}
	return routeNames[NotFound]
}

// ParseRoute accepts "/gob" as well as "gob". Anything unknown is NotFound.
func ParseRoute(s string) Route {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "home" {
		return Home
	}
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	for r, name := range routeNames {
		if r != NotFound && name == s {
			return r
		}
	}
	return NotFound
}

type Direction int

const (
	Upward Direction = iota
	Downward
)

type State int

const (
	Idle State = iota
	Animating
	Settled
)

func (s State) String() string {
	switch s {
	case Animating:
		return "animating"
	case Settled:
		return "settled"
	}
	return "idle"
}

const Duration = 300 * time.Millisecond

type pair struct{ from, to Route }

type slide struct {
	from Route
	dir  Direction
}

var table = map[pair]slide{
	{Home, Gob}:  {Home, Upward},
	{Home, Crab}: {Home, Upward},
	{Gob, Home}:  {Gob, Downward},
	{Gob, Crab}:  {Gob, Upward},
	{Crab, Home}: {Crab, Downward},
	{Crab, Gob}:  {Crab, Downward},
}

// EaseOutExpo maps linear time t in [0, 1] to eased progress.
func EaseOutExpo(t float64) float64 {
	if t >= 1 {
		return 1
	}
	if t <= 0 {
		return 0
	}
	return 1 - math.Pow(2, -10*t)
}

type Controller struct {
	state    State
	from, to Route
	dir      Direction
	elapsed  time.Duration
	progress float64
}

func New(initial Route) *Controller {
	return &Controller{to: initial}
}

// Route starts a slide for a known pair and reports whether it did. Any
// other pair swaps to the destination at once. A slide in flight is dropped.
func (c *Controller) Route(from, to Route) bool {
	c.to = to
	c.elapsed = 0
	sl, ok := table[pair{from, to}]
	if !ok {
		c.from = NotFound
		c.progress = 1
		c.state = Settled
		return false
	}
	c.from = sl.from
	c.dir = sl.dir
	c.progress = 0
	c.state = Animating
	return true
}

// Tick advances the clock by dt.
func (c *Controller) Tick(dt time.Duration) {
	if c.state != Animating {
		return
	}
	c.elapsed += dt
	t := float64(c.elapsed) / float64(Duration)
	c.Step(EaseOutExpo(t), c.elapsed < Duration)
}

// Step sets the eased progress. The slide settles once progress is complete
// and the clock has stopped.
func (c *Controller) Step(progress float64, running bool) {
	if c.state != Animating {
		return
	}
	c.progress = min(max(progress, 0), 1)
	if c.progress >= 1 && !running {
		c.state = Settled
		c.from = NotFound
	}
}

func (c *Controller) State() State       { return c.state }
func (c *Controller) Progress() float64  { return c.progress }
func (c *Controller) Destination() Route { return c.to }

// Mounted lists the live pages in stack order, top first.
func (c *Controller) Mounted() []Route {
	if c.state != Animating {
		return []Route{c.to}
	}
	if c.dir == Upward {
		return []Route{c.from, c.to}
	}
	return []Route{c.to, c.from}
}

// Frame tells the host how to composite one paint: Top is drawn at y=-Offset
// and Bottom at y=height-Offset. Single frames only carry Top.
type Frame struct {
	Top, Bottom Route
	Offset      float64
	Single      bool
}

func (c *Controller) Frame(height float64) Frame {
	if c.state != Animating || height <= 0 {
		return Frame{Top: c.to, Single: true}
	}
	m := c.Mounted()
	v := c.progress
	if c.dir == Upward {
		v = 1 - v
	}
	return Frame{Top: m[0], Bottom: m[1], Offset: height - v*height}
}
