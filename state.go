package village

import "math"

// Wraparound bounds, in world units.
const (
	boatStart  = 50.0
	boatWrapAt = 500.0
	boatWrapTo = -550.0
	carStart   = -500.0
	carWrapAt  = 500.0
	carWrapTo  = -600.0
	windStart  = 10.0
	windWrapAt = 500.0
	windWrapTo = -500.0
	birdWrapAt = 470.0
	birdWrapTo = -470.0
	birdBob    = 6.0
	fullTurn   = 360.0
)

// Speeds are the per-tick increments of the animated offsets.
type Speeds struct {
	Boat     float64 `yaml:"boat"`
	Cloud    float64 `yaml:"cloud"`
	Car      float64 `yaml:"car"`
	Windmill float64 `yaml:"windmill"` // degrees per tick
	Wind     float64 `yaml:"wind"`
	Birds    float64 `yaml:"birds"` // multiplier on each bird's own speed
}

// DefaultSpeeds returns the speeds of the original animation at 20 ms ticks.
// The clouds ride on the boat's offset; a Cloud speed below Boat gives them
// parallax.
func DefaultSpeeds() Speeds {
	return Speeds{
		Boat:     1.5,
		Cloud:    1.5,
		Car:      3,
		Windmill: 3,
		Wind:     0.05,
		Birds:    1,
	}
}

// Bird is one member of the flock.
type Bird struct {
	X     float64
	Y     float64
	BaseY float64
	Speed float64
}

// flock is the starting formation, loosely a V heading right.
var flock = []Bird{
	{X: -300, BaseY: 185, Speed: 1.2},
	{X: -325, BaseY: 172, Speed: 1.2},
	{X: -325, BaseY: 198, Speed: 1.2},
	{X: -350, BaseY: 160, Speed: 1.1},
	{X: -350, BaseY: 210, Speed: 1.1},
}

// State is the set of animated offsets for one frame.
type State struct {
	Frame         int
	BoatX         float64
	CloudX        float64
	CarX          float64
	WindmillAngle float64
	WindPhase     float64
	Birds         []Bird

	speeds Speeds
}

// NewState returns the first-frame state. Birds are only placed when the
// edition has them.
func NewState(e Edition, sp Speeds) *State {
	st := &State{
		BoatX:     boatStart,
		CloudX:    boatStart,
		CarX:      carStart,
		WindPhase: windStart,
		speeds:    sp,
	}
	if e.Has(FeatureBirds) {
		st.Birds = make([]Bird, len(flock))
		copy(st.Birds, flock)
		st.placeBirds()
	}
	return st
}

// Speeds returns the increments used by Step.
func (s *State) Speeds() Speeds {
	return s.speeds
}

// Step advances every offset by one tick.
func (s *State) Step() {
	sp := s.speeds
	s.Frame++
	s.BoatX = wrap(s.BoatX+sp.Boat, boatWrapAt, boatWrapTo)
	s.CloudX = wrap(s.CloudX+sp.Cloud, boatWrapAt, boatWrapTo)
	s.CarX = wrap(s.CarX+sp.Car, carWrapAt, carWrapTo)
	s.WindPhase = wrap(s.WindPhase+sp.Wind, windWrapAt, windWrapTo)

	s.WindmillAngle = math.Mod(s.WindmillAngle+sp.Windmill, fullTurn)
	if s.WindmillAngle < 0 {
		s.WindmillAngle += fullTurn
	}

	for i := range s.Birds {
		b := &s.Birds[i]
		b.X = wrap(b.X+b.Speed*sp.Birds, birdWrapAt, birdWrapTo)
	}
	s.placeBirds()
}

// StepN advances n ticks.
func (s *State) StepN(n int) {
	for range n {
		s.Step()
	}
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := *s
	if s.Birds != nil {
		c.Birds = make([]Bird, len(s.Birds))
		copy(c.Birds, s.Birds)
	}
	return &c
}

// WingUp reports whether the flock's wings are raised this frame.
func (s *State) WingUp() bool {
	return math.Sin(s.WindPhase*8) > 0
}

func (s *State) placeBirds() {
	for i := range s.Birds {
		b := &s.Birds[i]
		b.Y = b.BaseY + birdBob*math.Sin(s.WindPhase*4+float64(i))
	}
}

// wrap jumps v to to once it passes at.
func wrap(v, at, to float64) float64 {
	if v > at {
		return to
	}
	return v
}
