package ebview

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/village"
)

// Common errors returned by Viewer operations.
var (
	// ErrNilPlayer is returned when New is given a nil player.
	ErrNilPlayer = errors.New("ebview: nil player")

	// ErrInvalidInterval is returned for non-positive frame intervals.
	ErrInvalidInterval = errors.New("ebview: invalid frame interval")
)

// Viewer is an ebiten.Game that plays a village scene.
type Viewer struct {
	player *village.Player
	title  string
	tps    int
	screen *ebiten.Image
	err    error

	// quit reports whether the user asked to close the window.
	quit func() bool
}

// New creates a viewer for p that ticks once per interval.
func New(p *village.Player, interval time.Duration, title string) (*Viewer, error) {
	if p == nil {
		return nil, ErrNilPlayer
	}
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}
	return &Viewer{
		player: p,
		title:  title,
		tps:    TicksPerSecond(interval),
		quit:   escapePressed,
	}, nil
}

// TicksPerSecond converts a frame interval into an ebiten tick rate, at
// least 1.
func TicksPerSecond(interval time.Duration) int {
	tps := int(math.Round(float64(time.Second) / float64(interval)))
	return max(tps, 1)
}

// TPS returns the tick rate the window runs at.
func (v *Viewer) TPS() int {
	return v.tps
}

// Run opens the window and blocks until it is closed.
func (v *Viewer) Run() error {
	r := v.player.Renderer()
	ebiten.SetWindowTitle(v.title)
	ebiten.SetWindowSize(r.Width(), r.Height())
	ebiten.SetTPS(v.tps)

	village.Logger().Info("window opened",
		"title", v.title, "width", r.Width(), "height", r.Height(), "tps", v.tps)

	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	village.Logger().Info("window closed", "frames", v.player.State().Frame)
	return err
}

// Update advances the animation by one tick. A render error from the
// previous Draw is reported here, which stops the game loop.
func (v *Viewer) Update() error {
	if v.err != nil {
		return v.err
	}
	if v.quit() {
		return ebiten.Termination
	}
	v.player.State().Step()
	return nil
}

// Draw renders the current state and copies it to the window.
func (v *Viewer) Draw(screen *ebiten.Image) {
	r := v.player.Renderer()
	pm, err := r.Render(v.player.State())
	if err != nil {
		v.err = err
		return
	}
	if v.screen == nil {
		v.screen = ebiten.NewImage(r.Width(), r.Height())
	}
	v.screen.WritePixels(pm.Data())
	screen.DrawImage(v.screen, nil)
}

// Layout keeps the logical screen at the renderer size; ebiten scales it to
// the window.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	r := v.player.Renderer()
	return r.Width(), r.Height()
}

func escapePressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape)
}
