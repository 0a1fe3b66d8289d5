package village

import (
	"context"
	"fmt"

	"github.com/gogpu/gg"
)

// FrameSink consumes rendered frames. The pixmap is only valid until the
// call returns.
type FrameSink interface {
	WriteFrame(pm *gg.Pixmap) error
}

// Player couples a Renderer with its animation State and drives the
// render-then-step loop.
type Player struct {
	r  *Renderer
	st *State
}

// NewPlayer creates a renderer and a start state from the same options.
func NewPlayer(opts ...Option) (*Player, error) {
	r, err := NewRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Player{r: r, st: NewState(r.opts.edition, r.opts.speeds)}, nil
}

// Renderer returns the underlying renderer.
func (p *Player) Renderer() *Renderer {
	return p.r
}

// State returns the state of the next frame.
func (p *Player) State() *State {
	return p.st
}

// Next renders the current frame and advances the animation by one tick.
func (p *Player) Next() (*gg.Pixmap, error) {
	pm, err := p.r.Render(p.st)
	if err != nil {
		return nil, err
	}
	p.st.Step()
	return pm, nil
}

// Play renders n frames into sink. It stops early with ctx.Err() when ctx is
// cancelled between frames.
func (p *Player) Play(ctx context.Context, n int, sink FrameSink) error {
	log := Logger()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		pm, err := p.Next()
		if err != nil {
			return err
		}
		if err := sink.WriteFrame(pm); err != nil {
			return fmt.Errorf("village: write frame %d: %w", i, err)
		}
		log.Debug("frame written", "frame", i)
	}
	return nil
}

// Close releases the renderer.
func (p *Player) Close() error {
	return p.r.Close()
}
