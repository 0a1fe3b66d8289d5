package village

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// World dimensions. All scene geometry is laid out for this size and scaled
// uniformly to the output size.
const (
	WorldWidth  = 900
	WorldHeight = 500
)

// Option configures a Renderer or Player during creation.
//
// Example:
//
//	r, err := village.NewRenderer(
//	    village.WithEdition(village.Pasture),
//	    village.WithSize(450, 250),
//	)
type Option func(*options)

type options struct {
	edition    Edition
	width      int
	height     int
	background gg.RGBA
	speeds     Speeds
	hudFace    text.Face
}

func defaultOptions() options {
	return options{
		edition:    Classic,
		width:      WorldWidth,
		height:     WorldHeight,
		background: skyCyan,
		speeds:     DefaultSpeeds(),
	}
}

// WithEdition selects the scene edition. The default is Classic.
func WithEdition(e Edition) Option {
	return func(o *options) {
		o.edition = e
	}
}

// WithSize sets the output size in pixels. The world is scaled uniformly to
// fit and centred.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithBackground sets the sky color behind the landscape.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithSpeeds sets the animation increments used by a Player.
func WithSpeeds(sp Speeds) Option {
	return func(o *options) {
		o.speeds = sp
	}
}

// WithHUD draws the edition title and frame counter in the top-left corner
// using face. A nil face disables the overlay.
func WithHUD(face text.Face) Option {
	return func(o *options) {
		o.hudFace = face
	}
}
