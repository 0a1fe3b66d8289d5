package export

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Option configures a writer.
type Option func(*options)

type options struct {
	scale  float64
	dither bool
}

func defaultOptions() options {
	return options{scale: 1}
}

// WithScale resizes every frame by f before writing. Values <= 0 are
// ignored.
func WithScale(f float64) Option {
	return func(o *options) {
		if f > 0 {
			o.scale = f
		}
	}
}

// WithDither enables Floyd-Steinberg error diffusion when reducing frames to
// the GIF palette.
func WithDither(on bool) Option {
	return func(o *options) {
		o.dither = on
	}
}

// scaled returns pm resized by f. f == 1 returns pm itself.
func scaled(pm *gg.Pixmap, f float64) image.Image {
	if f == 1 {
		return pm
	}
	w := max(1, int(math.Round(float64(pm.Width())*f)))
	h := max(1, int(math.Round(float64(pm.Height())*f)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), pm, pm.Bounds(), draw.Src, nil)
	return dst
}
