package village

import (
	"strconv"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// hud is the optional caption in the top-left corner.
type hud struct {
	face  text.Face
	title string
}

func newHUD(face text.Face, e Edition) *hud {
	return &hud{face: face, title: Title(e)}
}

func (h *hud) draw(dc *gg.Context, frame int) {
	size := h.face.Size()
	dc.SetFont(h.face)
	dc.SetRGBA(hudInk.R, hudInk.G, hudInk.B, 1)
	dc.DrawString(h.title, size/2, size*1.4)
	dc.DrawString("frame "+strconv.Itoa(frame), size/2, size*2.8)
}

// Title returns the edition name in title case, as shown in the window
// title and the HUD.
func Title(e Edition) string {
	return cases.Title(language.English).String(e.String())
}
