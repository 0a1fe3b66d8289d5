// Package ebview shows a village scene in a desktop window.
//
// The window is driven by ebiten's fixed-rate update loop. Each tick advances
// the animation by one step and each draw renders the current state with gg
// and uploads the pixels:
//
//	village.Player (state) -> Renderer -> gg.Pixmap (CPU) -> ebiten.Image -> window
//
// The tick rate is derived from the frame interval, so the default 20 ms
// interval runs at 50 ticks per second.
//
// # Usage
//
//	p, _ := village.NewPlayer(village.WithEdition(village.Windmill))
//	v, _ := ebview.New(p, 20*time.Millisecond, "Village Scenery")
//	if err := v.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// A Viewer is NOT safe for concurrent use.
package ebview
