// Package export writes rendered frames to files.
//
// Both writers implement village.FrameSink:
//
//	f, _ := os.Create("village.gif")
//	gw := export.NewGIFWriter(f, 20*time.Millisecond, export.WithScale(0.5))
//	_ = player.Play(ctx, 250, gw)
//	_ = gw.Close()
//
// GIF frames are mapped onto a fixed 256-color palette. PNG sequences keep
// full color.
package export
