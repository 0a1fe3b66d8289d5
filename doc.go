// Package village draws an animated village landscape on a gg surface.
//
// # Overview
//
// The scene is a fixed 900x500 world: ground, a river, hills, two houses, a
// tree and the sun, with a boat and clouds drifting across. Later editions
// add a road with a car, a windmill with a flock of birds, and a cow in the
// pasture. Geometry is expressed in turtle coordinates (origin at the centre,
// y up) and drawn through package turtle.
//
// # Quick Start
//
//	r, err := village.NewRenderer(village.WithEdition(village.Windmill))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	st := village.NewState(village.Windmill, village.DefaultSpeeds())
//	for i := 0; i < 100; i++ {
//	    pm, _ := r.Render(st)
//	    _ = pm // hand the frame to a window or an encoder
//	    st.Step()
//	}
//
// # Layers
//
// Layers that never move are drawn once into a cached pixmap. Every frame
// starts from a copy of that pixmap and draws the animated layers on top:
// boat, clouds, car, windmill sails, birds and cow.
//
// # Animation
//
// State holds a handful of scalar offsets. Step advances each one by its
// speed and wraps it back to the far edge once it leaves the world.
package village
