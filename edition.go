package village

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownEdition is returned for edition numbers or names outside 1..4.
var ErrUnknownEdition = errors.New("village: unknown edition")

// Edition selects which of the four cumulative scene variants is drawn.
type Edition int

// Scene editions. Each one includes everything before it.
const (
	// Classic is the base landscape with a boat and clouds.
	Classic Edition = iota + 1
	// Motorway adds a road, a bridge and a car.
	Motorway
	// Windmill adds a windmill with turning sails and a flock of birds.
	Windmill
	// Pasture adds a cow in the foreground.
	Pasture
)

// Feature is an optional scene element.
type Feature int

// Scene features gated by edition.
const (
	FeatureCar Feature = iota
	FeatureWindmill
	FeatureBirds
	FeatureCow
)

var editionNames = map[Edition]string{
	Classic:  "village scenery",
	Motorway: "village with car",
	Windmill: "village with windmill",
	Pasture:  "village with cow",
}

var editionKeys = map[string]Edition{
	"classic":  Classic,
	"motorway": Motorway,
	"car":      Motorway,
	"windmill": Windmill,
	"pasture":  Pasture,
	"cow":      Pasture,
}

// ParseEdition accepts an edition number ("3") or a short name ("windmill").
func ParseEdition(s string) (Edition, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		e := Edition(n)
		if !e.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrUnknownEdition, n)
		}
		return e, nil
	}
	if e, ok := editionKeys[s]; ok {
		return e, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEdition, s)
}

// Valid reports whether e is one of the four editions.
func (e Edition) Valid() bool {
	return e >= Classic && e <= Pasture
}

// Has reports whether the edition draws f.
func (e Edition) Has(f Feature) bool {
	switch f {
	case FeatureCar:
		return e >= Motorway
	case FeatureWindmill, FeatureBirds:
		return e >= Windmill
	case FeatureCow:
		return e >= Pasture
	}
	return false
}

// String returns the descriptive name of the edition.
func (e Edition) String() string {
	if n, ok := editionNames[e]; ok {
		return n
	}
	return "edition(" + strconv.Itoa(int(e)) + ")"
}
