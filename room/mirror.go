package room

import (
	"errors"
	"fmt"
	"strings"
)

// MirrorSide names one wall of the room.
type MirrorSide int

const (
	Top MirrorSide = iota
	Right
	Bottom
	Left
)

// AllSides lists the walls in MirrorConfig order.
var AllSides = [4]MirrorSide{Top, Right, Bottom, Left}

var sideNames = [4]string{"top", "right", "bottom", "left"}

func (s MirrorSide) String() string {
	if s < Top || s > Left {
		return fmt.Sprintf("MirrorSide(%d)", int(s))
	}
	return sideNames[s]
}

// Horizontal is true for the walls that run along the x axis (Top and Bottom).
func (s MirrorSide) Horizontal() bool {
	return s == Top || s == Bottom
}

// Opposite returns the wall facing s.
func (s MirrorSide) Opposite() MirrorSide {
	return (s + 2) % 4
}

func ParseMirrorSide(name string) (MirrorSide, error) {
	for i, n := range sideNames {
		if strings.EqualFold(name, n) {
			return MirrorSide(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mirror side %q", name)
}

var ErrInvalidMirrorConfig = errors.New("mirror config must have exactly 4 entries")

// MirrorConfig says which walls reflect, indexed [top, right, bottom, left].
type MirrorConfig [4]bool

// ParseMirrorConfig converts a caller-supplied slice into a MirrorConfig.
func ParseMirrorConfig(mirrors []bool) (MirrorConfig, error) {
	if len(mirrors) != 4 {
		return MirrorConfig{}, fmt.Errorf("%w: got %d", ErrInvalidMirrorConfig, len(mirrors))
	}
	var m MirrorConfig
	copy(m[:], mirrors)
	return m, nil
}

func (m MirrorConfig) Has(side MirrorSide) bool {
	return m[side]
}

// Active returns the reflecting walls in Top, Right, Bottom, Left order.
func (m MirrorConfig) Active() []MirrorSide {
	active := make([]MirrorSide, 0, 4)
	for _, side := range AllSides {
		if m[side] {
			active = append(active, side)
		}
	}
	return active
}

// Count is the number of reflecting walls.
func (m MirrorConfig) Count() int {
	return len(m.Active())
}

// Reflect returns the mirror flags of a room after it is reflected across side.
//
// The far wall of a reflected room is the one that now faces the viewer, so side
// and its opposite trade places.
func (m MirrorConfig) Reflect(side MirrorSide) MirrorConfig {
	r := m
	r[side], r[side.Opposite()] = m[side.Opposite()], m[side]
	return r
}

func (m MirrorConfig) String() string {
	names := []string{}
	for _, side := range m.Active() {
		names = append(names, side.String())
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}
