package overlay

// Marker is a labelled point drawn on the overlay. Markers do not take part
// in label layout.
type Marker struct {
	ID   uint
	Text string
	Pos  Point // World position
}

// MarkerSet holds overlay markers. IDs are never reused, not even after Clear.
type MarkerSet struct {
	lastID  uint
	markers []Marker
}

// AddPoint adds a point marker and returns its ID.
func (m *MarkerSet) AddPoint(text string, x, y float64) uint {
	m.lastID++
	m.markers = append(m.markers, Marker{ID: m.lastID, Text: text, Pos: Point{x, y}})
	return m.lastID
}

// Remove deletes the marker with the given ID and reports whether it existed.
func (m *MarkerSet) Remove(id uint) bool {
	for i := range m.markers {
		if m.markers[i].ID == id {
			m.markers = append(m.markers[:i], m.markers[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all markers.
func (m *MarkerSet) Clear() {
	m.markers = nil
}

// Len returns the number of markers.
func (m *MarkerSet) Len() int { return len(m.markers) }

// All returns a copy of the markers in insertion order.
func (m *MarkerSet) All() []Marker {
	out := make([]Marker, len(m.markers))
	copy(out, m.markers)
	return out
}

// Nearest returns the ID of the marker closest to the world position, or
// false when the set is empty.
func (m *MarkerSet) Nearest(world Point) (uint, bool) {
	if len(m.markers) == 0 {
		return 0, false
	}
	best := m.markers[0]
	for _, mk := range m.markers[1:] {
		if Dist(mk.Pos, world) < Dist(best.Pos, world) {
			best = mk
		}
	}
	return best.ID, true
}
