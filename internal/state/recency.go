package state

// DefaultRecentCapacity is the number of recent colors kept when the
// configuration does not say otherwise.
const DefaultRecentCapacity = 6

// DefaultRecent is the initial recent-color list.
var DefaultRecent = []Color{"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#FF00FF", "#00FFFF"}

// Recency is a bounded most-recent-first list of unique colors.
type Recency struct {
	colors   []Color
	capacity int
}

// NewRecency creates a list holding at most capacity colors, seeded in order
// (the first seed ends up at the front). A capacity below 1 is raised to 1.
func NewRecency(capacity int, seed ...Color) *Recency {
	if capacity < 1 {
		capacity = 1
	}
	r := &Recency{
		colors:   make([]Color, 0, capacity+1),
		capacity: capacity,
	}
	for i := len(seed) - 1; i >= 0; i-- {
		if c, err := ParseColor(string(seed[i])); err == nil {
			r.Use(c)
		}
	}
	return r
}

// Use moves c to the front, dropping any previous occurrence and
// truncating to capacity.
func (r *Recency) Use(c Color) {
	n, err := ParseColor(string(c))
	if err != nil {
		return
	}
	r.remove(n)
	r.colors = append(r.colors, "")
	copy(r.colors[1:], r.colors)
	r.colors[0] = n
	if len(r.colors) > r.capacity {
		r.colors = r.colors[:r.capacity]
	}
}

// UseString parses s and records it. Malformed values are rejected.
func (r *Recency) UseString(s string) (Color, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	r.Use(c)
	return c, nil
}

// Contains reports whether s, once normalized, is in the list.
func (r *Recency) Contains(s string) bool {
	n, err := ParseColor(s)
	if err != nil {
		return false
	}
	for _, c := range r.colors {
		if c == n {
			return true
		}
	}
	return false
}

// Colors returns a copy of the list, most recent first.
func (r *Recency) Colors() []Color {
	out := make([]Color, len(r.colors))
	copy(out, r.colors)
	return out
}

func (r *Recency) Len() int      { return len(r.colors) }
func (r *Recency) Capacity() int { return r.capacity }

func (r *Recency) remove(n Color) {
	for i, c := range r.colors {
		if c == n {
			r.colors = append(r.colors[:i], r.colors[i+1:]...)
			return
		}
	}
}
