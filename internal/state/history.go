package state

// DefaultHistoryLimit bounds the number of snapshots kept for undo.
const DefaultHistoryLimit = 50

// History is a bounded list of snapshots with a cursor on the one currently
// displayed. An empty History has cursor -1.
type History struct {
	snapshots []Snapshot
	cursor    int
	limit     int
}

// NewHistory creates an empty history keeping at most limit snapshots.
// A limit below 1 selects DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = DefaultHistoryLimit
	}
	return &History{
		snapshots: make([]Snapshot, 0, limit+1),
		cursor:    -1,
		limit:     limit,
	}
}

// Push records s as the newest entry. Entries after the cursor (the redo
// branch) are discarded first; once over the limit the oldest entries are
// evicted and the cursor moves down with them.
func (h *History) Push(s Snapshot) {
	if h.cursor < len(h.snapshots)-1 {
		clear(h.snapshots[h.cursor+1:])
		h.snapshots = h.snapshots[:h.cursor+1]
	}
	h.snapshots = append(h.snapshots, s)
	h.cursor = len(h.snapshots) - 1

	if len(h.snapshots) > h.limit {
		excess := len(h.snapshots) - h.limit
		h.snapshots = append(h.snapshots[:0], h.snapshots[excess:]...)
		clear(h.snapshots[len(h.snapshots) : len(h.snapshots)+excess])
		h.cursor -= excess
	}
}

// Undo steps the cursor back and returns the snapshot to display.
// It returns false when there is nothing to undo.
func (h *History) Undo() (Snapshot, bool) {
	if !h.CanUndo() {
		return Snapshot{}, false
	}
	h.cursor--
	return h.snapshots[h.cursor], true
}

// Redo steps the cursor forward and returns the snapshot to display.
// It returns false when there is nothing to redo.
func (h *History) Redo() (Snapshot, bool) {
	if !h.CanRedo() {
		return Snapshot{}, false
	}
	h.cursor++
	return h.snapshots[h.cursor], true
}

// Reset collapses the history to the single blank snapshot.
func (h *History) Reset(blank Snapshot) {
	clear(h.snapshots)
	h.snapshots = append(h.snapshots[:0], blank)
	h.cursor = 0
}

// Current returns the snapshot at the cursor.
func (h *History) Current() (Snapshot, bool) {
	if h.cursor < 0 {
		return Snapshot{}, false
	}
	return h.snapshots[h.cursor], true
}

func (h *History) CanUndo() bool { return h.cursor > 0 }
func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }
func (h *History) Cursor() int   { return h.cursor }
func (h *History) Len() int      { return len(h.snapshots) }
func (h *History) Limit() int    { return h.limit }

// Index returns the position of the snapshot with the given id, or -1.
func (h *History) Index(id string) int {
	if id == "" {
		return -1
	}
	for i, s := range h.snapshots {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

// Seek moves the cursor to i and returns the snapshot there. It returns
// false and leaves the cursor alone when i is out of range.
func (h *History) Seek(i int) (Snapshot, bool) {
	if i < 0 || i >= len(h.snapshots) {
		return Snapshot{}, false
	}
	h.cursor = i
	return h.snapshots[i], true
}
