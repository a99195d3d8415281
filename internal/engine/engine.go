// Package engine ties the drawing state together: pointer events become
// strokes on a Surface, completed strokes become history snapshots, and
// undo/redo restore those snapshots asynchronously.
package engine

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"LocalPaint/internal/config"
	"LocalPaint/internal/export"
	"LocalPaint/internal/state"
)

var (
	// ErrStrokeActive is returned by commands that would race the open stroke.
	ErrStrokeActive = errors.New("stroke in progress")
	ErrClosed       = errors.New("engine closed")
)

// Event tells the host why the surface or history changed.
type Event int

const (
	EventDrawn Event = iota
	EventSnapshot
	EventRestored
	EventCleared
	EventReset
)

var eventNames = [...]string{
	EventDrawn:    "drawn",
	EventSnapshot: "snapshot",
	EventRestored: "restored",
	EventCleared:  "cleared",
	EventReset:    "reset",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("Event(%d)", int(e))
	}
	return eventNames[e]
}

type Option func(*Engine)

// WithOnChange registers fn to be told when the surface or history changes.
// EventRestored arrives on the restore goroutine; fn must not block.
func WithOnChange(fn func(Event)) Option {
	return func(e *Engine) { e.onChange = fn }
}

// WithOnError registers fn for errors that have no caller to return to,
// such as a failed restore.
func WithOnError(fn func(error)) Option {
	return func(e *Engine) { e.onError = fn }
}

// WithSettings replaces the settings built from the config.
func WithSettings(s *state.ToolSettings) Option {
	return func(e *Engine) { e.settings = s }
}

// Engine owns the tool settings, the history and the stroke renderer for
// one surface. All methods are safe for concurrent use.
type Engine struct {
	mu       sync.Mutex
	surface  Surface
	settings *state.ToolSettings
	history  *state.History
	renderer *Renderer
	restorer *Restorer
	export   config.Export
	closed   bool

	onChange func(Event)
	onError  func(error)
}

// New builds an engine for surface and records the blank starting snapshot.
// A surface that is not ready yet gives an engine with empty history.
func New(cfg config.Config, surface Surface, opts ...Option) (*Engine, error) {
	e := &Engine{
		surface:  surface,
		history:  state.NewHistory(cfg.History.Limit),
		renderer: NewRenderer(surface),
		export:   cfg.Export,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.settings == nil {
		e.settings = cfg.Settings()
	}
	e.restorer = NewRestorer(surface, e.restored)

	if !surface.Ready() {
		Logger().Warn("[engine] surface not ready, history left empty")
		return e, nil
	}
	blank, err := surface.ExportSnapshot()
	if err != nil {
		return nil, fmt.Errorf("initial snapshot: %w", err)
	}
	e.history.Reset(blank)
	e.restorer.MarkShown(blank.ID())
	Logger().Info("[engine] ready", "bounds", surface.Bounds(), "history_limit", e.history.Limit())
	return e, nil
}

func (e *Engine) emit(ev Event) {
	if e.onChange != nil {
		e.onChange(ev)
	}
}

func (e *Engine) fail(err error) {
	if e.onError != nil {
		e.onError(err)
	}
}

// restored runs on the restore goroutine. A failed restore moves the
// cursor back onto the snapshot the surface still shows.
func (e *Engine) restored(res RestoreResult) {
	if res.Err != nil {
		e.mu.Lock()
		if e.restorer.IsLatest(res.Token) {
			e.syncLocked()
		}
		e.mu.Unlock()
		e.fail(fmt.Errorf("restore snapshot: %w", res.Err))
		return
	}
	e.emit(EventRestored)
}

// syncLocked points the cursor at the snapshot on the surface. Call it
// only with no restore pending.
func (e *Engine) syncLocked() {
	i := e.history.Index(e.restorer.Shown())
	if i < 0 || i == e.history.Cursor() {
		return
	}
	e.history.Seek(i)
	Logger().Debug("[history] cursor moved back to displayed snapshot", "cursor", i)
}

// PointerDown starts a stroke at p with the current settings. A stroke
// still open from a lost pointer-up is committed first.
func (e *Engine) PointerDown(p state.Point) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	committed := e.renderer.Active() && e.commitLocked()
	e.restorer.Wait()
	e.syncLocked()
	e.renderer.Begin(p, e.settings)
	e.mu.Unlock()

	if committed {
		e.emit(EventSnapshot)
	}
}

// PointerMove extends the open stroke. Moving outside the surface draws up
// to the edge and then ends the stroke the way PointerUp does.
func (e *Engine) PointerMove(p state.Point) {
	e.mu.Lock()
	if e.closed || !e.renderer.Active() {
		e.mu.Unlock()
		return
	}
	if r := e.surface.Bounds(); !inBounds(p, r) {
		if last, ok := e.renderer.Last(); ok && inBounds(last, r) {
			e.renderer.Continue(edgePoint(last, p, r))
		}
		committed := e.commitLocked()
		e.mu.Unlock()
		if committed {
			e.emit(EventSnapshot)
		}
		return
	}
	e.renderer.Continue(p)
	e.mu.Unlock()
	e.emit(EventDrawn)
}

// PointerUp ends the open stroke and records it in history.
func (e *Engine) PointerUp() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	committed := e.commitLocked()
	e.mu.Unlock()
	if committed {
		e.emit(EventSnapshot)
	}
}

// PointerLeave is PointerUp for a pointer that left the surface.
func (e *Engine) PointerLeave() {
	e.PointerUp()
}

// commitLocked ends the session and pushes a snapshot. It reports whether
// history changed.
func (e *Engine) commitLocked() bool {
	if !e.renderer.End() {
		return false
	}
	return e.pushLocked("stroke")
}

func (e *Engine) pushLocked(reason string) bool {
	snap, err := e.surface.ExportSnapshot()
	if err != nil {
		Logger().Warn("[history] snapshot failed", "reason", reason, "err", err)
		e.fail(fmt.Errorf("snapshot after %s: %w", reason, err))
		return false
	}
	e.history.Push(snap)
	e.restorer.MarkShown(snap.ID())
	Logger().Debug("[history] snapshot pushed", "reason", reason,
		"len", e.history.Len(), "cursor", e.history.Cursor(), "bytes", snap.Size())
	return true
}

func inBounds(p state.Point, r image.Rectangle) bool {
	return p.X >= float64(r.Min.X) && p.Y >= float64(r.Min.Y) &&
		p.X < float64(r.Max.X) && p.Y < float64(r.Max.Y)
}

// edgePoint is where the segment from in, inside r, towards out leaves r.
func edgePoint(in, out state.Point, r image.Rectangle) state.Point {
	dx, dy := out.X-in.X, out.Y-in.Y
	t := 1.0
	t = edgeParam(t, in.X, dx, float64(r.Min.X), float64(r.Max.X))
	t = edgeParam(t, in.Y, dy, float64(r.Min.Y), float64(r.Max.Y))
	return state.Pt(in.X+t*dx, in.Y+t*dy)
}

func edgeParam(t, start, d, lo, hi float64) float64 {
	switch {
	case d > 0 && start+t*d > hi:
		return (hi - start) / d
	case d < 0 && start+t*d < lo:
		return (lo - start) / d
	}
	return t
}

// Undo moves back one snapshot and starts restoring it. It returns false
// when there is nothing to undo.
func (e *Engine) Undo() (bool, error) {
	return e.navigate("undo", (*state.History).Undo)
}

// Redo moves forward one snapshot and starts restoring it. It returns
// false when there is nothing to redo.
func (e *Engine) Redo() (bool, error) {
	return e.navigate("redo", (*state.History).Redo)
}

func (e *Engine) navigate(name string, step func(*state.History) (state.Snapshot, bool)) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false, ErrClosed
	}
	if e.renderer.Active() {
		return false, fmt.Errorf("%s: %w", name, ErrStrokeActive)
	}
	snap, ok := step(e.history)
	if !ok {
		Logger().Debug("[history] nothing to " + name)
		return false, nil
	}
	token := e.restorer.Restore(snap)
	Logger().Debug("[history] "+name, "cursor", e.history.Cursor(), "token", token)
	return true, nil
}

// Clear fills the surface with the background and records that as an
// undoable step. Pending restores are dropped.
func (e *Engine) Clear() error {
	e.mu.Lock()
	if err := e.readyLocked("clear"); err != nil {
		e.mu.Unlock()
		return err
	}
	e.restorer.Cancel()
	e.restorer.Wait()
	e.syncLocked()
	e.surface.FillBackground()
	pushed := e.pushLocked("clear")
	e.mu.Unlock()

	if pushed {
		e.emit(EventCleared)
	}
	return nil
}

// NewCanvas blanks the surface and collapses history to that one entry.
func (e *Engine) NewCanvas() error {
	e.mu.Lock()
	if err := e.readyLocked("new"); err != nil {
		e.mu.Unlock()
		return err
	}
	e.restorer.Cancel()
	e.restorer.Wait()
	e.surface.FillBackground()
	blank, err := e.surface.ExportSnapshot()
	if err != nil {
		e.mu.Unlock()
		return fmt.Errorf("new canvas: %w", err)
	}
	e.history.Reset(blank)
	e.restorer.MarkShown(blank.ID())
	e.mu.Unlock()

	Logger().Info("[history] reset to blank")
	e.emit(EventReset)
	return nil
}

func (e *Engine) readyLocked(name string) error {
	if e.closed {
		return ErrClosed
	}
	if e.renderer.Active() {
		return fmt.Errorf("%s: %w", name, ErrStrokeActive)
	}
	return nil
}

// Export encodes the surface in format f.
func (e *Engine) Export(w io.Writer, f export.Format) error {
	e.mu.Lock()
	closed := e.closed
	opts := export.Options{JPEGQuality: e.export.JPEGQuality}
	e.mu.Unlock()
	if closed {
		return ErrClosed
	}
	e.restorer.Wait()
	if err := export.Encode(w, e.surface, f, opts); err != nil {
		return err
	}
	Logger().Info("[export] written", "format", f)
	return nil
}

// DefaultFormat is the configured export format, PNG when unset.
func (e *Engine) DefaultFormat() export.Format {
	f, err := export.ParseFormat(e.export.Format)
	if err != nil {
		return export.PNG
	}
	return f
}

// DefaultFilename is the name offered when saving in format f.
func (e *Engine) DefaultFilename(f export.Format) string {
	return export.Filename(e.export.Filename, f)
}

func (e *Engine) SetTool(t state.Tool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settings.SetTool(t)
}

// SetWidth stores the clamped width and returns it.
func (e *Engine) SetWidth(w int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.SetWidth(w)
}

// SetOpacity stores the clamped opacity and returns it.
func (e *Engine) SetOpacity(o float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.SetOpacity(o)
}

func (e *Engine) SetOpacityPercent(p int) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.SetOpacityPercent(p)
}

// SetColor makes v the active color and records it as recently used. On
// error the previous color stays active.
func (e *Engine) SetColor(v string) (state.Color, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, err := e.settings.SetColor(v)
	if err != nil {
		Logger().Debug("[settings] color rejected", "input", v)
	}
	return c, err
}

// Settings returns a copy of the current tool settings.
func (e *Engine) Settings() state.ToolSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.Clone()
}

func (e *Engine) RecentColors() []state.Color {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.settings.Recent() == nil {
		return nil
	}
	return e.settings.Recent().Colors()
}

func (e *Engine) IsActiveColor(v string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings.IsActive(v)
}

func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.closed && !e.renderer.Active() && e.history.CanUndo()
}

func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.closed && !e.renderer.Active() && e.history.CanRedo()
}

// Drawing reports whether a stroke is open.
func (e *Engine) Drawing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.renderer.Active()
}

func (e *Engine) HistoryLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Len()
}

func (e *Engine) Cursor() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Cursor()
}

// Image returns a copy of the stored surface pixels, alpha included.
func (e *Engine) Image() *image.NRGBA {
	return e.surface.Image()
}

// Display returns the surface composited over its background, which is
// what the board shows. Erased pixels come out as the background color.
func (e *Engine) Display() *image.NRGBA {
	return e.surface.Flattened()
}

// Wait blocks until pending restores have been applied.
func (e *Engine) Wait() {
	e.restorer.Wait()
}

// Close drops pending restores. Later commands are no-ops or return ErrClosed.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.renderer.End()
	e.restorer.Cancel()
	e.mu.Unlock()
	e.restorer.Wait()
	Logger().Info("[engine] closed")
}
