package engine

import (
	"context"
	"errors"
	"sync"

	"LocalPaint/internal/state"
)

// RestoreResult reports how a restore request ended.
type RestoreResult struct {
	Token    uint64
	Snapshot state.Snapshot
	// Err is set when decoding or applying failed. The surface then keeps
	// its previous pixels.
	Err error
}

// Restorer decodes snapshots off the caller's goroutine and applies them
// to the surface. Only the most recent request is ever applied: each one
// takes a token from the clock and cancels the one before it.
type Restorer struct {
	surface Surface
	clock   state.Clock
	done    func(RestoreResult)

	mu      sync.Mutex
	idle    *sync.Cond
	cancel  context.CancelFunc
	pending int
	shown   string
}

// NewRestorer returns a Restorer for surface. done, if not nil, is called
// from the restore goroutine once a request that was not superseded
// finishes. It runs after Wait would return and must not block.
func NewRestorer(surface Surface, done func(RestoreResult)) *Restorer {
	r := &Restorer{surface: surface, done: done}
	r.idle = sync.NewCond(&r.mu)
	return r
}

// Restore starts applying s and returns the request's token.
func (r *Restorer) Restore(s state.Snapshot) uint64 {
	ctx, cancel := context.WithCancel(context.Background())

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.cancel = cancel
	token := r.clock.Tick()
	r.pending++
	r.mu.Unlock()

	Logger().Debug("[restore] requested", "token", token, "snapshot", s.ID())
	go r.run(ctx, cancel, token, s)
	return token
}

func (r *Restorer) run(ctx context.Context, cancel context.CancelFunc, token uint64, s state.Snapshot) {
	defer cancel()

	img, err := r.surface.DecodeSnapshot(ctx, s)

	r.mu.Lock()
	if !r.clock.IsLatest(token) || errors.Is(err, context.Canceled) {
		r.settleLocked()
		r.mu.Unlock()
		Logger().Debug("[restore] superseded", "token", token)
		return
	}
	if err == nil {
		err = r.surface.ApplyImage(img)
	}
	if err == nil {
		r.shown = s.ID()
	}
	r.settleLocked()
	r.mu.Unlock()

	if err != nil {
		Logger().Warn("[restore] failed", "token", token, "snapshot", s.ID(), "err", err)
	} else {
		Logger().Debug("[restore] applied", "token", token)
	}
	if r.done != nil {
		r.done(RestoreResult{Token: token, Snapshot: s, Err: err})
	}
}

// Cancel supersedes every pending request without starting a new one.
func (r *Restorer) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.clock.Tick()
}

func (r *Restorer) settleLocked() {
	r.pending--
	if r.pending == 0 {
		r.idle.Broadcast()
	}
}

// Wait blocks until no request is decoding or applying.
func (r *Restorer) Wait() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for r.pending > 0 {
		r.idle.Wait()
	}
}

// MarkShown records id as the snapshot on the surface after the caller
// changed the pixels itself.
func (r *Restorer) MarkShown(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = id
}

// Shown is the id of the snapshot last applied or marked.
func (r *Restorer) Shown() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shown
}

// IsLatest reports whether token belongs to the newest request.
func (r *Restorer) IsLatest(token uint64) bool {
	return r.clock.IsLatest(token)
}
