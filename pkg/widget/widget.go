package widget

import (
	"context"
	"sync"
)

// State is the widget lifecycle state.
type State int

const (
	// StateUninitialized: mounted, item identity not yet known.
	StateUninitialized State = iota
	// StateLoading: identity known, initial status fetch outstanding.
	StateLoading
	// StateReady: interactive. Liked/Count hold the visible state.
	StateReady
)

// View is a snapshot of what the host should render.
type View struct {
	State State
	Liked bool
	Count int64
	// Busy is set while a toggle request is in flight; clicks during that
	// window are ignored.
	Busy bool
}

// Widget is one rendered like-button instance. The host mounts it, supplies
// the item identity (possibly later, possibly more than once), and forwards
// clicks. State changes are pushed through the onChange callback.
//
// Clicks apply optimistically: the visible liked/count flip before the
// backend answers, then either converge on the server's authoritative state
// or roll back to the pre-click state on failure. Failures are silent to the
// visitor.
type Widget struct {
	api       API
	opts      Options
	visitorID string
	onChange  func(View)

	mu       sync.Mutex
	itemID   string
	state    State
	liked    bool
	count    int64
	inFlight bool
}

// New mounts a widget instance. onChange may be nil.
func New(api API, visitorID string, opts Options, onChange func(View)) *Widget {
	return &Widget{
		api:       api,
		opts:      opts,
		visitorID: visitorID,
		onChange:  onChange,
		state:     StateUninitialized,
	}
}

// Options returns the display options the widget was mounted with.
func (w *Widget) Options() Options {
	return w.opts
}

// View returns the current render snapshot.
func (w *Widget) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewLocked()
}

// SetItemID supplies the item identity. Idempotent per value: repeating the
// current identity is a no-op, while a different identity re-initializes
// from scratch. The initial status fetch runs inline; on failure the widget
// still becomes ready with liked=false, count=0 so the visitor can interact.
func (w *Widget) SetItemID(ctx context.Context, itemID string) {
	w.mu.Lock()
	if itemID == "" || itemID == w.itemID {
		w.mu.Unlock()
		return
	}
	w.itemID = itemID
	w.state = StateLoading
	w.liked = false
	w.count = 0
	w.inFlight = false
	w.emitLocked()
	w.mu.Unlock()

	statuses, err := w.api.Status(ctx, []string{itemID}, w.visitorID)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.itemID != itemID {
		// Identity changed while the fetch was outstanding; this result
		// belongs to a previous incarnation.
		return
	}
	if err == nil {
		if st, ok := statuses[itemID]; ok {
			w.liked = st.Liked
			w.count = st.Count
		}
	}
	w.state = StateReady
	w.emitLocked()
}

// Click handles a visitor interaction. Before the item identity is known,
// or while a previous toggle is still in flight, clicks are ignored rather
// than queued. Otherwise the local state flips immediately and the toggle
// request runs in the background.
func (w *Widget) Click(ctx context.Context) {
	w.mu.Lock()
	if w.state != StateReady || w.inFlight {
		w.mu.Unlock()
		return
	}

	itemID := w.itemID
	prevLiked := w.liked
	prevCount := w.count

	// Optimistic flip, count clamped at zero.
	w.liked = !w.liked
	if w.liked {
		w.count++
	} else {
		w.count--
		if w.count < 0 {
			w.count = 0
		}
	}
	w.inFlight = true
	w.emitLocked()
	w.mu.Unlock()

	go func() {
		res, err := w.api.Toggle(ctx, itemID, w.visitorID)

		w.mu.Lock()
		defer w.mu.Unlock()
		if w.itemID != itemID {
			// Re-initialized mid-flight; drop the stale response.
			return
		}
		w.inFlight = false
		if err != nil {
			// Silent rollback to the pre-click state. No retry.
			w.liked = prevLiked
			w.count = prevCount
		} else {
			// Server state wins, correcting any optimistic drift.
			w.liked = res.Liked
			w.count = res.Count
		}
		w.emitLocked()
	}()
}

func (w *Widget) viewLocked() View {
	return View{
		State: w.state,
		Liked: w.liked,
		Count: w.count,
		Busy:  w.inFlight,
	}
}

func (w *Widget) emitLocked() {
	if w.onChange != nil {
		w.onChange(w.viewLocked())
	}
}
