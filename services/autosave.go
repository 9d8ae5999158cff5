package services

import (
	"log"
	"sync"
	"time"

	"certification-api/fields"
)

// DebounceWindow is how long the autosaver waits after the last edit
// before persisting. NoticeTTL is how long a save-failure notice stays
// visible before auto-dismissing.
const (
	DebounceWindow = 1 * time.Second
	NoticeTTL      = 5 * time.Second
)

// SaveSnapshotFunc persists one coalesced snapshot.
type SaveSnapshotFunc func(snapshot fields.Set) error

// Notice is a transient, auto-dismissing user-visible message.
type Notice struct {
	Level   string    `json:"level"` // success|error
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Autosaver coalesces a stream of field-model snapshots into at most one
// save per debounce window, always using the latest snapshot. Saves are
// strictly sequenced: while one is in flight no second save starts; edits
// arriving meanwhile are buffered and flushed in the next cycle. A failed
// save raises a notice and keeps the buffer, so the next cycle retries
// with the latest data - at-least-once, never at-most-once.
type Autosaver struct {
	mu       sync.Mutex
	window   time.Duration
	save     SaveSnapshotFunc
	onNotice func(Notice)

	timer    *time.Timer
	pending  fields.Set
	dirty    bool
	inflight bool
	closed   bool
}

// NewAutosaver wires a saver around a persistence function. onNotice may
// be nil.
func NewAutosaver(window time.Duration, save SaveSnapshotFunc, onNotice func(Notice)) *Autosaver {
	if window <= 0 {
		window = DebounceWindow
	}
	return &Autosaver{window: window, save: save, onNotice: onNotice}
}

// Observe records one edit's snapshot and (re)starts the debounce timer.
// Rapid edits within the window collapse into a single save of the last
// snapshot observed.
func (a *Autosaver) Observe(snapshot fields.Set) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.pending = snapshot.Clone()
	a.dirty = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.window, a.fire)
}

func (a *Autosaver) fire() {
	a.mu.Lock()
	if a.closed || !a.dirty || a.inflight {
		// An in-flight save picks the buffer up again when it resolves.
		a.mu.Unlock()
		return
	}
	snapshot := a.pending
	a.dirty = false
	a.inflight = true
	a.mu.Unlock()

	err := a.save(snapshot)

	a.mu.Lock()
	a.inflight = false
	if err != nil {
		// Keep the latest data buffered for the next cycle's retry.
		if !a.dirty {
			a.pending = snapshot
			a.dirty = true
		}
		retry := !a.closed
		if retry {
			if a.timer != nil {
				a.timer.Stop()
			}
			a.timer = time.AfterFunc(a.window, a.fire)
		}
		a.mu.Unlock()
		a.notify(Notice{Level: "error", Message: "We couldn't save your progress. Retrying shortly.", At: time.Now()})
		log.Printf("autosave failed: %v", err)
		return
	}
	rearm := a.dirty && !a.closed
	if rearm {
		if a.timer != nil {
			a.timer.Stop()
		}
		a.timer = time.AfterFunc(a.window, a.fire)
	}
	a.mu.Unlock()
	a.notify(Notice{Level: "success", Message: "Application saved successfully.", At: time.Now()})
}

func (a *Autosaver) notify(n Notice) {
	if a.onNotice != nil {
		a.onNotice(n)
	}
}

// Flush persists the buffered snapshot immediately, if any. Used before
// submission so the stored record reflects the final edits.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.mu.Unlock()
	a.fire()
}

// Close stops the timer and drops the saver. Pending edits are flushed
// first; a late save response after Close is ignored.
func (a *Autosaver) Close() {
	a.Flush()
	a.mu.Lock()
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
	}
	a.mu.Unlock()
}

// AutosaveHub keys autosavers by tracking id so saves for the same record
// are serialized while different records save independently. It also keeps
// each record's most recent notice until it expires.
type AutosaveHub struct {
	mu      sync.Mutex
	savers  map[string]*Autosaver
	notices map[string]Notice
	window  time.Duration
}

func NewAutosaveHub(window time.Duration) *AutosaveHub {
	return &AutosaveHub{
		savers:  make(map[string]*Autosaver),
		notices: make(map[string]Notice),
		window:  window,
	}
}

// Observe routes one edit snapshot to the record's autosaver, creating it
// on first use.
func (h *AutosaveHub) Observe(userID int, trackingID string, snapshot fields.Set) {
	h.mu.Lock()
	saver, ok := h.savers[trackingID]
	if !ok {
		saver = NewAutosaver(h.window, func(snap fields.Set) error {
			_, err := SaveDraft(userID, trackingID, snap)
			return err
		}, func(n Notice) {
			h.mu.Lock()
			h.notices[trackingID] = n
			h.mu.Unlock()
		})
		h.savers[trackingID] = saver
	}
	h.mu.Unlock()
	saver.Observe(snapshot)
}

// Flush forces any buffered edits for a record to persist now.
func (h *AutosaveHub) Flush(trackingID string) {
	h.mu.Lock()
	saver := h.savers[trackingID]
	h.mu.Unlock()
	if saver != nil {
		saver.Flush()
	}
}

// Notice returns the record's current notice, if it hasn't expired.
func (h *AutosaveHub) Notice(trackingID string) (Notice, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	n, ok := h.notices[trackingID]
	if !ok {
		return Notice{}, false
	}
	if time.Since(n.At) > NoticeTTL {
		delete(h.notices, trackingID)
		return Notice{}, false
	}
	return n, true
}

// Drop closes and forgets a record's autosaver, e.g. after submission.
func (h *AutosaveHub) Drop(trackingID string) {
	h.mu.Lock()
	saver := h.savers[trackingID]
	delete(h.savers, trackingID)
	h.mu.Unlock()
	if saver != nil {
		saver.Close()
	}
}
