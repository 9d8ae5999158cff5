package services

import (
	"context"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"

	"certification-api/config"
	"certification-api/fields"
)

// MaxUploadBytes is the per-file limit, enforced before any storage call.
const MaxUploadBytes = 50 * 1024 * 1024

// Upload statuses.
const (
	UploadStatusUploading = "uploading"
	UploadStatusCompleted = "completed"
	UploadStatusError     = "error"
)

// Upload is the tracked lifecycle of one file in one named document slot.
type Upload struct {
	Slot        string `json:"slot"`
	Name        string `json:"name"`
	SizeBytes   int64  `json:"size_bytes"`
	MimeType    string `json:"mime_type"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	StoragePath string `json:"storage_path,omitempty"`
	// PreviewURL is ephemeral: minted per upload for image MIME types,
	// never persisted, regenerated from nothing on the next page load.
	PreviewURL string `json:"preview_url,omitempty"`
	Error      string `json:"error,omitempty"`

	gen uint64
}

// AttachFunc persists a completed upload's path into the slot's array
// field; DetachFunc removes it after a successful blob delete.
type (
	AttachFunc func(slot, storagePath string) error
	DetachFunc func(slot, storagePath string) error
)

// UploadTracker tracks per-slot upload lifecycles for one application.
// Starting a new upload on a slot supersedes any in-flight one: the old
// call's late result is ignored via a per-slot generation counter, so the
// final tracked state always reflects the newest upload.
type UploadTracker struct {
	mu      sync.Mutex
	storage config.Storage
	bucket  string
	limit   int64
	attach  AttachFunc
	detach  DetachFunc
	slots   map[string]*Upload
	gens    map[string]uint64
}

func NewUploadTracker(storage config.Storage, bucket string, attach AttachFunc, detach DetachFunc) *UploadTracker {
	return &UploadTracker{
		storage: storage,
		bucket:  bucket,
		limit:   MaxUploadBytes,
		attach:  attach,
		detach:  detach,
		slots:   make(map[string]*Upload),
		gens:    make(map[string]uint64),
	}
}

// Upload stores one file under its slot and, on success, records the
// storage path through the attach hook. Oversized files are rejected with
// SizeExceededError before the storage layer is touched. The returned
// snapshot reflects the slot's state at return time; a superseded upload
// returns its own last state without disturbing the slot.
func (t *UploadTracker) Upload(ctx context.Context, slot, filename, mimeType string, size int64, r io.Reader) (Upload, error) {
	if size > t.limit {
		return Upload{}, &SizeExceededError{Name: filename, Size: size, Limit: t.limit}
	}

	t.mu.Lock()
	t.gens[slot]++
	gen := t.gens[slot]
	up := &Upload{
		Slot:      slot,
		Name:      filename,
		SizeBytes: size,
		MimeType:  mimeType,
		Status:    UploadStatusUploading,
		gen:       gen,
	}
	if strings.HasPrefix(mimeType, "image/") {
		up.PreviewURL = "/previews/" + uuid.NewString()
	}
	t.slots[slot] = up
	t.mu.Unlock()

	storagePath := path.Join(slot, uuid.NewString()+path.Ext(filename))
	stored, err := t.storage.Put(ctx, t.bucket, storagePath, r, size, func(pct int) {
		t.ifCurrent(slot, gen, func(u *Upload) {
			u.Progress = pct
		})
	})

	if err != nil {
		var state Upload
		t.ifCurrent(slot, gen, func(u *Upload) {
			u.Status = UploadStatusError
			u.Error = err.Error()
			state = *u
		})
		if state.Slot == "" {
			// Superseded while in flight; the late failure is ignored.
			return Upload{Slot: slot, Name: filename, Status: UploadStatusError}, nil
		}
		return state, &UploadError{Slot: slot, Err: err}
	}

	current := false
	var state Upload
	t.ifCurrent(slot, gen, func(u *Upload) {
		u.Status = UploadStatusCompleted
		u.Progress = 100
		u.StoragePath = stored
		state = *u
		current = true
	})
	if !current {
		// A newer upload owns the slot; this result must not overwrite it,
		// and its path is never attached. The blob is left behind rather
		// than risking a delete race with the successor.
		return Upload{Slot: slot, Name: filename, Status: UploadStatusCompleted, StoragePath: stored}, nil
	}

	if t.attach != nil {
		if err := t.attach(slot, stored); err != nil {
			t.ifCurrent(slot, gen, func(u *Upload) {
				u.Status = UploadStatusError
				u.Error = err.Error()
				state = *u
			})
			return state, &UploadError{Slot: slot, Err: err}
		}
	}
	return state, nil
}

// ifCurrent runs fn on the slot's tracked upload only while the given
// generation still owns the slot. Stale network responses land here and
// are dropped.
func (t *UploadTracker) ifCurrent(slot string, gen uint64, fn func(*Upload)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	up, ok := t.slots[slot]
	if !ok || up.gen != gen {
		return
	}
	fn(up)
}

// Delete removes a blob and then its bookkeeping entry. If the blob delete
// fails the entry and the persisted path both stay: a dangling reference
// breaks the review UI, an orphaned blob does not.
func (t *UploadTracker) Delete(ctx context.Context, slot, storagePath string) error {
	if err := t.storage.Delete(ctx, t.bucket, []string{storagePath}); err != nil {
		return &UploadError{Slot: slot, Err: err}
	}
	if t.detach != nil {
		if err := t.detach(slot, storagePath); err != nil {
			return &UploadError{Slot: slot, Err: err}
		}
	}
	t.mu.Lock()
	if up, ok := t.slots[slot]; ok && up.StoragePath == storagePath {
		delete(t.slots, slot)
	}
	t.mu.Unlock()
	return nil
}

// Snapshot returns the tracked state of every slot.
func (t *UploadTracker) Snapshot() []Upload {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Upload, 0, len(t.slots))
	for _, up := range t.slots {
		out = append(out, *up)
	}
	return out
}

// Slot returns one slot's tracked upload, if any.
func (t *UploadTracker) Slot(slot string) (Upload, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	up, ok := t.slots[slot]
	if !ok {
		return Upload{}, false
	}
	return *up, true
}

// TrackerRegistry hands out one UploadTracker per tracking id.
type TrackerRegistry struct {
	mu       sync.Mutex
	storage  config.Storage
	trackers map[string]*UploadTracker
}

func NewTrackerRegistry(storage config.Storage) *TrackerRegistry {
	return &TrackerRegistry{storage: storage, trackers: make(map[string]*UploadTracker)}
}

// ForApplication returns the tracker for a tracking id, creating one wired
// to that application's document arrays on first use.
func (r *TrackerRegistry) ForApplication(trackingID string) *UploadTracker {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.trackers[trackingID]; ok {
		return t
	}
	t := NewUploadTracker(r.storage, trackingID,
		func(slot, storagePath string) error {
			return AppendDocumentPath(trackingID, slot, storagePath)
		},
		func(slot, storagePath string) error {
			return RemoveDocumentPath(trackingID, slot, storagePath)
		},
	)
	r.trackers[trackingID] = t
	return t
}

// ValidSlot reports whether a slot name is one of the document categories.
func ValidSlot(slot string) bool {
	return slotSet[slot]
}

var slotSet = func() map[string]bool {
	m := make(map[string]bool, len(fields.DocumentFields))
	for _, s := range fields.DocumentFields {
		m[s] = true
	}
	return m
}()
