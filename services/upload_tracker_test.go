package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
)

// fakeStorage records Put/Delete calls and can be scripted to fail or to
// block a Put until released.
type fakeStorage struct {
	mu      sync.Mutex
	puts    []string
	deletes []string
	putErr  error
	delErr  error
	gate    chan struct{}
}

func (f *fakeStorage) Put(ctx context.Context, bucket, path string, r io.Reader, size int64, onProgress func(int)) (string, error) {
	f.mu.Lock()
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	if onProgress != nil {
		onProgress(50)
		onProgress(100)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return "", f.putErr
	}
	f.puts = append(f.puts, path)
	return path, nil
}

func (f *fakeStorage) Delete(ctx context.Context, bucket string, paths []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delErr != nil {
		return f.delErr
	}
	f.deletes = append(f.deletes, paths...)
	return nil
}

func (f *fakeStorage) putCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.puts)
}

func TestUploadRejectsOversizeBeforeStorage(t *testing.T) {
	storage := &fakeStorage{}
	tr := NewUploadTracker(storage, "trk", nil, nil)

	_, err := tr.Upload(context.Background(), "generalSubmissionDocuments", "huge.pdf", "application/pdf",
		MaxUploadBytes+1, strings.NewReader("x"))

	var sizeErr *SizeExceededError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("err = %v, want SizeExceededError", err)
	}
	if storage.putCount() != 0 {
		t.Fatal("storage touched for an oversize file")
	}
	if _, ok := tr.Slot("generalSubmissionDocuments"); ok {
		t.Fatal("oversize file left a tracked entry")
	}
}

func TestUploadCompletesAndAttaches(t *testing.T) {
	storage := &fakeStorage{}
	var attached []string
	tr := NewUploadTracker(storage, "trk", func(slot, path string) error {
		attached = append(attached, slot+":"+path)
		return nil
	}, nil)

	up, err := tr.Upload(context.Background(), "swamTaxDocuments", "w2.pdf", "application/pdf",
		4, strings.NewReader("abcd"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if up.Status != UploadStatusCompleted || up.Progress != 100 {
		t.Fatalf("upload state = %s/%d, want completed/100", up.Status, up.Progress)
	}
	if up.StoragePath == "" || !strings.HasPrefix(up.StoragePath, "swamTaxDocuments/") {
		t.Fatalf("storage path %q not under the slot", up.StoragePath)
	}
	if up.PreviewURL != "" {
		t.Fatalf("non-image upload got preview URL %q", up.PreviewURL)
	}
	if len(attached) != 1 || attached[0] != "swamTaxDocuments:"+up.StoragePath {
		t.Fatalf("attached = %v", attached)
	}
}

func TestImageUploadGetsEphemeralPreview(t *testing.T) {
	tr := NewUploadTracker(&fakeStorage{}, "trk", nil, nil)
	up, err := tr.Upload(context.Background(), "personalDocuments", "id.png", "image/png",
		3, strings.NewReader("png"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasPrefix(up.PreviewURL, "/previews/") {
		t.Fatalf("image upload preview URL = %q", up.PreviewURL)
	}
}

func TestNewerUploadSupersedesInFlightOne(t *testing.T) {
	storage := &fakeStorage{gate: make(chan struct{})}
	var mu sync.Mutex
	var attached []string
	tr := NewUploadTracker(storage, "trk", func(slot, path string) error {
		mu.Lock()
		attached = append(attached, path)
		mu.Unlock()
		return nil
	}, nil)

	done := make(chan Upload, 1)
	go func() {
		up, _ := tr.Upload(context.Background(), "generalSubmissionDocuments", "old.pdf", "application/pdf",
			3, strings.NewReader("old"))
		done <- up
	}()

	// Wait until the first upload holds the slot, then start its successor.
	waitFor(t, func() bool {
		up, ok := tr.Slot("generalSubmissionDocuments")
		return ok && up.Name == "old.pdf"
	})
	storage.mu.Lock()
	gate := storage.gate
	storage.gate = nil
	storage.mu.Unlock()

	newUp, err := tr.Upload(context.Background(), "generalSubmissionDocuments", "new.pdf", "application/pdf",
		3, strings.NewReader("new"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	close(gate)
	old := <-done

	cur, ok := tr.Slot("generalSubmissionDocuments")
	if !ok || cur.Name != "new.pdf" || cur.Status != UploadStatusCompleted {
		t.Fatalf("slot state = %+v, want the newer completed upload", cur)
	}
	if old.StoragePath == cur.StoragePath {
		t.Fatal("superseded upload shares a storage path with its successor")
	}
	mu.Lock()
	defer mu.Unlock()
	if len(attached) != 1 || attached[0] != newUp.StoragePath {
		t.Fatalf("attached = %v, want only the newer upload's path", attached)
	}
}

func TestUploadErrorIsTracked(t *testing.T) {
	storage := &fakeStorage{putErr: errors.New("connection reset")}
	tr := NewUploadTracker(storage, "trk", nil, nil)

	up, err := tr.Upload(context.Background(), "generalSubmissionDocuments", "a.pdf", "application/pdf",
		1, strings.NewReader("a"))
	var upErr *UploadError
	if !errors.As(err, &upErr) {
		t.Fatalf("err = %v, want UploadError", err)
	}
	if up.Status != UploadStatusError || up.Error == "" {
		t.Fatalf("upload state = %+v, want error status with message", up)
	}
	cur, ok := tr.Slot("generalSubmissionDocuments")
	if !ok || cur.Status != UploadStatusError {
		t.Fatalf("slot state = %+v, want tracked error", cur)
	}
}

func TestDeleteFailureKeepsEntryAndReference(t *testing.T) {
	storage := &fakeStorage{}
	detached := 0
	tr := NewUploadTracker(storage, "trk", nil, func(slot, path string) error {
		detached++
		return nil
	})

	up, err := tr.Upload(context.Background(), "swamTaxDocuments", "w2.pdf", "application/pdf",
		4, strings.NewReader("abcd"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	storage.mu.Lock()
	storage.delErr = errors.New("storage unavailable")
	storage.mu.Unlock()

	if err := tr.Delete(context.Background(), "swamTaxDocuments", up.StoragePath); err == nil {
		t.Fatal("Delete succeeded despite storage failure")
	}
	if detached != 0 {
		t.Fatal("persisted reference detached after a failed blob delete")
	}
	if _, ok := tr.Slot("swamTaxDocuments"); !ok {
		t.Fatal("tracked entry dropped after a failed blob delete")
	}

	storage.mu.Lock()
	storage.delErr = nil
	storage.mu.Unlock()

	if err := tr.Delete(context.Background(), "swamTaxDocuments", up.StoragePath); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if detached != 1 {
		t.Fatalf("detached %d times, want 1", detached)
	}
	if _, ok := tr.Slot("swamTaxDocuments"); ok {
		t.Fatal("tracked entry survived a successful delete")
	}
}

func TestValidSlot(t *testing.T) {
	if !ValidSlot("generalSubmissionDocuments") {
		t.Fatal("generalDocuments not a valid slot")
	}
	if ValidSlot("notARealSlot") {
		t.Fatal("unknown slot accepted")
	}
}
