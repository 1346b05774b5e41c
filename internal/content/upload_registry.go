package content

import (
	"sync"
)

// UploadRegistry exposes in-flight upload progress under a client-chosen id,
// so the initiator can poll while its multipart request is still running.
type UploadRegistry struct {
	mu      sync.RWMutex
	uploads map[string]*ProgressChannel
}

func NewUploadRegistry() *UploadRegistry {
	return &UploadRegistry{uploads: make(map[string]*ProgressChannel)}
}

func (r *UploadRegistry) Track(uploadID string, progress *ProgressChannel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uploads[uploadID] = progress
}

// Snapshot returns the latest event for an upload. Terminal uploads are
// dropped from the registry once observed.
func (r *UploadRegistry) Snapshot(uploadID string) (ProgressEvent, bool) {
	r.mu.RLock()
	progress, ok := r.uploads[uploadID]
	r.mu.RUnlock()
	if !ok {
		return ProgressEvent{}, false
	}

	snapshot := progress.Snapshot()
	if snapshot.State == StateSucceeded || snapshot.State == StateFailed || snapshot.State == StateCancelled {
		r.mu.Lock()
		delete(r.uploads, uploadID)
		r.mu.Unlock()
	}
	return snapshot, true
}
