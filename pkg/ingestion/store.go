package ingestion

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	// DefaultProcessingDelay is how long the simulated background job waits
	// before finishing an upload.
	DefaultProcessingDelay = 2500 * time.Millisecond

	// AuditScoreThreshold splits completed from review_needed, inclusive on
	// the completed side.
	AuditScoreThreshold = 6.5
)

// ScoreFunc produces the final audit score for one upload. The value it
// returns is used as-is, so deterministic sources can be injected in tests.
type ScoreFunc func() float64

// DefaultScore draws uniformly from [7.5, 9.5] and rounds to one decimal,
// matching the hosted demo's distribution.
func DefaultScore() float64 {
	return math.Round((7.5+rand.Float64()*2.0)*10) / 10
}

// Options configures a Store. Zero values fall back to production defaults.
type Options struct {
	ProcessingDelay time.Duration
	Score           ScoreFunc
	Logger          *slog.Logger
}

// Store is the sole owner of all uploads, stored payloads and audits. State
// lives for the process lifetime only; a restart loses everything. One lock
// guards the whole registry, which is plenty at demo scale and makes the
// terminal-status write atomic for readers.
type Store struct {
	mu      sync.RWMutex
	nextID  int64
	uploads []*Upload // most-recent-first
	files   map[string]*File
	audits  map[string]*Audit

	delay time.Duration
	score ScoreFunc
	log   *slog.Logger
}

// New constructs a registry. Callers own the instance and pass it to every
// consumer; there is no package-level singleton.
func New(opts Options) *Store {
	if opts.ProcessingDelay <= 0 {
		opts.ProcessingDelay = DefaultProcessingDelay
	}
	if opts.Score == nil {
		opts.Score = DefaultScore
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Store{
		nextID: 1,
		files:  make(map[string]*File),
		audits: make(map[string]*Audit),
		delay:  opts.ProcessingDelay,
		score:  opts.Score,
		log:    opts.Logger,
	}
}

// CreateUpload stores the payload, registers a new upload in processing
// state and schedules the one-shot background transition. The returned
// upload is visible to queries immediately. Callers validate branch and
// file type before calling.
func (s *Store) CreateUpload(filename string, branch Branch, fileType FileType, size int64, payloadB64 string) (Upload, string) {
	fileRef := NewFileReference()

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.files[fileRef] = &File{Name: filename, ContentB64: payloadB64}
	up := &Upload{
		ID:               id,
		OriginalFilename: filename,
		Branch:           branch,
		FileType:         fileType,
		UploadDate:       time.Now().UTC(),
		FileSize:         size,
		GridFSID:         fileRef,
		ProcessingStatus: StatusProcessing,
	}
	s.uploads = append([]*Upload{up}, s.uploads...)
	snapshot := *up
	s.mu.Unlock()

	time.AfterFunc(s.delay, func() { s.finishProcessing(id) })

	s.log.Info("upload registered",
		"upload_id", id,
		"file_id", fileRef,
		"branch", branch,
		"file_type", fileType,
		"size", size,
	)
	return snapshot, fileRef
}

// ListUploads returns up to limit uploads, most recent first, optionally
// filtered by exact branch and file type match. Empty filter values match
// everything.
func (s *Store) ListUploads(limit int, branch Branch, fileType FileType) []Upload {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Upload, 0, limit)
	for _, u := range s.uploads {
		if branch != "" && u.Branch != branch {
			continue
		}
		if fileType != "" && u.FileType != fileType {
			continue
		}
		out = append(out, *u)
		if len(out) == limit {
			break
		}
	}
	return out
}

// GetUpload returns a copy of the upload with the given id.
func (s *Store) GetUpload(id int64) (Upload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u := s.findLocked(id); u != nil {
		return *u, true
	}
	return Upload{}, false
}

// GetAudit returns a copy of the audit with the given reference.
func (s *Store) GetAudit(ref string) (Audit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if a, ok := s.audits[ref]; ok {
		return *a, true
	}
	return Audit{}, false
}

// GetFile returns a copy of the stored payload with the given reference.
func (s *Store) GetFile(ref string) (File, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if f, ok := s.files[ref]; ok {
		return *f, true
	}
	return File{}, false
}

// findLocked requires s.mu held.
func (s *Store) findLocked(id int64) *Upload {
	for _, u := range s.uploads {
		if u.ID == id {
			return u
		}
	}
	return nil
}
