package pipeline

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the state of a generation job.
type JobStatus string

const (
	StatusQueued      JobStatus = "queued"
	StatusReading     JobStatus = "reading"
	StatusClassifying JobStatus = "classifying"
	StatusRendering   JobStatus = "rendering"
	StatusCompleted   JobStatus = "completed"
	StatusFailed      JobStatus = "failed"
)

// Job tracks one manual generation from upload to rendered PDF.
type Job struct {
	mu sync.Mutex

	ID    string `json:"job_id"`
	Model string `json:"model"`
	Title string `json:"title"`

	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	pdfData  []byte
	errMsg   string
}

// Progress tracks generation progress.
type Progress struct {
	Lines  int `json:"lines"`
	Blocks int `json:"blocks"`
	Pages  int `json:"pages"`
}

// NewJob creates a queued job for an uploaded manual source.
func NewJob(filename, title, model string, data []byte) *Job {
	now := time.Now()
	return &Job{
		ID:        uuid.NewString(),
		Model:     model,
		Title:     title,
		Status:    StatusQueued,
		Phase:     "queued",
		Filename:  filename,
		CreatedAt: now,
		UpdatedAt: now,
		fileData:  data,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// Fail marks the job failed with a reason.
func (j *Job) Fail(phase, msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = StatusFailed
	j.Phase = phase
	j.errMsg = msg
	j.UpdatedAt = time.Now()
}

// SetProgress records line, block, and page counts as they become known.
func (j *Job) SetProgress(lines, blocks, pages int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if lines > 0 {
		j.Progress.Lines = lines
	}
	if blocks > 0 {
		j.Progress.Blocks = blocks
	}
	if pages > 0 {
		j.Progress.Pages = pages
	}
	j.UpdatedAt = time.Now()
}

// FileData returns the uploaded source bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// SetPDF stores the rendered PDF and releases the source bytes.
func (j *Job) SetPDF(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.pdfData = data
	j.fileData = nil
	j.UpdatedAt = time.Now()
}

// PDF returns the rendered bytes, or nil while the job is unfinished.
func (j *Job) PDF() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.pdfData
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string    `json:"job_id"`
	Model    string    `json:"model"`
	Title    string    `json:"title"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`
	Progress Progress  `json:"progress"`
	Error    string    `json:"error,omitempty"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	return JobSnapshot{
		ID:       j.ID,
		Model:    j.Model,
		Title:    j.Title,
		Status:   j.Status,
		Phase:    j.Phase,
		Filename: j.Filename,
		Progress: j.Progress,
		Error:    j.errMsg,
	}
}
