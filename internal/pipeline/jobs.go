// Package pipeline runs resume analysis jobs through a bounded worker
// pool: parse the document, build the structured resume, parse the job
// description, and score against every platform profile.
package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/sunnypatell/ats-screener/internal/jobdesc"
	"github.com/sunnypatell/ats-screener/internal/resume"
	"github.com/sunnypatell/ats-screener/internal/scoring"
)

// JobStatus represents the state of an analysis job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusParsing   JobStatus = "parsing"
	StatusAnalyzing JobStatus = "analyzing"
	StatusScoring   JobStatus = "scoring"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// AnalysisResult is the full output of one completed job.
type AnalysisResult struct {
	Resume     *resume.ParsedResume `json:"resume"`
	JobProfile *jobdesc.Profile     `json:"jobProfile,omitempty"`
	Scores     []scoring.Result     `json:"scores"`
	Warnings   []string             `json:"warnings"`
}

// Job tracks the state of a single resume analysis.
type Job struct {
	mu sync.Mutex

	ID string `json:"job_id"`

	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`

	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData       []byte
	jobDescription string
	result         *AnalysisResult
	errors         []string
}

// NewJob builds a queued job holding the raw upload.
func NewJob(filename string, fileData []byte, jobDescription string) *Job {
	now := time.Now()
	return &Job{
		ID:             NewJobID(),
		Status:         StatusQueued,
		Phase:          "queued",
		Filename:       filename,
		ContentHash:    ContentHashHex(fileData),
		CreatedAt:      now,
		UpdatedAt:      now,
		fileData:       fileData,
		jobDescription: jobDescription,
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

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.UpdatedAt = time.Now()
}

// SetResult stores the completed analysis.
func (j *Job) SetResult(r *AnalysisResult) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = r
	j.UpdatedAt = time.Now()
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// JobDescription returns the submitted job description text.
func (j *Job) JobDescription() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.jobDescription
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string          `json:"job_id"`
	Status      JobStatus       `json:"status"`
	Phase       string          `json:"phase"`
	Filename    string          `json:"filename"`
	ContentHash string          `json:"content_hash,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Errors      []string        `json:"errors"`
	Result      *AnalysisResult `json:"result,omitempty"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:          j.ID,
		Status:      j.Status,
		Phase:       j.Phase,
		Filename:    j.Filename,
		ContentHash: j.ContentHash,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
		Errors:      errs,
		Result:      j.result,
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

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
