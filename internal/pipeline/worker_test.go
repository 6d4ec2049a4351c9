package pipeline

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/sunnypatell/ats-screener/internal/metrics"
	"github.com/sunnypatell/ats-screener/internal/resume"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const sampleResumeText = `Jane Doe
Toronto, ON
jane.doe@example.com

EXPERIENCE
Software Engineer | Acme Corp
Jan 2020 - Present
• Built REST APIs serving 1M requests per day
• Reduced latency by 40%
• Led migration of 12 services

EDUCATION
BS in Computer Science, University of Waterloo, 2018

SKILLS
python, go, sql, docker, kubernetes
`

func TestWorkerProcess_PlainTextResume(t *testing.T) {
	stats := metrics.NewAnalysisStats(time.Hour)
	w := NewWorker(discardLogger(), stats)

	job := NewJob("resume.txt", []byte(sampleResumeText), "python developer with kubernetes experience")
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("Status = %q (phase %q, errors %v), want %q", snap.Status, snap.Phase, snap.Errors, StatusCompleted)
	}
	if snap.Phase != "done" {
		t.Errorf("Phase = %q, want %q", snap.Phase, "done")
	}
	if snap.Result == nil {
		t.Fatal("Result is nil after completion")
	}
	if got := len(snap.Result.Scores); got != 6 {
		t.Errorf("len(Scores) = %d, want 6", got)
	}
	if snap.Result.Resume == nil {
		t.Fatal("Result.Resume is nil")
	}
	if got := snap.Result.Resume.Contact.Name; got != "Jane Doe" {
		t.Errorf("Contact.Name = %q, want %q", got, "Jane Doe")
	}
	if got := len(snap.Result.Resume.Skills); got != 5 {
		t.Errorf("len(Skills) = %d, want 5: %v", got, snap.Result.Resume.Skills)
	}
	if snap.Result.JobProfile == nil {
		t.Error("JobProfile is nil despite a job description being supplied")
	}

	if got := stats.Snapshot().Count; got != 1 {
		t.Errorf("stats Count = %d, want 1", got)
	}
}

func TestWorkerProcess_NoJobDescription(t *testing.T) {
	w := NewWorker(discardLogger(), nil)

	job := NewJob("resume.txt", []byte(sampleResumeText), "   ")
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("Status = %q, want %q", snap.Status, StatusCompleted)
	}
	if snap.Result.JobProfile != nil {
		t.Error("JobProfile should be nil when no job description is supplied")
	}
}

func TestWorkerProcess_UnsupportedExtension(t *testing.T) {
	w := NewWorker(discardLogger(), nil)

	job := NewJob("resume.exe", []byte("whatever"), "")
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("Status = %q, want %q", snap.Status, StatusFailed)
	}
	if snap.Phase != "parsing" {
		t.Errorf("Phase = %q, want %q", snap.Phase, "parsing")
	}
	if len(snap.Errors) == 0 {
		t.Error("expected at least one error on the failed job")
	}
	if snap.Result != nil {
		t.Error("Result should be nil for a failed job")
	}
}

func TestWorkerProcess_EmptyFile(t *testing.T) {
	w := NewWorker(discardLogger(), nil)

	job := NewJob("resume.txt", nil, "")
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("Status = %q, want %q", snap.Status, StatusFailed)
	}
	if len(snap.Errors) == 0 {
		t.Fatal("expected an error explaining the empty file")
	}
	if !strings.Contains(snap.Errors[0], "could not extract any text") {
		t.Errorf("error = %q, want a no-text explanation", snap.Errors[0])
	}
}

func TestWorkerProcess_CanceledContext(t *testing.T) {
	w := NewWorker(discardLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := NewJob("resume.txt", []byte(sampleResumeText), "")
	w.Process(ctx, job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("Status = %q, want %q", snap.Status, StatusFailed)
	}
	if snap.Phase != "canceled" {
		t.Errorf("Phase = %q, want %q", snap.Phase, "canceled")
	}
	if len(snap.Errors) == 0 {
		t.Error("expected the context error to be recorded")
	}
}

func TestScoringInput_Flattening(t *testing.T) {
	r := &resume.ParsedResume{
		RawText: "raw resume text",
		Sections: []resume.Section{
			{Type: resume.SectionExperience, Header: "EXPERIENCE", Content: "Engineer"},
			{Type: resume.SectionEducation, Header: "EDUCATION", Content: "BS in Computer Science, 2018"},
			{Type: resume.SectionSkills, Header: "SKILLS", Content: "go, sql"},
		},
		Experience: []resume.ExperienceEntry{
			{Title: "Engineer", Bullets: []string{"Built APIs", "Reduced latency by 40%"}},
			{Title: "Intern", Bullets: []string{"Wrote scripts"}},
		},
		Skills: []string{"go", "sql"},
		Metadata: resume.Metadata{
			PageCount:          2,
			WordCount:          450,
			HasMultipleColumns: true,
		},
	}

	input := ScoringInput(r, "backend role")

	wantSections := []string{"experience", "education", "skills"}
	if len(input.ResumeSections) != len(wantSections) {
		t.Fatalf("ResumeSections = %v, want %v", input.ResumeSections, wantSections)
	}
	for i, s := range wantSections {
		if input.ResumeSections[i] != s {
			t.Errorf("ResumeSections[%d] = %q, want %q", i, input.ResumeSections[i], s)
		}
	}

	if got := len(input.ExperienceBullets); got != 3 {
		t.Errorf("len(ExperienceBullets) = %d, want 3", got)
	}
	if input.EducationText != "BS in Computer Science, 2018" {
		t.Errorf("EducationText = %q", input.EducationText)
	}
	if input.ResumeText != "raw resume text" {
		t.Errorf("ResumeText = %q", input.ResumeText)
	}
	if input.JobDescription != "backend role" {
		t.Errorf("JobDescription = %q", input.JobDescription)
	}
	if !input.HasMultipleColumns || input.PageCount != 2 || input.WordCount != 450 {
		t.Errorf("metadata not carried through: %+v", input)
	}
}

func TestScoringInput_MultipleEducationSections(t *testing.T) {
	r := &resume.ParsedResume{
		Sections: []resume.Section{
			{Type: resume.SectionEducation, Content: "BS, 2016"},
			{Type: resume.SectionEducation, Content: "MS, 2018"},
		},
	}

	input := ScoringInput(r, "")
	want := "BS, 2016\nMS, 2018"
	if input.EducationText != want {
		t.Errorf("EducationText = %q, want %q", input.EducationText, want)
	}
}
