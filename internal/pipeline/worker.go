package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/sunnypatell/ats-screener/internal/jobdesc"
	"github.com/sunnypatell/ats-screener/internal/metrics"
	"github.com/sunnypatell/ats-screener/internal/resume"
	"github.com/sunnypatell/ats-screener/internal/scoring"
)

// Worker processes a single analysis job.
type Worker struct {
	log   *slog.Logger
	stats *metrics.AnalysisStats
}

func NewWorker(log *slog.Logger, stats *metrics.AnalysisStats) *Worker {
	return &Worker{log: log, stats: stats}
}

// Process runs the full analysis pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	start := time.Now()

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	// Phase 1: parse the document and build the resume model
	job.SetStatus(StatusParsing, "parsing")
	parsed := resume.Parse(job.FileData(), job.Filename)
	if !parsed.Success {
		for _, e := range parsed.Errors {
			job.AddError(e)
		}
		log.Error("parse failed", "errors", strings.Join(parsed.Errors, "; "))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	log.Info("parsed resume",
		"sections", len(parsed.Resume.Sections),
		"words", parsed.Resume.Metadata.WordCount,
		"pages", parsed.Resume.Metadata.PageCount)

	// Phase 2: parse the job description, when provided
	job.SetStatus(StatusAnalyzing, "analyzing")
	var jobProfile *jobdesc.Profile
	jd := job.JobDescription()
	if strings.TrimSpace(jd) != "" {
		jobProfile = jobdesc.Parse(jd)
		log.Info("parsed job description",
			"skills", len(jobProfile.ExtractedSkills),
			"industry", jobProfile.IndustryContext,
			"role", jobProfile.RoleType)
	}

	// Phase 3: score against every platform profile
	job.SetStatus(StatusScoring, "scoring")
	input := ScoringInput(parsed.Resume, jd)
	scores := scoring.Score(input)

	job.SetResult(&AnalysisResult{
		Resume:     parsed.Resume,
		JobProfile: jobProfile,
		Scores:     scores,
		Warnings:   parsed.Warnings,
	})
	job.SetStatus(StatusCompleted, "done")

	elapsed := time.Since(start)
	if w.stats != nil {
		w.stats.Record(elapsed.Milliseconds())
	}
	log.Info("analysis complete", "duration", elapsed, "profiles", len(scores))
}

// ScoringInput flattens a parsed resume into the signals the scorers
// read. Education text is the raw content of every education section;
// bullets come from every experience entry.
func ScoringInput(r *resume.ParsedResume, jobDescription string) scoring.Input {
	sections := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		sections = append(sections, string(s.Type))
	}

	var bullets []string
	for _, e := range r.Experience {
		bullets = append(bullets, e.Bullets...)
	}

	var eduParts []string
	for _, s := range resume.SectionsOfType(r.Sections, resume.SectionEducation) {
		eduParts = append(eduParts, s.Content)
	}

	return scoring.Input{
		ResumeText:         r.RawText,
		ResumeSkills:       r.Skills,
		ResumeSections:     sections,
		ExperienceBullets:  bullets,
		EducationText:      strings.Join(eduParts, "\n"),
		HasMultipleColumns: r.Metadata.HasMultipleColumns,
		HasTables:          r.Metadata.HasTables,
		HasImages:          r.Metadata.HasImages,
		PageCount:          r.Metadata.PageCount,
		WordCount:          r.Metadata.WordCount,
		JobDescription:     jobDescription,
	}
}
