package scoring

import (
	"strings"
	"testing"
)

func TestScoreEducation_EmptyGetsFloor(t *testing.T) {
	b := ScoreEducation("")
	if b.Score != 20 {
		t.Errorf("expected floor of 20, got %d", b.Score)
	}
	if len(b.Notes) != 1 || !strings.Contains(b.Notes[0], "no education section") {
		t.Errorf("unexpected notes: %v", b.Notes)
	}
}

func TestScoreEducation_FullEntry(t *testing.T) {
	text := "Bachelor of Science in Computer Science\nUniversity of Waterloo, 2020\nGPA: 3.8/4.0, Dean's List"
	b := ScoreEducation(text)
	// degree 30 + institution 20 + year 15 + field 15 + gpa 10 + honors 10
	if b.Score != 100 {
		t.Errorf("expected 100, got %d", b.Score)
	}

	var hasStrongGPA bool
	for _, n := range b.Notes {
		if strings.Contains(n, "strong GPA") {
			hasStrongGPA = true
		}
	}
	if !hasStrongGPA {
		t.Errorf("expected a strong GPA note, got %v", b.Notes)
	}
}

func TestScoreEducation_Additive(t *testing.T) {
	// degree only: keyword present, no capitalized institution pair, no
	// year, no field, no gpa, no honors
	b := ScoreEducation("bachelor degree")
	if b.Score != 30 {
		t.Errorf("expected 30 for degree alone, got %d", b.Score)
	}

	// degree + year
	b = ScoreEducation("bachelor degree, 2019")
	if b.Score != 45 {
		t.Errorf("expected 45, got %d", b.Score)
	}
}

func TestScoreEducation_WeakGPAWarning(t *testing.T) {
	b := ScoreEducation("Bachelor of Arts, State University, 2018. GPA: 2.7")
	var warned bool
	for _, n := range b.Notes {
		if strings.Contains(n, "removing GPA below 3.0") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("expected a weak GPA warning, got %v", b.Notes)
	}
}

func TestScoreEducation_NeverExceeds100(t *testing.T) {
	text := "PhD Doctor of Philosophy, Master of Science, Bachelor of Engineering at Great Northern University " +
		"in Computer Science, 2015, GPA: 3.9/4.0, summa cum laude, Dean's List honors"
	b := ScoreEducation(text)
	if b.Score > 100 {
		t.Errorf("score %d exceeds 100", b.Score)
	}
}
