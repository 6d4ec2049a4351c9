package scoring

import (
	"math"
	"strings"
)

// ScoreSections measures required-section coverage for one platform.
// The score is the fraction of required sections present; a profile
// with no required sections always scores 100.
func ScoreSections(presentSections, requiredSections []string) SectionBreakdown {
	presentSet := make(map[string]bool, len(presentSections))
	for _, s := range presentSections {
		presentSet[strings.ToLower(s)] = true
	}

	var present, missing []string
	for _, required := range requiredSections {
		if presentSet[strings.ToLower(required)] {
			present = append(present, required)
		} else {
			missing = append(missing, required)
		}
	}

	score := 100
	if len(requiredSections) > 0 {
		score = int(math.Round(float64(len(present)) / float64(len(requiredSections)) * 100))
	}

	return SectionBreakdown{Score: score, Present: present, Missing: missing}
}
