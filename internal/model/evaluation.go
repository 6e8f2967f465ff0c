package model

// EvaluationResult is the outcome of scoring a student's open-ended answers.
type EvaluationResult struct {
	Score       int      `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

// Priority ranks a code improvement item
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ParsePriority coerces an externally supplied priority to a known value,
// defaulting to Medium.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s)
	default:
		return PriorityMedium
	}
}

// Improvement is a single code-quality finding.
type Improvement struct {
	Category   string   `json:"category"`
	Issue      string   `json:"issue"`
	Suggestion string   `json:"suggestion"`
	Priority   Priority `json:"priority"`
}

// ComprehensionQuestion helps an external reviewer understand submitted code.
type ComprehensionQuestion struct {
	Question string `json:"question"`
	Purpose  string `json:"purpose"`
}

// CodeAnalysis is the outcome of analyzing a code submission for quality.
type CodeAnalysis struct {
	OverallScore           int                     `json:"overallScore"`
	Summary                string                  `json:"summary"`
	Improvements           []Improvement           `json:"improvements"`
	ComprehensionQuestions []ComprehensionQuestion `json:"comprehensionQuestions"`
}
