package report

// NextStep is one numbered item of next-step guidance
type NextStep struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Feedback is the canned text shown for a tier
type Feedback struct {
	Summary     string     `json:"summary"`
	Strengths   string     `json:"strengths"`
	Weaknesses  string     `json:"weaknesses"`
	Suggestions []string   `json:"suggestions"`
	NextSteps   []NextStep `json:"next_steps"`
}

var defaultNextSteps = []NextStep{
	{Title: "Keep practicing", Detail: "Practice 2-3 questions a day to keep a steady rhythm"},
	{Title: "Review your learning report", Detail: "Check your learning report regularly to follow how your abilities grow"},
}

var feedbackByTier = map[Tier]Feedback{
	TierLow: {
		Summary:    "More practice is needed; focus on the fundamentals.",
		Strengths:  "Has a baseline of foundational knowledge",
		Weaknesses: "Needs to strengthen fundamentals and logical expression",
		Suggestions: []string{
			"Study the underlying fundamentals systematically to build a solid base",
			"Practice structured thinking to express answers more logically",
			"Read strong reference answers to learn answering techniques and approaches",
		},
		NextSteps: defaultNextSteps,
	},
	TierMedium: {
		Summary:    "Good performance, with room to improve.",
		Strengths:  "Solid fundamentals and fairly clear reasoning",
		Weaknesses: "Answers can gain further depth and breadth",
		Suggestions: []string{
			"Dig into the essence of each question to add depth and insight",
			"Follow industry news to enrich answers with cases and hands-on experience",
			"Practice time management to give high-quality answers within the limit",
		},
		NextSteps: defaultNextSteps,
	},
	TierHigh: {
		Summary:    "Excellent performance, keep it up!",
		Strengths:  "Clear logical thinking and strong expression",
		Weaknesses: "Ready to take on more challenging questions",
		Suggestions: []string{
			"Try harder, more challenging questions",
			"Track emerging technology and industry trends to keep knowledge current",
			"Consider mentoring others; teaching sharpens your own skills",
		},
		NextSteps: defaultNextSteps,
	},
}

// Present returns the feedback bundle for a tier. Unknown tiers get the low bundle.
func Present(t Tier) Feedback {
	fb, ok := feedbackByTier[t]
	if !ok {
		fb = feedbackByTier[TierLow]
	}

	fb.Suggestions = append([]string(nil), fb.Suggestions...)
	fb.NextSteps = append([]NextStep(nil), fb.NextSteps...)
	return fb
}
